package components

import (
	"github.com/decker502/roadrunner/pkg/model"
	"github.com/go-gl/mathgl/mgl64"
)

// TransformComponent 实体在世界空间中的位置、朝向和缩放
type TransformComponent struct {
	// Position 世界坐标
	Position mgl64.Vec3
	// Rotation 欧拉角（度），按 X、Y、Z 顺序应用
	Rotation mgl64.Vec3
	// Scale 各轴缩放，零值视为 1
	Scale mgl64.Vec3
}

// Matrix 返回实体的世界矩阵
func (t *TransformComponent) Matrix() mgl64.Mat4 {
	return model.Transform{Position: t.Position, Rotation: t.Rotation, Scale: t.Scale}.Matrix()
}
