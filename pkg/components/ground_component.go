package components

import "github.com/decker502/roadrunner/pkg/types"

// GroundComponent 地面平面
// 平面在本地 XY 平面内，由 TransformComponent 绕 X 轴旋转到水平
type GroundComponent struct {
	Width float64
	Depth float64
	Color types.Color
	// Grid 线框网格每边的分段数
	Grid int
}
