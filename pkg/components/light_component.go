package components

import "github.com/go-gl/mathgl/mgl64"

// AmbientLightComponent 环境光，均匀照亮所有表面
type AmbientLightComponent struct {
	Intensity float64
}

// DirectionalLightComponent 平行光
// 光线方向为 Position 指向原点
type DirectionalLightComponent struct {
	Position   mgl64.Vec3
	Intensity  float64
	CastShadow bool
	// ShadowMapWidth/ShadowMapHeight 阴影贴图分辨率
	ShadowMapWidth  int
	ShadowMapHeight int
}

// Direction 返回从光源指向原点的单位向量
func (l *DirectionalLightComponent) Direction() mgl64.Vec3 {
	if l.Position.Len() == 0 {
		return mgl64.Vec3{0, -1, 0}
	}
	return l.Position.Mul(-1).Normalize()
}
