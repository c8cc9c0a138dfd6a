package components

// ShadowComponent 阴影参与标记
// 存储实体是否投射阴影、是否接收阴影
type ShadowComponent struct {
	// CastShadow 是否向接收者投射阴影
	CastShadow bool

	// ReceiveShadow 是否显示其他实体投射的阴影
	ReceiveShadow bool

	// Alpha 阴影透明度 (0.0-1.0)
	// 典型值: 0.35
	Alpha float32
}
