package config

// 阴影配置
// 阴影是把车辆线框沿平行光方向投影到地面后用半透明黑色绘制的

const (
	// VehicleShadowAlpha 车辆投影的透明度（投射方）
	VehicleShadowAlpha float32 = 0.35

	// GroundShadowAlpha 地面上阴影的透明度（接收方，绘制时使用）
	GroundShadowAlpha float32 = 0.35

	// ShadowReferenceMapSize 阴影贴图为该分辨率时线宽为 1 像素
	ShadowReferenceMapSize = 2048

	// ShadowMaxLineWidth 阴影线宽上限（像素）
	ShadowMaxLineWidth = 4.0
)

// GetShadowLineWidth 根据阴影贴图分辨率返回投影线宽
// 分辨率越低阴影越粗糙（线越宽），无效的分辨率按 1 像素处理
func GetShadowLineWidth(mapSize int) float64 {
	if mapSize <= 0 {
		return 1
	}
	w := float64(ShadowReferenceMapSize) / float64(mapSize)
	if w < 1 {
		return 1
	}
	if w > ShadowMaxLineWidth {
		return ShadowMaxLineWidth
	}
	return w
}
