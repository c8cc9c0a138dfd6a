package components

import "github.com/decker502/roadrunner/pkg/types"

// BackgroundComponent 场景清屏颜色
type BackgroundComponent struct {
	Color types.Color
}

// FogComponent 线性雾
// Near 之前不受影响，Far 之后完全变为雾色
type FogComponent struct {
	Color types.Color
	Near  float64
	Far   float64
}

// EnvironmentComponent 环境预设（天空渐变），仅作装饰
type EnvironmentComponent struct {
	// Preset 预设名称，例如 "sunset"
	Preset string
	// Horizon 地平线颜色
	Horizon types.Color
	// Zenith 天顶颜色
	Zenith types.Color
}

// StarFieldComponent 星空背景
//
// 星点在半径 Radius 到 Radius+Depth 的球壳内随机分布，
// 由渲染系统根据 Seed 生成，保证每次挂载结果一致。
type StarFieldComponent struct {
	Radius     float64
	Depth      float64
	Count      int
	Factor     float64 // 星点大小系数
	Saturation float64 // 0 表示纯白
	Fade       bool    // 靠近地平线时淡出
	Speed      float64 // 旋转速度（弧度/秒 * 0.01）
	Seed       int64

	// Rotation 当前绕 Y 轴的旋转角（弧度），由渲染系统推进
	Rotation float64
}
