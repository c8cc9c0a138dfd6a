package components

import "github.com/go-gl/mathgl/mgl64"

// CameraComponent 透视相机
type CameraComponent struct {
	// Position 相机世界坐标，由轨道控制系统更新
	Position mgl64.Vec3

	// FOV 垂直视角（度）
	FOV float64

	// Near/Far 裁剪面
	Near float64
	Far  float64

	// Up 上方向，零值视为 +Y
	Up mgl64.Vec3
}

// OrbitControlsComponent 围绕目标点旋转的相机控制
//
// 极角 0 表示正上方，π/2 表示水平，
// MaxPolarAngle = π/2 时相机不会进入地面以下。
type OrbitControlsComponent struct {
	Target mgl64.Vec3

	MinPolarAngle float64
	MaxPolarAngle float64
	MinDistance   float64
	MaxDistance   float64

	// RotateSpeed 拖动 1 像素对应的弧度
	RotateSpeed float64
	// ZoomSpeed 滚轮每格的缩放比例
	ZoomSpeed float64

	EnableDamping bool
	DampingFactor float64

	// ===== 运行时状态（由系统维护）=====
	// Azimuth/Polar/Distance 当前球坐标
	Azimuth  float64
	Polar    float64
	Distance float64
	// 阻尼惯性
	AzimuthVelocity float64
	PolarVelocity   float64
	// Dragging 是否正在拖动
	Dragging bool
	// LastX/LastY 上一帧指针位置
	LastX, LastY int
	// Initialized 是否已从相机位置推导出球坐标
	Initialized bool
}
