package systems

import (
	"math"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

// minPolarEpsilon 避免极角正好为 0 时方位角失去意义
const minPolarEpsilon = 1e-6

// OrbitControlSystem 轨道相机控制系统
//
// 职责：
//   - 拖动主指针绕目标点旋转（方位角/极角）
//   - 滚轮缩放，距离限制在 [MinDistance, MaxDistance]
//   - 极角限制在 [MinPolarAngle, MaxPolarAngle]，相机不会进入地面以下
//   - 根据球坐标重新计算 CameraComponent.Position
type OrbitControlSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
	// blocked 返回 true 时该位置的按下不开始拖动（例如落在按钮上）
	blocked func(x, y int) bool
	drag    utils.DragTracker
	// dragBlocked 当前这次按下是否从被屏蔽的区域开始
	dragBlocked bool
}

// NewOrbitControlSystem 创建轨道相机控制系统
// pointer 为 nil 时读取真实输入，blocked 可为 nil
func NewOrbitControlSystem(em *ecs.EntityManager, pointer utils.PointerSource, blocked func(x, y int) bool) *OrbitControlSystem {
	if pointer == nil {
		pointer = utils.ReadPointer
	}
	return &OrbitControlSystem{
		entityManager: em,
		pointer:       pointer,
		blocked:       blocked,
	}
}

// Update 处理输入并更新所有轨道相机
func (s *OrbitControlSystem) Update(deltaTime float64) {
	p := s.pointer()

	if p.JustPressed {
		s.dragBlocked = s.blocked != nil && s.blocked(p.X, p.Y)
	}
	dx, dy := 0, 0
	if s.dragBlocked {
		s.drag.Reset()
		if !p.Pressed {
			s.dragBlocked = false
		}
	} else {
		dx, dy, _ = s.drag.Update(p)
	}

	entities := ecs.GetEntitiesWith2[*components.CameraComponent, *components.OrbitControlsComponent](s.entityManager)
	for _, id := range entities {
		cam, _ := ecs.GetComponent[*components.CameraComponent](s.entityManager, id)
		orbit, _ := ecs.GetComponent[*components.OrbitControlsComponent](s.entityManager, id)

		if !orbit.Initialized {
			InitOrbitFromCamera(cam, orbit)
		}

		orbit.Dragging = s.drag.IsDragging()
		orbit.LastX, orbit.LastY = p.X, p.Y

		// 向右拖动相机向左绕行，向下拖动相机向上抬起
		orbit.AzimuthVelocity -= float64(dx) * orbit.RotateSpeed
		orbit.PolarVelocity -= float64(dy) * orbit.RotateSpeed

		if p.WheelY != 0 && orbit.ZoomSpeed > 0 {
			orbit.Distance /= math.Pow(orbit.ZoomSpeed, p.WheelY)
		}

		applyOrbit(orbit)
		cam.Position = OrbitPosition(orbit)
	}
}

// InitOrbitFromCamera 由相机当前位置推导球坐标
func InitOrbitFromCamera(cam *components.CameraComponent, orbit *components.OrbitControlsComponent) {
	offset := cam.Position.Sub(orbit.Target)
	dist := offset.Len()
	if dist == 0 {
		dist = orbit.MinDistance
		offset = mgl64.Vec3{0, 0, dist}
	}
	orbit.Distance = dist
	orbit.Polar = math.Acos(utils.Clamp(offset.Y()/dist, -1, 1))
	orbit.Azimuth = math.Atan2(offset.X(), offset.Z())
	orbit.Initialized = true
	clampOrbit(orbit)
}

// applyOrbit 把累积的角速度应用到球坐标
func applyOrbit(orbit *components.OrbitControlsComponent) {
	if orbit.EnableDamping {
		f := orbit.DampingFactor
		orbit.Azimuth += orbit.AzimuthVelocity * f
		orbit.Polar += orbit.PolarVelocity * f
		orbit.AzimuthVelocity *= 1 - f
		orbit.PolarVelocity *= 1 - f
		if math.Abs(orbit.AzimuthVelocity) < 1e-6 {
			orbit.AzimuthVelocity = 0
		}
		if math.Abs(orbit.PolarVelocity) < 1e-6 {
			orbit.PolarVelocity = 0
		}
	} else {
		orbit.Azimuth += orbit.AzimuthVelocity
		orbit.Polar += orbit.PolarVelocity
		orbit.AzimuthVelocity = 0
		orbit.PolarVelocity = 0
	}
	clampOrbit(orbit)
}

func clampOrbit(orbit *components.OrbitControlsComponent) {
	minPolar := math.Max(orbit.MinPolarAngle, minPolarEpsilon)
	maxPolar := math.Min(orbit.MaxPolarAngle, math.Pi-minPolarEpsilon)
	orbit.Polar = utils.Clamp(orbit.Polar, minPolar, maxPolar)
	if orbit.MaxDistance > 0 {
		orbit.Distance = utils.Clamp(orbit.Distance, orbit.MinDistance, orbit.MaxDistance)
	}
	orbit.Azimuth = math.Mod(orbit.Azimuth, 2*math.Pi)
}

// OrbitPosition 返回球坐标对应的相机位置
func OrbitPosition(orbit *components.OrbitControlsComponent) mgl64.Vec3 {
	sinP := math.Sin(orbit.Polar)
	offset := mgl64.Vec3{
		orbit.Distance * sinP * math.Sin(orbit.Azimuth),
		orbit.Distance * math.Cos(orbit.Polar),
		orbit.Distance * sinP * math.Cos(orbit.Azimuth),
	}
	return orbit.Target.Add(offset)
}
