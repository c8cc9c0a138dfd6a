package systems

import (
	"github.com/decker502/roadrunner/pkg/components"
	"github.com/go-gl/mathgl/mgl64"
)

// viewCamera 一帧内固定的投影参数
type viewCamera struct {
	position mgl64.Vec3
	view     mgl64.Mat4
	proj     mgl64.Mat4
	near     float64
	width    float64
	height   float64
}

// newViewCamera 由相机组件和轨道目标构造投影
func newViewCamera(cam *components.CameraComponent, target mgl64.Vec3, width, height int) viewCamera {
	up := cam.Up
	if up == (mgl64.Vec3{}) {
		up = mgl64.Vec3{0, 1, 0}
	}
	near := cam.Near
	if near <= 0 {
		near = 0.1
	}
	aspect := float64(width) / float64(height)
	return viewCamera{
		position: cam.Position,
		view:     mgl64.LookAtV(cam.Position, target, up),
		proj:     mgl64.Perspective(mgl64.DegToRad(cam.FOV), aspect, near, cam.Far),
		near:     near,
		width:    float64(width),
		height:   float64(height),
	}
}

// toView 世界坐标 → 相机空间（相机看向 -Z）
func (c viewCamera) toView(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.TransformCoordinate(p, c.view)
}

// viewToScreen 相机空间 → 屏幕坐标，点必须位于近裁剪面之前
func (c viewCamera) viewToScreen(v mgl64.Vec3) (float64, float64) {
	clip := c.proj.Mul4x1(v.Vec4(1))
	ndc := clip.Vec3().Mul(1 / clip.W())
	x := (ndc.X() + 1) / 2 * c.width
	y := (1 - ndc.Y()) / 2 * c.height
	return x, y
}

// Project 把世界坐标投影到屏幕，位于相机后方时返回 false
func (c viewCamera) Project(p mgl64.Vec3) (float64, float64, bool) {
	v := c.toView(p)
	if -v.Z() < c.near {
		return 0, 0, false
	}
	x, y := c.viewToScreen(v)
	return x, y, true
}

// ProjectSegment 投影线段，先在相机空间按近裁剪面裁剪
func (c viewCamera) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	va, vb := c.toView(a), c.toView(b)
	da, db := -va.Z()-c.near, -vb.Z()-c.near
	if da < 0 && db < 0 {
		return 0, 0, 0, 0, false
	}
	if da < 0 {
		va = va.Add(vb.Sub(va).Mul(da / (da - db)))
	} else if db < 0 {
		vb = vb.Add(va.Sub(vb).Mul(db / (db - da)))
	}
	x0, y0 = c.viewToScreen(va)
	x1, y1 = c.viewToScreen(vb)
	return x0, y0, x1, y1, true
}

// Distance 点到相机的距离（用于雾）
func (c viewCamera) Distance(p mgl64.Vec3) float64 {
	return p.Sub(c.position).Len()
}

// projectOntoGround 沿光线方向把点投影到 y = groundY 平面
func projectOntoGround(p, lightDir mgl64.Vec3, groundY float64) (mgl64.Vec3, bool) {
	if lightDir.Y() >= 0 {
		return mgl64.Vec3{}, false
	}
	t := (groundY - p.Y()) / lightDir.Y()
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return p.Add(lightDir.Mul(t)), true
}
