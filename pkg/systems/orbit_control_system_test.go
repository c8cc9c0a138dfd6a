package systems

import (
	"math"
	"testing"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/entities"
	"github.com/decker502/roadrunner/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
)

func newOrbitFixture(t *testing.T, damping bool) (*OrbitControlSystem, *fakePointer, *components.CameraComponent, *components.OrbitControlsComponent) {
	t.Helper()
	em := ecs.NewEntityManager()
	cfg := config.DefaultSceneConfig()
	cfg.Orbit.EnableDamping = damping
	id := entities.NewCameraEntity(em, cfg.Camera, cfg.Orbit)
	ptr := &fakePointer{}
	sys := NewOrbitControlSystem(em, ptr.read, nil)
	cam, _ := ecs.GetComponent[*components.CameraComponent](em, id)
	orbit, _ := ecs.GetComponent[*components.OrbitControlsComponent](em, id)
	return sys, ptr, cam, orbit
}

func TestOrbitInitialisesFromCameraPosition(t *testing.T) {
	sys, _, cam, orbit := newOrbitFixture(t, false)
	sys.Update(0.016)

	if math.Abs(orbit.Distance-math.Sqrt(250)) > 1e-9 {
		t.Errorf("Distance = %v, want sqrt(250)", orbit.Distance)
	}
	if !cam.Position.ApproxEqualThreshold(mgl64.Vec3{0, 5, 15}, 1e-9) {
		t.Errorf("idle update moved the camera to %v", cam.Position)
	}
}

func TestOrbitDragRotatesAroundTarget(t *testing.T) {
	sys, ptr, cam, orbit := newOrbitFixture(t, false)
	ptr.state = utils.PointerState{X: 100, Y: 100, Pressed: true, JustPressed: true}
	sys.Update(0.016)
	startAzimuth := orbit.Azimuth

	ptr.state = utils.PointerState{X: 160, Y: 100, Pressed: true}
	sys.Update(0.016)

	want := startAzimuth - 60*orbit.RotateSpeed
	if math.Abs(orbit.Azimuth-want) > 1e-9 {
		t.Errorf("Azimuth = %v, want %v", orbit.Azimuth, want)
	}
	if d := cam.Position.Sub(orbit.Target).Len(); math.Abs(d-orbit.Distance) > 1e-9 {
		t.Errorf("camera distance %v != orbit distance %v", d, orbit.Distance)
	}
}

// 极角被限制在 π/2，相机不会低于地面
func TestOrbitPolarClampedAtHorizon(t *testing.T) {
	sys, ptr, cam, orbit := newOrbitFixture(t, false)
	ptr.state = utils.PointerState{X: 100, Y: 0, Pressed: true, JustPressed: true}
	sys.Update(0.016)

	// 向上拖动很远 → 极角增大
	ptr.state = utils.PointerState{X: 100, Y: -5000, Pressed: true}
	sys.Update(0.016)

	if orbit.Polar > math.Pi/2+1e-12 {
		t.Errorf("Polar = %v exceeds π/2", orbit.Polar)
	}
	if cam.Position.Y() < orbit.Target.Y()-1e-9 {
		t.Errorf("camera went below the target plane: %v", cam.Position)
	}

	// 反方向拖动到顶 → 极角不小于最小值
	ptr.state = utils.PointerState{X: 100, Y: 5000, Pressed: true}
	sys.Update(0.016)
	if orbit.Polar <= 0 {
		t.Errorf("Polar = %v should stay positive", orbit.Polar)
	}
}

func TestOrbitWheelZoomClamped(t *testing.T) {
	sys, ptr, _, orbit := newOrbitFixture(t, false)
	ptr.state = utils.PointerState{WheelY: 100}
	sys.Update(0.016)
	if orbit.Distance != orbit.MinDistance {
		t.Errorf("Distance = %v, want MinDistance %v", orbit.Distance, orbit.MinDistance)
	}

	ptr.state = utils.PointerState{WheelY: -100}
	sys.Update(0.016)
	if orbit.Distance != orbit.MaxDistance {
		t.Errorf("Distance = %v, want MaxDistance %v", orbit.Distance, orbit.MaxDistance)
	}
}

func TestOrbitDampingKeepsMovingAfterRelease(t *testing.T) {
	sys, ptr, _, orbit := newOrbitFixture(t, true)
	ptr.state = utils.PointerState{X: 0, Y: 0, Pressed: true, JustPressed: true}
	sys.Update(0.016)
	ptr.state = utils.PointerState{X: 50, Y: 0, Pressed: true}
	sys.Update(0.016)
	afterDrag := orbit.Azimuth

	ptr.state = utils.PointerState{X: 50, Y: 0}
	sys.Update(0.016)
	if orbit.Azimuth >= afterDrag {
		t.Errorf("damped rotation should continue after release: %v -> %v", afterDrag, orbit.Azimuth)
	}
}

func TestOrbitBlockedPressDoesNotRotate(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultSceneConfig()
	cfg.Orbit.EnableDamping = false
	id := entities.NewCameraEntity(em, cfg.Camera, cfg.Orbit)
	ptr := &fakePointer{}
	sys := NewOrbitControlSystem(em, ptr.read, func(x, y int) bool { return x < 50 })
	orbit, _ := ecs.GetComponent[*components.OrbitControlsComponent](em, id)

	ptr.state = utils.PointerState{X: 10, Y: 10, Pressed: true, JustPressed: true}
	sys.Update(0.016)
	start := orbit.Azimuth
	ptr.state = utils.PointerState{X: 300, Y: 10, Pressed: true}
	sys.Update(0.016)
	if orbit.Azimuth != start {
		t.Errorf("drag that started on a button rotated the camera")
	}
}
