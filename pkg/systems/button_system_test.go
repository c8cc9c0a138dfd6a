package systems

import (
	"testing"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/utils"
)

// fakePointer 返回可由测试修改的指针状态
type fakePointer struct {
	state utils.PointerState
}

func (f *fakePointer) read() utils.PointerState { return f.state }

func newTestButton(em *ecs.EntityManager, onClick func()) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ButtonComponent{
		X: 100, Y: 100, Width: 200, Height: 50,
		Text:    "Start game",
		Enabled: true,
		OnClick: onClick,
	})
	return id
}

func TestButtonSystemHoverPressClick(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := newTestButton(em, func() { clicks++ })
	ptr := &fakePointer{}
	sys := NewButtonSystem(em, ptr.read)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)

	ptr.state = utils.PointerState{X: 10, Y: 10}
	sys.Update(0.016)
	if button.State != components.UINormal {
		t.Errorf("outside: state = %v, want UINormal", button.State)
	}

	ptr.state = utils.PointerState{X: 150, Y: 120}
	sys.Update(0.016)
	if button.State != components.UIHovered {
		t.Errorf("hover: state = %v, want UIHovered", button.State)
	}

	ptr.state = utils.PointerState{X: 150, Y: 120, Pressed: true, JustPressed: true}
	sys.Update(0.016)
	if button.State != components.UIClicked || clicks != 0 {
		t.Errorf("press: state = %v, clicks = %d", button.State, clicks)
	}

	ptr.state = utils.PointerState{X: 150, Y: 120, JustReleased: true}
	if !sys.Update(0.016) {
		t.Error("Update should report the click")
	}
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestButtonSystemReleaseOutsideDoesNotClick(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	newTestButton(em, func() { clicks++ })
	ptr := &fakePointer{state: utils.PointerState{X: 0, Y: 0, JustReleased: true}}
	sys := NewButtonSystem(em, ptr.read)

	if sys.Update(0.016) || clicks != 0 {
		t.Error("release outside the button must not click")
	}
}

func TestButtonSystemDisabled(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := newTestButton(em, func() { clicks++ })
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	button.Enabled = false

	ptr := &fakePointer{state: utils.PointerState{X: 150, Y: 120, JustReleased: true}}
	sys := NewButtonSystem(em, ptr.read)
	sys.Update(0.016)

	if clicks != 0 || button.State != components.UIDisabled {
		t.Errorf("disabled button: clicks = %d, state = %v", clicks, button.State)
	}
	if sys.HitTest(150, 120) {
		t.Error("disabled button should not be hit")
	}
}

func TestButtonSystemHitTest(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestButton(em, nil)
	sys := NewButtonSystem(em, (&fakePointer{}).read)
	if !sys.HitTest(120, 110) {
		t.Error("point inside should hit")
	}
	if sys.HitTest(99, 110) {
		t.Error("point outside should miss")
	}
}
