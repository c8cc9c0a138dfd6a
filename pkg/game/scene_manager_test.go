package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene and Lifecycle interfaces for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	entered      int
	exited       int
	events       *[]string
	name         string
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnEnter() {
	m.entered++
	if m.events != nil {
		*m.events = append(*m.events, "enter:"+m.name)
	}
}

func (m *MockScene) OnExit() {
	m.exited++
	if m.events != nil {
		*m.events = append(*m.events, "exit:"+m.name)
	}
}

// plainScene implements Scene only.
type plainScene struct{ updates int }

func (p *plainScene) Update(float64)     { p.updates++ }
func (p *plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update/Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016) // Should not panic
	sm.Draw(nil)     // Should not panic
}

// TestSceneManagerLifecycleOrder verifies OnExit of the old scene runs before OnEnter of the new one.
func TestSceneManagerLifecycleOrder(t *testing.T) {
	var events []string
	sm := NewSceneManager()
	menu := &MockScene{name: "menu", events: &events}
	game := &MockScene{name: "game", events: &events}

	sm.SwitchTo(menu)
	sm.SwitchTo(game)
	sm.Close()

	want := []string{"enter:menu", "exit:menu", "enter:game", "exit:game"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Close should clear the current scene")
	}
}

// TestSceneManagerSwitchBetweenScenes verifies only the active scene receives updates.
func TestSceneManagerSwitchBetweenScenes(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &plainScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.Update(0.016)
	sm.SwitchTo(scene2)
	sm.Update(0.016)

	if scene1.updates != 1 {
		t.Errorf("scene1 updates = %d, want 1", scene1.updates)
	}
	if !scene2.updateCalled || scene2.entered != 1 {
		t.Error("scene2 should be entered and updated")
	}
}
