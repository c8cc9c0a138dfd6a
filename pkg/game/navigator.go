package game

import (
	"fmt"
	"log"
)

// ViewState names a top-level view of the application.
type ViewState int

const (
	// ViewMenu 主菜单
	ViewMenu ViewState = iota
	// ViewGame 游戏场景
	ViewGame
)

// String returns the route-like name of the view.
func (v ViewState) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewGame:
		return "game"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

// ViewFactory builds a fresh scene for a view each time it is entered.
type ViewFactory func() Scene

// Navigator maps views to scenes and switches the SceneManager between them.
// Every GoTo builds a new scene, so per-mount state (the lifecycle controller
// of the game view) never outlives the mount.
type Navigator struct {
	sceneManager *SceneManager
	factories    map[ViewState]ViewFactory
	current      ViewState
	entered      bool

	// pending 在 Update 中调用 GoTo 时延迟到帧末切换
	pending  *ViewState
	inUpdate bool
}

// NewNavigator creates a navigator driving sm.
func NewNavigator(sm *SceneManager) *Navigator {
	return &Navigator{
		sceneManager: sm,
		factories:    make(map[ViewState]ViewFactory),
		current:      ViewMenu,
	}
}

// Register binds a view to its factory.
func (n *Navigator) Register(view ViewState, factory ViewFactory) {
	n.factories[view] = factory
}

// GoTo replaces the rendered view unconditionally. Called from inside a
// scene's Update (button callbacks), the switch is applied once that Update
// returns so the outgoing scene is never torn down mid-frame.
func (n *Navigator) GoTo(view ViewState) {
	if n.inUpdate {
		v := view
		n.pending = &v
		return
	}
	n.switchTo(view)
}

func (n *Navigator) switchTo(view ViewState) {
	factory, ok := n.factories[view]
	if !ok {
		log.Printf("[Navigator] 未注册的视图: %s", view)
		return
	}
	log.Printf("[Navigator] %s -> %s", n.current, view)
	n.current = view
	n.entered = true
	n.sceneManager.SwitchTo(factory())
}

// Current returns the view currently rendered.
func (n *Navigator) Current() ViewState {
	return n.current
}

// Update forwards to the SceneManager and then applies a GoTo requested
// during the frame.
func (n *Navigator) Update(deltaTime float64) {
	n.inUpdate = true
	n.sceneManager.Update(deltaTime)
	n.inUpdate = false

	if n.pending != nil {
		view := *n.pending
		n.pending = nil
		n.switchTo(view)
	}
}
