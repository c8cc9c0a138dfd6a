package game

import (
	"log"
)

// LoadState is the readiness state of one game-view mount.
type LoadState int

const (
	// LoadStateLoading 资源尚未就绪，显示加载界面
	LoadStateLoading LoadState = iota
	// LoadStateReady 资源就绪，场景已组合
	LoadStateReady
	// LoadStateFailed 真实资源加载失败
	LoadStateFailed
)

// String returns the state name.
func (s LoadState) String() string {
	switch s {
	case LoadStateLoading:
		return "LOADING"
	case LoadStateReady:
		return "READY"
	case LoadStateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// SceneLifecycle owns the LOADING -> READY transition of one game-view mount.
//
// The readiness future may resolve on any goroutine, but the transition and
// the owner's callbacks only ever happen inside Poll, which the owning scene
// calls from the game loop. Stop cancels the future; after Stop nothing is
// delivered, so a fire-after-teardown cannot be observed.
type SceneLifecycle struct {
	state   LoadState
	source  Readiness
	running bool
	err     error

	onReady  func()
	onFailed func(err error)
}

// NewSceneLifecycle creates a controller. onReady runs once on the game loop
// when the scene becomes ready; onFailed (optional) runs once when the
// readiness future reports an error.
func NewSceneLifecycle(onReady func(), onFailed func(err error)) *SceneLifecycle {
	return &SceneLifecycle{
		state:    LoadStateLoading,
		onReady:  onReady,
		onFailed: onFailed,
	}
}

// Start enters LOADING and attaches src. A previously attached future is
// cancelled first so at most one signal is ever pending.
func (c *SceneLifecycle) Start(src Readiness) {
	if c.source != nil {
		c.source.Cancel()
	}
	c.state = LoadStateLoading
	c.err = nil
	c.source = src
	c.running = src != nil
	log.Printf("[Lifecycle] start: state=%s", c.state)
}

// Poll delivers a resolved future. It reports whether a transition happened.
func (c *SceneLifecycle) Poll() bool {
	if !c.running || c.state != LoadStateLoading {
		return false
	}
	select {
	case <-c.source.Done():
	default:
		return false
	}

	err := c.source.Err()
	c.source = nil
	c.running = false

	if err != nil {
		c.state = LoadStateFailed
		c.err = err
		log.Printf("[Lifecycle] LOADING -> FAILED: %v", err)
		if c.onFailed != nil {
			c.onFailed(err)
		}
		return true
	}

	c.state = LoadStateReady
	log.Printf("[Lifecycle] LOADING -> READY")
	if c.onReady != nil {
		c.onReady()
	}
	return true
}

// Stop tears the controller down: the pending future (if any) is cancelled
// and discarded. Calling Stop more than once is a no-op.
func (c *SceneLifecycle) Stop() {
	if c.source != nil {
		c.source.Cancel()
		c.source = nil
	}
	if c.running {
		log.Printf("[Lifecycle] stop while %s", c.state)
	}
	c.running = false
}

// State returns the current state.
func (c *SceneLifecycle) State() LoadState {
	return c.state
}

// Pending reports whether a readiness future is still attached.
func (c *SceneLifecycle) Pending() bool {
	return c.source != nil
}

// Running reports whether the controller is started and not torn down.
func (c *SceneLifecycle) Running() bool {
	return c.running
}

// Err returns the load error once the state is LoadStateFailed.
func (c *SceneLifecycle) Err() error {
	return c.err
}
