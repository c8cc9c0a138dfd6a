package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game view (main menu, game scene).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是可选接口，场景切换时由 SceneManager 调用
//
// OnEnter 在场景成为活动场景后调用；OnExit 在场景被替换或程序退出时调用，
// 场景必须在 OnExit 中释放它在 OnEnter 中获取的一切（计时器、加载任务、场景图）。
type Lifecycle interface {
	OnEnter()
	OnExit()
}
