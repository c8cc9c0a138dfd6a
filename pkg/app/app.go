// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/game"
	"github.com/decker502/roadrunner/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ResourceConfigPath 资源表路径
const ResourceConfigPath = "assets/config/resources.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// SkipMenu 跳过主菜单，直接进入游戏视图
	SkipMenu bool
	// LoadDelay 覆盖模拟加载时长，负数表示使用 data/scene.yaml 中的值
	LoadDelay time.Duration
	// Preload 以真实资源预加载完成作为就绪信号
	Preload bool
	// Clock 调度模拟加载计时器，为 nil 时使用系统时钟
	Clock game.Clock
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	resourceManager          *game.ResourceManager
	sceneManager             *game.SceneManager
	navigator                *game.Navigator
	sceneConfig              config.SceneConfig
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 加载场景配置
	sceneConfig, err := config.LoadSceneConfig(config.SceneConfigPath)
	if err != nil {
		return nil, fmt.Errorf("场景配置加载失败: %w", err)
	}
	if cfg.LoadDelay >= 0 {
		sceneConfig.Loading.DelayMS = int(cfg.LoadDelay / time.Millisecond)
	}
	if cfg.Preload {
		sceneConfig.Loading.UseAssetReadiness = true
	}
	log.Printf("[App] 场景配置: delay=%v, asset readiness=%v, %d 辆车",
		sceneConfig.Loading.Delay(), sceneConfig.Loading.UseAssetReadiness, len(sceneConfig.Vehicles))

	// 创建资源管理器并加载资源表
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 创建场景管理器和导航器，每次进入视图都新建场景
	sceneManager := game.NewSceneManager()
	navigator := game.NewNavigator(sceneManager)
	navigator.Register(game.ViewMenu, func() game.Scene {
		return scenes.NewMainMenuScene(resourceManager, navigator, nil)
	})
	navigator.Register(game.ViewGame, func() game.Scene {
		return scenes.NewGameScene(resourceManager, navigator, sceneConfig, scenes.GameSceneOptions{Clock: cfg.Clock})
	})

	// 根据配置决定启动视图
	if cfg.SkipMenu {
		log.Printf("[App] SkipMenu enabled, entering game view")
		navigator.GoTo(game.ViewGame)
	} else {
		navigator.GoTo(game.ViewMenu)
	}

	return &App{
		resourceManager: resourceManager,
		sceneManager:    sceneManager,
		navigator:       navigator,
		sceneConfig:     sceneConfig,
		verbose:         cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.Step(1.0 / 60.0)
	return nil
}

// Step 推进一帧，不读取键盘（无窗口环境下的工具和测试使用）
func (a *App) Step(deltaTime float64) {
	a.navigator.Update(deltaTime)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Navigator 返回视图导航器
func (a *App) Navigator() *game.Navigator {
	return a.navigator
}

// CurrentScene 返回当前渲染的场景
func (a *App) CurrentScene() game.Scene {
	return a.sceneManager.GetCurrentScene()
}

// SceneConfig 返回生效的场景配置
func (a *App) SceneConfig() config.SceneConfig {
	return a.sceneConfig
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Close 退出当前视图并释放缓存的资源
func (a *App) Close() {
	a.sceneManager.Close()
	a.resourceManager.Release()
	log.Printf("[App] closed")
}
