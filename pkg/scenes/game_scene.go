package scenes

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/entities"
	"github.com/decker502/roadrunner/pkg/game"
	"github.com/decker502/roadrunner/pkg/systems"
	"github.com/decker502/roadrunner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameSceneOptions 可注入的依赖，零值使用真实实现
type GameSceneOptions struct {
	// Clock 调度模拟加载计时器，默认 game.SystemClock
	Clock game.Clock
	// Pointer 指针输入，默认读取真实鼠标/触摸
	Pointer utils.PointerSource
}

// GameScene is the GAME view. Each mount owns its own entity manager and
// SceneLifecycle: it shows the loading screen until the readiness signal
// fires, then composes the 3D scene and hands it to the render system.
// Leaving the view cancels a pending signal and tears the scene down.
type GameScene struct {
	resourceManager *game.ResourceManager
	navigator       ViewNavigator
	sceneConfig     config.SceneConfig
	clock           game.Clock

	entityManager      *ecs.EntityManager
	lifecycle          *game.SceneLifecycle
	composer           *systems.SceneComposer
	composed           *systems.ComposedScene
	composeErr         error
	renderSystem       *systems.RenderSystem
	orbitSystem        *systems.OrbitControlSystem
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	backButton         ecs.EntityID

	titleFont *text.GoTextFace
	hudFace   text.Face

	loadElapsed float64 // LOADING 阶段已经过的时间（秒），只用于进度条动画
}

// NewGameScene creates the game view for one mount.
func NewGameScene(rm *game.ResourceManager, nav ViewNavigator, cfg config.SceneConfig, opts GameSceneOptions) *GameScene {
	if opts.Clock == nil {
		opts.Clock = game.SystemClock{}
	}

	em := ecs.NewEntityManager()
	renderSystem := systems.NewRenderSystem()
	scene := &GameScene{
		resourceManager:    rm,
		navigator:          nav,
		sceneConfig:        cfg,
		clock:              opts.Clock,
		entityManager:      em,
		composer:           systems.NewSceneComposer(em, cfg, renderSystem),
		renderSystem:       renderSystem,
		buttonSystem:       systems.NewButtonSystem(em, opts.Pointer),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
		backButton:         ecs.InvalidEntity,
	}
	// 从按钮上开始的拖拽不旋转相机
	scene.orbitSystem = systems.NewOrbitControlSystem(em, opts.Pointer, scene.buttonSystem.HitTest)
	scene.lifecycle = game.NewSceneLifecycle(scene.onReady, scene.onFailed)

	if rm != nil {
		if f, err := rm.LoadFont(config.LoadingTitleFontSize); err != nil {
			log.Printf("[GameScene] Warning: Failed to load title font: %v", err)
		} else {
			scene.titleFont = f
		}
		scene.hudFace = rm.HUDFace()
	}
	return scene
}

// OnEnter starts the LOADING phase.
func (s *GameScene) OnEnter() {
	s.loadElapsed = 0
	s.composeErr = nil
	s.lifecycle.Start(s.readiness())
}

// readiness 选择就绪信号：固定时长的模拟加载，或真实的资源预加载
func (s *GameScene) readiness() game.Readiness {
	if s.sceneConfig.Loading.UseAssetReadiness && s.resourceManager != nil {
		ids := make([]string, 0, len(s.sceneConfig.Vehicles))
		for _, v := range s.sceneConfig.Vehicles {
			ids = append(ids, v.Asset)
		}
		log.Printf("[GameScene] 等待资源预加载: %v", ids)
		return s.resourceManager.Preload(context.Background(), ids...)
	}
	log.Printf("[GameScene] 模拟加载 %v", s.sceneConfig.Loading.Delay())
	return game.AfterDelay(s.clock, s.sceneConfig.Loading.Delay())
}

// onReady 由 SceneLifecycle.Poll 在游戏循环中调用，此时才组合 3D 场景
func (s *GameScene) onReady() {
	var assets systems.VehicleSource
	if s.resourceManager != nil {
		assets = s.resourceManager
	}
	composed, err := s.composer.Compose(assets, s.sceneConfig.Vehicles)
	if err != nil {
		s.composeErr = err
		log.Printf("[GameScene] 场景组合失败: %v", err)
	} else {
		s.composed = composed
		log.Printf("[GameScene] 场景就绪: %d 个车辆, %d 个实体", composed.VehicleCount(), len(composed.Entities()))
	}
	s.createBackButton()
}

func (s *GameScene) onFailed(err error) {
	log.Printf("[GameScene] 资源加载失败: %v", err)
	s.createBackButton()
}

func (s *GameScene) createBackButton() {
	if s.backButton != ecs.InvalidEntity {
		return
	}
	var fonts entities.FontLoader
	if s.resourceManager != nil {
		fonts = s.resourceManager
	}
	id, err := entities.NewBackButton(s.entityManager, fonts, s.onBackClicked)
	if err != nil {
		log.Printf("[GameScene] Warning: Failed to create back button: %v", err)
		return
	}
	s.backButton = id
}

func (s *GameScene) onBackClicked() {
	log.Printf("[GameScene] Back to menu clicked")
	if s.navigator != nil {
		s.navigator.GoTo(game.ViewMenu)
	}
}

// OnExit cancels a pending readiness signal and tears the 3D scene down.
func (s *GameScene) OnExit() {
	s.lifecycle.Stop()
	if s.composed != nil {
		s.composed.Teardown()
	}
	if s.backButton != ecs.InvalidEntity {
		s.entityManager.DestroyEntity(s.backButton)
		s.entityManager.RemoveMarkedEntities()
		s.backButton = ecs.InvalidEntity
	}
	log.Printf("[GameScene] 退出游戏视图 (state=%s)", s.lifecycle.State())
}

// Update advances the lifecycle and, once ready, the interactive systems.
func (s *GameScene) Update(deltaTime float64) {
	if s.lifecycle.State() == game.LoadStateLoading {
		s.loadElapsed += deltaTime
	}
	s.lifecycle.Poll()

	switch s.lifecycle.State() {
	case game.LoadStateReady:
		if s.buttonSystem.Update(deltaTime) {
			return
		}
		if s.composed != nil {
			s.orbitSystem.Update(deltaTime)
			s.renderSystem.Update(deltaTime)
		}
	case game.LoadStateFailed:
		s.buttonSystem.Update(deltaTime)
	}
}

// Draw renders the loading screen, the 3D view or the error screen.
func (s *GameScene) Draw(screen *ebiten.Image) {
	switch s.lifecycle.State() {
	case game.LoadStateLoading:
		s.drawLoading(screen)
	case game.LoadStateReady:
		if s.composeErr != nil {
			s.drawError(screen, s.composeErr)
			break
		}
		s.renderSystem.Draw(screen)
		s.buttonRenderSystem.Draw(screen)
		if s.hudFace != nil {
			hint := config.HUDHintText
			if utils.IsMobile() {
				hint = config.HUDHintTextMobile
			}
			drawCenteredText(screen, hint, s.hudFace,
				float64(config.GameWindowWidth)/2, config.HUDHintY, config.HUDTextColor, 1)
		}
	case game.LoadStateFailed:
		s.drawError(screen, s.lifecycle.Err())
	}
}

func (s *GameScene) drawLoading(screen *ebiten.Image) {
	screen.Fill(config.LoadingBackgroundColor.RGBA())
	cx := float64(config.GameWindowWidth) / 2
	drawCenteredText(screen, config.LoadingTitle, s.titleFont, cx, float64(config.GameWindowHeight)/2-24, config.TitleColor, 1)

	barX := (float64(config.GameWindowWidth) - config.LoadingBarWidth) / 2
	drawProgressBar(screen, barX, config.LoadingBarY, config.LoadingBarWidth, config.LoadingBarHeight,
		s.Progress(), config.LoadingBarTrackColor, config.LoadingBarFillColor)
}

func (s *GameScene) drawError(screen *ebiten.Image, err error) {
	screen.Fill(config.LoadingBackgroundColor.RGBA())
	msg := "Failed to load the scene"
	if err != nil {
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	var face text.Face
	switch {
	case s.hudFace != nil:
		face = s.hudFace
	case s.titleFont != nil:
		face = s.titleFont
	}
	if face != nil {
		// 错误信息可能很长（包含资源路径），按屏幕宽度换行后竖直居中
		lines := utils.WrapText(msg, face, float64(config.GameWindowWidth)-120)
		m := face.Metrics()
		lineHeight := m.HAscent + m.HDescent + m.HLineGap
		y := float64(config.GameWindowHeight)/2 - lineHeight*float64(len(lines)-1)/2
		for i, line := range lines {
			drawCenteredText(screen, line, face, float64(config.GameWindowWidth)/2, y+float64(i)*lineHeight,
				config.ErrorTextColor, 1)
		}
	}
	s.buttonRenderSystem.Draw(screen)
}

// Progress returns the loading bar fill in [0, 1]. A fixed delay animates
// towards 1; a real asset load approaches LoadingBarMaxBeforeReady until
// the signal arrives.
func (s *GameScene) Progress() float64 {
	if s.lifecycle.State() != game.LoadStateLoading {
		return 1
	}
	if s.sceneConfig.Loading.UseAssetReadiness {
		return config.LoadingBarMaxBeforeReady * (1 - math.Exp(-2*s.loadElapsed))
	}
	delay := s.sceneConfig.Loading.Delay()
	if delay <= 0 {
		return 1
	}
	return utils.EaseOutCubic(utils.Clamp01(s.loadElapsed / delay.Seconds()))
}

// State returns the load state of this mount.
func (s *GameScene) State() game.LoadState {
	return s.lifecycle.State()
}

// Composed returns the composed scene once ready (nil before).
func (s *GameScene) Composed() *systems.ComposedScene {
	return s.composed
}

// ComposeErr returns the error of a failed composition.
func (s *GameScene) ComposeErr() error {
	return s.composeErr
}

// EntityManager exposes the entities of this mount.
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Renderer returns the render system the composer mounts into.
func (s *GameScene) Renderer() *systems.RenderSystem {
	return s.renderSystem
}

// BackButton returns the back-button entity (InvalidEntity before ready).
func (s *GameScene) BackButton() ecs.EntityID {
	return s.backButton
}
