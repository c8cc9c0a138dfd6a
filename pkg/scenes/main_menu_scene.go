package scenes

import (
	"log"

	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/entities"
	"github.com/decker502/roadrunner/pkg/game"
	"github.com/decker502/roadrunner/pkg/systems"
	"github.com/decker502/roadrunner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// menuFadeInDuration 标题淡入时长（秒）
const menuFadeInDuration = 0.8

// MainMenuScene is the MENU view: title, subtitle and the menu buttons.
// "Start game" navigates to the game view; "Options" is a placeholder.
type MainMenuScene struct {
	resourceManager *game.ResourceManager
	navigator       ViewNavigator

	entityManager      *ecs.EntityManager
	buttonSystem       *systems.ButtonSystem
	buttonRenderSystem *systems.ButtonRenderSystem
	buttons            map[config.MenuButtonType]ecs.EntityID

	titleFont    *text.GoTextFace
	subtitleFont *text.GoTextFace
	hudFace      text.Face

	elapsedTime float64
}

// NewMainMenuScene creates the main menu.
// pointer 为 nil 时读取真实的鼠标/触摸输入
func NewMainMenuScene(rm *game.ResourceManager, nav ViewNavigator, pointer utils.PointerSource) *MainMenuScene {
	em := ecs.NewEntityManager()
	scene := &MainMenuScene{
		resourceManager:    rm,
		navigator:          nav,
		entityManager:      em,
		buttonSystem:       systems.NewButtonSystem(em, pointer),
		buttonRenderSystem: systems.NewButtonRenderSystem(em),
		buttons:            make(map[config.MenuButtonType]ecs.EntityID),
	}

	var fonts entities.FontLoader
	if rm != nil {
		fonts = rm
		if f, err := rm.LoadFont(config.MenuTitleFontSize); err != nil {
			log.Printf("[MainMenuScene] Warning: Failed to load title font: %v", err)
		} else {
			scene.titleFont = f
		}
		if f, err := rm.LoadFont(config.MenuSubtitleFontSize); err != nil {
			log.Printf("[MainMenuScene] Warning: Failed to load subtitle font: %v", err)
		} else {
			scene.subtitleFont = f
		}
		scene.hudFace = rm.HUDFace()
	}

	for _, b := range []struct {
		kind    config.MenuButtonType
		onClick func()
	}{
		{config.MenuButtonStart, scene.onStartClicked},
		{config.MenuButtonOptions, scene.onOptionsClicked},
	} {
		id, err := entities.NewMenuButton(em, fonts, b.kind, b.onClick)
		if err != nil {
			log.Printf("[MainMenuScene] Warning: Failed to create button %q: %v", config.MenuButtonLabels[b.kind], err)
			continue
		}
		scene.buttons[b.kind] = id
	}

	return scene
}

func (m *MainMenuScene) onStartClicked() {
	log.Printf("[MainMenuScene] Start game clicked")
	if m.navigator != nil {
		m.navigator.GoTo(game.ViewGame)
	}
}

// Options 没有对应的视图，点击只记录日志
func (m *MainMenuScene) onOptionsClicked() {
	log.Printf("[MainMenuScene] Options clicked (not available)")
}

// OnEnter 重置淡入动画
func (m *MainMenuScene) OnEnter() {
	m.elapsedTime = 0
}

// OnExit implements game.Lifecycle.
func (m *MainMenuScene) OnExit() {}

// Update handles button interaction.
func (m *MainMenuScene) Update(deltaTime float64) {
	m.elapsedTime += deltaTime
	m.buttonSystem.Update(deltaTime)
}

// Draw renders the menu.
func (m *MainMenuScene) Draw(screen *ebiten.Image) {
	drawVerticalGradient(screen, config.MenuBackgroundTop, config.MenuBackgroundBottom, 32)

	alpha := utils.EaseInOutCubic(utils.Clamp01(m.elapsedTime / menuFadeInDuration))
	cx := float64(config.GameWindowWidth) / 2
	drawCenteredText(screen, config.MenuTitle, m.titleFont, cx, config.MenuTitleY, config.TitleColor, alpha)
	drawCenteredText(screen, config.MenuSubtitle, m.subtitleFont, cx, config.MenuSubtitleY, config.SubtitleColor, alpha)

	m.buttonRenderSystem.Draw(screen)

	if m.hudFace != nil && !utils.IsMobile() {
		drawCenteredText(screen, "F11 toggles fullscreen", m.hudFace, cx, config.HUDHintY, config.HUDTextColor, alpha)
	}
}

// ButtonEntity returns the entity of a menu button.
func (m *MainMenuScene) ButtonEntity(kind config.MenuButtonType) (ecs.EntityID, bool) {
	id, ok := m.buttons[kind]
	return id, ok
}
