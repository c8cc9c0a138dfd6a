package systems

import (
	"image/color"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonRenderSystem 按钮渲染系统
// 负责渲染所有按钮实体：纯色背景、边框、居中文字
type ButtonRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewButtonRenderSystem 创建按钮渲染系统
func NewButtonRenderSystem(em *ecs.EntityManager) *ButtonRenderSystem {
	return &ButtonRenderSystem{
		entityManager: em,
	}
}

// Draw 渲染所有按钮
func (s *ButtonRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		s.drawButtonBackground(screen, button)
		s.drawButtonText(screen, button)
	}
}

// buttonFill 按状态选择填充色
func buttonFill(button *components.ButtonComponent) color.RGBA {
	switch button.State {
	case components.UIHovered:
		return button.HoverColor.RGBA()
	case components.UIClicked:
		return config.ButtonPressedColor.RGBA()
	case components.UIDisabled:
		return config.ButtonDisabledColor.RGBA()
	default:
		return button.FillColor.RGBA()
	}
}

// drawButtonBackground 渲染按钮背景和边框
func (s *ButtonRenderSystem) drawButtonBackground(screen *ebiten.Image, button *components.ButtonComponent) {
	x, y := float32(button.X), float32(button.Y)
	w, h := float32(button.Width), float32(button.Height)

	vector.DrawFilledRect(screen, x, y, w, h, buttonFill(button), true)

	borderWidth := float32(2)
	if button.State == components.UIHovered {
		borderWidth = 3
	}
	vector.StrokeRect(screen, x, y, w, h, borderWidth, button.BorderColor.RGBA(), true)
}

// drawButtonText 渲染按钮文字（居中，带阴影）
func (s *ButtonRenderSystem) drawButtonText(screen *ebiten.Image, button *components.ButtonComponent) {
	if button.Text == "" || button.Font == nil {
		return
	}

	// 计算按钮中心点
	centerX := button.X + button.Width/2
	centerY := button.Y + button.Height/2

	// 阴影偏移量
	shadowOffset := 2.0

	// 为了让"文字+阴影"整体看起来垂直居中，将主文字向上偏移阴影的一半
	visualCenterOffsetY := -shadowOffset / 2.0

	// 1. 先绘制阴影（深色文字，偏移位置）
	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(centerX+shadowOffset, centerY+shadowOffset+visualCenterOffsetY)
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 180})
	text.Draw(screen, button.Text, button.Font, shadowOp)

	// 2. 再绘制主文字
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(centerX, centerY+visualCenterOffsetY)
	op.ColorScale.ScaleWithColor(button.TextColor.RGBA())
	text.Draw(screen, button.Text, button.Font, op)
}
