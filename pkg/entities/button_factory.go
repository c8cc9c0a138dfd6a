package entities

import (
	"fmt"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// FontLoader 按字号加载字体（由 game.ResourceManager 实现）
type FontLoader interface {
	LoadFont(size float64) (*text.GoTextFace, error)
}

// NewButton 创建矩形按钮实体
//
// 参数：
//   - em: 实体管理器
//   - fonts: 字体加载器
//   - x, y, width, height: 按钮矩形（屏幕坐标）
//   - label: 按钮文字
//   - fontSize: 文字大小
//   - onClick: 点击回调函数（可为 nil，此时按钮只作展示）
//
// 返回：
//   - 按钮实体ID
//   - 错误信息
func NewButton(
	em *ecs.EntityManager,
	fonts FontLoader,
	x, y, width, height float64,
	label string,
	fontSize float64,
	onClick func(),
) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("button %q: invalid size %gx%g", label, width, height)
	}

	// 加载字体
	var font *text.GoTextFace
	if fonts != nil {
		f, err := fonts.LoadFont(fontSize)
		if err != nil {
			return 0, fmt.Errorf("button %q: %w", label, err)
		}
		font = f
	}

	// 创建按钮实体
	entity := em.CreateEntity()

	// 添加按钮组件
	ecs.AddComponent(em, entity, &components.ButtonComponent{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Text:        label,
		Font:        font,
		TextColor:   config.ButtonTextColor,
		FillColor:   config.ButtonFillColor,
		HoverColor:  config.ButtonHoverColor,
		BorderColor: config.ButtonBorderColor,
		State:       components.UINormal,
		Enabled:     true,
		OnClick:     onClick,
	})

	return entity, nil
}

// NewMenuButton 创建主菜单按钮（位置由 config.MenuButtonRect 决定）
func NewMenuButton(em *ecs.EntityManager, fonts FontLoader, button config.MenuButtonType, onClick func()) (ecs.EntityID, error) {
	x, y, w, h := config.MenuButtonRect(button)
	return NewButton(em, fonts, x, y, w, h, config.MenuButtonLabels[button], config.MenuButtonFontSize, onClick)
}

// NewBackButton 创建游戏场景左上角的"返回菜单"按钮
func NewBackButton(em *ecs.EntityManager, fonts FontLoader, onClick func()) (ecs.EntityID, error) {
	return NewButton(em, fonts,
		config.BackButtonX, config.BackButtonY, config.BackButtonWidth, config.BackButtonHeight,
		"Back to menu", config.MenuButtonFontSize*0.8, onClick)
}
