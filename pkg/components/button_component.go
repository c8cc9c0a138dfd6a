package components

import (
	"github.com/decker502/roadrunner/pkg/types"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// UIState represents the current state of a UI element (e.g., button).
type UIState int

const (
	// UINormal indicates the UI element is in its default state.
	UINormal UIState = iota
	// UIHovered indicates the mouse cursor is hovering over the UI element.
	UIHovered
	// UIClicked indicates the UI element is being clicked.
	UIClicked
	// UIDisabled indicates the UI element is disabled and cannot be interacted with.
	UIDisabled
)

// ButtonComponent 按钮组件（ECS 架构）
// 包含按钮的所有数据：位置、文字、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 纯色矩形按钮，文字居中
//   - 支持点击回调
type ButtonComponent struct {
	// ===== 位置与尺寸（屏幕坐标）=====
	X      float64
	Y      float64
	Width  float64
	Height float64

	// ===== 按钮文字 =====
	// Text 按钮上显示的文字
	Text string
	// Font 文字字体
	Font *text.GoTextFace
	// TextColor 文字颜色
	TextColor types.Color

	// ===== 外观 =====
	// FillColor 正常状态填充色
	FillColor types.Color
	// HoverColor 悬停状态填充色
	HoverColor types.Color
	// BorderColor 边框颜色
	BorderColor types.Color

	// ===== 按钮状态 =====
	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// ===== 点击回调 =====
	// OnClick 点击回调函数
	OnClick func()
}
