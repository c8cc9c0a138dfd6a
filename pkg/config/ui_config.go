package config

import "github.com/decker502/roadrunner/pkg/types"

// UI 颜色配置
// 菜单、加载界面和 HUD 按钮共用

var (
	// ButtonFillColor 按钮正常状态填充色
	ButtonFillColor = types.MustParseColor("#2e3b2a")
	// ButtonHoverColor 按钮悬停状态填充色
	ButtonHoverColor = types.MustParseColor("#4a7023")
	// ButtonPressedColor 按钮按下状态填充色
	ButtonPressedColor = types.MustParseColor("#24301f")
	// ButtonBorderColor 按钮边框
	ButtonBorderColor = types.MustParseColor("#d9c27e")
	// ButtonTextColor 按钮文字颜色
	ButtonTextColor = types.MustParseColor("#f5f0e1")
	// ButtonDisabledColor 禁用按钮的填充色
	ButtonDisabledColor = types.MustParseColor("#55555580")

	// MenuBackgroundTop/MenuBackgroundBottom 菜单背景的竖直渐变
	MenuBackgroundTop    = types.MustParseColor("#1f2a44")
	MenuBackgroundBottom = types.MustParseColor("#87ceeb")

	// TitleColor 标题文字颜色
	TitleColor = types.MustParseColor("#fff3c4")
	// SubtitleColor 副标题文字颜色
	SubtitleColor = types.MustParseColor("#e0e6ee")

	// LoadingBackgroundColor 加载界面背景
	LoadingBackgroundColor = types.MustParseColor("#10141c")
	// LoadingBarTrackColor 进度条底色
	LoadingBarTrackColor = types.MustParseColor("#2a3140")
	// LoadingBarFillColor 进度条填充
	LoadingBarFillColor = types.MustParseColor("#f4a261")
	// ErrorTextColor 加载失败提示
	ErrorTextColor = types.MustParseColor("#ff6b6b")
	// HUDTextColor 操作提示文字
	HUDTextColor = types.MustParseColor("#f0f0f0")
)

const (
	// HUDHintText 游戏场景底部的操作提示
	HUDHintText = "Drag to orbit, scroll to zoom, F11 toggles fullscreen"
	// HUDHintTextMobile 移动端没有滚轮和 F11
	HUDHintTextMobile = "Drag to orbit the camera"
)
