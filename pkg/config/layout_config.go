package config

// 布局配置常量
// 本文件定义了窗口尺寸以及游戏场景 HUD 元素的位置

const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1024

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 640

	// GameWindowTitle 窗口标题
	GameWindowTitle = "Roadrunner - Off-road Simulator"

	// BackButtonX "返回菜单"按钮左上角 X 坐标
	BackButtonX = 20.0

	// BackButtonY "返回菜单"按钮左上角 Y 坐标
	BackButtonY = 20.0

	// BackButtonWidth "返回菜单"按钮宽度
	BackButtonWidth = 180.0

	// BackButtonHeight "返回菜单"按钮高度
	BackButtonHeight = 40.0

	// HUDHintY 操作提示文字的 Y 坐标（距底部）
	HUDHintY = GameWindowHeight - 24.0
)
