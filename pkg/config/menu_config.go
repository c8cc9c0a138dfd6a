package config

// 主菜单配置

const (
	// MenuTitle 游戏标题
	MenuTitle = "Roadrunner"

	// MenuSubtitle 副标题
	MenuSubtitle = "Off-road vehicle simulator"

	// MenuTitleFontSize 标题字号
	MenuTitleFontSize float64 = 64

	// MenuSubtitleFontSize 副标题字号
	MenuSubtitleFontSize float64 = 24

	// MenuButtonFontSize 按钮文字字号
	MenuButtonFontSize float64 = 22

	// MenuTitleY 标题基线 Y 坐标
	MenuTitleY float64 = 150

	// MenuSubtitleY 副标题 Y 坐标
	MenuSubtitleY float64 = 230

	// MenuButtonWidth 菜单按钮宽度
	MenuButtonWidth float64 = 260

	// MenuButtonHeight 菜单按钮高度
	MenuButtonHeight float64 = 54

	// MenuButtonFirstY 第一个按钮的 Y 坐标
	MenuButtonFirstY float64 = 320

	// MenuButtonSpacing 按钮垂直间距
	MenuButtonSpacing float64 = 76
)

// MenuButtonType 主菜单按钮类型
type MenuButtonType int

const (
	// MenuButtonStart 开始游戏
	MenuButtonStart MenuButtonType = iota
	// MenuButtonOptions 设置（暂未实现，仅占位）
	MenuButtonOptions
)

// MenuButtonLabels 按钮文字，按 MenuButtonType 索引
var MenuButtonLabels = map[MenuButtonType]string{
	MenuButtonStart:   "Start game",
	MenuButtonOptions: "Options",
}

// MenuButtonRect 返回指定菜单按钮的矩形（水平居中）
func MenuButtonRect(button MenuButtonType) (x, y, w, h float64) {
	x = (GameWindowWidth - MenuButtonWidth) / 2
	y = MenuButtonFirstY + float64(button)*MenuButtonSpacing
	return x, y, MenuButtonWidth, MenuButtonHeight
}
