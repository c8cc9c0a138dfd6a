package config

import "time"

// Loading 配置常量

const (
	// SimulatedLoadDelay 模拟资源加载的时长
	// 真实资源加载完成时由 ResourceManager.Preload 的结果替代
	SimulatedLoadDelay = 1500 * time.Millisecond

	// LoadingTitle 加载界面标题
	LoadingTitle = "Loading game..."

	// LoadingTitleFontSize 加载界面标题字号
	LoadingTitleFontSize float64 = 32

	// LoadingBarWidth 进度条宽度（像素）
	LoadingBarWidth float64 = 420

	// LoadingBarHeight 进度条高度（像素）
	LoadingBarHeight float64 = 18

	// LoadingBarY 进度条 Y 坐标
	LoadingBarY float64 = GameWindowHeight/2 + 24

	// LoadingBarMaxBeforeReady 真实加载（无固定时长）时进度条停留的最大比例
	LoadingBarMaxBeforeReady float64 = 0.9
)
