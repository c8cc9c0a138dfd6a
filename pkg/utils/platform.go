//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 设置环境变量 ROADRUNNER_MOBILE_EMULATE=1 可在桌面上预览移动端的 HUD 提示
func IsMobile() bool {
	return os.Getenv("ROADRUNNER_MOBILE_EMULATE") == "1"
}
