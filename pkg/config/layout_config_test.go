package config

import (
	"testing"
)

// TestBackButtonInsideWindow "返回菜单"按钮必须完整位于逻辑屏幕内，且不与底部提示重叠
func TestBackButtonInsideWindow(t *testing.T) {
	if BackButtonX < 0 || BackButtonY < 0 {
		t.Fatalf("back button origin (%v, %v) is off screen", BackButtonX, BackButtonY)
	}
	if BackButtonX+BackButtonWidth > GameWindowWidth {
		t.Errorf("back button right edge %v > window width %d", BackButtonX+BackButtonWidth, GameWindowWidth)
	}
	if BackButtonY+BackButtonHeight >= HUDHintY {
		t.Errorf("back button bottom %v overlaps HUD hint at %v", BackButtonY+BackButtonHeight, HUDHintY)
	}
}

// TestLoadingBarFits 进度条水平居中后不超出屏幕
func TestLoadingBarFits(t *testing.T) {
	if LoadingBarWidth <= 0 || LoadingBarWidth > GameWindowWidth {
		t.Errorf("LoadingBarWidth = %v", LoadingBarWidth)
	}
	if LoadingBarY+LoadingBarHeight > GameWindowHeight {
		t.Errorf("loading bar bottom %v is below the window", LoadingBarY+LoadingBarHeight)
	}
	if LoadingBarMaxBeforeReady <= 0 || LoadingBarMaxBeforeReady >= 1 {
		t.Errorf("LoadingBarMaxBeforeReady = %v, want (0, 1)", LoadingBarMaxBeforeReady)
	}
}
