// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerState 存储当前帧的指针输入状态
// 统一鼠标和触摸输入，系统只依赖这个快照，便于测试
type PointerState struct {
	// X, Y 指针位置（屏幕坐标）
	X, Y int
	// Pressed 主指针是否按下（鼠标左键或任一触摸）
	Pressed bool
	// JustPressed 本帧刚按下
	JustPressed bool
	// JustReleased 本帧刚释放
	JustReleased bool
	// WheelY 滚轮纵向增量（向上为正）
	WheelY float64
	// IsTouch 是否为触摸输入
	IsTouch bool
}

// PointerSource 返回当前帧的指针状态
type PointerSource func() PointerState

// 保存最后一次触摸位置（用于触摸释放时获取位置）
var lastTouchX, lastTouchY int

// ReadPointer 读取当前帧的指针状态
// 同时支持鼠标和触摸输入，优先检测触摸
func ReadPointer() PointerState {
	state := PointerState{}
	_, state.WheelY = ebiten.Wheel()

	// 首先检查触摸输入（移动设备）
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		state.X, state.Y = ebiten.TouchPosition(touchIDs[0])
		lastTouchX, lastTouchY = state.X, state.Y
		state.Pressed = true
		state.IsTouch = true
		state.JustPressed = len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
		return state
	}

	// 触摸刚释放时使用保存的最后触摸位置
	if len(inpututil.AppendJustReleasedTouchIDs(nil)) > 0 {
		state.X, state.Y = lastTouchX, lastTouchY
		state.JustReleased = true
		state.IsTouch = true
		return state
	}

	// 其次检查鼠标输入（桌面设备）
	state.X, state.Y = ebiten.CursorPosition()
	state.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	state.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	return state
}

// IsPointerJustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func IsPointerJustReleased() (bool, int, int) {
	s := ReadPointer()
	return s.JustReleased, s.X, s.Y
}

// PointInRect 判断点是否落在矩形内（含边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// ============================================================================
// 拖拽跟踪 - 用于轨道相机的拖动旋转
// ============================================================================

// DragTracker 根据逐帧的指针状态计算拖动增量
type DragTracker struct {
	dragging     bool
	lastX, lastY int
}

// Update 输入一帧的指针状态，返回本帧的拖动增量
// 仅在按下状态持续时产生增量，按下的第一帧只记录起点
func (d *DragTracker) Update(s PointerState) (dx, dy int, dragging bool) {
	if !s.Pressed {
		d.dragging = false
		return 0, 0, false
	}
	if !d.dragging {
		d.dragging = true
		d.lastX, d.lastY = s.X, s.Y
		return 0, 0, true
	}
	dx, dy = s.X-d.lastX, s.Y-d.lastY
	d.lastX, d.lastY = s.X, s.Y
	return dx, dy, true
}

// Reset 放弃当前拖动
func (d *DragTracker) Reset() {
	d.dragging = false
}

// IsDragging 是否正在拖动
func (d *DragTracker) IsDragging() bool {
	return d.dragging
}
