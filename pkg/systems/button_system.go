package systems

import (
	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//
// 鼠标和触摸输入统一通过 utils.PointerState 读取
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	pointer       utils.PointerSource
}

// NewButtonSystem 创建按钮交互系统
// pointer 为 nil 时读取真实输入
func NewButtonSystem(em *ecs.EntityManager, pointer utils.PointerSource) *ButtonSystem {
	if pointer == nil {
		pointer = utils.ReadPointer
	}
	return &ButtonSystem{
		entityManager: em,
		pointer:       pointer,
	}
}

// Update 更新按钮交互状态
// 返回本帧是否有按钮被点击（调用方据此避免同一次点击穿透到 3D 视图）
func (s *ButtonSystem) Update(deltaTime float64) bool {
	p := s.pointer()
	px, py := float64(p.X), float64(p.Y)
	clicked := false

	// 查询所有按钮实体
	entities := ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager)

	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)

		// 禁用状态不响应交互
		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		if !utils.PointInRect(px, py, button.X, button.Y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case p.JustReleased:
			// 释放瞬间触发回调
			if button.OnClick != nil {
				button.OnClick()
			}
			clicked = true
			button.State = components.UIHovered
		case p.Pressed:
			button.State = components.UIClicked
		case p.IsTouch:
			// 触摸没有悬停
			button.State = components.UINormal
		default:
			button.State = components.UIHovered
		}
	}
	return clicked
}

// HitTest 判断屏幕坐标是否落在任一启用的按钮上
func (s *ButtonSystem) HitTest(x, y int) bool {
	for _, entityID := range ecs.GetEntitiesWith1[*components.ButtonComponent](s.entityManager) {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		if button.Enabled && utils.PointInRect(float64(x), float64(y), button.X, button.Y, button.Width, button.Height) {
			return true
		}
	}
	return false
}
