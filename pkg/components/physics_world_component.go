package components

// PhysicsWorldComponent 物理世界占位
// 只记录调试开关，不做刚体模拟
type PhysicsWorldComponent struct {
	Debug bool
}
