package components

import "github.com/decker502/roadrunner/pkg/model"

// MeshComponent 实体持有的网格树
// 每个实体持有独立的副本，不与资源缓存或其他实体共享
type MeshComponent struct {
	Root *model.MeshNode
}

// VehicleComponent 车辆实例标记
type VehicleComponent struct {
	// AssetID 来源资源ID
	AssetID string
	// Index 在场景中的摆放序号
	Index int
}
