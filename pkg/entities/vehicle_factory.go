package entities

import (
	"fmt"
	"log"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/model"
	"github.com/go-gl/mathgl/mgl64"
)

// ScenePlacement 车辆实例的摆放参数，创建后不再修改
type ScenePlacement struct {
	Position mgl64.Vec3
	Scale    float64
	// Heading 绕 Y 轴的朝向（度）
	Heading float64
}

// PlaceVehicle 从共享的车辆资源创建一个车辆实例
//
// 参数:
//   - em: 实体管理器
//   - asset: 已加载的车辆资源（只读共享）
//   - placement: 摆放位置与缩放
//
// 返回:
//   - ecs.EntityID: 车辆实体ID
//   - error: asset 为 nil 或未加载时返回包装的 model.ErrAssetNotLoaded
//
// 网格树先深拷贝再应用摆放参数，实例之间、实例与缓存之间不共享任何可变状态。
func PlaceVehicle(em *ecs.EntityManager, asset *model.VehicleAsset, placement ScenePlacement) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	mesh, err := asset.CloneMesh()
	if err != nil {
		return 0, fmt.Errorf("place vehicle: %w", err)
	}

	scale := placement.Scale
	if scale <= 0 {
		scale = 1
	}
	index := len(ecs.GetEntitiesWith1[*components.VehicleComponent](em))

	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, &components.TransformComponent{
		Position: placement.Position,
		Rotation: mgl64.Vec3{0, placement.Heading, 0},
		Scale:    mgl64.Vec3{scale, scale, scale},
	})
	ecs.AddComponent(em, entityID, &components.MeshComponent{Root: mesh})
	ecs.AddComponent(em, entityID, &components.VehicleComponent{
		AssetID: asset.ID,
		Index:   index,
	})
	// 车辆同时投射和接收阴影
	ecs.AddComponent(em, entityID, &components.ShadowComponent{
		CastShadow:    true,
		ReceiveShadow: true,
		Alpha:         config.VehicleShadowAlpha,
	})

	log.Printf("[VehicleFactory] 车辆 #%d (%s) 放置于 %v, scale=%.2f", index, asset.ID, placement.Position, scale)
	return entityID, nil
}
