package systems

import (
	"fmt"
	"log"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/entities"
	"github.com/decker502/roadrunner/pkg/model"
)

// SceneRenderer 接收组合好的场景图并负责逐帧绘制
type SceneRenderer interface {
	Mount(em *ecs.EntityManager)
	Unmount()
	Mounted() bool
}

// VehicleSource 按资源ID提供已加载的车辆模型（由 game.ResourceManager 实现）
type VehicleSource interface {
	LoadVehicle(resourceID string) (*model.VehicleAsset, error)
}

// SceneComposer 组合就绪后的 3D 场景
//
// 组合顺序固定：背景、雾、环境光、平行光、地面、车辆、背景装饰、相机，
// 最后是物理世界占位。组合结果整体挂载到渲染器，整体卸载。
type SceneComposer struct {
	entityManager *ecs.EntityManager
	config        config.SceneConfig
	renderer      SceneRenderer
}

// NewSceneComposer 创建场景组合器
func NewSceneComposer(em *ecs.EntityManager, cfg config.SceneConfig, renderer SceneRenderer) *SceneComposer {
	return &SceneComposer{
		entityManager: em,
		config:        cfg,
		renderer:      renderer,
	}
}

// Compose 按配置创建场景实体并挂载到渲染器
//
// 任一车辆加载或摆放失败时，已创建的实体全部销毁，渲染器不会被挂载。
func (c *SceneComposer) Compose(assets VehicleSource, placements []config.VehiclePlacement) (*ComposedScene, error) {
	if c.entityManager == nil {
		return nil, fmt.Errorf("compose scene: entity manager cannot be nil")
	}
	em := c.entityManager
	cfg := c.config
	scene := &ComposedScene{
		entityManager: em,
		renderer:      c.renderer,
	}
	track := func(id ecs.EntityID) ecs.EntityID {
		scene.entities = append(scene.entities, id)
		return id
	}
	fail := func(err error) (*ComposedScene, error) {
		scene.destroy()
		return nil, err
	}

	track(entities.NewBackgroundEntity(em, cfg.Environment))
	if id, ok := entities.NewFogEntity(em, cfg.Environment); ok {
		track(id)
	}
	track(entities.NewAmbientLightEntity(em, cfg.Lights.Ambient))
	track(entities.NewDirectionalLightEntity(em, cfg.Lights.Directional))
	scene.ground = track(entities.NewGroundEntity(em, cfg.Ground))

	for i, p := range placements {
		if assets == nil {
			return fail(fmt.Errorf("compose scene: vehicle %d (%s): %w", i, p.Asset, model.ErrAssetNotLoaded))
		}
		asset, err := assets.LoadVehicle(p.Asset)
		if err != nil {
			return fail(fmt.Errorf("compose scene: vehicle %d (%s): %w", i, p.Asset, err))
		}
		id, err := entities.PlaceVehicle(em, asset, entities.ScenePlacement{
			Position: p.Position,
			Scale:    p.Scale,
			Heading:  p.Heading,
		})
		if err != nil {
			return fail(fmt.Errorf("compose scene: vehicle %d (%s): %w", i, p.Asset, err))
		}
		scene.vehicles = append(scene.vehicles, track(id))
	}

	if preset := cfg.Backdrop.Environment; preset != "" {
		id, err := entities.NewEnvironmentEntity(em, preset)
		if err != nil {
			return fail(fmt.Errorf("compose scene: %w", err))
		}
		track(id)
	}
	if stars := cfg.Backdrop.Stars; stars != nil {
		track(entities.NewStarFieldEntity(em, *stars))
	}

	scene.camera = track(entities.NewCameraEntity(em, cfg.Camera, cfg.Orbit))
	track(entities.NewPhysicsWorldEntity(em, cfg.Physics))

	if c.renderer != nil {
		c.renderer.Mount(em)
	}
	log.Printf("[SceneComposer] 场景组合完成: %d 个实体, %d 辆车", len(scene.entities), len(scene.vehicles))
	return scene, nil
}

// ComposedScene 一次组合创建的全部实体
type ComposedScene struct {
	entityManager *ecs.EntityManager
	renderer      SceneRenderer
	entities      []ecs.EntityID
	vehicles      []ecs.EntityID
	ground        ecs.EntityID
	camera        ecs.EntityID
	tornDown      bool
}

// Teardown 从渲染器卸载并销毁组合创建的所有实体，重复调用无副作用
func (s *ComposedScene) Teardown() {
	if s == nil || s.tornDown {
		return
	}
	if s.renderer != nil {
		s.renderer.Unmount()
	}
	s.destroy()
	log.Printf("[SceneComposer] 场景已拆除")
}

func (s *ComposedScene) destroy() {
	for _, id := range s.entities {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	s.entities = nil
	s.vehicles = nil
	s.tornDown = true
}

// TornDown 是否已拆除
func (s *ComposedScene) TornDown() bool {
	return s.tornDown
}

// Entities 按创建顺序返回所有实体
func (s *ComposedScene) Entities() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.entities...)
}

// Vehicles 按摆放顺序返回车辆实体
func (s *ComposedScene) Vehicles() []ecs.EntityID {
	return append([]ecs.EntityID(nil), s.vehicles...)
}

// Camera 返回相机实体
func (s *ComposedScene) Camera() ecs.EntityID {
	return s.camera
}

// Ground 返回地面实体
func (s *ComposedScene) Ground() ecs.EntityID {
	return s.ground
}

// countOwned 统计组合创建的实体中拥有 T 组件的数量
func countOwned[T any](s *ComposedScene) int {
	n := 0
	for _, id := range s.entities {
		if ecs.HasComponent[T](s.entityManager, id) {
			n++
		}
	}
	return n
}

// GroundCount 地面数量
func (s *ComposedScene) GroundCount() int {
	return countOwned[*components.GroundComponent](s)
}

// DirectionalLightCount 平行光数量
func (s *ComposedScene) DirectionalLightCount() int {
	return countOwned[*components.DirectionalLightComponent](s)
}

// AmbientLightCount 环境光数量
func (s *ComposedScene) AmbientLightCount() int {
	return countOwned[*components.AmbientLightComponent](s)
}

// CameraControllerCount 带轨道控制的相机数量
func (s *ComposedScene) CameraControllerCount() int {
	return countOwned[*components.OrbitControlsComponent](s)
}

// VehicleCount 车辆数量
func (s *ComposedScene) VehicleCount() int {
	return countOwned[*components.VehicleComponent](s)
}
