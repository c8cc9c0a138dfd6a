package entities

import (
	"fmt"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/go-gl/mathgl/mgl64"
)

// NewBackgroundEntity 创建背景色实体
func NewBackgroundEntity(em *ecs.EntityManager, env config.EnvironmentConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.BackgroundComponent{Color: env.Background})
	return id
}

// NewFogEntity 创建线性雾实体，未配置雾时返回 false
func NewFogEntity(em *ecs.EntityManager, env config.EnvironmentConfig) (ecs.EntityID, bool) {
	if env.Fog == nil {
		return 0, false
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.FogComponent{
		Color: env.Fog.Color,
		Near:  env.Fog.Near,
		Far:   env.Fog.Far,
	})
	return id, true
}

// NewAmbientLightEntity 创建环境光实体
func NewAmbientLightEntity(em *ecs.EntityManager, cfg config.AmbientLightConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.AmbientLightComponent{Intensity: cfg.Intensity})
	return id
}

// NewDirectionalLightEntity 创建平行光实体
func NewDirectionalLightEntity(em *ecs.EntityManager, cfg config.DirectionalLightConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.DirectionalLightComponent{
		Position:        cfg.Position,
		Intensity:       cfg.Intensity,
		CastShadow:      cfg.CastShadow,
		ShadowMapWidth:  cfg.ShadowMapSize[0],
		ShadowMapHeight: cfg.ShadowMapSize[1],
	})
	return id
}

// NewGroundEntity 创建地面实体
// 平面绕 X 轴旋转 -90° 变为水平，只接收阴影不投射
func NewGroundEntity(em *ecs.EntityManager, cfg config.GroundConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Rotation: mgl64.Vec3{cfg.Rotate, 0, 0},
	})
	ecs.AddComponent(em, id, &components.GroundComponent{
		Width: cfg.Width,
		Depth: cfg.Depth,
		Color: cfg.Color,
		Grid:  cfg.Grid,
	})
	ecs.AddComponent(em, id, &components.ShadowComponent{
		CastShadow:    false,
		ReceiveShadow: true,
		Alpha:         config.GroundShadowAlpha,
	})
	return id
}

// NewPhysicsWorldEntity 创建物理世界占位实体
func NewPhysicsWorldEntity(em *ecs.EntityManager, cfg config.PhysicsConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PhysicsWorldComponent{Debug: cfg.Debug})
	return id
}

// NewEnvironmentEntity 创建环境预设实体
func NewEnvironmentEntity(em *ecs.EntityManager, preset string) (ecs.EntityID, error) {
	p, ok := config.BackdropPresets[preset]
	if !ok {
		return 0, fmt.Errorf("unknown environment preset %q", preset)
	}
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.EnvironmentComponent{
		Preset:  preset,
		Horizon: p.Horizon,
		Zenith:  p.Zenith,
	})
	return id, nil
}

// NewStarFieldEntity 创建星空实体
func NewStarFieldEntity(em *ecs.EntityManager, cfg config.StarFieldConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.StarFieldComponent{
		Radius:     cfg.Radius,
		Depth:      cfg.Depth,
		Count:      cfg.Count,
		Factor:     cfg.Factor,
		Saturation: cfg.Saturation,
		Fade:       cfg.Fade,
		Speed:      cfg.Speed,
		Seed:       cfg.Seed,
	})
	return id
}

// NewCameraEntity 创建透视相机和轨道控制
func NewCameraEntity(em *ecs.EntityManager, cam config.CameraConfig, orbit config.OrbitControlsConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.CameraComponent{
		Position: cam.Position,
		FOV:      cam.FOV,
		Near:     cam.Near,
		Far:      cam.Far,
		Up:       mgl64.Vec3{0, 1, 0},
	})
	ecs.AddComponent(em, id, &components.OrbitControlsComponent{
		Target:        orbit.Target,
		MinPolarAngle: orbit.MinPolarAngle,
		MaxPolarAngle: orbit.MaxPolarAngle,
		MinDistance:   orbit.MinDistance,
		MaxDistance:   orbit.MaxDistance,
		RotateSpeed:   orbit.RotateSpeed,
		ZoomSpeed:     orbit.ZoomSpeed,
		EnableDamping: orbit.EnableDamping,
		DampingFactor: orbit.DampingFactor,
	})
	return id
}
