package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/decker502/roadrunner/pkg/embedded"
	"github.com/decker502/roadrunner/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// SceneConfigPath 默认场景配置文件
const SceneConfigPath = "data/scene.yaml"

// ErrInvalidSceneConfig wraps every validation failure of a SceneConfig.
var ErrInvalidSceneConfig = errors.New("invalid scene config")

// SceneConfig describes everything the scene composer mounts once the game
// view is ready. Zero values in the YAML keep the defaults.
type SceneConfig struct {
	Loading     LoadingConfig       `yaml:"loading"`
	Environment EnvironmentConfig   `yaml:"environment"`
	Lights      LightsConfig        `yaml:"lights"`
	Ground      GroundConfig        `yaml:"ground"`
	Physics     PhysicsConfig       `yaml:"physics"`
	Vehicles    []VehiclePlacement  `yaml:"vehicles"`
	Backdrop    BackdropConfig      `yaml:"backdrop"`
	Camera      CameraConfig        `yaml:"camera"`
	Orbit       OrbitControlsConfig `yaml:"orbit"`
}

// LoadingConfig 加载阶段配置
type LoadingConfig struct {
	// DelayMS 模拟加载时长（毫秒）
	DelayMS int `yaml:"delay_ms"`
	// UseAssetReadiness 为 true 时以真实资源加载完成作为就绪信号
	UseAssetReadiness bool `yaml:"use_asset_readiness"`
}

// Delay 返回模拟加载时长
func (l LoadingConfig) Delay() time.Duration {
	return time.Duration(l.DelayMS) * time.Millisecond
}

// EnvironmentConfig 背景色与雾
type EnvironmentConfig struct {
	Background types.Color `yaml:"background"`
	Fog        *FogConfig  `yaml:"fog,omitempty"`
}

// FogConfig 线性雾
type FogConfig struct {
	Color types.Color `yaml:"color"`
	Near  float64     `yaml:"near"`
	Far   float64     `yaml:"far"`
}

// LightsConfig 环境光与平行光
type LightsConfig struct {
	Ambient     AmbientLightConfig     `yaml:"ambient"`
	Directional DirectionalLightConfig `yaml:"directional"`
}

// AmbientLightConfig 环境光
type AmbientLightConfig struct {
	Intensity float64 `yaml:"intensity"`
}

// DirectionalLightConfig 平行光
type DirectionalLightConfig struct {
	Position      mgl64.Vec3 `yaml:"position"`
	Intensity     float64    `yaml:"intensity"`
	CastShadow    bool       `yaml:"cast_shadow"`
	ShadowMapSize [2]int     `yaml:"shadow_map_size"`
}

// GroundConfig 地面
type GroundConfig struct {
	Width  float64     `yaml:"width"`
	Depth  float64     `yaml:"depth"`
	Color  types.Color `yaml:"color"`
	Grid   int         `yaml:"grid"` // 线框网格分段数
	Rotate float64     `yaml:"rotate_x"`
}

// PhysicsConfig 物理世界占位配置（不做真实模拟）
type PhysicsConfig struct {
	Debug bool `yaml:"debug"`
}

// VehiclePlacement 车辆摆放位置
type VehiclePlacement struct {
	Asset    string     `yaml:"asset"`
	Position mgl64.Vec3 `yaml:"position"`
	Scale    float64    `yaml:"scale"`
	Heading  float64    `yaml:"heading"` // 绕 Y 轴角度（度）
}

// BackdropConfig 装饰性的环境与星空
type BackdropConfig struct {
	Environment string           `yaml:"environment"`
	Stars       *StarFieldConfig `yaml:"stars,omitempty"`
}

// StarFieldConfig 星空参数
type StarFieldConfig struct {
	Radius     float64 `yaml:"radius"`
	Depth      float64 `yaml:"depth"`
	Count      int     `yaml:"count"`
	Factor     float64 `yaml:"factor"`
	Saturation float64 `yaml:"saturation"`
	Fade       bool    `yaml:"fade"`
	Speed      float64 `yaml:"speed"`
	Seed       int64   `yaml:"seed"`
}

// CameraConfig 透视相机
type CameraConfig struct {
	Position mgl64.Vec3 `yaml:"position"`
	FOV      float64    `yaml:"fov"`
	Near     float64    `yaml:"near"`
	Far      float64    `yaml:"far"`
}

// OrbitControlsConfig 轨道相机控制
type OrbitControlsConfig struct {
	Target        mgl64.Vec3 `yaml:"target"`
	MinPolarAngle float64    `yaml:"min_polar_angle"`
	MaxPolarAngle float64    `yaml:"max_polar_angle"`
	MinDistance   float64    `yaml:"min_distance"`
	MaxDistance   float64    `yaml:"max_distance"`
	RotateSpeed   float64    `yaml:"rotate_speed"` // 弧度/像素
	ZoomSpeed     float64    `yaml:"zoom_speed"`
	EnableDamping bool       `yaml:"enable_damping"`
	DampingFactor float64    `yaml:"damping_factor"`
}

// DefaultSceneConfig 返回原版场景的参数
func DefaultSceneConfig() SceneConfig {
	sky := types.MustParseColor("#87ceeb")
	return SceneConfig{
		Loading: LoadingConfig{DelayMS: int(SimulatedLoadDelay / time.Millisecond)},
		Environment: EnvironmentConfig{
			Background: sky,
			Fog:        &FogConfig{Color: sky, Near: 30, Far: 100},
		},
		Lights: LightsConfig{
			Ambient: AmbientLightConfig{Intensity: 0.5},
			Directional: DirectionalLightConfig{
				Position:      mgl64.Vec3{10, 10, 5},
				Intensity:     1,
				CastShadow:    true,
				ShadowMapSize: [2]int{1024, 1024},
			},
		},
		Ground: GroundConfig{
			Width:  100,
			Depth:  100,
			Color:  types.MustParseColor("#4a7023"),
			Grid:   20,
			Rotate: -90,
		},
		Vehicles: []VehiclePlacement{
			{Asset: "VEHICLE_OFFROAD", Position: mgl64.Vec3{0, 0, 0}, Scale: 1},
		},
		Backdrop: BackdropConfig{
			Environment: "sunset",
			Stars: &StarFieldConfig{
				Radius: 100, Depth: 50, Count: 5000, Factor: 4,
				Saturation: 0, Fade: true, Speed: 1, Seed: 1,
			},
		},
		Camera: CameraConfig{Position: mgl64.Vec3{0, 5, 15}, FOV: 50, Near: 0.1, Far: 1000},
		Orbit: OrbitControlsConfig{
			Target:        mgl64.Vec3{0, 0, 0},
			MinPolarAngle: 0,
			MaxPolarAngle: math.Pi / 2,
			MinDistance:   3,
			MaxDistance:   80,
			RotateSpeed:   0.008,
			ZoomSpeed:     1.1,
			EnableDamping: true,
			DampingFactor: 0.15,
		},
	}
}

// LoadSceneConfig 从嵌入文件系统读取场景配置，未出现的字段保留默认值
func LoadSceneConfig(path string) (SceneConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("read scene config %s: %w", path, err)
	}
	return ParseSceneConfig(data)
}

// ParseSceneConfig 解析 YAML 并校验
func ParseSceneConfig(data []byte) (SceneConfig, error) {
	cfg := DefaultSceneConfig()
	// vehicles 出现在 YAML 中时整体替换默认摆放
	cfg.Vehicles = nil
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SceneConfig{}, fmt.Errorf("parse scene config: %w", err)
	}
	if cfg.Vehicles == nil {
		cfg.Vehicles = DefaultSceneConfig().Vehicles
	}
	for i := range cfg.Vehicles {
		if cfg.Vehicles[i].Scale == 0 {
			cfg.Vehicles[i].Scale = 1
		}
	}
	if err := cfg.Validate(); err != nil {
		return SceneConfig{}, err
	}
	return cfg, nil
}

// Validate 检查数值范围
func (c SceneConfig) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidSceneConfig, fmt.Sprintf(format, args...))
	}

	if c.Loading.DelayMS < 0 {
		return invalid("loading.delay_ms must be >= 0, got %d", c.Loading.DelayMS)
	}
	if f := c.Environment.Fog; f != nil && (f.Near < 0 || f.Far <= f.Near) {
		return invalid("fog range [%g, %g] is empty", f.Near, f.Far)
	}
	if c.Lights.Ambient.Intensity < 0 || c.Lights.Directional.Intensity < 0 {
		return invalid("light intensity must be >= 0")
	}
	if m := c.Lights.Directional.ShadowMapSize; m[0] <= 0 || m[1] <= 0 {
		return invalid("shadow_map_size must be positive, got %v", m)
	}
	if c.Ground.Width <= 0 || c.Ground.Depth <= 0 {
		return invalid("ground size must be positive, got %gx%g", c.Ground.Width, c.Ground.Depth)
	}
	for i, v := range c.Vehicles {
		if v.Asset == "" {
			return invalid("vehicles[%d].asset is empty", i)
		}
		if v.Scale <= 0 {
			return invalid("vehicles[%d].scale must be positive, got %g", i, v.Scale)
		}
	}
	if e := c.Backdrop.Environment; e != "" {
		if _, ok := BackdropPresets[e]; !ok {
			return invalid("unknown backdrop.environment preset %q", e)
		}
	}
	if s := c.Backdrop.Stars; s != nil && (s.Count < 0 || s.Radius <= 0) {
		return invalid("stars need radius > 0 and count >= 0")
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return invalid("camera.fov must be in (0, 180), got %g", c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return invalid("camera clip range [%g, %g] is empty", c.Camera.Near, c.Camera.Far)
	}
	o := c.Orbit
	if o.MinPolarAngle < 0 || o.MaxPolarAngle > math.Pi || o.MinPolarAngle > o.MaxPolarAngle {
		return invalid("orbit polar range [%g, %g] outside [0, π]", o.MinPolarAngle, o.MaxPolarAngle)
	}
	if o.MinDistance <= 0 || o.MaxDistance < o.MinDistance {
		return invalid("orbit distance range [%g, %g] is empty", o.MinDistance, o.MaxDistance)
	}
	if o.EnableDamping && (o.DampingFactor <= 0 || o.DampingFactor > 1) {
		return invalid("orbit.damping_factor must be in (0, 1], got %g", o.DampingFactor)
	}
	return nil
}
