package config

import (
	"errors"
	"math"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/roadrunner/pkg/embedded"
	"github.com/go-gl/mathgl/mgl64"
)

func TestDefaultSceneConfigMatchesOriginalScene(t *testing.T) {
	cfg := DefaultSceneConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Loading.Delay() != 1500*time.Millisecond {
		t.Errorf("delay = %v, want 1.5s", cfg.Loading.Delay())
	}
	if cfg.Environment.Background.String() != "#87ceeb" {
		t.Errorf("background = %s", cfg.Environment.Background)
	}
	if f := cfg.Environment.Fog; f == nil || f.Near != 30 || f.Far != 100 {
		t.Errorf("fog = %+v", f)
	}
	if cfg.Lights.Ambient.Intensity != 0.5 {
		t.Errorf("ambient = %g", cfg.Lights.Ambient.Intensity)
	}
	d := cfg.Lights.Directional
	if d.Position != (mgl64.Vec3{10, 10, 5}) || d.Intensity != 1 || !d.CastShadow || d.ShadowMapSize != [2]int{1024, 1024} {
		t.Errorf("directional = %+v", d)
	}
	if cfg.Ground.Width != 100 || cfg.Ground.Depth != 100 || cfg.Ground.Color.String() != "#4a7023" {
		t.Errorf("ground = %+v", cfg.Ground)
	}
	if cfg.Camera.Position != (mgl64.Vec3{0, 5, 15}) || cfg.Camera.FOV != 50 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Orbit.MaxPolarAngle != math.Pi/2 || cfg.Orbit.Target != (mgl64.Vec3{}) {
		t.Errorf("orbit = %+v", cfg.Orbit)
	}
}

func TestParseSceneConfigOverridesDefaults(t *testing.T) {
	yamlData := []byte(`
loading:
  delay_ms: 200
environment:
  fog: null
vehicles:
  - asset: VEHICLE_OFFROAD
    position: [1, 0, 2]
  - asset: VEHICLE_PICKUP
    position: [-4, 0, 0]
    scale: 0.5
`)
	cfg, err := ParseSceneConfig(yamlData)
	if err != nil {
		t.Fatalf("ParseSceneConfig failed: %v", err)
	}
	if cfg.Loading.Delay() != 200*time.Millisecond {
		t.Errorf("delay = %v", cfg.Loading.Delay())
	}
	if cfg.Environment.Fog != nil {
		t.Error("fog: null should disable fog")
	}
	if len(cfg.Vehicles) != 2 {
		t.Fatalf("vehicles = %d, want 2", len(cfg.Vehicles))
	}
	if cfg.Vehicles[0].Scale != 1 {
		t.Errorf("missing scale should default to 1, got %g", cfg.Vehicles[0].Scale)
	}
	if cfg.Vehicles[1].Scale != 0.5 || cfg.Vehicles[1].Position != (mgl64.Vec3{-4, 0, 0}) {
		t.Errorf("vehicle[1] = %+v", cfg.Vehicles[1])
	}
	// 未覆盖的字段保持默认
	if cfg.Ground.Width != 100 {
		t.Errorf("ground width = %g", cfg.Ground.Width)
	}
}

func TestParseSceneConfigEmptyDocument(t *testing.T) {
	cfg, err := ParseSceneConfig(nil)
	if err != nil {
		t.Fatalf("empty document should yield defaults: %v", err)
	}
	if len(cfg.Vehicles) != 1 {
		t.Errorf("default vehicles = %d", len(cfg.Vehicles))
	}
}

func TestParseSceneConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		invalid bool // wraps ErrInvalidSceneConfig
	}{
		{"negative delay", "loading: {delay_ms: -1}\n", true},
		{"empty fog range", "environment: {fog: {near: 50, far: 10}}\n", true},
		{"zero shadow map", "lights: {directional: {shadow_map_size: [0, 1024]}}\n", true},
		{"negative ground", "ground: {width: -1}\n", true},
		{"vehicle without asset", "vehicles: [{position: [0, 0, 0]}]\n", true},
		{"bad fov", "camera: {fov: 180}\n", true},
		{"polar below horizon", "orbit: {max_polar_angle: 4}\n", true},
		{"distance range", "orbit: {min_distance: 10, max_distance: 5}\n", true},
		{"unknown preset", "backdrop: {environment: volcano}\n", true},
		{"unknown key", "weather: rain\n", false},
		{"bad vector", "camera: {position: [1, 2]}\n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("expected error for %q", tt.yaml)
			}
			if tt.invalid && !errors.Is(err, ErrInvalidSceneConfig) {
				t.Errorf("expected ErrInvalidSceneConfig, got %v", err)
			}
		})
	}
}

func TestLoadSceneConfigFromEmbedded(t *testing.T) {
	data, err := os.ReadFile("../../data/scene.yaml")
	if err != nil {
		t.Skipf("scene.yaml not available: %v", err)
	}
	embedded.Init(fstest.MapFS{}, fstest.MapFS{"data/scene.yaml": {Data: data}})
	defer embedded.Reset()

	cfg, err := LoadSceneConfig(SceneConfigPath)
	if err != nil {
		t.Fatalf("LoadSceneConfig failed: %v", err)
	}
	if len(cfg.Vehicles) == 0 {
		t.Error("shipped scene should place at least one vehicle")
	}

	if _, err := LoadSceneConfig("data/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMenuButtonRect(t *testing.T) {
	x0, y0, w, h := MenuButtonRect(MenuButtonStart)
	x1, y1, _, _ := MenuButtonRect(MenuButtonOptions)
	if x0 != x1 {
		t.Error("menu buttons should share the same column")
	}
	if y1-y0 != MenuButtonSpacing {
		t.Errorf("spacing = %g", y1-y0)
	}
	if x0+w/2 != GameWindowWidth/2 || h != MenuButtonHeight {
		t.Errorf("button not centred: x=%g w=%g", x0, w)
	}
}
