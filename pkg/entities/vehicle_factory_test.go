package entities

import (
	"errors"
	"testing"

	"github.com/decker502/roadrunner/pkg/components"
	"github.com/decker502/roadrunner/pkg/ecs"
	"github.com/decker502/roadrunner/pkg/model"
	"github.com/go-gl/mathgl/mgl64"
)

const testVehicleYAML = `id: buggy
root:
  name: chassis
  transform:
    position: [0, 0.5, 0]
  mesh:
    kind: box
    size: [2, 0.5, 4]
    material:
      color: "#aa3300"
  children:
    - name: wheel
      transform:
        position: [1, -0.3, 1.5]
      mesh:
        kind: cylinder
        size: [0.3, 0.7, 0.7]
`

func loadTestAsset(t *testing.T) *model.VehicleAsset {
	t.Helper()
	asset, err := model.DecodeVehicle([]byte(testVehicleYAML))
	if err != nil {
		t.Fatalf("DecodeVehicle: %v", err)
	}
	return asset
}

// TestPlaceVehicle 测试车辆实例的组件
func TestPlaceVehicle(t *testing.T) {
	em := ecs.NewEntityManager()
	asset := loadTestAsset(t)

	id, err := PlaceVehicle(em, asset, ScenePlacement{Position: mgl64.Vec3{3, 0, -2}, Scale: 2, Heading: 45})
	if err != nil {
		t.Fatalf("PlaceVehicle: %v", err)
	}

	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatal("missing TransformComponent")
	}
	if tr.Position != (mgl64.Vec3{3, 0, -2}) || tr.Scale != (mgl64.Vec3{2, 2, 2}) || tr.Rotation.Y() != 45 {
		t.Errorf("transform = %+v", tr)
	}

	vc, ok := ecs.GetComponent[*components.VehicleComponent](em, id)
	if !ok || vc.AssetID != "buggy" || vc.Index != 0 {
		t.Errorf("vehicle component = %+v, %v", vc, ok)
	}

	sc, ok := ecs.GetComponent[*components.ShadowComponent](em, id)
	if !ok || !sc.CastShadow || !sc.ReceiveShadow {
		t.Errorf("vehicles must cast and receive shadows, got %+v", sc)
	}

	mc, ok := ecs.GetComponent[*components.MeshComponent](em, id)
	if !ok || mc.Root == nil || mc.Root.MeshCount() != 2 {
		t.Fatalf("mesh component = %+v", mc)
	}
	if mc.Root == asset.Root {
		t.Error("instance must not share the cached mesh tree")
	}
}

// TestPlaceVehicleDefaultScale 缩放缺省为 1
func TestPlaceVehicleDefaultScale(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := PlaceVehicle(em, loadTestAsset(t), ScenePlacement{})
	if err != nil {
		t.Fatal(err)
	}
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if tr.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want unit scale", tr.Scale)
	}
}

// TestPlaceVehicleInstancesAreIndependent 同一资源的两个实例互不影响
func TestPlaceVehicleInstancesAreIndependent(t *testing.T) {
	em := ecs.NewEntityManager()
	asset := loadTestAsset(t)

	a, err := PlaceVehicle(em, asset, ScenePlacement{Position: mgl64.Vec3{0, 0, 0}, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}
	b, err := PlaceVehicle(em, asset, ScenePlacement{Position: mgl64.Vec3{5, 0, 0}, Scale: 1})
	if err != nil {
		t.Fatal(err)
	}

	trA, _ := ecs.GetComponent[*components.TransformComponent](em, a)
	trB, _ := ecs.GetComponent[*components.TransformComponent](em, b)
	meshA, _ := ecs.GetComponent[*components.MeshComponent](em, a)
	meshB, _ := ecs.GetComponent[*components.MeshComponent](em, b)

	// 修改 A 的变换和材质
	trA.Position = mgl64.Vec3{-10, 0, 0}
	meshA.Root.Transform.Position = mgl64.Vec3{9, 9, 9}
	meshA.Root.Mesh.Material.Color.R = 0x01
	meshA.Root.Find("wheel").Transform.Rotation = mgl64.Vec3{0, 0, 90}

	if trB.Position != (mgl64.Vec3{5, 0, 0}) {
		t.Errorf("B position changed to %v", trB.Position)
	}
	if meshB.Root.Transform.Position != (mgl64.Vec3{0, 0.5, 0}) {
		t.Errorf("B mesh transform changed to %v", meshB.Root.Transform.Position)
	}
	if meshB.Root.Mesh.Material.Color.R != 0xaa {
		t.Errorf("B material changed: %v", meshB.Root.Mesh.Material.Color)
	}
	if meshB.Root.Find("wheel").Transform.Rotation != (mgl64.Vec3{}) {
		t.Error("B child transform changed")
	}
	if asset.Root.Mesh.Material.Color.R != 0xaa || asset.Root.Transform.Position != (mgl64.Vec3{0, 0.5, 0}) {
		t.Error("cached asset was mutated through an instance")
	}

	vcB, _ := ecs.GetComponent[*components.VehicleComponent](em, b)
	if vcB.Index != 1 {
		t.Errorf("second vehicle index = %d, want 1", vcB.Index)
	}
}

// TestPlaceVehicleNotLoaded nil 或未解析的资源返回 ErrAssetNotLoaded
func TestPlaceVehicleNotLoaded(t *testing.T) {
	tests := []struct {
		name  string
		asset *model.VehicleAsset
	}{
		{"nil asset", nil},
		{"unresolved asset", &model.VehicleAsset{ID: "ghost", Root: &model.MeshNode{Name: "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			_, err := PlaceVehicle(em, tt.asset, ScenePlacement{Scale: 1})
			if !errors.Is(err, model.ErrAssetNotLoaded) {
				t.Fatalf("err = %v, want ErrAssetNotLoaded", err)
			}
			if em.Count() != 0 {
				t.Errorf("failed placement created %d entities", em.Count())
			}
		})
	}
}

func TestPlaceVehicleNilEntityManager(t *testing.T) {
	if _, err := PlaceVehicle(nil, loadTestAsset(t), ScenePlacement{}); err == nil {
		t.Error("expected error for nil entity manager")
	}
}
