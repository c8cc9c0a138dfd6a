package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testTransform struct {
	X, Y, Z float64
}

type testMesh struct {
	Name string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id1 == InvalidEntity || id2 == InvalidEntity {
		t.Error("CreateEntity returned InvalidEntity")
	}
	if em.Count() != 2 {
		t.Errorf("Count() = %d, want 2", em.Count())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransform{X: 1, Y: 2, Z: 3})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransform{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if tr := comp.(*testTransform); tr.X != 1 || tr.Y != 2 || tr.Z != 3 {
		t.Errorf("Component data mismatch: %+v", tr)
	}

	tr, ok := GetComponent[*testTransform](em, id)
	if !ok || tr.Z != 3 {
		t.Errorf("GetComponent[*testTransform] = %+v, %v", tr, ok)
	}
	if _, ok := GetComponent[*testMesh](em, id); ok {
		t.Error("GetComponent[*testMesh] should report missing component")
	}
}

func TestHasAndRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	if HasComponent[*testMesh](em, id) {
		t.Error("Should not have component before adding")
	}
	AddComponent(em, id, &testMesh{Name: "chassis"})
	if !HasComponent[*testMesh](em, id) {
		t.Error("Should have component after adding")
	}
	RemoveComponent[*testMesh](em, id)
	if HasComponent[*testMesh](em, id) {
		t.Error("Should not have component after removal")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTransform{})

	em.DestroyEntity(id)
	if !em.Exists(id) {
		t.Error("Entity should still exist until RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after RemoveMarkedEntities")
	}
	if len(GetEntitiesWith1[*testTransform](em)) != 0 {
		t.Error("Destroyed entity should not be returned by queries")
	}
}

func TestGetEntitiesWithKeepsCreationOrder(t *testing.T) {
	em := NewEntityManager()
	var want []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testTransform{X: float64(i)})
		if i%2 == 0 {
			em.AddComponent(id, &testMesh{})
			want = append(want, id)
		}
	}

	got := GetEntitiesWith2[*testTransform, *testMesh](em)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("GetEntitiesWith = %v, want %v", got, want)
	}

	// 删除中间的实体后顺序仍然保持
	em.DestroyEntity(want[1])
	em.RemoveMarkedEntities()
	want = append(want[:1], want[2:]...)
	got = GetEntitiesWith1[*testMesh](em)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("after destroy GetEntitiesWith = %v, want %v", got, want)
	}
}

func TestAddComponentToMissingEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(EntityID(42), &testMesh{})
	if HasComponent[*testMesh](em, EntityID(42)) {
		t.Error("AddComponent must ignore unknown entities")
	}
}

func TestGetEntitiesWith3(t *testing.T) {
	type testTag struct{}
	em := NewEntityManager()
	a := em.CreateEntity()
	b := em.CreateEntity()
	for _, id := range []EntityID{a, b} {
		AddComponent(em, id, &testTransform{})
		AddComponent(em, id, &testMesh{})
	}
	AddComponent(em, b, &testTag{})

	got := GetEntitiesWith3[*testTransform, *testMesh, *testTag](em)
	if len(got) != 1 || got[0] != b {
		t.Errorf("GetEntitiesWith3 = %v, want [%d]", got, b)
	}
}
