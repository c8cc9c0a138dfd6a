// Package model describes vehicle assets: a named tree of simple meshes decoded
// from YAML. Assets are shared and read-only once loaded; every placed vehicle
// works on its own Clone of the mesh tree.
package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/roadrunner/pkg/types"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrAssetNotLoaded is returned when a vehicle is placed from an asset handle
// that has not been resolved by the resource manager.
var ErrAssetNotLoaded = errors.New("vehicle asset not loaded")

// MeshKind selects the primitive a Mesh is built from.
type MeshKind string

const (
	MeshBox      MeshKind = "box"
	MeshCylinder MeshKind = "cylinder"
)

// Material is the surface description of a mesh.
type Material struct {
	Color types.Color `yaml:"color"`
}

// Mesh is a primitive centred on its node origin.
//
// Box: Size is the full extent along X, Y and Z.
// Cylinder: the axis runs along X; Size.X is the length, Size.Y the diameter.
type Mesh struct {
	Kind     MeshKind   `yaml:"kind"`
	Size     mgl64.Vec3 `yaml:"size"`
	Segments int        `yaml:"segments,omitempty"`
	Material Material   `yaml:"material"`
}

// Transform is a node transform relative to its parent. Rotation is in degrees.
type Transform struct {
	Position mgl64.Vec3 `yaml:"position"`
	Rotation mgl64.Vec3 `yaml:"rotation"`
	Scale    mgl64.Vec3 `yaml:"scale"`
}

// IdentityTransform returns a transform with unit scale and no offset.
func IdentityTransform() Transform {
	return Transform{Scale: mgl64.Vec3{1, 1, 1}}
}

// Matrix returns T * Rz * Ry * Rx * S.
func (t Transform) Matrix() mgl64.Mat4 {
	scale := t.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	rot := mgl64.HomogRotate3DZ(mgl64.DegToRad(t.Rotation.Z())).
		Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(t.Rotation.Y()))).
		Mul4(mgl64.HomogRotate3DX(mgl64.DegToRad(t.Rotation.X())))
	return mgl64.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z()).
		Mul4(rot).
		Mul4(mgl64.Scale3D(scale.X(), scale.Y(), scale.Z()))
}

// MeshNode is one node of a vehicle's mesh tree.
type MeshNode struct {
	Name      string      `yaml:"name"`
	Transform Transform   `yaml:"transform"`
	Mesh      *Mesh       `yaml:"mesh,omitempty"`
	Children  []*MeshNode `yaml:"children,omitempty"`
}

// Clone deep-copies the subtree. The copy shares no pointers with n.
func (n *MeshNode) Clone() *MeshNode {
	if n == nil {
		return nil
	}
	out := &MeshNode{
		Name:      n.Name,
		Transform: n.Transform,
	}
	if n.Mesh != nil {
		mesh := *n.Mesh
		out.Mesh = &mesh
	}
	if len(n.Children) > 0 {
		out.Children = make([]*MeshNode, len(n.Children))
		for i, child := range n.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}

// Walk visits every node depth-first with its world matrix.
func (n *MeshNode) Walk(parent mgl64.Mat4, fn func(node *MeshNode, world mgl64.Mat4)) {
	if n == nil {
		return
	}
	world := parent.Mul4(n.Transform.Matrix())
	fn(n, world)
	for _, child := range n.Children {
		child.Walk(world, fn)
	}
}

// Find returns the first node named name in the subtree.
func (n *MeshNode) Find(name string) *MeshNode {
	if n == nil {
		return nil
	}
	if n.Name == name {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// MeshCount returns the number of nodes carrying a mesh.
func (n *MeshNode) MeshCount() int {
	count := 0
	n.Walk(mgl64.Ident4(), func(node *MeshNode, _ mgl64.Mat4) {
		if node.Mesh != nil {
			count++
		}
	})
	return count
}

// VehicleAsset is an opaque, shared handle to a decoded vehicle model.
type VehicleAsset struct {
	ID   string    `yaml:"id"`
	Name string    `yaml:"name"`
	Root *MeshNode `yaml:"root"`

	resolved bool
}

// Resolved reports whether the asset was produced by DecodeVehicle.
func (a *VehicleAsset) Resolved() bool {
	return a != nil && a.resolved && a.Root != nil
}

// CloneMesh returns an independent copy of the asset's mesh tree.
func (a *VehicleAsset) CloneMesh() (*MeshNode, error) {
	if !a.Resolved() {
		id := "<nil>"
		if a != nil {
			id = a.ID
		}
		return nil, fmt.Errorf("clone mesh of %s: %w", id, ErrAssetNotLoaded)
	}
	return a.Root.Clone(), nil
}

// DecodeVehicle parses a YAML vehicle model and validates it.
func DecodeVehicle(data []byte) (*VehicleAsset, error) {
	var asset VehicleAsset
	if err := yaml.Unmarshal(data, &asset); err != nil {
		return nil, fmt.Errorf("decode vehicle: %w", err)
	}
	if asset.ID == "" {
		return nil, errors.New("decode vehicle: missing 'id'")
	}
	if asset.Root == nil {
		return nil, fmt.Errorf("decode vehicle %s: missing 'root'", asset.ID)
	}
	if err := normalize(asset.Root, asset.ID); err != nil {
		return nil, err
	}
	asset.resolved = true
	return &asset, nil
}

func normalize(n *MeshNode, assetID string) error {
	if n.Transform.Scale == (mgl64.Vec3{}) {
		n.Transform.Scale = mgl64.Vec3{1, 1, 1}
	}
	if m := n.Mesh; m != nil {
		switch m.Kind {
		case MeshBox:
		case MeshCylinder:
			if m.Segments == 0 {
				m.Segments = 12
			}
			if m.Segments < 3 {
				return fmt.Errorf("vehicle %s node %q: cylinder needs at least 3 segments", assetID, n.Name)
			}
		default:
			return fmt.Errorf("vehicle %s node %q: unknown mesh kind %q", assetID, n.Name, m.Kind)
		}
		for i := 0; i < 3; i++ {
			if m.Size[i] <= 0 || math.IsNaN(m.Size[i]) {
				return fmt.Errorf("vehicle %s node %q: mesh size must be positive, got %v", assetID, n.Name, m.Size)
			}
		}
		if m.Material.Color.A == 0 {
			m.Material.Color = types.Color{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
		}
	}
	for _, child := range n.Children {
		if err := normalize(child, assetID); err != nil {
			return err
		}
	}
	return nil
}
