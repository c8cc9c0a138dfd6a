package game

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/decker502/roadrunner/pkg/embedded"
	"github.com/decker502/roadrunner/pkg/model"
	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

// ResourceManager is the asset-loading collaborator of the game.
// It resolves resource IDs through assets/config/resources.yaml, decodes
// vehicle models from the embedded file system and caches them.
//
// Cached assets are shared and must be treated as read-only: placing a vehicle
// always works on VehicleAsset.CloneMesh.
//
// Thread Safety Note:
// Vehicle loading is safe for concurrent use, because Preload decodes models
// on worker goroutines. Concurrent requests for the same ID are collapsed into
// a single decode. Font accessors are meant for the game loop only.
//
// Usage:
//
//	rm := NewResourceManager()
//	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
//	    return err
//	}
//	ready := rm.Preload(ctx, "VEHICLE_OFFROAD")
//	<-ready.Done()
type ResourceManager struct {
	mu           sync.RWMutex
	config       *ResourceConfig
	resourceMap  map[string]string              // Resource ID -> file path
	vehicleCache map[string]*model.VehicleAsset // Resource ID -> decoded asset
	decodes      int                            // number of decodes performed
	group        singleflight.Group

	fontSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace
	hudFace       text.Face
}

// NewResourceManager creates and initializes a new ResourceManager instance with empty caches.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		resourceMap:   make(map[string]string),
		vehicleCache:  make(map[string]*model.VehicleAsset),
		fontFaceCache: make(map[float64]*text.GoTextFace),
	}
}

// LoadResourceConfig loads and parses the YAML resource table.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	resourceMap := make(map[string]string)
	for groupName, group := range config.Groups {
		for _, v := range group.Vehicles {
			if v.ID == "" || v.Path == "" {
				return fmt.Errorf("resource config %s: group %s has a vehicle without id or path", configPath, groupName)
			}
			if _, dup := resourceMap[v.ID]; dup {
				return fmt.Errorf("resource config %s: duplicate resource id %s", configPath, v.ID)
			}
			resourceMap[v.ID] = buildFullPath(config.BasePath, v.Path)
		}
	}

	rm.mu.Lock()
	rm.config = &config
	rm.resourceMap = resourceMap
	rm.mu.Unlock()

	log.Printf("[ResourceManager] 资源表加载完成: %d 个资源", len(resourceMap))
	return nil
}

// ResolvePath returns the file path of a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, error) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	if rm.config == nil {
		return "", fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	p, ok := rm.resourceMap[resourceID]
	if !ok {
		return "", fmt.Errorf("resource ID not found: %s", resourceID)
	}
	return p, nil
}

// VehicleIDs lists every vehicle resource ID in the table, sorted.
func (rm *ResourceManager) VehicleIDs() []string {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	ids := make([]string, 0, len(rm.resourceMap))
	for id := range rm.resourceMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LoadVehicle returns the cached asset for resourceID, decoding it on first use.
func (rm *ResourceManager) LoadVehicle(resourceID string) (*model.VehicleAsset, error) {
	if asset, ok := rm.GetVehicle(resourceID); ok {
		return asset, nil
	}

	v, err, _ := rm.group.Do(resourceID, func() (interface{}, error) {
		if asset, ok := rm.GetVehicle(resourceID); ok {
			return asset, nil
		}
		p, err := rm.ResolvePath(resourceID)
		if err != nil {
			return nil, err
		}
		data, err := embedded.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read vehicle %s: %w", resourceID, err)
		}
		asset, err := model.DecodeVehicle(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode vehicle %s: %w", resourceID, err)
		}

		rm.mu.Lock()
		rm.vehicleCache[resourceID] = asset
		rm.decodes++
		rm.mu.Unlock()
		log.Printf("[ResourceManager] 车辆模型已加载: %s (%s, %d meshes)", resourceID, p, asset.Root.MeshCount())
		return asset, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*model.VehicleAsset), nil
}

// GetVehicle returns a cached asset without loading it.
func (rm *ResourceManager) GetVehicle(resourceID string) (*model.VehicleAsset, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	asset, ok := rm.vehicleCache[resourceID]
	return asset, ok
}

// Preload decodes every listed vehicle concurrently and returns a future that
// resolves when all of them are cached, or with the first error. Cancelling
// the future cancels the outstanding work.
func (rm *ResourceManager) Preload(ctx context.Context, resourceIDs ...string) Readiness {
	ctx, cancel := context.WithCancel(ctx)
	future := NewFuture(cancel)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	go func() {
		for _, id := range resourceIDs {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				_, err := rm.LoadVehicle(id)
				return err
			})
		}
		err := g.Wait()
		if err == nil {
			err = ctx.Err()
		}
		if future.Resolve(err) {
			log.Printf("[ResourceManager] 预加载完成: %d 个资源, err=%v", len(resourceIDs), err)
		}
		cancel()
	}()
	return future
}

// DecodeCount reports how many vehicle decodes have happened.
func (rm *ResourceManager) DecodeCount() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()
	return rm.decodes
}

// LoadFont returns a Go Regular face of the given size.
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face, nil
	}
	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}
	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face, nil
}

// HUDFace returns the small bitmap face used for on-screen hints.
func (rm *ResourceManager) HUDFace() text.Face {
	if rm.hudFace == nil {
		rm.hudFace = text.NewGoXFace(bitmapfont.Face)
	}
	return rm.hudFace
}

// Release drops every cached asset. Called on application teardown.
func (rm *ResourceManager) Release() {
	rm.mu.Lock()
	n := len(rm.vehicleCache)
	rm.vehicleCache = make(map[string]*model.VehicleAsset)
	rm.mu.Unlock()

	rm.fontFaceCache = make(map[float64]*text.GoTextFace)
	rm.fontSource = nil
	rm.hudFace = nil
	log.Printf("[ResourceManager] 已释放 %d 个车辆模型", n)
}
