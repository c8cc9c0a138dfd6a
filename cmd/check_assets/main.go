// Package main checks that every vehicle listed in the resource table
// resolves, decodes and clones, and that data/scene.yaml only references
// known assets.
//
// Usage:
//
//	go run ./cmd/check_assets [--root <dir>]
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/embedded"
	"github.com/decker502/roadrunner/pkg/game"
)

var rootFlag = flag.String("root", ".", "Project root containing assets/ and data/")

func main() {
	flag.Parse()
	log.SetOutput(io.Discard)

	fsys := os.DirFS(*rootFlag)
	embedded.Init(fsys, fsys)

	rm := game.NewResourceManager()
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ids := rm.VehicleIDs()
	ready := rm.Preload(context.Background(), ids...)
	<-ready.Done()
	if err := ready.Err(); err != nil {
		fmt.Printf("Error: preload failed: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, id := range ids {
		asset, _ := rm.GetVehicle(id)
		p, _ := rm.ResolvePath(id)
		clone, err := asset.CloneMesh()
		if err != nil {
			fmt.Printf("✗ %-20s %s: %v\n", id, p, err)
			failed++
			continue
		}
		fmt.Printf("✓ %-20s %-28s %3d meshes\n", id, p, clone.MeshCount())
	}

	cfg, err := config.LoadSceneConfig(config.SceneConfigPath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	for i, v := range cfg.Vehicles {
		if _, err := rm.ResolvePath(v.Asset); err != nil {
			fmt.Printf("✗ scene vehicles[%d]: %v\n", i, err)
			failed++
		}
	}

	fmt.Printf("\n%d vehicles, %d scene placements, %d problems\n", len(ids), len(cfg.Vehicles), failed)
	if failed > 0 {
		os.Exit(1)
	}
}
