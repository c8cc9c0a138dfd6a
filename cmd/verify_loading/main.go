// Package main provides a headless verification tool for the game view's
// loading lifecycle. It drives a GameScene frame by frame on a virtual clock
// and prints when the LOADING -> READY transition happens, or confirms that
// leaving the view early cancels the pending timer.
//
// Usage:
//
//	go run ./cmd/verify_loading [flags]
//
// Flags:
//
//	--root <dir>       Project root containing assets/ and data/ (default: ".")
//	--delay <ms>       Loading delay override (default: data/scene.yaml)
//	--exit-at <ms>     Leave the game view at this virtual time (default: never)
//	--duration <ms>    Virtual time to simulate (default: 3000)
//	--verbose          Enable verbose logging
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/embedded"
	"github.com/decker502/roadrunner/pkg/game"
	"github.com/decker502/roadrunner/pkg/scenes"
	"github.com/decker502/roadrunner/pkg/utils"
)

var (
	rootFlag     = flag.String("root", ".", "Project root containing assets/ and data/")
	delayFlag    = flag.Int("delay", -1, "Loading delay in milliseconds (-1 keeps data/scene.yaml)")
	exitAtFlag   = flag.Int("exit-at", -1, "Leave the game view at this virtual time in milliseconds")
	durationFlag = flag.Int("duration", 3000, "Virtual time to simulate in milliseconds")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

const frameDuration = time.Second / 60

// nav 只记录导航请求
type nav struct{}

func (nav) GoTo(view game.ViewState) {
	fmt.Printf("navigate -> %s\n", view)
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	fsys := os.DirFS(*rootFlag)
	embedded.Init(fsys, fsys)

	cfg, err := config.LoadSceneConfig(config.SceneConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *delayFlag >= 0 {
		cfg.Loading.DelayMS = *delayFlag
	}
	// 真实加载与虚拟时钟无关，这里只验证计时器路径
	cfg.Loading.UseAssetReadiness = false

	rm := game.NewResourceManager()
	if err := rm.LoadResourceConfig("assets/config/resources.yaml"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	clock := game.NewManualClock()
	idle := func() utils.PointerState { return utils.PointerState{} }
	scene := scenes.NewGameScene(rm, nav{}, cfg, scenes.GameSceneOptions{Clock: clock, Pointer: idle})

	fmt.Printf("delay=%v duration=%dms\n", cfg.Loading.Delay(), *durationFlag)
	scene.OnEnter()
	state := scene.State()
	fmt.Printf("%6dms  %s\n", 0, state)

	end := time.Duration(*durationFlag) * time.Millisecond
	exitAt := time.Duration(*exitAtFlag) * time.Millisecond
	exited := false
	for clock.Now() < end {
		clock.Advance(frameDuration)
		if !exited && *exitAtFlag >= 0 && clock.Now() >= exitAt {
			scene.OnExit()
			exited = true
			fmt.Printf("%6dms  exit view (pending timers: %d)\n", clock.Now().Milliseconds(), clock.Pending())
		}
		scene.Update(frameDuration.Seconds())
		if s := scene.State(); s != state {
			state = s
			fmt.Printf("%6dms  %s\n", clock.Now().Milliseconds(), state)
		}
	}

	switch {
	case exited && state != game.LoadStateLoading:
		fmt.Println("FAIL: state changed after leaving the view")
		os.Exit(1)
	case exited && clock.Pending() != 0:
		fmt.Printf("FAIL: %d timers still pending after exit\n", clock.Pending())
		os.Exit(1)
	case !exited && state != game.LoadStateReady:
		fmt.Printf("FAIL: ended in %s\n", state)
		os.Exit(1)
	}

	if c := scene.Composed(); c != nil {
		fmt.Printf("composed: %d vehicles, %d ground, %d directional, %d ambient, %d orbit controls\n",
			c.VehicleCount(), c.GroundCount(), c.DirectionalLightCount(), c.AmbientLightCount(), c.CameraControllerCount())
		scene.OnExit()
	}
	fmt.Println("OK")
}
