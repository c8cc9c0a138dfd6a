// Roadrunner 桌面端入口
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--game             Skip the main menu and enter the game view
//	--load-delay <ms>  Override the simulated loading delay (default: data/scene.yaml)
//	--preload          Use real asset preloading as the readiness signal
package main

import (
	"flag"
	"log"
	"time"

	"github.com/decker502/roadrunner/pkg/app"
	"github.com/decker502/roadrunner/pkg/config"
	"github.com/decker502/roadrunner/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
	gameFlag      = flag.Bool("game", false, "Skip the main menu and enter the game view")
	loadDelayFlag = flag.Int("load-delay", -1, "Simulated loading delay in milliseconds (-1 keeps data/scene.yaml)")
	preloadFlag   = flag.Bool("preload", false, "Wait for real asset loading instead of a fixed delay")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（assetsFS 和 dataFS 在 embed.go 中声明）
	embedded.Init(assetsFS, dataFS)

	loadDelay := time.Duration(-1)
	if *loadDelayFlag >= 0 {
		loadDelay = time.Duration(*loadDelayFlag) * time.Millisecond
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verboseFlag,
		SkipMenu:  *gameFlag,
		LoadDelay: loadDelay,
		Preload:   *preloadFlag,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
