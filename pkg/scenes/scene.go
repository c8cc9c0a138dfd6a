package scenes

import (
	"github.com/decker502/roadrunner/pkg/game"
)

// Scene is a type alias for game.Scene so the app can register scenes
// without importing the game package for the interface alone.
type Scene = game.Scene

// ViewNavigator switches the top-level view. *game.Navigator implements it.
type ViewNavigator interface {
	GoTo(view game.ViewState)
}
