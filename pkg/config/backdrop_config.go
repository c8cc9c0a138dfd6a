package config

import "github.com/decker502/roadrunner/pkg/types"

// BackdropPreset 环境预设的天空渐变颜色
type BackdropPreset struct {
	Horizon types.Color
	Zenith  types.Color
}

// BackdropPresets 可用的环境预设
var BackdropPresets = map[string]BackdropPreset{
	"sunset": {
		Horizon: types.MustParseColor("#f4a261"),
		Zenith:  types.MustParseColor("#5b6fa8"),
	},
	"dawn": {
		Horizon: types.MustParseColor("#ffd6a5"),
		Zenith:  types.MustParseColor("#9bb7d4"),
	},
	"night": {
		Horizon: types.MustParseColor("#1d2b53"),
		Zenith:  types.MustParseColor("#0b0d21"),
	},
	"park": {
		Horizon: types.MustParseColor("#cfe8ef"),
		Zenith:  types.MustParseColor("#87ceeb"),
	},
}
