package scenes

import (
	"image/color"

	"github.com/decker502/roadrunner/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// textShadowOffset 文字阴影偏移（像素）
const textShadowOffset = 2.0

// drawCenteredText 以 (x, y) 为中心绘制带阴影的文字
// alpha 用于淡入动画（0-1）
func drawCenteredText(screen *ebiten.Image, str string, face text.Face, x, y float64, c types.Color, alpha float64) {
	if face == nil || str == "" || alpha <= 0 {
		return
	}
	// 字体加载失败时传入的是 nil *GoTextFace
	if f, ok := face.(*text.GoTextFace); ok && f == nil {
		return
	}

	shadowOp := &text.DrawOptions{}
	shadowOp.LayoutOptions.PrimaryAlign = text.AlignCenter
	shadowOp.LayoutOptions.SecondaryAlign = text.AlignCenter
	shadowOp.GeoM.Translate(x+textShadowOffset, y+textShadowOffset)
	shadowOp.ColorScale.ScaleWithColor(color.Black)
	shadowOp.ColorScale.ScaleAlpha(float32(alpha * 0.6))
	text.Draw(screen, str, face, shadowOp)

	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}

// drawVerticalGradient 用水平条带填充从 top 到 bottom 的竖直渐变
func drawVerticalGradient(screen *ebiten.Image, top, bottom types.Color, bands int) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if bands <= 0 || h == 0 {
		return
	}
	bandHeight := float32(h) / float32(bands)
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands-1+boolToInt(bands == 1))
		c := top.Lerp(bottom, t)
		// +1 避免条带之间出现缝隙
		vector.DrawFilledRect(screen, 0, float32(i)*bandHeight, float32(w), bandHeight+1, c.RGBA(), false)
	}
}

// drawProgressBar 绘制进度条（底槽 + 填充）
func drawProgressBar(screen *ebiten.Image, x, y, w, h, progress float64, track, fill types.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), track.RGBA(), true)
	if progress <= 0 {
		return
	}
	if progress > 1 {
		progress = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*progress), float32(h), fill.RGBA(), true)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
