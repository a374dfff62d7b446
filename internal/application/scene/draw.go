package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/showcase/internal/domain/entity"
)

// TitleY is the top edge of scene titles
const TitleY = 20

// DrawTitle renders title centered at the top of the screen.
// A nil face draws nothing.
func DrawTitle(screen *ebiten.Image, face text.Face, title string, width float64) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(width/2, TitleY)
	op.PrimaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, title, face, op)
}

// DrawSprite renders tex centered on node, honoring its alpha and scale.
// When tex is nil a w×h placeholder rectangle is drawn instead.
func DrawSprite(screen *ebiten.Image, tex *ebiten.Image, node *entity.Node, w, h float64, placeholder color.Color) {
	if !node.Visible || node.Alpha <= 0 {
		return
	}
	if tex == nil {
		sw, sh := w*node.Scale, h*node.Scale
		c := fade(placeholder, node.Alpha)
		vector.DrawFilledRect(screen, float32(node.X-sw/2), float32(node.Y-sh/2), float32(sw), float32(sh), c, false)
		return
	}
	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(node.Scale, node.Scale)
	op.GeoM.Translate(node.X, node.Y)
	op.ColorScale.ScaleAlpha(float32(node.Alpha))
	screen.DrawImage(tex, op)
}

// fade scales a premultiplied color by alpha
func fade(c color.Color, alpha float64) color.RGBA {
	r, g, b, a := c.RGBA()
	scale := func(v uint32) uint8 { return uint8(float64(v>>8) * alpha) }
	return color.RGBA{scale(r), scale(g), scale(b), scale(a)}
}
