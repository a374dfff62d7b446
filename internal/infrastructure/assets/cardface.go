package assets

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/younwookim/showcase/internal/domain/entity"
)

const cardBorder = 3

var (
	cardPaper = color.RGBA{250, 248, 240, 255}
	cardRed   = color.RGBA{200, 30, 40, 255}
	cardBlack = color.RGBA{30, 30, 40, 255}
)

var suitLetter = map[string]string{
	"hearts":   "H",
	"diamonds": "D",
	"clubs":    "C",
	"spades":   "S",
}

// CardFace paints a w×h card face with a suit-colored border and the rank
// and suit letter in the top-left corner.
func CardFace(c *entity.Card, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	ink := cardBlack
	if c.IsRed() {
		ink = cardRed
	}
	draw.Draw(img, img.Bounds(), image.NewUniform(ink), image.Point{}, draw.Src)
	inner := image.Rect(cardBorder, cardBorder, w-cardBorder, h-cardBorder)
	draw.Draw(img, inner, image.NewUniform(cardPaper), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(cardBorder+3, cardBorder+14),
	}
	d.DrawString(c.Rank + suitLetter[c.Suit])
	return img
}

// RegisterCardFaces paints one face per distinct texture in deck
func RegisterCardFaces(r *Registry, deck []*entity.Card, w, h int) int {
	n := 0
	for _, c := range deck {
		if r.Has(c.Texture) {
			continue
		}
		r.Put(c.Texture, CardFace(c, w, h))
		n++
	}
	return n
}
