package dialogue

import (
	"strings"

	"github.com/younwookim/showcase/internal/domain/entity"
)

// piece is a positioned word or inline image within a laid out row
type piece struct {
	Text  string
	Image string
	X     float64
	W     float64
}

// row is one wrapped line of rich text
type row struct {
	Pieces []piece
	Width  float64
}

// layout wraps rich text into rows no wider than maxWidth. Words never
// split; a word wider than maxWidth gets a row of its own. measure returns
// the advance of a string and imageWidth is the width of every inline image.
func layout(rt entity.RichText, maxWidth float64, measure func(string) float64, imageWidth float64) []row {
	space := measure(" ")
	var rows []row
	var cur row
	needSpace := false

	place := func(p piece, spaced bool) {
		gap := 0.0
		if spaced && len(cur.Pieces) > 0 {
			gap = space
		}
		if len(cur.Pieces) > 0 && cur.Width+gap+p.W > maxWidth {
			rows = append(rows, cur)
			cur = row{}
			gap = 0
		}
		p.X = cur.Width + gap
		cur.Pieces = append(cur.Pieces, p)
		cur.Width = p.X + p.W
	}

	for _, span := range rt {
		if span.Image != "" {
			place(piece{Image: span.Image, W: imageWidth}, needSpace)
			needSpace = false
			continue
		}
		text := span.Text
		leading := strings.HasPrefix(text, " ")
		trailing := strings.HasSuffix(text, " ")
		for i, word := range strings.Fields(text) {
			spaced := i > 0 || leading || needSpace
			place(piece{Text: word, W: measure(word)}, spaced)
		}
		needSpace = trailing
	}
	if len(cur.Pieces) > 0 {
		rows = append(rows, cur)
	}
	return rows
}
