// Package overlay implements the loading indicator shown over scene
// transitions.
package overlay

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/showcase/internal/application/task"
	"github.com/younwookim/showcase/internal/application/tween"
	"github.com/younwookim/showcase/internal/domain/entity"
)

const maxShade = 220

// Overlay is a full-screen shade that blocks the view while visible.
// The shade is visible from the start of Show until the end of Hide.
type Overlay struct {
	tweens *tween.Scheduler
	node   *entity.Node
	fade   time.Duration
	width  float32
	height float32

	face    text.Face
	elapsed time.Duration
}

// New creates a hidden overlay covering a width×height screen
func New(tweens *tween.Scheduler, fade time.Duration, width, height int) *Overlay {
	node := entity.NewNode(0, 0)
	node.Alpha = 0
	node.Visible = false
	return &Overlay{
		tweens: tweens,
		node:   node,
		fade:   fade,
		width:  float32(width),
		height: float32(height),
	}
}

// SetFace sets the face used for the "Loading" caption. nil draws no caption.
func (o *Overlay) SetFace(face text.Face) {
	o.face = face
}

// Show makes the overlay visible and fades it in
func (o *Overlay) Show(co *task.Co) error {
	o.node.Visible = true
	err := task.AwaitTween(co, o.tweens.Create(o.node).
		To(tween.Values{tween.PropAlpha: 1}, o.fade).
		Easing(tween.QuadOut))
	if err != nil {
		o.node.Alpha = 1
	}
	return err
}

// Hide fades the overlay out and then hides it. The overlay ends hidden
// even if the fade is interrupted, so the UI is never left blocked.
func (o *Overlay) Hide(co *task.Co) error {
	err := task.AwaitTween(co, o.tweens.Create(o.node).
		To(tween.Values{tween.PropAlpha: 0}, o.fade).
		Easing(tween.QuadIn))
	o.node.Alpha = 0
	o.node.Visible = false
	return err
}

// Visible reports whether the overlay is painted and blocks input
func (o *Overlay) Visible() bool {
	return o.node.Visible
}

// Alpha returns the current opacity
func (o *Overlay) Alpha() float64 {
	return o.node.Alpha
}

// Update advances the spinner animation
func (o *Overlay) Update(dt time.Duration) {
	if o.node.Visible {
		o.elapsed += dt
	}
}

// Draw paints the shade, a spinner and the caption
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.node.Visible || o.node.Alpha <= 0 {
		return
	}
	a := o.node.Alpha
	vector.DrawFilledRect(screen, 0, 0, o.width, o.height, color.RGBA{A: uint8(maxShade * a)}, false)

	cx, cy := o.width/2, o.height/2
	turn := o.elapsed.Seconds() * 2 * math.Pi
	for i := 0; i < 8; i++ {
		angle := turn + float64(i)*math.Pi/4
		dot := uint8(255 * a * float64(i+1) / 8)
		x := cx + float32(math.Cos(angle))*24
		y := cy + float32(math.Sin(angle))*24
		vector.DrawFilledCircle(screen, x, y, 4, color.RGBA{dot, dot, dot, dot}, true)
	}

	if o.face != nil {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(cx), float64(cy)+48)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleAlpha(float32(a))
		text.Draw(screen, "Loading", o.face, op)
	}
}
