// Package cards implements the card shuffle scene: a deck moves one card at
// a time from one stack to the other, forever.
package cards

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/showcase/internal/application/scene"
	"github.com/younwookim/showcase/internal/application/task"
	"github.com/younwookim/showcase/internal/application/tween"
	"github.com/younwookim/showcase/internal/application/ui"
	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/infrastructure/assets"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

// Group is the animation group owned by the scene
const Group = "aceOfShadows"

var cardBack = color.RGBA{90, 30, 120, 255}

// Scene is the card shuffle scene
type Scene struct {
	ctx *scene.Context
	cfg config.CardsConfig

	stacks [2]*entity.CardStack
	source int
	moving *entity.Card
	moves  int
	fast   bool

	loop      *task.Task
	controls  *ui.Menu
	title     text.Face
	destroyed bool
}

// New creates an unloaded card scene
func New(ctx *scene.Context) *Scene {
	return &Scene{ctx: ctx, cfg: ctx.Config.Cards}
}

// Load deals the deck onto the first stack and paints any missing card faces
// off the frame loop.
func (s *Scene) Load(co *task.Co) error {
	cx, cy := s.ctx.Center()
	s.stacks[0] = entity.NewCardStack(entity.Point{X: cx - s.cfg.Spread, Y: cy - s.cfg.Rise}, s.cfg.Offset)
	s.stacks[1] = entity.NewCardStack(entity.Point{X: cx + s.cfg.Spread, Y: cy - s.cfg.Rise}, s.cfg.Offset)

	deck := entity.NewDeck(s.cfg.Count)
	for _, c := range deck {
		s.stacks[0].Push(c)
	}

	reg := s.ctx.Assets
	w, h := s.cfg.Width, s.cfg.Height
	err := co.Await(s.ctx.Mailbox.Run(func() error {
		assets.RegisterCardFaces(reg, deck, w, h)
		return nil
	}))
	if err != nil {
		return fmt.Errorf("failed to prepare card faces: %w", err)
	}

	if s.ctx.Widgets != nil {
		s.title = s.ctx.Widgets.FaceOfSize(32)
		s.controls = s.ctx.Widgets.Panel([]ui.MenuItem{
			{Label: s.fastLabel(), OnClick: func() { s.ToggleFast() }},
		}, widget.AnchorLayoutPositionEnd, widget.AnchorLayoutPositionStart)
	}
	return nil
}

// OnEnter starts the shuffle loop as its own task
func (s *Scene) OnEnter(co *task.Co) error {
	s.loop = task.Go("cards", s.run)
	return nil
}

// run moves the top card of the source stack to the destination stack,
// swapping roles whenever the source runs out.
func (s *Scene) run(co *task.Co) error {
	if s.stacks[0].Count()+s.stacks[1].Count() == 0 {
		return nil
	}
	for {
		src, dst := s.stacks[s.source], s.stacks[1-s.source]
		if src.Count() == 0 {
			s.source = 1 - s.source
			continue
		}

		card := src.Pop()
		s.moving = card
		slot := dst.NextSlot()
		duration, delay := s.timing()

		err := task.AwaitTween(co, s.ctx.Tweens.CreateIn(Group, card.Node).
			To(tween.Values{tween.PropX: slot.X, tween.PropY: slot.Y}, duration).
			Delay(delay).
			Easing(tween.CubicIn))
		if err != nil {
			return err
		}

		dst.Push(card)
		s.moving = nil
		s.moves++
	}
}

func (s *Scene) timing() (time.Duration, time.Duration) {
	if s.fast {
		return s.cfg.FastDuration, s.cfg.FastDelay
	}
	return s.cfg.Duration, s.cfg.Delay
}

// ToggleFast flips fast mode. The next card move uses the new timing; the
// card already in flight keeps its own.
func (s *Scene) ToggleFast() bool {
	s.fast = !s.fast
	log.Printf("[Cards] fast mode: %v", s.fast)
	if s.controls != nil {
		s.controls.SetLabel(0, s.fastLabel())
	}
	return s.fast
}

// Fast reports whether fast mode is on
func (s *Scene) Fast() bool {
	return s.fast
}

func (s *Scene) fastLabel() string {
	if s.fast {
		return "FAST: ON"
	}
	return "FAST: OFF"
}

// Counts returns the size of each stack and whether a card is in flight.
// The three always add up to the deck size.
func (s *Scene) Counts() (left, right int, inFlight bool) {
	if s.stacks[0] == nil {
		return 0, 0, false
	}
	return s.stacks[0].Count(), s.stacks[1].Count(), s.moving != nil
}

// Moves returns the number of completed card moves
func (s *Scene) Moves() int {
	return s.moves
}

// Update feeds input to the scene's controls
func (s *Scene) Update(dt time.Duration) {
	if s.controls != nil {
		s.controls.Update()
	}
}

// Draw renders both stacks bottom to top, then the card in flight
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.destroyed {
		return
	}
	w, h := float64(s.cfg.Width), float64(s.cfg.Height)
	for _, stack := range s.stacks {
		if stack == nil {
			continue
		}
		for _, c := range stack.Cards() {
			scene.DrawSprite(screen, s.ctx.Assets.Texture(c.Texture), c.Node, w, h, cardBack)
		}
	}
	if s.moving != nil {
		scene.DrawSprite(screen, s.ctx.Assets.Texture(s.moving.Texture), s.moving.Node, w, h, cardBack)
	}
	scene.DrawTitle(screen, s.title, scene.CardShuffle.Title(), s.ctx.Width())
	if s.controls != nil {
		s.controls.Draw(screen)
	}
}

// OnExit stops the shuffle loop. The card in flight stays where it is.
func (s *Scene) OnExit(co *task.Co) error {
	if s.loop != nil {
		s.loop.Stop()
	}
	return nil
}

// Destroy stops the loop, cancels the scene's tweens and drops the cards
func (s *Scene) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	if s.loop != nil {
		s.loop.Stop()
	}
	s.ctx.Tweens.DestroyGroup(Group)
	s.stacks = [2]*entity.CardStack{}
	s.moving = nil
	s.controls = nil
}
