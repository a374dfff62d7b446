// Package fire implements the particle fire scene.
package fire

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/showcase/internal/application/particle"
	"github.com/younwookim/showcase/internal/application/scene"
	"github.com/younwookim/showcase/internal/application/task"
	"github.com/younwookim/showcase/internal/application/tween"
	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

// Group is the animation group owned by the scene
const Group = "phoenixFlame"

// Scene fades in a black backdrop and burns a fire emitter on top of it
type Scene struct {
	ctx *scene.Context
	cfg config.FireConfig

	particles *particle.System
	emitter   *particle.Emitter
	backdrop  *entity.Node
	target    *entity.Node

	title     text.Face
	destroyed bool
}

// New creates an unloaded fire scene drawing emitters from bundle
func New(ctx *scene.Context, bundle *config.ParticleBundle, rng *rand.Rand) *Scene {
	cx, cy := ctx.Center()
	backdrop := entity.NewNode(cx, cy)
	backdrop.Alpha = 0

	ps := particle.NewSystem(rng)
	ps.InitBundle(bundle)
	return &Scene{
		ctx:       ctx,
		cfg:       ctx.Config.Fire,
		particles: ps,
		backdrop:  backdrop,
		target:    entity.NewNode(cx, cy),
	}
}

// Load resolves the configured emitter
func (s *Scene) Load(co *task.Co) error {
	e, err := s.particles.Emitter(s.cfg.Emitter)
	if err != nil {
		return fmt.Errorf("failed to create emitter: %w", err)
	}
	s.emitter = e
	if s.ctx.Widgets != nil {
		s.title = s.ctx.Widgets.FaceOfSize(32)
	}
	return nil
}

// OnEnter fades the backdrop in, then lights the emitter at the target
func (s *Scene) OnEnter(co *task.Co) error {
	if err := s.fadeBackdrop(co, 1, tween.QuadOut); err != nil {
		return err
	}
	s.emitter.Attach(s.target)
	s.emitter.Start()
	log.Printf("[Fire] emitter %s started at (%.0f, %.0f)", s.emitter.Name(), s.target.X, s.target.Y)
	return nil
}

func (s *Scene) fadeBackdrop(co *task.Co, alpha float64, ease tween.EasingFunc) error {
	tw := s.ctx.Tweens.CreateIn(Group, s.backdrop).
		To(tween.Values{tween.PropAlpha: alpha}, s.cfg.Fade).
		Easing(ease)
	return task.AwaitTween(co, tw)
}

// Backdrop returns the backdrop opacity
func (s *Scene) Backdrop() float64 {
	return s.backdrop.Alpha
}

// Emitter returns the scene's emitter, nil before Load
func (s *Scene) Emitter() *particle.Emitter {
	return s.emitter
}

// Particles returns the number of live particles
func (s *Scene) Particles() int {
	return s.particles.Count()
}

// Update advances the particle system
func (s *Scene) Update(dt time.Duration) {
	if s.destroyed {
		return
	}
	s.particles.Update(dt)
}

// Draw renders the backdrop, the fire and the title
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.destroyed {
		return
	}
	if a := s.backdrop.Alpha; a > 0 {
		black := color.RGBA{A: uint8(255 * a)}
		vector.DrawFilledRect(screen, 0, 0, float32(s.ctx.Width()), float32(s.ctx.Height()), black, false)
	}
	s.particles.Draw(screen)
	scene.DrawTitle(screen, s.title, scene.FireEffect.Title(), s.ctx.Width())
}

// OnExit stops spawning and returns once the backdrop has faded out
func (s *Scene) OnExit(co *task.Co) error {
	if s.emitter != nil {
		s.emitter.Stop()
	}
	return s.fadeBackdrop(co, 0, tween.QuadIn)
}

// Destroy cancels the scene's tweens and drops every particle
func (s *Scene) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.ctx.Tweens.DestroyGroup(Group)
	s.particles.Release()
	s.emitter = nil
}
