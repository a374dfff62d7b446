// Package particle runs named emitters from a config bundle on top of the
// ECS world.
package particle

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/ecs"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

// ErrNoEmitter is returned when the bundle has no emitter with the
// requested name.
var ErrNoEmitter = errors.New("particle: no such emitter")

const dotRadius = 16

// System owns the particle world and every emitter created from the bundle
type System struct {
	world    *ecs.World
	bundle   *config.ParticleBundle
	rng      *rand.Rand
	emitters []*Emitter
	dot      *ebiten.Image
}

// NewSystem creates an empty system using rng for spawn randomness
func NewSystem(rng *rand.Rand) *System {
	return &System{
		world: ecs.NewWorld(),
		rng:   rng,
	}
}

// InitBundle sets the emitter definitions used by Emitter
func (s *System) InitBundle(b *config.ParticleBundle) {
	s.bundle = b
}

// Emitter creates an inactive emitter from the named definition
func (s *System) Emitter(name string) (*Emitter, error) {
	if s.bundle == nil {
		return nil, fmt.Errorf("%w: %s (no bundle)", ErrNoEmitter, name)
	}
	cfg, ok := s.bundle.Emitter(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEmitter, name)
	}
	e := &Emitter{cfg: cfg, system: s}
	s.emitters = append(s.emitters, e)
	return e, nil
}

// Update spawns, moves and ages particles
func (s *System) Update(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}
	for _, e := range s.emitters {
		e.spawn(sec)
	}
	ecs.UpdateMotion(s.world, sec)
	ecs.UpdateLifetimes(s.world, sec)
}

// Count returns the number of live particles
func (s *System) Count() int {
	return s.world.Count()
}

// Release stops every emitter and removes all particles
func (s *System) Release() {
	for _, e := range s.emitters {
		e.active = false
		e.target = nil
	}
	s.emitters = nil
	s.world.Clear()
}

// Draw renders live particles oldest first
func (s *System) Draw(screen *ebiten.Image) {
	if s.world.Count() == 0 {
		return
	}
	if s.dot == nil {
		s.dot = ebiten.NewImage(dotRadius*2, dotRadius*2)
		vector.DrawFilledCircle(s.dot, dotRadius, dotRadius, dotRadius, color.White, true)
	}
	for _, id := range ecs.SortedIDs(s.world) {
		pos := s.world.Position[id]
		look := s.world.Appearance[id]
		size, clr := look.At(s.world.Lifetime[id].Progress())
		if size <= 0 || clr.A == 0 {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		scale := size / dotRadius
		op.GeoM.Translate(-dotRadius, -dotRadius)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(pos.X, pos.Y)
		op.ColorScale.ScaleWithColor(clr)
		if look.Additive {
			op.Blend = ebiten.BlendLighter
		}
		screen.DrawImage(s.dot, op)
	}
}

// Emitter spawns particles at its position, or at its target's position
// once attached.
type Emitter struct {
	cfg    config.EmitterConfig
	system *System

	X, Y   float64
	target *entity.Node
	active bool
	carry  float64
}

// Name returns the emitter definition name
func (e *Emitter) Name() string {
	return e.cfg.Name
}

// Start begins spawning
func (e *Emitter) Start() {
	e.active = true
}

// Stop ends spawning; live particles finish their lifetime
func (e *Emitter) Stop() {
	e.active = false
	e.carry = 0
}

// Active reports whether the emitter is spawning
func (e *Emitter) Active() bool {
	return e.active
}

// Attach makes the emitter follow target
func (e *Emitter) Attach(target *entity.Node) {
	e.target = target
}

// Origin returns the current spawn center
func (e *Emitter) Origin() entity.Point {
	if e.target != nil {
		return e.target.Position()
	}
	return entity.Point{X: e.X, Y: e.Y}
}

func (e *Emitter) spawn(sec float64) {
	if !e.active {
		return
	}
	e.carry += e.cfg.SpawnRate * sec
	n := int(e.carry)
	e.carry -= float64(n)

	room := e.cfg.MaxActive - e.system.world.CountOwned(e.cfg.Name)
	if n > room {
		n = room
	}
	origin := e.Origin()
	for i := 0; i < n; i++ {
		e.system.world.CreateParticle(e.particle(origin))
	}
}

func (e *Emitter) particle(origin entity.Point) ecs.ParticleConfig {
	rng := e.system.rng
	angle := between(rng, e.cfg.Angle) * math.Pi / 180
	speed := between(rng, e.cfg.Speed)
	return ecs.ParticleConfig{
		Owner: e.cfg.Name,
		X:     origin.X + (rng.Float64()-0.5)*e.cfg.BoxX,
		Y:     origin.Y + (rng.Float64()-0.5)*e.cfg.BoxY,
		VX:    math.Cos(angle) * speed,
		VY:    math.Sin(angle) * speed,
		Force: ecs.Force{Y: e.cfg.Gravity},
		Span:  between(rng, e.cfg.Lifetime),
		Appearance: ecs.Appearance{
			StartSize: e.cfg.Size.Min,
			EndSize:   e.cfg.Size.Max,
			Start:     rgba(e.cfg.Start),
			End:       rgba(e.cfg.End),
			Additive:  e.cfg.Additive,
		},
	}
}

func between(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func rgba(c config.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
