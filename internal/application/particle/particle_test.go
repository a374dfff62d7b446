package particle

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

func testBundle() *config.ParticleBundle {
	return &config.ParticleBundle{Emitters: []config.EmitterConfig{{
		Name:      "great-fire",
		SpawnRate: 100,
		MaxActive: 10,
		Lifetime:  config.Range{Min: 1, Max: 1},
		Speed:     config.Range{Min: 50, Max: 50},
		Angle:     config.Range{Min: -90, Max: -90},
		Size:      config.Range{Min: 10, Max: 2},
		Start:     config.Color{R: 255, A: 255},
	}}}
}

func newSystem() *System {
	s := NewSystem(rand.New(rand.NewSource(1)))
	s.InitBundle(testBundle())
	return s
}

func TestSystem_UnknownEmitter(t *testing.T) {
	s := newSystem()
	_, err := s.Emitter("small-fire")
	assert.ErrorIs(t, err, ErrNoEmitter)

	empty := NewSystem(rand.New(rand.NewSource(1)))
	_, err = empty.Emitter("great-fire")
	assert.ErrorIs(t, err, ErrNoEmitter)
}

func TestEmitter_InactiveSpawnsNothing(t *testing.T) {
	s := newSystem()
	_, err := s.Emitter("great-fire")
	require.NoError(t, err)

	s.Update(100 * time.Millisecond)
	assert.Zero(t, s.Count())
}

func TestEmitter_RespectsMaxActive(t *testing.T) {
	s := newSystem()
	e, err := s.Emitter("great-fire")
	require.NoError(t, err)
	e.Start()

	s.Update(50 * time.Millisecond)
	s.Update(50 * time.Millisecond)
	assert.Equal(t, 10, s.Count())

	for i := 0; i < 30; i++ {
		s.Update(50 * time.Millisecond)
		assert.LessOrEqual(t, s.Count(), 10)
	}
}

func TestEmitter_FollowsTarget(t *testing.T) {
	s := newSystem()
	e, err := s.Emitter("great-fire")
	require.NoError(t, err)

	target := entity.NewNode(400, 300)
	e.X, e.Y = 1, 1
	e.Attach(target)
	assert.Equal(t, entity.Point{X: 400, Y: 300}, e.Origin())

	e.Start()
	s.Update(25 * time.Millisecond)
	require.Equal(t, 2, s.Count())
	for _, pos := range s.world.Position {
		// Straight up at 50px/s for 25ms
		assert.InDelta(t, 400, pos.X, 1e-6)
		assert.InDelta(t, 298.75, pos.Y, 1e-6)
	}
}

func TestEmitter_ParticlesExpire(t *testing.T) {
	s := newSystem()
	e, err := s.Emitter("great-fire")
	require.NoError(t, err)
	e.Start()
	s.Update(100 * time.Millisecond)
	require.Equal(t, 10, s.Count())

	e.Stop()
	assert.False(t, e.Active())
	s.Update(time.Second)
	assert.Zero(t, s.Count())
}

func TestSystem_Release(t *testing.T) {
	s := newSystem()
	e, err := s.Emitter("great-fire")
	require.NoError(t, err)
	e.Start()
	s.Update(100 * time.Millisecond)

	s.Release()

	assert.Zero(t, s.Count())
	assert.False(t, e.Active())
	s.Update(100 * time.Millisecond)
	assert.Zero(t, s.Count())
}
