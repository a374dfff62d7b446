package ecs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld()

	assert.NotNil(t, w)
	assert.Equal(t, EntityID(1), w.nextID)
	assert.NotNil(t, w.Position)
	assert.NotNil(t, w.Velocity)
	assert.NotNil(t, w.Lifetime)
}

func TestNewEntity(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	id2 := w.NewEntity()
	id3 := w.NewEntity()

	assert.Equal(t, EntityID(1), id1)
	assert.Equal(t, EntityID(2), id2)
	assert.Equal(t, EntityID(3), id3)
	assert.Equal(t, EntityID(4), w.nextID)
}

func TestEntityIDNeverRecycled(t *testing.T) {
	w := NewWorld()

	id1 := w.NewEntity()
	w.Position[id1] = Position{X: 100, Y: 200}

	w.DestroyEntity(id1)

	id2 := w.NewEntity()
	assert.NotEqual(t, id1, id2, "Entity IDs should never be recycled")
	assert.Equal(t, EntityID(2), id2)
}

func TestCreateParticle(t *testing.T) {
	w := NewWorld()
	id := w.CreateParticle(ParticleConfig{Owner: "fire", X: 10, Y: 20, VX: 1, VY: -2, Span: 1})

	require.True(t, w.Exists(id))
	assert.Equal(t, Position{X: 10, Y: 20}, w.Position[id])
	assert.Equal(t, Velocity{X: 1, Y: -2}, w.Velocity[id])
	assert.Equal(t, 1, w.CountOwned("fire"))
	assert.Zero(t, w.CountOwned("smoke"))

	w.DestroyEntity(id)
	assert.False(t, w.Exists(id))
	assert.Zero(t, w.Count())
}

func TestUpdateMotion(t *testing.T) {
	w := NewWorld()
	id := w.CreateParticle(ParticleConfig{VX: 10, VY: 0, Force: Force{Y: -20}, Span: 5})

	UpdateMotion(w, 0.5)

	assert.InDelta(t, -10.0, w.Velocity[id].Y, 1e-9)
	assert.InDelta(t, 5.0, w.Position[id].X, 1e-9)
	assert.InDelta(t, -5.0, w.Position[id].Y, 1e-9)
}

func TestUpdateLifetimes(t *testing.T) {
	w := NewWorld()
	short := w.CreateParticle(ParticleConfig{Span: 0.5})
	long := w.CreateParticle(ParticleConfig{Span: 2})

	assert.Zero(t, UpdateLifetimes(w, 0.25))
	assert.Equal(t, 1, UpdateLifetimes(w, 0.25))

	assert.False(t, w.Exists(short))
	assert.True(t, w.Exists(long))
	assert.InDelta(t, 0.25, w.Lifetime[long].Progress(), 1e-9)
}

func TestClear(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.CreateParticle(ParticleConfig{Span: 1})
	}
	w.Clear()

	assert.Zero(t, w.Count())
	assert.Equal(t, EntityID(6), w.NewEntity())
}

func TestSortedIDs(t *testing.T) {
	w := NewWorld()
	a := w.CreateParticle(ParticleConfig{Span: 1})
	b := w.CreateParticle(ParticleConfig{Span: 1})
	c := w.CreateParticle(ParticleConfig{Span: 1})
	w.DestroyEntity(b)

	assert.Equal(t, []EntityID{a, c}, SortedIDs(w))
}

func TestAppearance_At(t *testing.T) {
	a := Appearance{
		StartSize: 10, EndSize: 2,
		Start: color.RGBA{255, 200, 0, 255},
		End:   color.RGBA{55, 0, 0, 0},
	}

	size, c := a.At(0)
	assert.Equal(t, 10.0, size)
	assert.Equal(t, a.Start, c)

	size, c = a.At(1)
	assert.Equal(t, 2.0, size)
	assert.Equal(t, a.End, c)

	size, c = a.At(0.5)
	assert.Equal(t, 6.0, size)
	assert.Equal(t, color.RGBA{155, 100, 0, 128}, c)
}

func TestLifetime_Progress(t *testing.T) {
	assert.Equal(t, 1.0, Lifetime{Age: 3, Span: 2}.Progress())
	assert.Equal(t, 1.0, Lifetime{}.Progress())
	assert.True(t, Lifetime{Age: 2, Span: 2}.Expired())
}
