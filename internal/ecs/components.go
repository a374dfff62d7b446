package ecs

import (
	"image/color"
)

// Position is a particle center in screen pixels
type Position struct {
	X, Y float64
}

// Velocity is in pixels per second
type Velocity struct {
	X, Y float64
}

// Force is a constant acceleration in pixels per second²
type Force struct {
	X, Y float64
}

// Lifetime tracks how long a particle has lived, in seconds
type Lifetime struct {
	Age  float64
	Span float64
}

// Progress returns the fraction of the span already lived, clamped to [0,1]
func (l Lifetime) Progress() float64 {
	if l.Span <= 0 {
		return 1
	}
	p := l.Age / l.Span
	if p > 1 {
		return 1
	}
	return p
}

// Expired reports whether the particle outlived its span
func (l Lifetime) Expired() bool {
	return l.Age >= l.Span
}

// Appearance interpolates size and color over the lifetime
type Appearance struct {
	StartSize, EndSize float64
	Start, End         color.RGBA
	Additive           bool
}

// At returns the size and color at progress t in [0,1]
func (a Appearance) At(t float64) (float64, color.RGBA) {
	size := a.StartSize + (a.EndSize-a.StartSize)*t
	return size, color.RGBA{
		R: mix(a.Start.R, a.End.R, t),
		G: mix(a.Start.G, a.End.G, t),
		B: mix(a.Start.B, a.End.B, t),
		A: mix(a.Start.A, a.End.A, t),
	}
}

func mix(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
