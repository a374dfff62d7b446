package tween

import "math"

// EasingFunc maps linear progress t ∈ [0, 1] to eased progress.
type EasingFunc func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 {
	return t
}

// QuadIn starts slow and ends fast: t².
func QuadIn(t float64) float64 {
	return t * t
}

// QuadOut starts fast and ends slow: 1 - (1-t)².
func QuadOut(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// QuadInOut is slow at both ends.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// CubicIn starts slow and ends fast: t³.
func CubicIn(t float64) float64 {
	return t * t * t
}

// CubicOut starts fast and ends slow: 1 - (1-t)³.
func CubicOut(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// CubicInOut is slow at both ends, faster in the middle than QuadInOut.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// ExpoOut decelerates sharply: 1 - 2^(-10t).
func ExpoOut(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// Lerp interpolates between a and b. t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
