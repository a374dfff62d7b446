package scene

import (
	"github.com/younwookim/showcase/internal/application/task"
	"github.com/younwookim/showcase/internal/application/tween"
	"github.com/younwookim/showcase/internal/application/ui"
	"github.com/younwookim/showcase/internal/infrastructure/assets"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

// Context carries the shared services a scene is built with.
// The host owns every field; scenes must not replace them.
type Context struct {
	Tweens  *tween.Scheduler
	Mailbox *task.Mailbox
	Assets  *assets.Registry
	Config  *config.ShowcaseConfig

	// Widgets is nil when running headless (tests); scenes then skip their
	// on-screen controls.
	Widgets *ui.Factory
}

// Width returns the screen width in pixels
func (c *Context) Width() float64 {
	return float64(c.Config.Display.ScreenWidth)
}

// Height returns the screen height in pixels
func (c *Context) Height() float64 {
	return float64(c.Config.Display.ScreenHeight)
}

// Center returns the screen center
func (c *Context) Center() (float64, float64) {
	return c.Width() / 2, c.Height() / 2
}
