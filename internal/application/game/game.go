// Package game provides the host loop: it ticks the animation scheduler,
// delivers background results, routes input and draws the active scene
// under the loading overlay and the scene menu.
package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/showcase/internal/application/director"
	"github.com/younwookim/showcase/internal/application/overlay"
	"github.com/younwookim/showcase/internal/application/scene"
	"github.com/younwookim/showcase/internal/application/state"
	"github.com/younwookim/showcase/internal/application/system"
	"github.com/younwookim/showcase/internal/application/task"
	"github.com/younwookim/showcase/internal/application/tween"
	"github.com/younwookim/showcase/internal/application/ui"
	"github.com/younwookim/showcase/internal/domain/entity"
	"github.com/younwookim/showcase/internal/infrastructure/assets"
	"github.com/younwookim/showcase/internal/infrastructure/config"
)

// Options configures a Game
type Options struct {
	Config *config.ShowcaseConfig

	// Scenes builds the scene registry from the shared context
	Scenes func(ctx *scene.Context) map[scene.Name]scene.Constructor

	// Initial is loaded once bootstrap finishes; empty leaves the stage empty
	Initial scene.Name
	Debug   bool

	// Widgets is nil when running headless
	Widgets *ui.Factory
}

// Game implements ebiten.Game and hosts the director.
type Game struct {
	cfg *config.ShowcaseConfig
	dt  time.Duration

	tweens   *tween.Scheduler
	mailbox  *task.Mailbox
	assets   *assets.Registry
	overlay  *overlay.Overlay
	stage    *Stage
	director *director.Director
	input    *system.InputSystem
	menu     *ui.Menu

	initial scene.Name
	boot    *task.Task
	ready   bool
	debug   bool
	frames  int
}

// New wires the host and starts the bootstrap flow
func New(opts Options) *Game {
	cfg := opts.Config
	g := &Game{
		cfg:     cfg,
		dt:      time.Second / time.Duration(max(1, cfg.Display.Framerate)),
		tweens:  tween.NewScheduler(),
		mailbox: task.NewMailbox(16),
		assets:  assets.NewRegistry(),
		stage:   &Stage{},
		input:   system.NewInputSystem(),
		initial: opts.Initial,
		debug:   opts.Debug,
	}
	g.overlay = overlay.New(g.tweens, cfg.Loading.Fade, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	ctx := &scene.Context{
		Tweens:  g.tweens,
		Mailbox: g.mailbox,
		Assets:  g.assets,
		Config:  cfg,
		Widgets: opts.Widgets,
	}
	g.director = director.New(opts.Scenes(ctx), g.stage, g.overlay)
	g.director.OnBusyChange(func(busy bool) { g.setMenuEnabled(!busy) })

	if opts.Widgets != nil {
		g.overlay.SetFace(opts.Widgets.FaceOfSize(24))
		items := make([]ui.MenuItem, 0, len(scene.Names))
		for _, name := range scene.Names {
			items = append(items, ui.MenuItem{
				Label: name.Title(),
				OnClick: func() {
					log.Printf("[Menu] %s clicked", name)
					g.SwitchTo(name)
				},
			})
		}
		g.menu = opts.Widgets.Menu(items)
		g.menu.SetEnabled(false)
	}

	g.boot = task.Go("bootstrap", g.bootstrap)
	g.boot.Done().Then(func() {
		if err := g.boot.Err(); err != nil {
			log.Printf("[Game] bootstrap: %v", err)
		}
	})
	return g
}

// bootstrap prepares shared assets behind the overlay, unlocks the menu
// and loads the initial scene.
func (g *Game) bootstrap(co *task.Co) error {
	if err := g.overlay.Show(co); err != nil {
		return err
	}
	deck := entity.NewDeck(g.cfg.Cards.Count)
	reg := g.assets
	w, h := g.cfg.Cards.Width, g.cfg.Cards.Height
	err := co.Await(g.mailbox.Run(func() error {
		n := assets.RegisterCardFaces(reg, deck, w, h)
		log.Printf("[Game] prepared %d card faces", n)
		return nil
	}))
	if err != nil {
		return fmt.Errorf("failed to prepare assets: %w", err)
	}
	if err := g.overlay.Hide(co); err != nil {
		return err
	}

	g.ready = true
	g.setMenuEnabled(true)
	log.Printf("[Game] ready")
	if g.initial == "" {
		return nil
	}
	return g.director.LoadScene(co, g.initial)
}

func (g *Game) setMenuEnabled(enabled bool) {
	if g.menu != nil {
		g.menu.SetEnabled(enabled && g.ready)
	}
}

// SwitchTo asks the director for name. Requests before bootstrap finishes
// or while a transition runs are dropped.
func (g *Game) SwitchTo(name scene.Name) {
	if !g.ready {
		log.Printf("[Game] ignoring %s: still starting", name)
		return
	}
	t := g.director.Switch(name)
	t.Done().Then(func() {
		if err := t.Err(); err != nil {
			log.Printf("[Game] switch to %s failed: %v", name, err)
		}
	})
}

// Update advances one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.Step(g.input.GetInput())
	return nil
}

// Step advances one frame with the given commands
func (g *Game) Step(in system.Input) {
	g.frames++
	g.tweens.Tick(g.dt)
	g.mailbox.Drain()
	g.overlay.Update(g.dt)

	if in.Scene != "" {
		g.SwitchTo(in.Scene)
	}
	if in.ToggleFast {
		g.toggleFast()
	}
	if in.ToggleDebug {
		g.debug = !g.debug
	}

	g.director.Update(g.dt)
	if g.menu != nil && !g.overlay.Visible() {
		g.menu.Update()
	}
}

func (g *Game) toggleFast() {
	if g.director.CurrentState() != state.Entered {
		return
	}
	if ft, ok := g.director.Current().(scene.FastToggler); ok {
		ft.ToggleFast()
	}
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.cfg.Display.Background
	screen.Fill(color.RGBA{bg.R, bg.G, bg.B, bg.A})
	g.director.Draw(screen)
	if g.menu != nil {
		g.menu.Draw(screen)
	}
	g.overlay.Draw(screen)
	if g.debug {
		ebitenutil.DebugPrint(screen, g.HUD(ebiten.ActualTPS()))
	}
}

// HUD returns the debug overlay text
func (g *Game) HUD(tps float64) string {
	st := g.tweens.Stats()
	current := g.director.CurrentName()
	if current == "" {
		current = "-"
	}
	return fmt.Sprintf("TPS: %.1f\nScene: %s (%s)\nAttached: %d\nTweens: %d active, %d groups\nStarted %d / Completed %d / Cancelled %d",
		tps, current, g.director.CurrentState(), g.stage.Len(),
		st.Active, st.Groups, st.Started, st.Completed, st.Cancelled)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.ScreenWidth, g.cfg.Display.ScreenHeight
}

// Ready reports whether bootstrap has finished
func (g *Game) Ready() bool {
	return g.ready
}

// Debug reports whether the debug HUD is shown
func (g *Game) Debug() bool {
	return g.debug
}

// Director returns the scene director
func (g *Game) Director() *director.Director {
	return g.director
}

// Close stops bootstrap and destroys the current scene
func (g *Game) Close() {
	g.boot.Stop()
	g.director.Destroy()
	log.Printf("[Game] closed after %d frames", g.frames)
}
