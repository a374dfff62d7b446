package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/showcase/internal/application/game"
	"github.com/younwookim/showcase/internal/application/scene"
	"github.com/younwookim/showcase/internal/application/scene/cards"
	"github.com/younwookim/showcase/internal/application/scene/dialogue"
	"github.com/younwookim/showcase/internal/application/scene/fire"
	"github.com/younwookim/showcase/internal/application/ui"
	"github.com/younwookim/showcase/internal/infrastructure/config"
	"github.com/younwookim/showcase/internal/infrastructure/remote"
)

// loadConfig reads configs from dir, or from the embedded copy when dir is empty
func loadConfig(dir string) (*config.Config, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadAll()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadAll()
}

// parseScene resolves a -scene flag value; empty means no initial scene
func parseScene(value string) (scene.Name, error) {
	if value == "" {
		return "", nil
	}
	for _, name := range scene.Names {
		if string(name) == value {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown scene %q (want one of %v)", value, scene.Names)
}

// sceneRegistry builds one constructor per scene
func sceneRegistry(cfg *config.Config, src dialogue.Source, rng *rand.Rand) func(*scene.Context) map[scene.Name]scene.Constructor {
	return func(ctx *scene.Context) map[scene.Name]scene.Constructor {
		return map[scene.Name]scene.Constructor{
			scene.CardShuffle:      func() scene.Scene { return cards.New(ctx) },
			scene.DialoguePlayback: func() scene.Scene { return dialogue.New(ctx, src) },
			scene.FireEffect:       func() scene.Scene { return fire.New(ctx, cfg.Particles, rng) },
		}
	}
}

func main() {
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded ones")
	initial := flag.String("scene", "", "Scene to open at start (AceOfShadows, MagicWords, PhoenixFlame)")
	verbose := flag.Bool("verbose", true, "Write logs to stderr")
	debug := flag.Bool("debug", false, "Show the debug HUD at start")
	seed := flag.Int64("seed", 0, "Particle RNG seed (0 picks one from the clock)")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	start, err := parseScene(*initial)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("[Main] particle seed %d", *seed)

	widgets, err := ui.NewFactory()
	if err != nil {
		log.Fatalf("Failed to create widgets: %v", err)
	}

	display := cfg.Showcase.Display
	g := game.New(game.Options{
		Config:  cfg.Showcase,
		Initial: start,
		Debug:   *debug,
		Widgets: widgets,
		Scenes: func(ctx *scene.Context) map[scene.Name]scene.Constructor {
			client := remote.NewClient(cfg.Showcase.Dialogue.Endpoint, cfg.Showcase.Dialogue.Timeout, ctx.Assets)
			return sceneRegistry(cfg, client, rand.New(rand.NewSource(*seed)))(ctx)
		},
	})
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*max(1, display.Scale), display.ScreenHeight*max(1, display.Scale))
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
