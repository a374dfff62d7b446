package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all loaded configurations
type Config struct {
	Showcase  *ShowcaseConfig
	Particles *ParticleBundle
}

// Loader loads showcase configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadShowcase loads showcase.yaml
func (l *Loader) LoadShowcase() (*ShowcaseConfig, error) {
	var cfg ShowcaseConfig
	if err := l.decode("showcase.yaml", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid showcase.yaml: %w", err)
	}
	return &cfg, nil
}

// LoadParticles loads particles.yaml
func (l *Loader) LoadParticles() (*ParticleBundle, error) {
	var bundle ParticleBundle
	if err := l.decode("particles.yaml", &bundle); err != nil {
		return nil, err
	}
	if err := bundle.Validate(); err != nil {
		return nil, fmt.Errorf("invalid particles.yaml: %w", err)
	}
	return &bundle, nil
}

// LoadAll loads all configurations and checks that the fire scene's
// emitter exists in the particle bundle.
func (l *Loader) LoadAll() (*Config, error) {
	showcase, err := l.LoadShowcase()
	if err != nil {
		return nil, err
	}

	particles, err := l.LoadParticles()
	if err != nil {
		return nil, err
	}

	if _, ok := particles.Emitter(showcase.Fire.Emitter); !ok {
		return nil, fmt.Errorf("fire emitter %q not found in particles.yaml", showcase.Fire.Emitter)
	}

	return &Config{
		Showcase:  showcase,
		Particles: particles,
	}, nil
}

// Validate reports the first invalid setting
func (c *ShowcaseConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return errors.New("display size must be positive")
	case c.Display.Framerate <= 0:
		return errors.New("display framerate must be positive")
	case c.Cards.Count <= 0:
		return errors.New("cards.count must be positive")
	case c.Cards.Width <= 0 || c.Cards.Height <= 0:
		return errors.New("card size must be positive")
	case c.Cards.Duration <= 0 || c.Cards.FastDuration <= 0:
		return errors.New("card durations must be positive")
	case c.Dialogue.Endpoint == "":
		return errors.New("dialogue.endpoint is required")
	case c.Dialogue.MaxConcurrentFetches <= 0:
		return errors.New("dialogue.maxConcurrentFetches must be positive")
	case c.Fire.Emitter == "":
		return errors.New("fire.emitter is required")
	}
	return nil
}

// Validate reports the first invalid emitter
func (b *ParticleBundle) Validate() error {
	seen := make(map[string]bool, len(b.Emitters))
	for i, e := range b.Emitters {
		if e.Name == "" {
			return fmt.Errorf("emitter %d has no name", i)
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate emitter %q", e.Name)
		}
		seen[e.Name] = true
		if e.SpawnRate <= 0 || e.MaxActive <= 0 {
			return fmt.Errorf("emitter %q: spawnRate and maxActive must be positive", e.Name)
		}
		if e.Lifetime.Min <= 0 || e.Lifetime.Max < e.Lifetime.Min {
			return fmt.Errorf("emitter %q: invalid lifetime range", e.Name)
		}
	}
	return nil
}
