package config

// ParticleBundle is the root config for particles.yaml
type ParticleBundle struct {
	Emitters []EmitterConfig `yaml:"emitters"`
}

// Emitter returns the emitter with the given name
func (b *ParticleBundle) Emitter(name string) (EmitterConfig, bool) {
	for _, e := range b.Emitters {
		if e.Name == name {
			return e, true
		}
	}
	return EmitterConfig{}, false
}

// EmitterConfig describes how one emitter spawns and animates particles.
// Angles are in degrees, 0 pointing right and -90 pointing up.
type EmitterConfig struct {
	Name      string  `yaml:"name"`
	SpawnRate float64 `yaml:"spawnRate"` // particles per second
	MaxActive int     `yaml:"maxActive"`
	Lifetime  Range   `yaml:"lifetime"` // seconds
	Speed     Range   `yaml:"speed"`    // pixels per second
	Angle     Range   `yaml:"angle"`
	BoxX      float64 `yaml:"boxX"`    // spawn area width
	BoxY      float64 `yaml:"boxY"`    // spawn area height
	Gravity   float64 `yaml:"gravity"` // pixels per second²
	Size      Range   `yaml:"size"`    // start and end radius
	Start     Color   `yaml:"start"`
	End       Color   `yaml:"end"`
	Additive  bool    `yaml:"additive"`
}

// Range is an inclusive float interval
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}
