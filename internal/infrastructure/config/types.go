package config

import "time"

// ShowcaseConfig is the root config for showcase.yaml
type ShowcaseConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Loading  LoadingConfig  `yaml:"loading"`
	Cards    CardsConfig    `yaml:"cards"`
	Dialogue DialogueConfig `yaml:"dialogue"`
	Fire     FireConfig     `yaml:"fire"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
	Background   Color  `yaml:"background"`
}

// LoadingConfig configures the loading overlay
type LoadingConfig struct {
	Fade time.Duration `yaml:"fade"`
}

// CardsConfig configures the card shuffle scene.
// Stacks sit at (center-Spread, center-Rise) and (center+Spread, center-Rise).
type CardsConfig struct {
	Count        int           `yaml:"count"`
	Width        int           `yaml:"width"`
	Height       int           `yaml:"height"`
	Offset       float64       `yaml:"offset"` // pixels between stacked cards
	Spread       float64       `yaml:"spread"`
	Rise         float64       `yaml:"rise"`
	Duration     time.Duration `yaml:"duration"`
	Delay        time.Duration `yaml:"delay"`
	FastDuration time.Duration `yaml:"fastDuration"`
	FastDelay    time.Duration `yaml:"fastDelay"`
}

// DialogueConfig configures the dialogue playback scene
type DialogueConfig struct {
	Endpoint             string        `yaml:"endpoint"`
	Timeout              time.Duration `yaml:"timeout"`
	MaxConcurrentFetches int           `yaml:"maxConcurrentFetches"`
	AvatarSize           int           `yaml:"avatarSize"`
	EmojiSize            int           `yaml:"emojiSize"`
	DefaultAvatar        string        `yaml:"defaultAvatar"`
	Slide                time.Duration `yaml:"slide"`
	Fade                 time.Duration `yaml:"fade"`
	Hold                 time.Duration `yaml:"hold"`
	Restart              time.Duration `yaml:"restart"`
}

// FireConfig configures the particle fire scene
type FireConfig struct {
	Fade    time.Duration `yaml:"fade"`
	Emitter string        `yaml:"emitter"`
}

// Color is an 8-bit RGBA color
type Color struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}
