package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full application configuration, loaded from a TOML
// file with sane defaults for every field.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Engine  EngineConfig  `toml:"engine"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
}

type DisplayConfig struct {
	Width  int `toml:"width"`  // 0 = use terminal width
	Height int `toml:"height"` // 0 = use terminal height, minus status rows
}

// Duration decodes TOML duration strings like "50ms" or "1s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the duration as a standard time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

type EngineConfig struct {
	TickRate Duration `toml:"tick_rate"`

	// Fixed pool capacities per component kind; pools never resize
	ActorCapacity   int `toml:"actor_capacity"`
	KineticCapacity int `toml:"kinetic_capacity"`
	DecayCapacity   int `toml:"decay_capacity"`

	// Default lifetime in ticks for glyphs spawned by the command layer
	SpawnTTL int `toml:"spawn_ttl"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // debug, info, warn, error
	Format string `toml:"format"` // json or console
	File   string `toml:"file"`   // terminal owns stdout, so logs go to a file
}

type AudioConfig struct {
	Enabled    bool `toml:"enabled"`
	SampleRate int  `toml:"sample_rate"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{},
		Engine: EngineConfig{
			TickRate:        Duration(50 * time.Millisecond),
			ActorCapacity:   256,
			KineticCapacity: 256,
			DecayCapacity:   256,
			SpawnTTL:        200,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			File:   "gridstorm.log",
		},
		Audio: AudioConfig{
			Enabled:    false,
			SampleRate: 44100,
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("engine.tick_rate must be positive, got %v", c.Engine.TickRate)
	}
	if c.Engine.ActorCapacity < 1 || c.Engine.KineticCapacity < 1 || c.Engine.DecayCapacity < 1 {
		return fmt.Errorf("engine pool capacities must be at least 1")
	}
	if c.Engine.SpawnTTL < 0 {
		return fmt.Errorf("engine.spawn_ttl must not be negative, got %d", c.Engine.SpawnTTL)
	}
	if c.Audio.SampleRate < 8000 {
		return fmt.Errorf("audio.sample_rate too low: %d", c.Audio.SampleRate)
	}
	return nil
}
