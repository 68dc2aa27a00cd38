package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"lifepath/internal/save"
	"lifepath/internal/sim"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Version string        `yaml:"version" json:"version"`
	Server  ServerConfig  `yaml:"server" json:"server"`
	Storage StorageConfig `yaml:"storage" json:"storage"`
	Game    GameConfig    `yaml:"game" json:"game"`
	Policy  sim.Policy    `yaml:"policy" json:"policy"`
}

type ServerConfig struct {
	Addr              string        `yaml:"addr" json:"addr"`
	DataDir           string        `yaml:"data_dir" json:"data_dir"`
	SessionCacheSize  int           `yaml:"session_cache_size" json:"session_cache_size"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" json:"read_header_timeout"`
}

// Storage drivers.
const (
	DriverMemory = save.DriverMemory
	DriverFile   = save.DriverFile
	DriverSQLite = save.DriverSQLite
)

type StorageConfig struct {
	Driver string `yaml:"driver" json:"driver"`
	Path   string `yaml:"path" json:"path"`
}

type GameConfig struct {
	// Seed fixes the random source when non-zero.
	Seed             int64  `yaml:"seed" json:"seed"`
	AutoSave         *bool  `yaml:"autosave" json:"autosave,omitempty"`
	PregnancyEnabled bool   `yaml:"pregnancy_enabled" json:"pregnancy_enabled"`
	Difficulty       string `yaml:"difficulty" json:"difficulty"`
}

// AutoSaveEnabled defaults to true when unset.
func (g GameConfig) AutoSaveEnabled() bool {
	return g.AutoSave == nil || *g.AutoSave
}

func (s *ServerConfig) ApplyDefaults() {
	if s.Addr == "" {
		s.Addr = ":8080"
	}
	if s.DataDir == "" {
		s.DataDir = "data"
	}
	if s.SessionCacheSize <= 0 {
		s.SessionCacheSize = 128
	}
	if s.ReadHeaderTimeout <= 0 {
		s.ReadHeaderTimeout = 5 * time.Second
	}
}

func (c *Config) ApplyDefaults() {
	c.Server.ApplyDefaults()
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverFile
	}
	if c.Storage.Path == "" {
		switch c.Storage.Driver {
		case DriverSQLite:
			c.Storage.Path = c.Server.DataDir + "/lifepath.db"
		default:
			c.Storage.Path = c.Server.DataDir
		}
	}
	c.Game.Difficulty = strings.ToLower(strings.TrimSpace(c.Game.Difficulty))
	if c.Game.Difficulty == "" {
		c.Game.Difficulty = DifficultyNormal
	}
	c.Policy = c.Policy.Fill()
}

// Validate reports settings that cannot be served.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory, DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if _, ok := Preset(c.Game.Difficulty); !ok {
		return fmt.Errorf("unknown difficulty %q", c.Game.Difficulty)
	}
	return nil
}

// Defaults is the configuration used when no file is given.
func Defaults() *Config {
	c := &Config{Policy: Default()}
	c.ApplyDefaults()
	return c
}

// Load reads YAML from path. The difficulty preset supplies every policy
// value the file leaves unset.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r Config
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	if preset, ok := Preset(r.Game.Difficulty); ok {
		r.Policy = overlay(preset, r.Policy)
	}
	r.ApplyDefaults()
	return &r, nil
}

// LoadOrDefault is Load, except a missing file yields Defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Defaults(), nil
	}
	c, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return c, err
}
