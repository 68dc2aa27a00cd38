package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// overrides are the environment variables that take precedence over the
// config file. Unset variables leave their field nil.
type overrides struct {
	Addr          *string `env:"LIFEPATH_ADDR"`
	DataDir       *string `env:"LIFEPATH_DATA_DIR"`
	StorageDriver *string `env:"LIFEPATH_STORAGE_DRIVER"`
	StoragePath   *string `env:"LIFEPATH_STORAGE_PATH"`
	Seed          *int64  `env:"LIFEPATH_SEED"`
	Difficulty    *string `env:"LIFEPATH_DIFFICULTY"`
	AutoSave      *bool   `env:"LIFEPATH_AUTOSAVE"`
	Pregnancy     *bool   `env:"LIFEPATH_PREGNANCY"`
}

// LoadDotEnv loads a .env file into the process environment. A missing
// file is not an error.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ApplyEnv overlays LIFEPATH_* variables onto c. A difficulty from the
// environment replaces the policy with that preset.
func ApplyEnv(c *Config) error {
	var o overrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Addr != nil {
		c.Server.Addr = *o.Addr
	}
	if o.DataDir != nil {
		c.Server.DataDir = *o.DataDir
	}
	if o.StorageDriver != nil && *o.StorageDriver != c.Storage.Driver {
		c.Storage.Driver = *o.StorageDriver
		// The old path belonged to the old driver.
		c.Storage.Path = ""
	}
	if o.StoragePath != nil {
		c.Storage.Path = *o.StoragePath
	}
	if o.Seed != nil {
		c.Game.Seed = *o.Seed
	}
	if o.AutoSave != nil {
		c.Game.AutoSave = o.AutoSave
	}
	if o.Pregnancy != nil {
		c.Game.PregnancyEnabled = *o.Pregnancy
	}
	if o.Difficulty != nil {
		p, ok := Preset(*o.Difficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q", *o.Difficulty)
		}
		c.Game.Difficulty = *o.Difficulty
		c.Policy = p
	}
	c.ApplyDefaults()
	return nil
}
