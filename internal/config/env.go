package config

import "github.com/caarlos0/env/v11"

type envOverrides struct {
	Seed    *int64 `env:"EMBERDEEP_SEED"`
	DataDir string `env:"EMBERDEEP_DATA_DIR"`
}

// FromEnv applies environment overrides on top of a loaded config. Setting
// EMBERDEEP_SEED also enables seeded RNG.
func FromEnv(c *Config) error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return err
	}
	if o.Seed != nil {
		c.SeededRNG.Enabled = true
		c.SeededRNG.Seed = *o.Seed
	}
	if o.DataDir != "" {
		c.DataDir = o.DataDir
	}
	return nil
}
