package harness

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// Config selects and sizes the self-check suites.
type Config struct {
	// Suites to run, all registered suites when empty.
	Suites []string `toml:"suites"`
	// Parallel bounds the number of suites running at once.
	Parallel int `toml:"parallel"`
	// Seed of the value generators.
	Seed uint `toml:"seed"`
	// Elements is the element count of the randomized checks.
	Elements int `toml:"elements"`
	Verbose  bool `toml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Parallel: 4,
		Seed:     1,
		Elements: 10000,
	}
}

// LoadConfig reads a TOML file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "harness: load %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Newf("harness: unknown config keys %v", undecoded)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Parallel <= 0 {
		return errors.Newf("harness: parallel must be positive, got %d", c.Parallel)
	}
	if c.Elements <= 0 {
		return errors.Newf("harness: elements must be positive, got %d", c.Elements)
	}
	for _, name := range c.Suites {
		if _, ok := registry[name]; !ok {
			return errors.Newf("harness: unknown suite %q", name)
		}
	}
	return nil
}
