package main

import (
	"errors"
	"io/fs"

	"github.com/BurntSushi/toml"
)

// Config is the optional fecc.toml configuration file: defaults for the
// flags that are tedious to respecify on every invocation. Flags passed on
// the command line always win over the config file.
type Config struct {
	Specs      string `toml:"specs"`
	Grammar    string `toml:"grammar"`
	IdentClass string `toml:"ident_class"`
	CacheDir   string `toml:"cache_dir"`
}

// defaultConfig is used when no --config file is given or named file does
// not exist.
func defaultConfig() Config {
	return Config{IdentClass: "IDENT"}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
