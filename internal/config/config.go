// Package config loads crawluri command configuration from TOML.
package config

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/ghettovoice/crawluri/internal/errorutil"
)

// Config is the command configuration.
type Config struct {
	// Base is the base URL applied to every target.
	Base string `koanf:"base"`
	// Domains are matched with [uri.HostInAnyDomain].
	Domains []string `koanf:"domains"`
	// Exact are matched with [uri.HostEqualsAnyDomain].
	Exact []string `koanf:"exact"`
	// Unique drops URIs whose canonical form was already printed.
	Unique bool `koanf:"unique"`
	// CacheSize bounds the dedup set used with Unique.
	CacheSize int `koanf:"cache_size"`
}

// ErrInvalidConfig is returned when the configuration can not be read or decoded.
const ErrInvalidConfig errorutil.Error = "invalid config"

var tomlParser = toml.Parser()

// Load reads the configuration from the TOML file at path.
func Load(path string) (*Config, error) {
	return errtrace.Wrap2(load(file.Provider(path)))
}

// Parse decodes the configuration from TOML data.
func Parse(data []byte) (*Config, error) {
	return errtrace.Wrap2(load(rawbytes.Provider(data)))
}

func load(p koanf.Provider) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(p, tomlParser); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	if cfg.CacheSize < 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "negative cache_size %d", cfg.CacheSize))
	}
	return &cfg, nil
}
