package main

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"github.com/zeebo/errs"

	"github.com/calebcase/overpunch"
	"github.com/calebcase/overpunch/encoding"
)

// Error is the class of config errors.
var Error = errs.Class("config")

type fileConfig struct {
	Picture  string `toml:"picture"`
	Scale    int    `toml:"scale"`
	Encoding string `toml:"encoding"`
	LogLevel string `toml:"log_level"`
}

type config struct {
	// Picture takes precedence over Scale when set.
	Picture  string
	Scale    int
	Encoding string
	LogLevel zerolog.Level
}

func defaultConfig() config {
	return config{
		Encoding: "standard",
		LogLevel: zerolog.InfoLevel,
	}
}

func loadConfig(path string) (cfg config, err error) {
	defer Error.WrapP(&err)

	cfg = defaultConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, err
	}

	if meta.IsDefined("picture") {
		cfg.Picture = strings.TrimSpace(raw.Picture)
	}

	if meta.IsDefined("scale") {
		cfg.Scale = raw.Scale
	}

	if meta.IsDefined("encoding") {
		cfg.Encoding = strings.TrimSpace(raw.Encoding)
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel, err = zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return config{}, Error.New("log_level: %w", err)
		}
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, Error.New("unknown keys: %v", undecoded)
	}

	return cfg, nil
}

func (c config) schema() (s overpunch.Schema, err error) {
	defer Error.WrapP(&err)

	enc, ok := encoding.Lookup(c.Encoding)
	if !ok {
		return overpunch.Schema{}, Error.New("unknown encoding %q", c.Encoding)
	}

	if c.Picture != "" {
		return overpunch.NewSchema(c.Picture, enc)
	}

	return overpunch.Schema{
		Scale:    c.Scale,
		Encoding: enc,
	}, nil
}
