// Package config loads the optional YAML settings file.
//
// Every key is optional; missing keys keep their defaults:
//
//	color: auto            # auto | always | never
//	verbose: false
//	files:
//	  data: file.txt       # opened (or created) by chapter 7
//	  username: username.txt
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/marcodamonte/chapters/chapter"
)

// Files names the files chapter 7 touches.
type Files struct {
	Data     string `yaml:"data"`
	Username string `yaml:"username"`
}

// Config is the decoded settings file. Use Default for the zero state.
type Config struct {
	Color   chapter.ColorMode `yaml:"color"`
	Verbose bool              `yaml:"verbose"`
	Files   Files             `yaml:"files"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Color: chapter.ColorAuto,
		Files: Files{
			Data:     "file.txt",
			Username: "username.txt",
		},
	}
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r over the defaults. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that YAML types alone cannot.
func (c Config) Validate() error {
	if _, err := chapter.ParseColorMode(string(c.Color)); err != nil {
		return err
	}
	if c.Files.Data == "" {
		return errors.New("files.data must not be empty")
	}
	if c.Files.Username == "" {
		return errors.New("files.username must not be empty")
	}
	return nil
}
