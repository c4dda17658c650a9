// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the quill command.
package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/quill/base/iox/tomlx"
	"cogentcore.org/quill/base/iox/yamlx"
	"cogentcore.org/quill/colors"
	"github.com/mitchellh/go-homedir"
)

// Formats are the output formats that can be rendered.
var Formats = []string{"svg", "png"}

// Config is the configuration of the quill command, read from a
// TOML or YAML file and overridden by command line flags.
type Config struct {
	// Output is the directory the charts are written to.
	Output string `toml:"output" yaml:"output"`

	// Formats are the output formats to render: svg, png or both.
	Formats []string `toml:"formats" yaml:"formats"`

	// Scale is the pixel scale factor of PNG output.
	Scale float32 `toml:"scale" yaml:"scale"`

	// Font overrides the font family of every chart if set.
	Font string `toml:"font" yaml:"font"`

	// Width and Height override the canvas size of every chart if positive.
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`

	// Background overrides the background color of every chart if set.
	Background string `toml:"background" yaml:"background"`

	// Parallel is the number of charts rendered at once.
	Parallel int `toml:"parallel" yaml:"parallel"`
}

// Defaults resets the configuration to its default values.
func (c *Config) Defaults() {
	*c = Config{
		Output:   "gallery",
		Formats:  []string{"svg"},
		Scale:    2,
		Parallel: 4,
	}
}

// Open reads the configuration from the given file on top of the
// current values. The format is chosen by the extension: .toml,
// or .yaml / .yml. A leading ~ is expanded to the home directory.
func (c *Config) Open(filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(fn)) {
	case ".toml":
		err = tomlx.Open(c, fn)
	case ".yaml", ".yml":
		err = yamlx.Open(c, fn)
	default:
		return fmt.Errorf("config: unsupported config file type %q (must be .toml, .yaml or .yml)", filepath.Ext(fn))
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", filename, err)
	}
	return nil
}

// Validate checks the configuration and expands the output directory.
func (c *Config) Validate() error {
	out, err := homedir.Expand(c.Output)
	if err != nil {
		return err
	}
	c.Output = out
	if len(c.Formats) == 0 {
		return fmt.Errorf("config: no output formats (must be one of %v)", Formats)
	}
	for i, f := range c.Formats {
		f = strings.ToLower(strings.TrimPrefix(f, "."))
		if !slices.Contains(Formats, f) {
			return fmt.Errorf("config: unknown output format %q (must be one of %v)", f, Formats)
		}
		c.Formats[i] = f
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale must be positive, not %g", c.Scale)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: size must not be negative (width: %g, height: %g)", c.Width, c.Height)
	}
	if c.Background != "" {
		if _, err := colors.FromString(c.Background); err != nil {
			return fmt.Errorf("config: background: %w", err)
		}
	}
	c.Parallel = max(c.Parallel, 1)
	return nil
}
