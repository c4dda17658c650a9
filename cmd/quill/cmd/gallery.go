// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"cogentcore.org/quill/base/logx"
	"cogentcore.org/quill/cmd/quill/config"
	"golang.org/x/sync/errgroup"
)

// Gallery renders the examples with the given names, or all of them if
// no names are given, to every configured format in the output directory.
// Charts are rendered in parallel, up to [config.Config.Parallel] at once.
func Gallery(c *config.Config, names ...string) error {
	exs, err := selectExamples(names)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Output, 0755); err != nil {
		return fmt.Errorf("gallery: %w", err)
	}
	var g errgroup.Group
	g.SetLimit(c.Parallel)
	for _, ex := range exs {
		g.Go(func() error {
			return renderExample(c, ex)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logx.PrintfInfo("rendered %d charts to %s\n", len(exs), c.Output)
	return nil
}

func renderExample(c *config.Config, ex Example) error {
	ch := ex.Make(c)
	for _, f := range c.Formats {
		fn := filepath.Join(c.Output, ex.Name+"."+f)
		st := time.Now()
		var err error
		switch f {
		case "png":
			err = ch.PNGToFile(fn, c.Scale)
		default:
			err = ch.SVGToFile(fn)
		}
		if err != nil {
			return fmt.Errorf("gallery: rendering %s: %w", ex.Name, err)
		}
		slog.Info("rendered chart", "file", fn, "took", time.Since(st))
	}
	return nil
}

// selectExamples returns the examples with the given names, in order.
func selectExamples(names []string) ([]Example, error) {
	if len(names) == 0 {
		return Examples, nil
	}
	exs := make([]Example, 0, len(names))
	for _, nm := range names {
		ex, ok := findExample(nm)
		if !ok {
			return nil, fmt.Errorf("gallery: unknown example %q; run \"quill list\" to see the examples", nm)
		}
		exs = append(exs, ex)
	}
	return exs, nil
}

func findExample(name string) (Example, bool) {
	for _, ex := range Examples {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}
