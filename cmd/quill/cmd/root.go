// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the quill tool.
package cmd

import (
	"cogentcore.org/quill/base/logx"
	"cogentcore.org/quill/cmd/quill/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRoot returns the root command of the quill tool.
func NewRoot() *cobra.Command {
	var cfg config.Config
	cfg.Defaults()
	var flags config.Config
	flags.Defaults()
	var (
		file     string
		vv, v, q bool
	)

	root := &cobra.Command{
		Use:           "quill",
		Short:         "Render 2D charts to SVG and PNG",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()
			if file != "" {
				if err := cfg.Open(file); err != nil {
					return err
				}
			}
			applyFlags(cmd.Flags(), &cfg, &flags)
			return cfg.Validate()
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&file, "config", "c", "", "configuration file (.toml, .yaml or .yml)")
	pf.BoolVarP(&v, "verbose", "v", false, "print informational messages")
	pf.BoolVar(&vv, "vv", false, "print debug messages")
	pf.BoolVarP(&q, "quiet", "q", false, "only print errors")

	gallery := &cobra.Command{
		Use:   "gallery [example...]",
		Short: "Render the example charts, or the named ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Gallery(&cfg, args...)
		},
	}
	gf := gallery.Flags()
	gf.StringVarP(&flags.Output, "output", "o", flags.Output, "output directory")
	gf.StringSliceVarP(&flags.Formats, "format", "f", flags.Formats, "output formats (svg, png)")
	gf.Float32Var(&flags.Scale, "scale", flags.Scale, "pixel scale of PNG output")
	gf.StringVar(&flags.Font, "font", "", "font family of all charts")
	gf.Float32Var(&flags.Width, "width", 0, "canvas width of all charts")
	gf.Float32Var(&flags.Height, "height", 0, "canvas height of all charts")
	gf.StringVar(&flags.Background, "background", "", "background color of all charts")
	gf.IntVarP(&flags.Parallel, "parallel", "p", flags.Parallel, "number of charts rendered at once")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the example charts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return List(cmd.OutOrStdout())
		},
	}
	root.AddCommand(gallery, list)
	return root
}

// applyFlags copies the values of the flags set on the command line
// to the configuration, so that they override the configuration file.
func applyFlags(fs *pflag.FlagSet, c, flags *config.Config) {
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "output":
			c.Output = flags.Output
		case "format":
			c.Formats = flags.Formats
		case "scale":
			c.Scale = flags.Scale
		case "font":
			c.Font = flags.Font
		case "width":
			c.Width = flags.Width
		case "height":
			c.Height = flags.Height
		case "background":
			c.Background = flags.Background
		case "parallel":
			c.Parallel = flags.Parallel
		}
	})
}
