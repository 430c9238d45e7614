// Copyright (c) 2026, The Chroma Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Chromafig renders the project's figure set and prints the tabulated
// derivations behind it.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// Config is the renderer configuration, read from an optional TOML
// file and overridable by flags.
type Config struct {
	// OutDir is the directory figures are written into (created if
	// missing).
	OutDir string `toml:"out_dir"`

	// DPI is the raster resolution for PNG output.
	DPI int `toml:"dpi"`

	// Formats lists the output formats, from "png" and "svg".
	Formats []string `toml:"formats"`
}

func defaultConfig() Config {
	return Config{OutDir: "images", DPI: 300, Formats: []string{"png"}}
}

// loadConfig reads the TOML config at path over the defaults.  A
// missing file is only an error when the path was given explicitly.
func loadConfig(path string, explicit bool) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for _, f := range cfg.Formats {
		if f != "png" && f != "svg" {
			return cfg, fmt.Errorf("unsupported format %q in %s", f, path)
		}
	}
	return cfg, nil
}

func main() {
	var (
		cfgPath string
		verbose bool
		cfg     Config
	)
	root := &cobra.Command{
		Use:           "chromafig",
		Short:         "render color-space figures and derivations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			var err error
			cfg, err = loadConfig(cfgPath, cmd.Flags().Changed("config"))
			return err
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "chromafig.toml", "TOML config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(figuresCmd(&cfg))
	root.AddCommand(deriveCmd())

	if err := root.Execute(); err != nil {
		slog.Error("chromafig failed", "err", err)
		os.Exit(1)
	}
}
