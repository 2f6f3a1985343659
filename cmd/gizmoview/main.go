// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gizmoview is a point cloud viewer with a transformation gizmo.
// Click a cloud to select it (Shift or Control to add or remove), drag the
// axis arrows to move the selection, 1/2/3/0 switch between translate,
// rotate, scale and no handles, arrow keys orbit the camera (Shift pans),
// +/- zoom.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"cogentcore.org/pointgizmo/base/errors"
	"cogentcore.org/pointgizmo/base/logx"
	"cogentcore.org/pointgizmo/gizmo"
	"cogentcore.org/pointgizmo/internal/sceneio"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/natefinch/lumberjack"
	"github.com/spf13/cobra"
)

// Config is the viewer configuration, set from the command line.
type Config struct {
	// Scene is the YAML scene file; a demo scene is used if empty.
	Scene string

	// Params is the TOML gizmo parameters file, reloaded when it changes.
	Params string

	// Mode is the initial gizmo mode.
	Mode string

	// Width is the initial window width.
	Width int

	// Height is the initial window height.
	Height int

	// LogFile is a file to write logs to instead of stderr.
	LogFile string

	// Verbose turns on debug logging.
	Verbose bool
}

func main() {
	cfg := &Config{}
	cmd := &cobra.Command{
		Use:          "gizmoview",
		Short:        "View point clouds and move them with a transformation gizmo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cfg)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&cfg.Scene, "scene", "s", "", "YAML scene file (default: demo scene)")
	fs.StringVarP(&cfg.Params, "params", "p", "", "TOML gizmo parameters file, reloaded on change")
	fs.StringVarP(&cfg.Mode, "mode", "m", gizmo.ModeTranslate.String(), "initial gizmo mode: none, translate, rotate or scale")
	fs.IntVar(&cfg.Width, "width", 1280, "window width")
	fs.IntVar(&cfg.Height, "height", 800, "window height")
	fs.StringVar(&cfg.LogFile, "log-file", "", "write logs to this file, rotated by size")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs the default slog logger for the config.
// It returns the log file to close at exit, nil for stderr.
func setupLogging(cfg *Config) io.Closer {
	if cfg.Verbose {
		logx.SetLevel(slog.LevelDebug)
	}
	if cfg.LogFile == "" {
		logx.SetDefault(os.Stderr)
		return nil
	}
	lj := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
	}
	logx.SetDefault(lj)
	return lj
}

// loadParams reads the params file, if any. A missing file is created
// with the default params so it can be edited while the viewer runs.
func loadParams(filename string) (*gizmo.Params, error) {
	params := gizmo.NewParams()
	if filename == "" {
		return params, nil
	}
	err := params.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Info("gizmoview: writing default params", "file", filename)
		return params, params.Save(filename)
	}
	return params, err
}

// Run runs the viewer with the given config until the window is closed.
func Run(cfg *Config) error {
	if lf := setupLogging(cfg); lf != nil {
		defer lf.Close()
	}

	var mode gizmo.Modes
	err := mode.SetString(cfg.Mode)
	if err != nil {
		return err
	}
	sd := sceneio.Default()
	if cfg.Scene != "" {
		sd, err = sceneio.Open(cfg.Scene)
		if err != nil {
			return err
		}
	}
	params, err := loadParams(cfg.Params)
	if err != nil {
		return err
	}

	g, err := NewGame(sd, params, cfg.Params)
	if err != nil {
		return err
	}
	defer g.Close()
	g.tool.SetMode(mode)
	slog.Info("gizmoview: starting", "clouds", len(g.clouds), "mode", mode)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("gizmoview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gizmoview: %w", err)
	}
	return nil
}
