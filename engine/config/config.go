// Package config reads the optional cartridge.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/cartridge/engine/assets"
	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/logx"
	"github.com/hubastard/cartridge/engine/text"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "cartridge.yaml"

// File mirrors cartridge.yaml. Any key left out keeps its default.
type File struct {
	Window WindowConfig `yaml:"window"`
	Loop   LoopConfig   `yaml:"loop"`
	Font   FontConfig   `yaml:"font"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	VSync      bool   `yaml:"vsync"`
	Background string `yaml:"background"`
	Icon       string `yaml:"icon,omitempty"`
}

type LoopConfig struct {
	UpdateIntervalMs   float64 `yaml:"update_interval_ms"`
	MaxUpdatesPerFrame int     `yaml:"max_updates_per_frame"`
}

// FontConfig selects the default label font. An empty path means the
// embedded Latin Modern Sans.
type FontConfig struct {
	Path  string  `yaml:"path,omitempty"`
	Size  float64 `yaml:"size"`
	Color string  `yaml:"color"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() *File {
	return &File{
		Window: WindowConfig{
			Title:      core.DefaultTitle,
			Width:      core.DefaultWidth,
			Height:     core.DefaultHeight,
			VSync:      true,
			Background: core.DefaultClearColor.String(),
		},
		Loop: LoopConfig{
			UpdateIntervalMs:   core.DefaultUpdateIntervalMs,
			MaxUpdatesPerFrame: core.DefaultMaxUpdatesPerFrame,
		},
		Font: FontConfig{
			Size:  text.DefaultSizePt,
			Color: text.DefaultColor.String(),
		},
		Log: LogConfig{Level: "warn"},
	}
}

// LoadOptional reads path if it exists. A missing file yields Default().
// Unknown keys are an error.
func LoadOptional(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config file, using defaults", "path", path)
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (*File, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted later.
func (f *File) Validate() error {
	if f.Window.Width < 0 || f.Window.Height < 0 {
		return fmt.Errorf("config: window size %dx%d", f.Window.Width, f.Window.Height)
	}
	if _, err := colors.ParseHex(f.Window.Background); err != nil {
		return fmt.Errorf("config: window.background: %w", err)
	}
	if _, err := colors.ParseHex(f.Font.Color); err != nil {
		return fmt.Errorf("config: font.color: %w", err)
	}
	if _, err := logx.LevelFromString(f.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	return nil
}

// Core converts the window and loop sections, loading the icon if one is
// named. A zero interval is left for the scheduler to default; a cap below
// one is raised to one so an explicit 0 never turns into the default.
func (f *File) Core() (core.Config, error) {
	bg, err := colors.ParseHex(f.Window.Background)
	if err != nil {
		return core.Config{}, fmt.Errorf("config: window.background: %w", err)
	}
	cfg := core.Config{
		Title:              f.Window.Title,
		Width:              f.Window.Width,
		Height:             f.Window.Height,
		VSync:              f.Window.VSync,
		ClearColor:         bg,
		UpdateIntervalMs:   f.Loop.UpdateIntervalMs,
		MaxUpdatesPerFrame: max(f.Loop.MaxUpdatesPerFrame, 1),
	}
	if f.Window.Icon != "" {
		cfg.Icon, err = assets.LoadImage(f.Window.Icon)
		if err != nil {
			return core.Config{}, fmt.Errorf("config: window.icon: %w", err)
		}
	}
	return cfg, nil
}

// Fonts builds the (not yet started) font service.
func (f *File) Fonts() (*text.Fonts, error) {
	c, err := colors.ParseHex(f.Font.Color)
	if err != nil {
		return nil, fmt.Errorf("config: font.color: %w", err)
	}
	return text.NewFonts(f.Font.Path, f.Font.Size, c), nil
}

func (f *File) LogLevel() (slog.Level, error) { return logx.LevelFromString(f.Log.Level) }
