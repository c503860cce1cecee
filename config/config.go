// seehuhn.de/go/cvmaker - render résumé documents as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config holds the run-level settings of the résumé renderer.
//
// Settings are read from an optional configuration file and from
// environment variables with the prefix CVMAKER_, for example
// CVMAKER_PAGE_SIZE=A4.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/cvmaker/unit"
)

// EnvPrefix is the prefix of environment variables which override
// configuration values.
const EnvPrefix = "CVMAKER"

// Config is the complete configuration of one run.
type Config struct {
	Page PageConfig `mapstructure:"page"`
	Font FontConfig `mapstructure:"font"`
	Line LineConfig `mapstructure:"line"`
	Log  LogConfig  `mapstructure:"log"`
}

// PageConfig selects the paper.
type PageConfig struct {
	Size        string `mapstructure:"size" validate:"required"`
	Orientation string `mapstructure:"orientation" validate:"oneof=portrait landscape"`
}

// FontConfig lists the fonts to register in addition to the built-in ones.
type FontConfig struct {
	DefaultFace string  `mapstructure:"default_face" validate:"required"`
	DefaultSize float64 `mapstructure:"default_size" validate:"gt=0"`

	// Dir is prepended to relative paths in Files.
	Dir string `mapstructure:"dir"`

	// Files maps font names to font files.
	Files map[string]string `mapstructure:"files"`
}

// LineConfig holds defaults for stroked lines.
type LineConfig struct {
	DefaultWidth float64 `mapstructure:"default_width" validate:"gt=0"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format" validate:"oneof=auto console json"`
	Output string `mapstructure:"output"` // stderr, stdout, or file path
}

// PlatformFonts are the fonts registered by default.  The files are looked
// up in the Windows font directory, or relative to the current directory on
// other systems.
var PlatformFonts = map[string]string{
	"msmincho": "msmincho.ttc",
	"msgothic": "msgothic.ttc",
	"yugothl":  "YuGothL.ttc",
	"meiryo":   "meiryo.ttc",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("page.size", "B5")
	v.SetDefault("page.orientation", "portrait")

	v.SetDefault("font.default_face", "msmincho")
	v.SetDefault("font.default_size", 12)
	v.SetDefault("font.dir", defaultFontDir())
	v.SetDefault("font.files", PlatformFonts)

	v.SetDefault("line.default_width", 0.5)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")
	v.SetDefault("log.output", "stderr")
}

func defaultFontDir() string {
	if runtime.GOOS != "windows" {
		return ""
	}
	root := os.Getenv("SystemRoot")
	if root == "" {
		root = `C:\Windows`
	}
	return filepath.Join(root, "Fonts")
}

// Load reads the configuration.
//
// If path is empty, a file named "cvmaker.yaml" (or .toml, .json) is
// searched in the current directory and in the user configuration
// directory, and it is not an error if none is found.  Otherwise the
// given file must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cvmaker")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "cvmaker"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks that all values are usable.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := unit.Paper(cfg.Page.Size); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// PageRect returns the page rectangle in PDF device units.
func (cfg *Config) PageRect() (*rect.Rect, error) {
	paper, err := unit.Paper(cfg.Page.Size)
	if err != nil {
		return nil, err
	}
	if cfg.Page.Orientation == "landscape" {
		paper = unit.Landscape(paper)
	}
	return paper, nil
}
