package config

import (
	"path/filepath"

	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
)

// Config represents the scrapkit configuration document.
type Config struct {
	DataDir      string    `yaml:"data_dir" validate:"required"`
	Title        string    `yaml:"title,omitempty" validate:"max=200"`
	DefaultTheme string    `yaml:"default_theme,omitempty" validate:"required,theme"`
	DefaultPages int       `yaml:"default_pages,omitempty" validate:"min=0,max=200"`
	PDF          PDFConfig `yaml:"pdf,omitempty"`
	Log          LogConfig `yaml:"log,omitempty"`
}

// PDFConfig holds the defaults for PDF exports.
type PDFConfig struct {
	PageSize         string `yaml:"page_size,omitempty" validate:"required,oneof=letter a4 a3"`
	Mode             string `yaml:"mode,omitempty" validate:"required,oneof=basic advanced"`
	SkipBrokenPhotos bool   `yaml:"skip_broken_photos,omitempty"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	Level string `yaml:"level,omitempty" validate:"required,oneof=debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the configuration used when no file is present. Scrapbooks
// live in a "scrapbooks" directory under baseDir.
func Default(baseDir string) Config {
	return Config{
		DataDir:      filepath.Join(baseDir, "scrapbooks"),
		Title:        scrapbook.DefaultTitle,
		DefaultTheme: theme.Fallback,
		DefaultPages: 5,
		PDF: PDFConfig{
			PageSize:         "letter",
			Mode:             "basic",
			SkipBrokenPhotos: true,
		},
		Log: LogConfig{
			Level: "info",
			Human: true,
		},
	}
}
