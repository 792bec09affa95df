package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration file at path on top of defaults and validates
// the result. A missing file is not an error: the defaults are returned as-is.
func Load(path string, defaults Config) (*Config, error) {
	cfg := defaults

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, apperrors.NewParseError(path, 0, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, apperrors.NewParseError(path, extractLine(err), err)
		}
	}

	dir, err := expandHome(cfg.DataDir)
	if err != nil {
		return nil, apperrors.NewValidationError("data_dir", "cannot expand home directory", err)
	}
	cfg.DataDir = dir

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
