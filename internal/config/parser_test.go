package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/scrapkit/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `data_dir: /tmp/scrapbooks
title: "Album Keluarga"
default_theme: nature
default_pages: 3
pdf:
  page_size: a4
  mode: advanced
log:
  level: debug
`

	partialYAML := `default_theme: cute
`

	invalidYAML := `title: [unclosed
default_pages: 3
`

	unknownTheme := `default_theme: gothic
`

	tooManyPages := `default_pages: 500
`

	badPageSize := `pdf:
  page_size: tabloid
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid configuration is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "/tmp/scrapbooks", cfg.DataDir)
				require.Equal(t, "Album Keluarga", cfg.Title)
				require.Equal(t, "nature", cfg.DefaultTheme)
				require.Equal(t, 3, cfg.DefaultPages)
				require.Equal(t, PDFConfig{PageSize: "a4", Mode: "advanced", SkipBrokenPhotos: true}, cfg.PDF)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.Human, "unset fields keep their defaults")
			},
		},
		{
			name:     "partial file keeps defaults",
			contents: partialYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "cute", cfg.DefaultTheme)
				require.Equal(t, 5, cfg.DefaultPages)
				require.Equal(t, "letter", cfg.PDF.PageSize)
			},
		},
		{
			name:     "invalid yaml returns parse error with line",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name:     "unknown theme is rejected",
			contents: unknownTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "default_theme", validationErr.Field)
				require.Contains(t, validationErr.Message, "vintage, modern, cute, nature, travel, birthday")
			},
		},
		{
			name:     "page count above limit is rejected",
			contents: tooManyPages,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "default_pages", validationErr.Field)
			},
		},
		{
			name:     "unknown page size is rejected",
			contents: badPageSize,
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "pdf.page_size", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o644))

			cfg, err := Load(path, Default(t.TempDir()))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	cfg, err := Load(filepath.Join(base, "absent.yaml"), Default(base))
	require.NoError(t, err)
	require.Equal(t, Default(base), *cfg)
	require.Equal(t, filepath.Join(base, "scrapbooks"), cfg.DataDir)
}

func TestLoadExpandsHomeInDataDir(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: ~/albums\n"), 0o644))

	cfg, err := Load(path, Default(t.TempDir()))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "albums"), cfg.DataDir)
}

func TestLoadUnreadablePath(t *testing.T) {
	t.Parallel()

	_, err := Load(t.TempDir(), Default(t.TempDir()))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, extractLine(nil))
	require.Equal(t, 0, extractLine(os.ErrNotExist))
	require.Equal(t, 7, extractLine(&apperrors.ParseError{Message: "yaml: line 7: did not find expected key"}))
}

func TestLoadStrictPhotoDecoding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pdf:\n  skip_broken_photos: false\n"), 0o644))

	cfg, err := Load(path, Default(t.TempDir()))
	require.NoError(t, err)
	require.False(t, cfg.PDF.SkipBrokenPhotos)
	require.True(t, Default("/srv").PDF.SkipBrokenPhotos)
}
