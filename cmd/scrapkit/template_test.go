package main

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/scrapkit/internal/scrapbook"
	"github.com/alexisbeaulieu97/scrapkit/internal/theme"
)

func decodeScrapbook(t *testing.T, out string) *scrapbook.Scrapbook {
	t.Helper()
	var sb scrapbook.Scrapbook
	require.NoError(t, json.Unmarshal([]byte(out), &sb))
	return &sb
}

func TestTemplateCommand_JSONIsSeeded(t *testing.T) {
	setupHome(t)

	first, err := executeCommand("template", "nature", "--pages", "3", "--json", "--seed", "42")
	require.NoError(t, err)
	second, err := executeCommand("template", "nature", "--pages", "3", "--json", "--seed", "42")
	require.NoError(t, err)

	a, b := decodeScrapbook(t, first.stdout), decodeScrapbook(t, second.stdout)
	require.Len(t, a.Pages, 3)
	require.Equal(t, "nature", a.Theme)
	require.Equal(t, "Nature Fresh", a.ThemeName)
	require.Empty(t, cmp.Diff(a.Pages, b.Pages))

	nature, _ := theme.Lookup("nature")
	for i, page := range a.Pages {
		require.Equal(t, i+1, page.ID)
		require.Contains(t, nature.Backgrounds, page.Background)
	}
}

func TestTemplateCommand_TableOutput(t *testing.T) {
	setupHome(t)

	res, err := executeCommand("template", "cute", "--pages", "2", "--title", "Ulang Tahun Dina")
	require.NoError(t, err)
	require.Contains(t, res.stdout, "Ulang Tahun Dina")
	require.Contains(t, res.stdout, "Cute & Sweet")
	require.Contains(t, res.stdout, "PAGE")
	require.Contains(t, res.stdout, "Pages:   2")
}

func TestTemplateCommand_SaveWritesIntoDataDir(t *testing.T) {
	home := setupHome(t)

	res, err := executeCommand("template", "travel", "--pages", "1", "--save", "--name", "trip.json")
	require.NoError(t, err)

	path := filepath.Join(dataDir(home), "trip.json")
	require.FileExists(t, path)
	require.Contains(t, res.stdout, "[OK] Saved to "+path)
}

func TestTemplateCommand_UsesConfigDefaults(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "default_theme: birthday\ndefault_pages: 2\ntitle: Pesta\n")

	res, err := executeCommand("template", "--json")
	require.NoError(t, err)

	sb := decodeScrapbook(t, res.stdout)
	require.Equal(t, "birthday", sb.Theme)
	require.Equal(t, "Pesta", sb.Title)
	require.Len(t, sb.Pages, 2)
}

func TestTemplateCommand_UnknownTheme(t *testing.T) {
	setupHome(t)

	res, err := executeCommand("template", "gothic", "--pages", "1", "--json")
	require.NoError(t, err)
	require.Contains(t, res.stderr, "unknown theme, using fallback")

	vintage, _ := theme.Lookup(theme.Fallback)
	sb := decodeScrapbook(t, res.stdout)
	require.Contains(t, vintage.Backgrounds, sb.Pages[0].Background)

	_, err = executeCommand("template", "gothic", "--strict")
	require.ErrorContains(t, err, "Failed to generate template")
	require.ErrorContains(t, err, "scrapkit themes")
}

func TestTemplateCommand_NegativePages(t *testing.T) {
	setupHome(t)

	_, err := executeCommand("template", "--pages=-1")
	require.ErrorContains(t, err, "page count must not be negative")
}

func TestTemplateCommand_InvalidConfig(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "pdf:\n  mode: glossy\n")

	_, err := executeCommand("template")
	require.ErrorContains(t, err, "loading configuration")
	require.ErrorContains(t, err, "pdf.mode")
}

func TestPageCommand(t *testing.T) {
	setupHome(t)

	res, err := executeCommand("page", "modern", "4", "--seed", "3")
	require.NoError(t, err)

	var page scrapbook.Page
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &page))
	require.Equal(t, 4, page.ID)
	require.Equal(t, "modern", page.Theme)
	require.NotNil(t, page.Layout)
	require.Len(t, page.Texts, len(page.Layout.Texts))
	require.Empty(t, page.Photos)

	_, err = executeCommand("page", "modern", "four")
	require.ErrorContains(t, err, "parsing page number")

	_, err = executeCommand("page", "gothic", "--strict")
	require.Error(t, err)
}
