package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

type cliResult struct {
	stdout string
	stderr string
}

func executeCommand(args ...string) (cliResult, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String()}, err
}

// setupHome points HOME at a temporary directory and returns it.
func setupHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func dataDir(home string) string {
	return filepath.Join(home, ".scrapkit", "scrapbooks")
}

func writeConfig(t *testing.T, home, contents string) {
	t.Helper()
	path := filepath.Join(home, ".scrapkit", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func writeImage(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, imaging.Save(imaging.New(w, h, color.NRGBA{R: 180, G: 90, B: 40, A: 255}), path))
	return path
}

func saveTemplate(t *testing.T, name string, pages string) {
	t.Helper()
	_, err := executeCommand("template", "vintage", "--pages", pages, "--save", "--name", name, "--seed", "7")
	require.NoError(t, err)
}
