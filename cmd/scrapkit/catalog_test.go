package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThemesCommand(t *testing.T) {
	setupHome(t)

	res, err := executeCommand("themes")
	require.NoError(t, err)
	for _, want := range []string{"vintage", "Vintage Classic", "Birthday Party", "vintage: bg-amber-50 bg-orange-50"} {
		require.Contains(t, res.stdout, want)
	}

	res, err = executeCommand("themes", "--json")
	require.NoError(t, err)
	var payload []struct {
		Name        string   `json:"name"`
		Backgrounds []string `json:"backgrounds"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &payload))
	require.Len(t, payload, 6)
	require.Equal(t, "vintage", payload[0].Name)
}

func TestLayoutsCommand(t *testing.T) {
	setupHome(t)

	res, err := executeCommand("layouts", "--seed", "1")
	require.NoError(t, err)
	for _, want := range []string{"Single Focus", "Dual Photos", "Collage Style", "Story Layout", "Corner Focus", "±10°"} {
		require.Contains(t, res.stdout, want)
	}

	res, err = executeCommand("layouts", "--json")
	require.NoError(t, err)
	var templates []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &templates))
	require.Len(t, templates, 5)
	require.Contains(t, templates[0], "photo_positions")
}

func TestPromptsCommand(t *testing.T) {
	setupHome(t)

	res, err := executeCommand("prompts", "travel")
	require.NoError(t, err)
	require.Contains(t, res.stdout, " 1. Destinasi impian yang ingin Anda kunjungi")
	require.Equal(t, 5, strings.Count(res.stdout, "\n"))

	res, err = executeCommand("prompts", "pets")
	require.NoError(t, err)
	require.Contains(t, res.stdout, "Apa yang membuat Anda tersenyum hari ini?")
	require.Contains(t, res.stderr, "unknown prompt category")

	res, err = executeCommand("prompts", "family", "--random", "--seed", "9")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(res.stdout, "\n"))
}
