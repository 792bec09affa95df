package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines_Identical(t *testing.T) {
	t.Parallel()

	in := []byte("line1\nline2\n")
	require.Empty(t, Lines(in, in, "a", "b"))
}

func TestLines_Changes(t *testing.T) {
	t.Parallel()

	before := []byte("title: one\npages: 1\ntheme: vintage\n")
	after := []byte("title: one\npages: 2\ntheme: vintage\nextra: yes\n")

	out := Lines(before, after, "old.json", "new.json")
	require.True(t, strings.HasPrefix(out, "--- old.json\n+++ new.json\n@@ -1,3 +1,4 @@\n"))
	require.Contains(t, out, " title: one\n")
	require.Contains(t, out, "-pages: 1\n")
	require.Contains(t, out, "+pages: 2\n")
	require.Contains(t, out, "+extra: yes\n")
	require.Contains(t, out, " theme: vintage\n")
}

func TestLines_Truncation(t *testing.T) {
	t.Parallel()

	var before, after strings.Builder
	for i := 0; i < 6000; i++ {
		before.WriteString("a\n")
		after.WriteString("b\n")
	}

	out := Lines([]byte(before.String()), []byte(after.String()), "a", "b")
	require.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}

func TestStats(t *testing.T) {
	t.Parallel()

	added, removed := Stats([]byte("a\nb\nc\n"), []byte("a\nc\nd\ne\n"))
	require.Equal(t, 2, added)
	require.Equal(t, 1, removed)

	added, removed = Stats([]byte("same\n"), []byte("same\n"))
	require.Zero(t, added)
	require.Zero(t, removed)
}
