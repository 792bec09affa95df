package prompts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForKnownCategories(t *testing.T) {
	t.Parallel()

	for _, category := range Categories() {
		require.Len(t, For(category), 5, category)
	}
	require.Equal(t, "Destinasi impian yang ingin Anda kunjungi", For("travel")[0])
}

func TestForUnknownCategoryFallsBackToGeneral(t *testing.T) {
	t.Parallel()

	require.Equal(t, For(General), For("pets"))
}

func TestForReturnsCopy(t *testing.T) {
	t.Parallel()

	list := For("family")
	list[0] = "changed"
	require.NotEqual(t, "changed", For("family")[0])
}
