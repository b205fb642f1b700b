package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	table := []struct {
		input    string
		expected string
	}{
		{input: "Related Devices", expected: "relateddevices"},
		{input: " Popular\tphones\n", expected: "popularphones"},
		{input: "", expected: ""},
	}
	for _, row := range table {
		require.Equal(t, row.expected, NormalizeName(row.input))
	}
}

func TestContainsFold(t *testing.T) {
	require.True(t, ContainsFold("Samsung Galaxy S24 - RELATED devices", "related"))
	require.True(t, ContainsFold("Popular from Samsung", "popular"))
	require.False(t, ContainsFold("Reviews", "related"))
	require.False(t, ContainsFold("Rel ated", "related"))
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, Similarity("Samsung", "samsung "))
	require.Greater(t, Similarity("Samsung", "samsng"), Similarity("Samsung", "Apple"))
}
