package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	require.Equal(t, "dr łukasz nowak", NormalizeName("  DR  ŁUKASZ\n\tNowak "))
}

func TestMatchName(t *testing.T) {
	require.True(t, MatchName("KrDUIs1011", []string{"xyz", "duis"}))
	require.False(t, MatchName("KrDUIs1011", []string{"krzz"}))
}

func TestSimilarity(t *testing.T) {
	require.Equal(t, 1.0, Similarity("", "anything"))
	require.Equal(t, 1.0, Similarity("paw.a", "Paw.A 011"))
	require.Greater(t, Similarity("kowalsky", "kowalski"), Similarity("kowalsky", "nowak"))
}
