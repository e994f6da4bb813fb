package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionKey_NormalizesQuery(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Matrix", "tmdb_suggestions:matrix"},
		{"  Matrix  ", "tmdb_suggestions:matrix"},
		{"BLADE RUNNER", "tmdb_suggestions:blade runner"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, suggestionKey(tt.query))
	}
}
