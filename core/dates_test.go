package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPuzzleYear(t *testing.T) {
	tests := []struct {
		date     string
		expected int
	}{
		{"2023-12-01", 2023},
		{"2023-12-31", 2023},
		{"2023-11-30", 2023},
		{"2023-11-29", 2022},
		{"2024-01-15", 2023},
		{"2024-07-04", 2023},
	}

	for _, tt := range tests {
		now, err := time.Parse(time.DateOnly, tt.date)
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, CurrentPuzzleYear(now), "failed for date: %s", tt.date)
	}
}
