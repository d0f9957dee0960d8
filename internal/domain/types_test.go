package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFounderStatus(t *testing.T) {
	tests := []struct {
		status   FounderStatus
		expected bool
	}{
		{FounderStatusToContact, true},
		{FounderStatusWatching, true},
		{FounderStatusContacted, true},
		{FounderStatusPass, true},
		{FounderStatus(""), false},
		{FounderStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidFounderStatus(tt.status))
		})
	}
}
