package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestValidateRoomConfig(t *testing.T) {
	tests := []struct {
		name    string
		pages   int
		chars   int
		mode    TimeLimitMode
		seconds *int
		wantErr bool
	}{
		{"valid disabled", 3, 200, TimeLimitDisabled, nil, false},
		{"valid enabled", 3, 200, TimeLimitEnabled, intPtr(60), false},
		{"valid display", 3, 200, TimeLimitDisplay, intPtr(60), false},
		{"pages too low", 0, 200, TimeLimitDisabled, nil, true},
		{"pages too high", 21, 200, TimeLimitDisabled, nil, true},
		{"chars too low", 3, 49, TimeLimitDisabled, nil, true},
		{"chars too high", 3, 501, TimeLimitDisabled, nil, true},
		{"enabled without seconds", 3, 200, TimeLimitEnabled, nil, true},
		{"display without seconds", 3, 200, TimeLimitDisplay, nil, true},
		{"seconds too low", 3, 200, TimeLimitEnabled, intPtr(9), true},
		{"seconds too high", 3, 200, TimeLimitEnabled, intPtr(601), true},
		{"unknown mode", 3, 200, TimeLimitMode("forever"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoomConfig(tt.pages, tt.chars, tt.mode, tt.seconds)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePlayerName(t *testing.T) {
	assert.ErrorIs(t, ValidatePlayerName(""), ErrValidation)
	assert.ErrorIs(t, ValidatePlayerName(strings.Repeat("a", 21)), ErrValidation)
	assert.NoError(t, ValidatePlayerName("alice"))
	assert.NoError(t, ValidatePlayerName(strings.Repeat("a", 20)))
	// Multi-byte runes count as single characters.
	assert.NoError(t, ValidatePlayerName(strings.Repeat("ü", 20)))
}

func TestValidateTitleText(t *testing.T) {
	assert.ErrorIs(t, ValidateTitleText(""), ErrValidation)
	assert.ErrorIs(t, ValidateTitleText(strings.Repeat("a", 101)), ErrValidation)
	assert.NoError(t, ValidateTitleText("The Haunted Lighthouse"))
	assert.NoError(t, ValidateTitleText(strings.Repeat("a", 100)))
}

func TestValidatePageContent(t *testing.T) {
	assert.ErrorIs(t, ValidatePageContent("", 200), ErrValidation)
	assert.ErrorIs(t, ValidatePageContent(strings.Repeat("a", 201), 200), ErrValidation)
	assert.NoError(t, ValidatePageContent("It was a dark and stormy night.", 200))
	assert.NoError(t, ValidatePageContent(strings.Repeat("a", 200), 200))
}
