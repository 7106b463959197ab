package domain

import (
	"fmt"
	"unicode/utf8"
)

// ValidateRoomConfig checks the creation parameters against their allowed
// ranges. TimeLimitSeconds is required exactly when the mode is not disabled.
func ValidateRoomConfig(pages, charactersPerPage int, mode TimeLimitMode, timeLimitSeconds *int) error {
	if pages < MinPages || pages > MaxPages {
		return fmt.Errorf("%w: pages must be between %d and %d", ErrValidation, MinPages, MaxPages)
	}
	if charactersPerPage < MinCharactersPerPage || charactersPerPage > MaxCharactersPerPage {
		return fmt.Errorf("%w: charactersPerPage must be between %d and %d", ErrValidation, MinCharactersPerPage, MaxCharactersPerPage)
	}
	switch mode {
	case TimeLimitDisabled:
		// seconds are ignored when the limit is off
	case TimeLimitDisplay, TimeLimitEnabled:
		if timeLimitSeconds == nil {
			return fmt.Errorf("%w: timeLimitSeconds is required when timeLimit is %q", ErrValidation, mode)
		}
		if *timeLimitSeconds < MinTimeLimitSeconds || *timeLimitSeconds > MaxTimeLimitSeconds {
			return fmt.Errorf("%w: timeLimitSeconds must be between %d and %d", ErrValidation, MinTimeLimitSeconds, MaxTimeLimitSeconds)
		}
	default:
		return fmt.Errorf("%w: timeLimit must be one of disabled, display, enabled", ErrValidation)
	}
	return nil
}

func ValidatePlayerName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < 1 || n > 20 {
		return fmt.Errorf("%w: playerName must be between 1 and 20 characters", ErrValidation)
	}
	return nil
}

func ValidateTitleText(text string) error {
	n := utf8.RuneCountInString(text)
	if n < 1 || n > 100 {
		return fmt.Errorf("%w: title must be between 1 and 100 characters", ErrValidation)
	}
	return nil
}

func ValidatePageContent(content string, charactersPerPage int) error {
	n := utf8.RuneCountInString(content)
	if n < 1 {
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	if n > charactersPerPage {
		return fmt.Errorf("%w: content must be at most %d characters", ErrValidation, charactersPerPage)
	}
	return nil
}
