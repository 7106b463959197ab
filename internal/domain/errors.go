package domain

import "errors"

var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrTitleNotFound       = errors.New("title not found")
	ErrWrongPhase          = errors.New("action not allowed in current phase")
	ErrAlreadySubmitted    = errors.New("already submitted")
	ErrNotOwner            = errors.New("only the room owner can perform this action")

	// ErrValidation is the base for all input validation failures; wrap it
	// with fmt.Errorf("%w: ...") so callers can match with errors.Is.
	ErrValidation = errors.New("validation failed")
)
