package usecase

import "github.com/cockroachdb/errors"

var (
	// ErrDuplicateIdentifier is returned when a team or player ID is already registered.
	ErrDuplicateIdentifier = errors.New("identifier already in use")
	// ErrTeamNotFound is returned when a team ID has no record.
	ErrTeamNotFound = errors.New("team not found")
	// ErrPlayerNotFound is returned when a player ID has no record, or no player qualifies.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrCaptainNotAssigned is returned when a team's captain is read before one is set.
	ErrCaptainNotAssigned = errors.New("captain not assigned")
	// ErrInvalidInput signals a malformed import payload.
	ErrInvalidInput = errors.New("invalid input")
)
