package banca

import "errors"

// Error kinds surfaced to the presentation layer. All of them are retryable:
// the operation that returned one has not mutated any state.
var (
	// ErrInsufficientParticipants is returned when fewer than 2 distinct
	// non-empty names remain after deduplication at day start.
	ErrInsufficientParticipants = errors.New("at least 2 participants are required")

	// ErrNoHostSelected is returned when a session operation needs a host and
	// none (or one outside the roster) was designated.
	ErrNoHostSelected = errors.New("no session host selected")

	// ErrNoContributions is returned when a session closes with a total
	// invested amount of zero.
	ErrNoContributions = errors.New("nobody invested in this session")

	// ErrInvalidFinalAmount is returned when the final pot amount is missing
	// or unparseable. It is never silently defaulted to zero.
	ErrInvalidFinalAmount = errors.New("invalid final amount")

	// ErrParticipantNotFound is returned when an operation names a participant
	// absent from the active roster.
	ErrParticipantNotFound = errors.New("participant not found")
)
