package service

import "errors"

// Client-error sentinels. The API layer maps these to HTTP statuses with
// errors.Is; services wrap them with context via fmt.Errorf("...: %w", ...).
var (
	// ErrInvalidRange signals an hour outside 0-23 or a malformed/inverted
	// date range.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidArgument signals an unknown discriminator such as an
	// unrecognized analysis type or SMART field type.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound signals a missing goal, milestone, note or schedule.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable signals a generation backend timeout or error.
	// Planner and analytics recover from it internally; only the narrative
	// analysis and SMART-field endpoints may surface it.
	ErrUpstreamUnavailable = errors.New("generation backend unavailable")
)
