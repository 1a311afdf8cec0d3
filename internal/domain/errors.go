package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound = "session not found"
	ErrMsgDrawPending     = "a draw is already pending"
	ErrMsgShuttingDown    = "lootbox service is shutting down"

	// Odds errors
	ErrMsgInvalidProbabilityTable = "invalid probability table"

	// Catalog errors
	ErrMsgCatalogUnavailable = "catalog unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)
	ErrDrawPending     = errors.New(ErrMsgDrawPending)
	ErrShuttingDown    = errors.New(ErrMsgShuttingDown)

	ErrInvalidProbabilityTable = errors.New(ErrMsgInvalidProbabilityTable)

	ErrCatalogUnavailable = errors.New(ErrMsgCatalogUnavailable)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
