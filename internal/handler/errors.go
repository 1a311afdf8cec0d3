package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgInvalidQueryParam     = "Invalid %s query parameter"
	ErrMsgCatalogEmpty          = "skin catalog is empty"
)

// Operation names used in logs
const (
	OpCreateSession = "Create session"
	OpOpenLootbox   = "Open lootbox"
	OpGetState      = "Get lootbox state"
)
