package catalog

import "time"

// API endpoints, relative to the configured base URL
const (
	DefaultBaseURL       = "https://valorant-api.com/v1"
	PathWeapons          = "/weapons"
	PathContentTiers     = "/contenttiers"
	DefaultTimeout       = 10 * time.Second
	DefaultMaxRetries    = 3
	DefaultRetryDelay    = 500 * time.Millisecond
	maxRetryJitterMillis = 100
)

// Error context messages for wrapped errors
const (
	ErrContextFailedToCreateRequest = "failed to create request"
	ErrContextFailedToDecode        = "failed to decode response"
	ErrContextMaxRetriesExceeded    = "max retries exceeded"
	ErrContextFailedToReadFixture   = "failed to read catalog fixture"
	ErrContextFailedToParseFixture  = "failed to parse catalog fixture"
)

// Log messages
const (
	LogMsgRetryingRequest = "Retrying catalog request"
	LogMsgRequestFailed   = "Catalog request failed"
	LogMsgServerError     = "Catalog server error, will retry"
	LogMsgFetchFailed     = "Catalog fetch failed, pool left empty"
	LogMsgPoolBuilt       = "Skin pool built"
	LogMsgFetchingCatalog = "Fetching catalog"
)
