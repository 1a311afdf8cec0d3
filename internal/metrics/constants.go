package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
	MetricNameStreamClients   = "stream_clients"
)

// Lootbox metric names
const (
	MetricNameDrawsTotal      = "lootbox_draws_total"
	MetricNameEmptyDrawsTotal = "lootbox_empty_draws_total"
	MetricNameRevealsTotal    = "lootbox_reveals_total"
	MetricNameSessionsCreated  = "lootbox_sessions_created_total"
)

// Catalog metric names
const (
	MetricNameCatalogSkins       = "catalog_skins"
	MetricNameCatalogFetchErrors = "catalog_fetch_errors_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished = "Total number of events published to live feeds"
	HelpTextStreamClients   = "Current number of connected live feed clients"
)

// Lootbox metric help text
const (
	HelpTextDrawsTotal      = "Total number of lootbox draws that produced a skin"
	HelpTextEmptyDrawsTotal = "Total number of lootbox draws that landed on an empty tier"
	HelpTextRevealsTotal    = "Total number of drops revealed to a session"
	HelpTextSessionsCreated = "Total number of lootbox sessions created"
)

// Catalog metric help text
const (
	HelpTextCatalogSkins       = "Number of skins in the pool per rarity"
	HelpTextCatalogFetchErrors = "Total number of failed catalog fetches"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelRarity = "rarity"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
