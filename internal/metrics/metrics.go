package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	StreamClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameStreamClients,
			Help: HelpTextStreamClients,
		},
	)
)

// Lootbox Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelRarity},
	)

	EmptyDrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEmptyDrawsTotal,
			Help: HelpTextEmptyDrawsTotal,
		},
		[]string{LabelRarity},
	)

	RevealsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRevealsTotal,
			Help: HelpTextRevealsTotal,
		},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSessionsCreated,
			Help: HelpTextSessionsCreated,
		},
	)
)

// Catalog Metrics
var (
	CatalogSkins = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameCatalogSkins,
			Help: HelpTextCatalogSkins,
		},
		[]string{LabelRarity},
	)

	CatalogFetchErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogFetchErrors,
			Help: HelpTextCatalogFetchErrors,
		},
	)
)
