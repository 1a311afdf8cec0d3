package catalog

import (
	"context"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/logger"
	"github.com/StanleyPangaruy/valorant-lootbox/internal/metrics"
)

// Loader builds the skin pool once at startup.
type Loader struct {
	source Source
}

// NewLoader creates a loader over the given source.
func NewLoader(source Source) *Loader {
	return &Loader{source: source}
}

// Load fetches the catalog and classifies it. A fetch failure is logged and yields a pool
// with every bucket empty, so later draws are no-ops rather than failures.
func (l *Loader) Load(ctx context.Context) domain.SkinPool {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFetchingCatalog)

	cat, err := l.source.FetchCatalog(ctx)
	if err != nil {
		log.Error(LogMsgFetchFailed, "error", err)
		metrics.CatalogFetchErrors.Inc()
		pool := domain.NewSkinPool()
		recordPoolMetrics(pool)
		return pool
	}

	pool := Classify(cat.Tiers, cat.Weapons)
	recordPoolMetrics(pool)

	counts := pool.Counts()
	log.Info(LogMsgPoolBuilt,
		"weapons", len(cat.Weapons),
		"tiers", len(cat.Tiers),
		"total", pool.Total(),
		string(domain.RaritySelect), counts[domain.RaritySelect],
		string(domain.RarityDeluxe), counts[domain.RarityDeluxe],
		string(domain.RarityPremium), counts[domain.RarityPremium],
		string(domain.RarityUltra), counts[domain.RarityUltra],
		string(domain.RarityExclusive), counts[domain.RarityExclusive])

	return pool
}

func recordPoolMetrics(pool domain.SkinPool) {
	for rarity, n := range pool.Counts() {
		metrics.CatalogSkins.WithLabelValues(string(rarity)).Set(float64(n))
	}
}
