package lootbox

import (
	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
)

// FallbackRarity is the tier chosen when floating-point shortfall leaves a roll at or past
// the table's cumulative total.
const FallbackRarity = domain.RaritySelect

// DrawTier walks the table in order and returns the first tier whose cumulative
// probability exceeds roll.
func DrawTier(table domain.ProbabilityTable, roll float64) domain.Rarity {
	cumulative := 0.0
	for _, tp := range table {
		cumulative += tp.Probability
		if roll < cumulative {
			return tp.Rarity
		}
	}
	return FallbackRarity
}

// pickIndex maps a roll in [0,1) onto [0,n).
func pickIndex(roll float64, n int) int {
	idx := int(roll * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Draw picks a tier by probability, then a skin uniformly within that tier.
// It returns false when the chosen tier's bucket is empty; that is a no-op, not an error.
func Draw(pool domain.SkinPool, table domain.ProbabilityTable, rng RandomSource) (domain.Skin, bool) {
	skin, _, ok := DrawWithTier(pool, table, rng)
	return skin, ok
}

// DrawWithTier is Draw that also reports the rolled tier, so callers can count empty-tier misses.
func DrawWithTier(pool domain.SkinPool, table domain.ProbabilityTable, rng RandomSource) (domain.Skin, domain.Rarity, bool) {
	rarity := DrawTier(table, rng.Float64())

	bucket := pool[rarity]
	if len(bucket) == 0 {
		return domain.Skin{}, rarity, false
	}

	return bucket[pickIndex(rng.Float64(), len(bucket))], rarity, true
}
