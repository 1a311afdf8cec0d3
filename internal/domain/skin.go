package domain

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is one of the five fixed skin buckets.
type Rarity string

// Rarity tiers, from most common to rarest
const (
	RaritySelect    Rarity = "select"
	RarityDeluxe    Rarity = "deluxe"
	RarityPremium   Rarity = "premium"
	RarityUltra     Rarity = "ultra"
	RarityExclusive Rarity = "exclusive"
)

var allRarities = []Rarity{
	RaritySelect,
	RarityDeluxe,
	RarityPremium,
	RarityUltra,
	RarityExclusive,
}

var titleCaser = cases.Title(language.English)

// AllRarities returns the five tiers in ascending rarity order.
func AllRarities() []Rarity {
	out := make([]Rarity, len(allRarities))
	copy(out, allRarities)
	return out
}

// Tier returns the 1-based position of the rarity, or 0 if it is not one of the five tiers.
func (r Rarity) Tier() int {
	for i, known := range allRarities {
		if r == known {
			return i + 1
		}
	}
	return 0
}

// Valid reports whether r is one of the five tiers.
func (r Rarity) Valid() bool {
	return r.Tier() != 0
}

// DisplayName returns the title-cased label, e.g. "Exclusive".
func (r Rarity) DisplayName() string {
	return titleCaser.String(string(r))
}

// Color returns the hex colour a render surface should use for the tier.
func (r Rarity) Color() string {
	switch r {
	case RaritySelect:
		return ColorSelect
	case RarityDeluxe:
		return ColorDeluxe
	case RarityPremium:
		return ColorPremium
	case RarityUltra:
		return ColorUltra
	case RarityExclusive:
		return ColorExclusive
	default:
		return ColorUnknown
	}
}

// Skin is a single droppable weapon skin. Treat it as immutable.
type Skin struct {
	Name   string `json:"name"`
	Weapon string `json:"weapon"`
	Rarity Rarity `json:"rarity"`
	Icon   string `json:"icon"`
}

// Label formats the skin the way the drop card shows it, e.g. "Prime (Vandal)".
func (s Skin) Label() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Weapon)
}

// SkinPool groups skins by rarity. Every tier key is always present.
type SkinPool map[Rarity][]Skin

// NewSkinPool returns a pool with all five tiers mapped to empty buckets.
func NewSkinPool() SkinPool {
	pool := make(SkinPool, len(allRarities))
	for _, r := range allRarities {
		pool[r] = []Skin{}
	}
	return pool
}

// Counts returns the bucket size per tier.
func (p SkinPool) Counts() map[Rarity]int {
	counts := make(map[Rarity]int, len(allRarities))
	for _, r := range allRarities {
		counts[r] = len(p[r])
	}
	return counts
}

// Total returns the number of skins across all tiers.
func (p SkinPool) Total() int {
	total := 0
	for _, r := range allRarities {
		total += len(p[r])
	}
	return total
}

// IsEmpty reports whether no tier holds a skin.
func (p SkinPool) IsEmpty() bool {
	return p.Total() == 0
}

// TierProbability is the drop chance for one tier.
type TierProbability struct {
	Rarity      Rarity  `json:"rarity"`
	Probability float64 `json:"probability"`
}

// ProbabilityTable lists tier chances in their fixed iteration order.
type ProbabilityTable []TierProbability

// DefaultProbabilityTable returns the drop rates used by the simulator.
func DefaultProbabilityTable() ProbabilityTable {
	return ProbabilityTable{
		{Rarity: RaritySelect, Probability: ProbabilitySelect},
		{Rarity: RarityDeluxe, Probability: ProbabilityDeluxe},
		{Rarity: RarityPremium, Probability: ProbabilityPremium},
		{Rarity: RarityUltra, Probability: ProbabilityUltra},
		{Rarity: RarityExclusive, Probability: ProbabilityExclusive},
	}
}

// Sum returns the total of all probabilities in the table.
func (t ProbabilityTable) Sum() float64 {
	sum := 0.0
	for _, tp := range t {
		sum += tp.Probability
	}
	return sum
}

// Validate checks that the table covers each tier once, every probability is in (0,1],
// and the total is 1.0 within ProbabilityTolerance.
func (t ProbabilityTable) Validate() error {
	if len(t) != len(allRarities) {
		return fmt.Errorf("%w: expected %d tiers, got %d", ErrInvalidProbabilityTable, len(allRarities), len(t))
	}

	seen := make(map[Rarity]bool, len(t))
	for _, tp := range t {
		if !tp.Rarity.Valid() {
			return fmt.Errorf("%w: unknown rarity %q", ErrInvalidProbabilityTable, tp.Rarity)
		}
		if seen[tp.Rarity] {
			return fmt.Errorf("%w: duplicate rarity %q", ErrInvalidProbabilityTable, tp.Rarity)
		}
		seen[tp.Rarity] = true

		if tp.Probability <= 0 || tp.Probability > 1 {
			return fmt.Errorf("%w: probability for %q must be in (0,1], got %v", ErrInvalidProbabilityTable, tp.Rarity, tp.Probability)
		}
	}

	if sum := t.Sum(); math.Abs(sum-1.0) > ProbabilityTolerance {
		return fmt.Errorf("%w: probabilities sum to %v, expected 1.0", ErrInvalidProbabilityTable, sum)
	}

	return nil
}

// DropHistory is the list of past drops, most recent first, capped at MaxHistory.
type DropHistory []Skin
