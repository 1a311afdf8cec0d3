package domain

// MaxHistory is the number of past drops kept per session, most recent first.
const MaxHistory = 20

// ProbabilityTolerance is the allowed drift when checking that a table sums to 1.0.
const ProbabilityTolerance = 1e-9

// Default drop rates, ordered from the most common tier to the rarest.
const (
	ProbabilitySelect    = 0.7992
	ProbabilityDeluxe    = 0.1598
	ProbabilityPremium   = 0.032
	ProbabilityUltra     = 0.0064
	ProbabilityExclusive = 0.0026
)

// Rarity colours used by render surfaces
const (
	ColorSelect    = "#aaaaaa"
	ColorDeluxe    = "#3498db"
	ColorPremium   = "#9b59b6"
	ColorUltra     = "#e67e22"
	ColorExclusive = "#f1c40f"
	ColorUnknown   = "#000000"
)

// Event types published when a lootbox draw progresses
const (
	EventDropResolved = "drop.resolved"
	EventDropRevealed = "drop.revealed"
)
