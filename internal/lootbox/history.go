package lootbox

import (
	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
)

// Record returns a new history with skin prepended, keeping at most domain.MaxHistory entries.
// The input slice is never modified or aliased.
func Record(history domain.DropHistory, skin domain.Skin) domain.DropHistory {
	keep := len(history)
	if keep > domain.MaxHistory-1 {
		keep = domain.MaxHistory - 1
	}

	next := make(domain.DropHistory, 0, keep+1)
	next = append(next, skin)
	next = append(next, history[:keep]...)
	return next
}
