package catalog

import (
	"strings"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
)

// tierRule maps any of its keywords, found in a lower-cased tier name, to a rarity.
type tierRule struct {
	keywords []string
	rarity   domain.Rarity
}

// tierRules is evaluated in order and the first match wins,
// so "Deluxe Premium Edition" resolves to deluxe.
var tierRules = []tierRule{
	{keywords: []string{"select", "standard"}, rarity: domain.RaritySelect},
	{keywords: []string{"deluxe"}, rarity: domain.RarityDeluxe},
	{keywords: []string{"premium"}, rarity: domain.RarityPremium},
	{keywords: []string{"ultra"}, rarity: domain.RarityUltra},
	{keywords: []string{"exclusive"}, rarity: domain.RarityExclusive},
}

// ClassifyTierName returns the rarity for a content tier display name.
// ok is false when no rule matches; such tiers get no mapping.
func ClassifyTierName(name string) (domain.Rarity, bool) {
	lower := strings.ToLower(name)
	for _, rule := range tierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.rarity, true
			}
		}
	}
	return "", false
}

// MapTiers builds the content tier UUID -> rarity mapping. Unmatched tiers and tiers
// without a UUID are left out, so a skin with no tier can never find a mapping.
func MapTiers(tiers []ContentTier) map[string]domain.Rarity {
	mapping := make(map[string]domain.Rarity, len(tiers))
	for _, tier := range tiers {
		if tier.UUID == "" {
			continue
		}
		if rarity, ok := ClassifyTierName(tier.DisplayName); ok {
			mapping[tier.UUID] = rarity
		}
	}
	return mapping
}

// Classify groups every weapon skin into its rarity bucket.
// Skins without a mapped tier or without an icon are dropped silently.
// Within a bucket, skins keep source order: weapon order, then skin order.
func Classify(tiers []ContentTier, weapons []Weapon) domain.SkinPool {
	mapping := MapTiers(tiers)
	pool := domain.NewSkinPool()

	for _, weapon := range weapons {
		for _, skin := range weapon.Skins {
			if skin.DisplayIcon == "" {
				continue
			}
			rarity, ok := mapping[skin.ContentTierUUID]
			if !ok {
				continue
			}
			pool[rarity] = append(pool[rarity], domain.Skin{
				Name:   skin.DisplayName,
				Weapon: weapon.DisplayName,
				Rarity: rarity,
				Icon:   skin.DisplayIcon,
			})
		}
	}

	return pool
}
