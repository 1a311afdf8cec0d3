package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/domain"
)

func TestClassifyTierName(t *testing.T) {
	tests := []struct {
		name   string
		want   domain.Rarity
		wantOK bool
	}{
		{"Select Edition", domain.RaritySelect, true},
		{"Standard", domain.RaritySelect, true},
		{"Deluxe Edition", domain.RarityDeluxe, true},
		{"Premium Edition", domain.RarityPremium, true},
		{"Ultra Edition", domain.RarityUltra, true},
		{"Exclusive Edition", domain.RarityExclusive, true},
		{"EXCLUSIVE EDITION", domain.RarityExclusive, true},
		// First match wins in rule order
		{"Deluxe Premium Edition", domain.RarityDeluxe, true},
		{"Ultra Exclusive", domain.RarityUltra, true},
		{"Standard Ultra", domain.RaritySelect, true},
		{"Battlepass", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ClassifyTierName(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapTiers_DropsUnmatched(t *testing.T) {
	mapping := MapTiers([]ContentTier{
		{UUID: "t1", DisplayName: "Select Edition"},
		{UUID: "t2", DisplayName: "Mystery Edition"},
	})

	assert.Equal(t, map[string]domain.Rarity{"t1": domain.RaritySelect}, mapping)
}

func TestClassify_TierWithoutUUIDMapsNothing(t *testing.T) {
	tiers := []ContentTier{
		{UUID: "", DisplayName: "Select Edition"},
		{UUID: "t1", DisplayName: "Deluxe Edition"},
	}
	weapons := []Weapon{
		{DisplayName: "Ghost", Skins: []WeaponSkin{
			{DisplayName: "Standard", DisplayIcon: "u1"},
			{DisplayName: "Sakura", ContentTierUUID: "t1", DisplayIcon: "u2"},
		}},
	}

	assert.NotContains(t, MapTiers(tiers), "")

	pool := Classify(tiers, weapons)
	assert.Equal(t, 1, pool.Total())
	assert.Empty(t, pool[domain.RaritySelect])
	assert.Equal(t, "Sakura", pool[domain.RarityDeluxe][0].Name)
}

func TestClassify_SingleExclusiveSkin(t *testing.T) {
	weapons := []Weapon{
		{DisplayName: "Vandal", Skins: []WeaponSkin{
			{DisplayName: "Prime", ContentTierUUID: "t1", DisplayIcon: "u1"},
		}},
	}
	tiers := []ContentTier{{UUID: "t1", DisplayName: "Exclusive Edition"}}

	pool := Classify(tiers, weapons)

	require.Len(t, pool, 5)
	assert.Equal(t, []domain.Skin{
		{Name: "Prime", Weapon: "Vandal", Rarity: domain.RarityExclusive, Icon: "u1"},
	}, pool[domain.RarityExclusive])
	for _, r := range []domain.Rarity{domain.RaritySelect, domain.RarityDeluxe, domain.RarityPremium, domain.RarityUltra} {
		assert.NotNil(t, pool[r])
		assert.Empty(t, pool[r])
	}
}

func TestClassify_DropsMalformedSkins(t *testing.T) {
	weapons := []Weapon{
		{DisplayName: "Phantom", Skins: []WeaponSkin{
			{DisplayName: "No Icon", ContentTierUUID: "t1"},
			{DisplayName: "No Tier", DisplayIcon: "u2"},
			{DisplayName: "Unmapped Tier", ContentTierUUID: "t-unknown", DisplayIcon: "u3"},
			{DisplayName: "Kept", ContentTierUUID: "t1", DisplayIcon: "u4"},
		}},
	}
	tiers := []ContentTier{{UUID: "t1", DisplayName: "Premium Edition"}}

	pool := Classify(tiers, weapons)

	assert.Equal(t, 1, pool.Total())
	assert.Equal(t, "Kept", pool[domain.RarityPremium][0].Name)
}

func TestClassify_PreservesSourceOrderAndIsDeterministic(t *testing.T) {
	weapons := []Weapon{
		{DisplayName: "Vandal", Skins: []WeaponSkin{
			{DisplayName: "A", ContentTierUUID: "sel", DisplayIcon: "a"},
			{DisplayName: "B", ContentTierUUID: "sel", DisplayIcon: "b"},
		}},
		{DisplayName: "Sheriff", Skins: []WeaponSkin{
			{DisplayName: "C", ContentTierUUID: "sel", DisplayIcon: "c"},
			{DisplayName: "D", ContentTierUUID: "dlx", DisplayIcon: "d"},
		}},
	}
	tiers := []ContentTier{
		{UUID: "sel", DisplayName: "Select Edition"},
		{UUID: "dlx", DisplayName: "Deluxe Edition"},
	}

	first := Classify(tiers, weapons)
	second := Classify(tiers, weapons)

	assert.Equal(t, first, second)

	var names []string
	for _, s := range first[domain.RaritySelect] {
		names = append(names, s.Weapon+"/"+s.Name)
	}
	assert.Equal(t, []string{"Vandal/A", "Vandal/B", "Sheriff/C"}, names)
	assert.Equal(t, "Sheriff", first[domain.RarityDeluxe][0].Weapon)
}

func TestClassify_EmptyInput(t *testing.T) {
	pool := Classify(nil, nil)

	assert.Len(t, pool, 5)
	assert.True(t, pool.IsEmpty())
}
