package catalog

import "context"

// Weapon is a weapon entry from the weapons endpoint. Only the fields the pool needs are decoded.
type Weapon struct {
	UUID        string       `json:"uuid" yaml:"uuid"`
	DisplayName string       `json:"displayName" yaml:"displayName"`
	Skins       []WeaponSkin `json:"skins" yaml:"skins"`
}

// WeaponSkin is a skin nested under a weapon.
type WeaponSkin struct {
	UUID            string `json:"uuid" yaml:"uuid"`
	DisplayName     string `json:"displayName" yaml:"displayName"`
	ContentTierUUID string `json:"contentTierUuid" yaml:"contentTierUuid"`
	DisplayIcon     string `json:"displayIcon" yaml:"displayIcon"`
}

// ContentTier is the API's rarity metadata record.
type ContentTier struct {
	UUID           string `json:"uuid" yaml:"uuid"`
	DisplayName    string `json:"displayName" yaml:"displayName"`
	DevName        string `json:"devName" yaml:"devName"`
	Rank           int    `json:"rank" yaml:"rank"`
	HighlightColor string `json:"highlightColor" yaml:"highlightColor"`
}

// Catalog is the pair of data sets the classifier needs.
type Catalog struct {
	Weapons []Weapon      `json:"weapons" yaml:"weapons"`
	Tiers   []ContentTier `json:"contenttiers" yaml:"contenttiers"`
}

// envelope is the {status, data} wrapper every endpoint returns.
type envelope[T any] struct {
	Status int `json:"status"`
	Data   []T `json:"data"`
}

// Source supplies a catalog, from the live API or a local fixture.
type Source interface {
	FetchCatalog(ctx context.Context) (*Catalog, error)
}
