// Package plans loads the plan-tier catalog: the default usage ceilings
// applied to a store when it is provisioned on a given tier.
package plans

import (
	"fmt"
	"os"

	"storefront-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// Tier holds the default ceilings for one plan tier. Nil means unlimited.
type Tier struct {
	MaxProducts       *int `yaml:"max_products"`
	MaxOrdersPerMonth *int `yaml:"max_orders_per_month"`
	MaxStorageMB      *int `yaml:"max_storage_mb"`
}

// Catalog maps tier names to their defaults.
type Catalog struct {
	Tiers map[models.PlanTier]Tier `yaml:"tiers"`
}

// Load reads the plan catalog from a YAML file. A missing file yields the
// built-in defaults so development setups work without config.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return nil, fmt.Errorf("read plans config: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse plans config: %w", err)
	}
	if len(catalog.Tiers) == 0 {
		return nil, fmt.Errorf("plans config %s defines no tiers", path)
	}
	return &catalog, nil
}

// Defaults returns the built-in plan catalog.
func Defaults() *Catalog {
	intPtr := func(n int) *int { return &n }
	return &Catalog{
		Tiers: map[models.PlanTier]Tier{
			models.PlanTierFree: {
				MaxProducts:       intPtr(25),
				MaxOrdersPerMonth: intPtr(100),
				MaxStorageMB:      intPtr(256),
			},
			models.PlanTierBasic: {
				MaxProducts:       intPtr(500),
				MaxOrdersPerMonth: intPtr(5000),
				MaxStorageMB:      intPtr(2048),
			},
			// Pro is unlimited
			models.PlanTierPro: {},
		},
	}
}

// Apply copies the tier's default ceilings onto a store that has none of
// its own. Explicit per-store ceilings are never overwritten.
func (c *Catalog) Apply(store *models.Store) {
	tier, ok := c.Tiers[store.PlanTier]
	if !ok {
		return
	}
	if store.MaxProducts == nil {
		store.MaxProducts = tier.MaxProducts
	}
	if store.MaxOrdersPerMonth == nil {
		store.MaxOrdersPerMonth = tier.MaxOrdersPerMonth
	}
	if store.MaxStorageMB == nil {
		store.MaxStorageMB = tier.MaxStorageMB
	}
}
