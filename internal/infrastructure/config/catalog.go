package config

import (
	"fmt"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/usecase/ledger"
)

// Catalog merges configured plans and products over the built-in catalog
func (c LedgerConfig) Catalog() (ledger.Catalog, error) {
	catalog := ledger.DefaultCatalog()
	if c.DayLength > 0 {
		catalog.DayLength = c.DayLength
	}

	for id, plan := range c.Plans {
		catalog.Plans[id] = entity.Plan{
			ID: id,
			DailyAllowance: map[entity.Tier]int{
				entity.TierStandard: plan.Standard,
				entity.TierHD:       plan.HD,
			},
		}
	}

	for id, p := range c.Products {
		product := entity.Product{ID: id, Kind: entity.ProductKind(p.Kind)}
		switch product.Kind {
		case entity.ProductCredits:
			tier, err := entity.ParseTier(p.Tier)
			if err != nil {
				return ledger.Catalog{}, fmt.Errorf("ledger.products.%s: %w", id, err)
			}
			product.Tier = tier
			product.Credits = p.Credits
		case entity.ProductSubscription:
			product.PlanID = p.Plan
			if product.PlanID == "" {
				product.PlanID = id
			}
			product.Days = p.Days
		}
		catalog.Products[id] = product
	}

	if err := catalog.Validate(); err != nil {
		return ledger.Catalog{}, fmt.Errorf("invalid ledger catalog: %w", err)
	}
	return catalog, nil
}
