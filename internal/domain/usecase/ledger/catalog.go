package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

// DefaultDayLength is the rolling window of the daily allowance
const DefaultDayLength = 24 * time.Hour

// Catalog is the static configuration the Ledger evaluates against
type Catalog struct {
	Plans     map[string]entity.Plan
	Products  map[string]entity.Product
	DayLength time.Duration
}

// DefaultCatalog returns the plans and store products the app ships with
func DefaultCatalog() Catalog {
	plans := map[string]entity.Plan{}
	for _, base := range []struct {
		name     string
		standard int
		hd       int
	}{
		{"light", 20, 5},
		{"standard", 40, 10},
		{"premium", 85, 25},
	} {
		for _, period := range []string{"monthly", "yearly"} {
			id := base.name + "_" + period
			plans[id] = entity.Plan{
				ID: id,
				DailyAllowance: map[entity.Tier]int{
					entity.TierStandard: base.standard,
					entity.TierHD:       base.hd,
				},
			}
		}
	}

	products := map[string]entity.Product{}
	addCredits := func(prefix string, tier entity.Tier, amounts ...int) {
		for _, n := range amounts {
			id := fmt.Sprintf("%s_%d", prefix, n)
			products[id] = entity.Product{ID: id, Kind: entity.ProductCredits, Tier: tier, Credits: n}
		}
	}
	addCredits("standard_credits", entity.TierStandard, 10, 25, 50, 100, 200)
	addCredits("hd_credits", entity.TierHD, 5, 10, 25, 50)
	// Single-pool packs from before the tiers existed
	addCredits("credits", entity.TierStandard, 10, 25, 50, 100, 200)

	for id := range plans {
		days := 30
		if strings.HasSuffix(id, "_yearly") {
			days = 365
		}
		products[id] = entity.Product{ID: id, Kind: entity.ProductSubscription, PlanID: id, Days: days}
	}

	return Catalog{Plans: plans, Products: products, DayLength: DefaultDayLength}
}

// Product looks up a store product
func (c Catalog) Product(id string) (entity.Product, error) {
	product, ok := c.Products[id]
	if !ok {
		return entity.Product{}, errs.ErrUnknownProduct
	}
	return product, nil
}

// Validate checks that every subscription product grants a known plan
func (c Catalog) Validate() error {
	if c.DayLength <= 0 {
		return fmt.Errorf("day length must be positive, got %s", c.DayLength)
	}
	for id, product := range c.Products {
		switch product.Kind {
		case entity.ProductCredits:
			if product.Credits <= 0 {
				return fmt.Errorf("product %s grants no credits", id)
			}
			if _, err := entity.ParseTier(string(product.Tier)); err != nil {
				return fmt.Errorf("product %s: %w", id, err)
			}
		case entity.ProductSubscription:
			if _, ok := c.Plans[product.PlanID]; !ok {
				return fmt.Errorf("product %s references unknown plan %s", id, product.PlanID)
			}
			if product.Days <= 0 {
				return fmt.Errorf("product %s has no subscription period", id)
			}
		default:
			return fmt.Errorf("product %s has unknown kind %q", id, product.Kind)
		}
	}
	return nil
}
