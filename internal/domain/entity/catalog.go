package entity

// Plan is a subscription plan and the daily allowance it grants per tier
type Plan struct {
	ID             string
	DailyAllowance map[Tier]int
}

// Allowance returns the daily allowance of a tier, zero when the plan grants none
func (p Plan) Allowance(tier Tier) int {
	return p.DailyAllowance[tier]
}

// ProductKind describes what a product does to a user when purchased
type ProductKind string

// ProductKind constants
const (
	ProductCredits      ProductKind = "credits"
	ProductSubscription ProductKind = "subscription"
)

// Product maps a store product id to its effect on the Ledger
type Product struct {
	ID      string
	Kind    ProductKind
	Tier    Tier   // Credited tier for credit packs
	Credits int    // Number of credits of a credit pack
	PlanID  string // Granted plan of a subscription
	Days    int    // Subscription period in days
}
