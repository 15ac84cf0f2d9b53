package entity

import "time"

// ChargeSource names the pool a deduction was drawn from
type ChargeSource string

// ChargeSource constants
const (
	SourcePurchased ChargeSource = "purchased"
	SourceDaily     ChargeSource = "daily"
	// SourceUnknown is used when the drawn pool was not recorded; refunds then
	// restore the daily allowance before the purchased balance.
	SourceUnknown ChargeSource = ""
)

// Charge is one unit consumed by a successful deduction
type Charge struct {
	UserID    string
	Tier      Tier
	Source    ChargeSource
	ChargedAt time.Time
}
