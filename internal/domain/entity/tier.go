package entity

import (
	"strings"

	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
)

// Tier is the resolution tier of a request; each tier has its own credit pool
type Tier string

// Supported tiers
const (
	TierStandard Tier = "standard"
	TierHD       Tier = "hd"
)

// Tiers lists every tier in display order
func Tiers() []Tier {
	return []Tier{TierStandard, TierHD}
}

// ParseTier maps a requested resolution onto a tier. An empty value is the standard tier.
func ParseTier(resolution string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(resolution)) {
	case "", string(TierStandard):
		return TierStandard, nil
	case string(TierHD):
		return TierHD, nil
	default:
		return "", errs.ErrInvalidTier
	}
}

// String returns the tier name
func (t Tier) String() string {
	return string(t)
}
