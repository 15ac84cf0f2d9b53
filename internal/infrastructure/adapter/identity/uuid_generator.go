package identity

import (
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
)

// UUIDGenerator issues random (v4) UUIDs
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUID-backed id generator
func NewUUIDGenerator() core.IDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID in canonical form
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
