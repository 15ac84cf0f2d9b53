package core

// IDGenerator produces unique identifiers for records and blob keys
type IDGenerator interface {
	NewID() string
}
