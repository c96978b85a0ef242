package services

import "github.com/google/uuid"

// IDGenerator issues entity ids. Ids are opaque strings, unique across
// every collection, and must never collide even for entities created in
// the same instant.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUID ids
type UUIDGenerator struct{}

// NewID returns a fresh UUID string
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}
