package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/diceduel/internal/common/uuid UUID

// UUID generates identifiers for resolved rolls
type UUID interface {
	NewUUID() string
}

// DefaultUUID generates random (version 4) UUIDs
type DefaultUUID struct{}

// New returns the default generator
func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new random UUID in canonical string form
func (d *DefaultUUID) NewUUID() string {
	return uuid.NewString()
}
