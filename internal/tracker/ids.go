package tracker

import "github.com/google/uuid"

// IDGenerator supplies fresh globally-unique opaque identifiers. The tracker
// never inspects their structure.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the default IDGenerator, backed by random UUIDs.
type UUIDGenerator struct{}

// NewID returns a fresh UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
