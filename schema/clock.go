package schema

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the construction timestamp for DefaultNow properties.
//
// The construction engine reads the clock once per construction so that
// all defaulted timestamps of one object (created, modified) agree.
// Inject a frozen clock in tests for reproducible defaults.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator produces the UUID portion of generated identifiers.
// The default generator returns random (version 4) UUIDs; tests inject a
// sequential generator for stable ids.
type IDGenerator func() string

// NewUUID is the default IDGenerator, RFC 4122 version 4 via
// github.com/google/uuid.
func NewUUID() string {
	return uuid.New().String()
}
