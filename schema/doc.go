// Package schema defines declarative type specifications for structured
// objects: per-property descriptors, ordered type schemas, and a two-phase
// type registry.
//
// This package contains definitions only. The object package consumes
// schemas to construct and validate objects; schema imports nothing from
// the rest of the module, keeping it the foundational layer with no
// circular dependencies.
//
// Key design constraints:
//   - Property descriptors are a closed set of kinds (see Kind) - validation
//     behavior is selected by kind, never by reflection
//   - Schemas declare properties in serialization order; that order is the
//     single source of truth for canonical output
//   - The registry has an explicit two-phase lifecycle: register everything
//     on a RegistryBuilder at startup, then Freeze. A frozen Registry is
//     immutable and safe for unsynchronized concurrent lookups
package schema
