// Package sdo registers the built-in STIX domain object types and exposes
// typed constructors and views over the generic object engine.
//
// Every built-in type shares the common property header (type, id,
// created, modified) followed by its own properties. The id property is
// generated from a UUID when absent; created and modified default to the
// construction timestamp. All four built-ins live in one frozen registry
// assembled at package initialization, before any constructor can run, so
// concurrent use needs no synchronization.
//
// The view types (Relationship, Indicator, Malware, Identity) are thin
// wrappers over *object.Object: every accessor reads the same canonical
// backing store, nothing is copied or duplicated.
package sdo
