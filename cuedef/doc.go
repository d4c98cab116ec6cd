// Package cuedef compiles CUE type declarations into schema.Type values,
// so custom object types can be declared as data rather than Go code.
//
// A definition file declares types under a top-level "types" struct:
//
//	types: campaign: {
//		label: "Campaign"
//		positional: ["name"]
//		properties: {
//			type: {kind: "string", fixed: "campaign"}
//			id: {kind: "identifier", prefix: "campaign--", default: "identifier"}
//			created: {kind: "timestamp", default: "now"}
//			modified: {kind: "timestamp", default: "now"}
//			name: {kind: "string", required: true}
//			first_seen: {kind: "timestamp"}
//		}
//	}
//
// Property declaration order in the CUE struct is the schema's canonical
// serialization order. Compiled types still pass through
// schema.RegistryBuilder.Register, which enforces the structural
// invariants (fixed type property, id prefix, positional names).
package cuedef
