// Package core provides the foundational domain types and contracts used by
// CarePartner. It defines the core abstractions for:
//
//   - Turns (immutable entries of the append-only session log)
//   - Reports (structured results of one successful query/response cycle)
//   - Phases (the session's single active lifecycle state)
//   - The error taxonomy surfaced by the store and the query engine
//   - Pluggable contracts for session storage and report export
//
// The package intentionally keeps implementation concerns (concrete stores,
// the orchestration engine, model adapters) out of scope, exposing small
// interfaces to enable custom backends and extensions.
package core
