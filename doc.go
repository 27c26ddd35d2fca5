// Package leafleter is the Composition Root for the leafleter application.
//
// It connects the core business logic (Domain Layer) with the infrastructure
// adapter (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// Leafleter is a local planning tool for canvassing and leaflet distribution.
// Streets are grouped by municipality, expanded into their house numbers,
// annotated with free-text notes, and grouped into distribution sectors. The
// whole state is one JSON document on local disk, rewritten atomically on
// every mutation: one user, one process, one logical writer timeline.
//
// Features:
//
//   - **Hexagonal Architecture**: The domain is isolated behind `core.Store`,
//     so the JSON file adapter can later be swapped for an embedded database
//     without touching callers.
//   - **Deterministic IDs**: Entities derive their identity from a content
//     hash of their canonical key, which makes upserts idempotent across runs.
//   - **Ranked House-Number Resolution**: persisted override, bounded
//     range with parity filter, external OSM dataset lookup, then manual
//     entry. Lookups are memoized per run.
//   - **Fail-Safe Loading**: a missing or corrupted document reinitializes to
//     an empty default; load never raises.
//   - **Import/Export**: the document round-trips through pretty-printed
//     JSON with full validation and per-entity dropping on import.
//
// Usage:
//
//	// Initialize the service with functional options
//	svc, err := leafleter.New("./leafleter.json",
//		leafleter.WithLogger(logger),
//	)
//
//	// Add a street
//	id, err := svc.AddStreet(ctx, leafleter.Street{
//		Name: "Ady Endre utca", Municipality: "Miskolc",
//	})
package leafleter
