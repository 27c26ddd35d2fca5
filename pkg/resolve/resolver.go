// Package resolve derives the canonical house-number set for a street from
// three ranked sources: a persisted override, the street's configured
// bounded range, and an external address dataset, with manual entry as the
// escape hatch when all three come up empty.
package resolve

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dkovordanyi/leafleter/pkg/core"
)

// Source is the external address dataset consulted for open-ended streets.
// An empty result is a valid, non-error response meaning "fall back to
// manual entry."
type Source interface {
	HouseNumbers(ctx context.Context, street, municipality string) ([]int, error)
}

// State is the terminal state of one resolution attempt.
type State string

const (
	// StateResolved means a house-number set was determined and persisted.
	StateResolved State = "resolved"
	// StateManualEntry means no source produced numbers; the caller should
	// offer a start/end input pair and submit it via ApplyManualRange.
	StateManualEntry State = "manual-entry"
)

// Origin records which ranked source resolved the street.
type Origin string

const (
	OriginStored Origin = "stored"
	OriginRange  Origin = "range"
	OriginLookup Origin = "lookup"
	OriginManual Origin = "manual"
)

// Resolution is the outcome of resolving one street.
type Resolution struct {
	State   State
	Origin  Origin
	Numbers []int

	// LookupErr is set when the external lookup failed (as opposed to
	// returning no data). Both outcomes fall through to manual entry, but
	// callers can offer a retry for this one instead of silently asking
	// the user to type a range during a transient outage.
	LookupErr error
}

// Resolver determines house-number sets for streets. Lookup results are
// memoized in an explicit per-process cache, so rapid repeated expansions of
// the same street do not repeat the network call.
type Resolver struct {
	store  core.Store
	source Source
	cache  *Cache
	logger *slog.Logger
}

// NewResolver creates a resolver over the given store and lookup source.
// A nil source disables external lookups; open-ended streets then go
// straight to manual entry.
func NewResolver(store core.Store, source Source, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		store:  store,
		source: source,
		cache:  NewCache(),
		logger: logger,
	}
}

// Cache exposes the lookup cache, e.g. for Clear in long-running hosts.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// Resolve determines the house-number set for the street. Ranked sources:
//
//  1. A persisted set wins outright; resolved sets are never re-resolved
//     automatically.
//  2. A bounded range (both start and end present) generates the
//     parity-filtered integers and persists them.
//  3. An open end defers to the external dataset; a non-empty result is
//     persisted, an empty result or a lookup failure lands in manual entry.
func (r *Resolver) Resolve(ctx context.Context, st core.Street) (Resolution, error) {
	stored, err := r.store.ListHouseNumbers(ctx, st.ID)
	if err != nil {
		return Resolution{}, err
	}
	if len(stored) > 0 {
		return Resolution{State: StateResolved, Origin: OriginStored, Numbers: stored}, nil
	}

	if st.Start != nil && st.End != nil {
		numbers := GenerateHouseNumbers(*st.Start, *st.End, st.Interval)
		if err := r.store.SetHouseNumbers(ctx, st.ID, numbers); err != nil {
			return Resolution{}, err
		}
		return Resolution{State: StateResolved, Origin: OriginRange, Numbers: numbers}, nil
	}

	if r.source == nil {
		return Resolution{State: StateManualEntry}, nil
	}

	numbers, ok := r.cache.Get(st.Name, st.Municipality)
	if !ok {
		var lookupErr error
		numbers, lookupErr = r.source.HouseNumbers(ctx, st.Name, st.Municipality)
		if lookupErr != nil {
			// Treated as "no data available", but surfaced so callers
			// can distinguish an outage from an empty dataset.
			r.logger.Warn("house-number lookup failed",
				"street", st.Name, "municipality", st.Municipality, "error", lookupErr)
			return Resolution{State: StateManualEntry, LookupErr: lookupErr}, nil
		}
		r.cache.Put(st.Name, st.Municipality, numbers)
	}

	if len(numbers) > 0 {
		if err := r.store.SetHouseNumbers(ctx, st.ID, numbers); err != nil {
			return Resolution{}, err
		}
		return Resolution{State: StateResolved, Origin: OriginLookup, Numbers: numbers}, nil
	}

	return Resolution{State: StateManualEntry}, nil
}

// ApplyManualRange validates a manually entered start/end pair, generates the
// inclusive integer range with no parity filtering, persists it, and returns
// it. Validation failures leave the stored state unchanged; the caller may
// retry immediately.
func (r *Resolver) ApplyManualRange(ctx context.Context, streetID string, start, end int) ([]int, error) {
	if start < 0 || end < start {
		return nil, fmt.Errorf("%w: start=%d end=%d", core.ErrInvalidRange, start, end)
	}
	numbers := GenerateHouseNumbers(start, end, core.IntervalAll)
	if err := r.store.SetHouseNumbers(ctx, streetID, numbers); err != nil {
		return nil, err
	}
	return numbers, nil
}

// GenerateHouseNumbers produces every integer in [start, end] satisfying the
// interval's parity predicate, strictly ascending. An empty range (end below
// start) yields an empty slice.
func GenerateHouseNumbers(start, end int, interval core.Interval) []int {
	interval = interval.Normalize()
	numbers := []int{}
	for i := start; i <= end; i++ {
		if interval.Matches(i) {
			numbers = append(numbers, i)
		}
	}
	return numbers
}
