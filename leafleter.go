package leafleter

import (
	"log/slog"
	"time"

	"github.com/dkovordanyi/leafleter/internal/platform"
	"github.com/dkovordanyi/leafleter/pkg/core"
	"github.com/dkovordanyi/leafleter/pkg/resolve"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Street is a public alias for the core street entity.
type Street = core.Street

// AddressNote is a public alias for the per-address note entity.
type AddressNote = core.AddressNote

// StreetNote is a public alias for the street-scoped note entity.
type StreetNote = core.StreetNote

// Sector is a public alias for the street grouping entity.
type Sector = core.Sector

// Document is a public alias for the whole persisted document.
type Document = core.Document

// MunicipalityGroup is a public alias for one grouped-listing bucket.
type MunicipalityGroup = core.MunicipalityGroup

// Interval is a public alias for the house-number parity filter.
type Interval = core.Interval

// Interval values.
const (
	IntervalAll  = core.IntervalAll
	IntervalEven = core.IntervalEven
	IntervalOdd  = core.IntervalOdd
)

// Resolution is a public alias for a house-number resolution outcome.
type Resolution = resolve.Resolution

// --- Configuration ---

// Option defines a functional option for configuring the planner.
type Option = platform.Option

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom document store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithMustExist requires the data directory to already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithCollation sets the locale tag for street name ordering.
func WithCollation(tag string) Option {
	return platform.WithCollation(tag)
}

// WithHouseNumberSource sets the external dataset for open-ended streets.
func WithHouseNumberSource(source resolve.Source) Option {
	return platform.WithHouseNumberSource(source)
}

// WithLookupTimeout bounds external lookup and geocoding calls.
func WithLookupTimeout(d time.Duration) Option {
	return platform.WithLookupTimeout(d)
}

// --- Factories ---

// New creates a planner Service over the document file at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Open initializes just the document store at path.
func Open(path string, opts ...Option) (core.Store, error) {
	return platform.Open(path, opts...)
}

// NewResolver builds a house-number resolver over an open store.
func NewResolver(store core.Store, opts ...Option) *resolve.Resolver {
	return platform.NewResolver(store, opts...)
}

// GenerateHouseNumbers produces the parity-filtered inclusive range.
func GenerateHouseNumbers(start, end int, interval Interval) []int {
	return resolve.GenerateHouseNumbers(start, end, interval)
}

// DeriveID computes the stable content-hash identifier used for entities.
func DeriveID(parts ...string) string {
	return core.DeriveID(parts...)
}

// DefaultStreets returns the built-in seed street list.
func DefaultStreets() []Street {
	return core.DefaultStreets()
}
