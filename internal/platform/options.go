package platform

import (
	"log/slog"
	"time"

	"github.com/dkovordanyi/leafleter/pkg/core"
	"github.com/dkovordanyi/leafleter/pkg/resolve"
)

// options holds the internal configuration for the planner service.
type options struct {
	store     core.Store
	source    resolve.Source
	logger    *slog.Logger
	mustExist bool
	collation string
	timeout   time.Duration
}

// Option defines a functional option for configuring the planner.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service and store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom document store (e.g. a mock or a
// future embedded-database adapter). If provided, the default file-backed
// store is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithMustExist requires the data directory to already exist instead of
// being created on demand.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithCollation sets the BCP 47 tag used to order street names within a
// municipality. Defaults to Hungarian.
func WithCollation(tag string) Option {
	return func(o *options) {
		o.collation = tag
	}
}

// WithHouseNumberSource sets the external dataset consulted for open-ended
// streets. Nil disables lookups; resolution then falls straight through to
// manual entry.
func WithHouseNumberSource(source resolve.Source) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithLookupTimeout bounds external lookup and geocoding calls.
func WithLookupTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}
