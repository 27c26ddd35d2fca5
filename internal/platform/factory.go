package platform

import (
	"context"

	"github.com/dkovordanyi/leafleter/pkg/adapters/fs"
	"github.com/dkovordanyi/leafleter/pkg/core"
	"github.com/dkovordanyi/leafleter/pkg/resolve"
)

// New wires a planner Service over the document at path.
//
//	svc, err := leafleter.New("./leafleter.json", leafleter.WithLogger(logger))
func New(path string, opts ...Option) (*core.Service, error) {
	store, o, err := open(path, opts...)
	if err != nil {
		return nil, err
	}
	return core.NewService(store, o.logger), nil
}

// Open initializes just the document store, for callers that want to compose
// their own service or resolver.
func Open(path string, opts ...Option) (core.Store, error) {
	store, _, err := open(path, opts...)
	return store, err
}

// NewResolver builds a house-number resolver over an already-open store,
// honoring WithHouseNumberSource and WithLogger.
func NewResolver(store core.Store, opts ...Option) *resolve.Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return resolve.NewResolver(store, o.source, o.logger)
}

func open(path string, opts ...Option) (core.Store, *options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.store != nil {
		return o.store, o, nil
	}

	store := fs.NewStore(fs.Config{
		Path:      path,
		MustExist: o.mustExist,
		Collation: o.collation,
		Logger:    o.logger,
	})
	if err := store.Initialize(context.Background()); err != nil {
		return nil, nil, err
	}
	return store, o, nil
}
