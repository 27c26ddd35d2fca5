package core

import "context"

// Store defines the contract for the document store. Adhering to this
// interface keeps the core independent of the underlying storage mechanism
// (a JSON file today, an embedded database tomorrow). Every mutating call is
// expected to re-read, mutate, and rewrite the entire document before
// returning, so callers always observe current disk state.
type Store interface {
	// Load returns the current document. A missing or unparseable backing
	// file is not an error: the store reinitializes an empty default
	// document, persists it, and returns that.
	Load(ctx context.Context) (Document, error)

	// UpsertStreet derives the street's id from its canonical key when
	// absent and inserts it unless a record with that id already exists.
	// The id is returned either way; streets never update on conflict.
	UpsertStreet(ctx context.Context, s Street) (string, error)

	// Street retrieves a single street by id. Returns ErrStreetNotFound
	// when the id is unknown.
	Street(ctx context.Context, id string) (Street, error)

	// ListGroupedByMunicipality buckets streets by municipality. Buckets
	// appear in first-seen insertion order; streets within a bucket are
	// ordered by name using locale-aware collation.
	ListGroupedByMunicipality(ctx context.Context) ([]MunicipalityGroup, error)

	// SetHouseNumbers stores a deduplicated, ascending-sorted copy of
	// numbers for the street, overwriting any previous set.
	SetHouseNumbers(ctx context.Context, streetID string, numbers []int) error

	// ListHouseNumbers returns the stored set, or an empty slice if the
	// street has not been resolved yet.
	ListHouseNumbers(ctx context.Context, streetID string) ([]int, error)

	// ListNotes returns all notes for the given address.
	ListNotes(ctx context.Context, streetID string, number int) ([]AddressNote, error)

	// AddNote appends a note for the given address and returns its id.
	AddNote(ctx context.Context, streetID string, number int, text string) (string, error)

	// DeleteNote removes a note by exact id. Unknown ids are a no-op.
	DeleteNote(ctx context.Context, id string) error

	// ListStreetNotes returns all notes scoped to the street as a whole.
	ListStreetNotes(ctx context.Context, streetID string) ([]StreetNote, error)

	// AddStreetNote appends a street-level note and returns its id.
	AddStreetNote(ctx context.Context, streetID string, text string) (string, error)

	// DeleteStreetNote removes a street note by exact id. Unknown ids are a
	// no-op.
	DeleteStreetNote(ctx context.Context, id string) error

	// ListSectors returns all sectors.
	ListSectors(ctx context.Context) ([]Sector, error)

	// AddOrUpdateSector upserts by the id derived from (name, note).
	// Unlike streets, sectors do update in place on key collision.
	AddOrUpdateSector(ctx context.Context, name, note, color string) (string, error)

	// DeleteSector removes the sector and every street assignment that
	// points to it.
	DeleteSector(ctx context.Context, id string) error

	// AssignSector maps a street to a sector. An empty sectorID clears the
	// assignment; a non-empty unknown sectorID fails with ErrSectorNotFound.
	AssignSector(ctx context.Context, streetID, sectorID string) error

	// StreetSector returns the assigned sector id, or "" if none.
	StreetSector(ctx context.Context, streetID string) (string, error)

	// ExportRaw returns the full current document, verbatim.
	ExportRaw(ctx context.Context) (Document, error)

	// Replace validates and normalizes an arbitrary decoded value into the
	// canonical document shape, then atomically becomes the new persisted
	// document. Invalid entities are dropped per-entity; an entirely
	// non-object input fails with ErrInvalidDocument.
	Replace(ctx context.Context, raw any) error
}

// Watchable defines an interface for stores that can observe external
// changes to their backing storage.
type Watchable interface {
	// Watch emits an event whenever the backing document changes outside
	// this store. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}
