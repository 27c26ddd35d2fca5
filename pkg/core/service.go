package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Service handles the business logic on top of a Store: input validation,
// seeding, and the import/export gateway.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Store exposes the underlying document store.
func (s *Service) Store() Store {
	return s.store
}

// AddStreet validates and upserts a street, returning its id. Name and
// municipality must be non-empty after trimming; the interval defaults to
// "all" when unrecognized.
func (s *Service) AddStreet(ctx context.Context, st Street) (string, error) {
	st.Name = strings.TrimSpace(st.Name)
	st.Municipality = strings.TrimSpace(st.Municipality)
	if st.Name == "" {
		return "", errors.New("street name cannot be empty")
	}
	if st.Municipality == "" {
		return "", errors.New("municipality cannot be empty")
	}
	st.Interval = st.Interval.Normalize()
	return s.store.UpsertStreet(ctx, st)
}

// Street retrieves a single street by id.
func (s *Service) Street(ctx context.Context, id string) (Street, error) {
	if id == "" {
		return Street{}, fmt.Errorf("%w: empty id", ErrStreetNotFound)
	}
	return s.store.Street(ctx, id)
}

// Streets returns streets grouped by municipality for display.
func (s *Service) Streets(ctx context.Context) ([]MunicipalityGroup, error) {
	return s.store.ListGroupedByMunicipality(ctx)
}

// Seed upserts the given streets. Seeding is idempotent: streets already
// present (by derived key) are not re-inserted. Returns the ids in input
// order.
func (s *Service) Seed(ctx context.Context, streets []Street) ([]string, error) {
	ids := make([]string, 0, len(streets))
	for _, st := range streets {
		id, err := s.AddStreet(ctx, st)
		if err != nil {
			return ids, fmt.Errorf("seed %q: %w", st.Name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// HouseNumbers returns the resolved set for a street, empty if unresolved.
func (s *Service) HouseNumbers(ctx context.Context, streetID string) ([]int, error) {
	return s.store.ListHouseNumbers(ctx, streetID)
}

// SetHouseNumbers overwrites the resolved set for a street.
func (s *Service) SetHouseNumbers(ctx context.Context, streetID string, numbers []int) error {
	return s.store.SetHouseNumbers(ctx, streetID, numbers)
}

// AddNote attaches a note to an address. Text must be non-empty after
// trimming.
func (s *Service) AddNote(ctx context.Context, streetID string, number int, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("note text cannot be empty")
	}
	return s.store.AddNote(ctx, streetID, number, text)
}

// Notes lists notes for an address.
func (s *Service) Notes(ctx context.Context, streetID string, number int) ([]AddressNote, error) {
	return s.store.ListNotes(ctx, streetID, number)
}

// DeleteNote removes a note by id; unknown ids are a no-op.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	return s.store.DeleteNote(ctx, id)
}

// AddStreetNote attaches a note to a street as a whole.
func (s *Service) AddStreetNote(ctx context.Context, streetID, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", errors.New("note text cannot be empty")
	}
	return s.store.AddStreetNote(ctx, streetID, text)
}

// StreetNotes lists notes scoped to a street.
func (s *Service) StreetNotes(ctx context.Context, streetID string) ([]StreetNote, error) {
	return s.store.ListStreetNotes(ctx, streetID)
}

// DeleteStreetNote removes a street note by id; unknown ids are a no-op.
func (s *Service) DeleteStreetNote(ctx context.Context, id string) error {
	return s.store.DeleteStreetNote(ctx, id)
}

// Sectors lists all sectors.
func (s *Service) Sectors(ctx context.Context) ([]Sector, error) {
	return s.store.ListSectors(ctx)
}

// AddOrUpdateSector upserts a sector by its (name, note) identity.
func (s *Service) AddOrUpdateSector(ctx context.Context, name, note, color string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("sector name cannot be empty")
	}
	return s.store.AddOrUpdateSector(ctx, name, note, color)
}

// DeleteSector removes a sector and cascades to its street assignments.
func (s *Service) DeleteSector(ctx context.Context, id string) error {
	return s.store.DeleteSector(ctx, id)
}

// AssignSector maps a street to a sector; empty sectorID clears.
func (s *Service) AssignSector(ctx context.Context, streetID, sectorID string) error {
	return s.store.AssignSector(ctx, streetID, sectorID)
}

// StreetSector returns the assigned sector id for a street, "" if none.
func (s *Service) StreetSector(ctx context.Context, streetID string) (string, error) {
	return s.store.StreetSector(ctx, streetID)
}

// Export writes the full current document, pretty-printed, to path. An empty
// path means the destination choice was cancelled: the export is skipped and
// ("", nil) is returned. The destination path is returned on success.
func (s *Service) Export(ctx context.Context, path string) (string, error) {
	if path == "" {
		s.logger.Debug("export cancelled, no destination path")
		return "", nil
	}
	doc, err := s.store.ExportRaw(ctx)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	s.logger.Info("document exported", "path", path)
	return path, nil
}

// Import reads and parses the file at path, then validates, normalizes, and
// wholly replaces the persisted document. Malformed JSON fails with ErrParse;
// a parseable non-object fails with ErrInvalidDocument. Invalid entities
// inside an otherwise-valid document are dropped silently.
func (s *Service) Import(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	if err := s.store.Replace(ctx, raw); err != nil {
		return err
	}
	s.logger.Info("document imported", "path", path)
	return nil
}

// Watch observes external changes to the document if the store supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}
	return w.Watch(ctx)
}
