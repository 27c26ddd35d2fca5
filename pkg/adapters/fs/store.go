package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/dkovordanyi/leafleter/pkg/core"
)

// Store implements core.Store on top of a single JSON document file.
//
// There is deliberately no in-memory cache across calls: every operation
// re-reads the file, mutates the document, and rewrites it atomically before
// returning. Small document, one logical writer timeline.
type Store struct {
	Path   string
	config Config
	logger *slog.Logger

	// serializes read-mutate-rewrite cycles within this process
	writeMu sync.Mutex

	mu            sync.RWMutex
	watcherActive bool
}

// Config holds the configuration for the file-backed store.
type Config struct {
	Path      string
	MustExist bool   // fail Initialize if the document file's directory is missing
	Collation string // BCP 47 tag for street name ordering, e.g. "hu"
	Logger    *slog.Logger
}

// NewStore creates a new file-backed document store.
func NewStore(config Config) *Store {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		Path:   config.Path,
		config: config,
		logger: logger,
	}
}

// Initialize ensures the directory holding the document file exists.
func (s *Store) Initialize(ctx context.Context) error {
	dir := filepath.Dir(s.Path)
	if s.config.MustExist {
		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("data directory does not exist: %s", dir)
		}
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return fmt.Errorf("data path is not a directory: %s", dir)
		}
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// load reads the current document from disk. A missing file means first run;
// an unparseable file means corruption. Both reinitialize to the empty
// default document and persist it, logged distinctly so operators can tell
// the two apart. load never fails on bad content, only on I/O.
func (s *Store) load() (core.Document, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		s.logger.Info("document file missing, initializing default", "path", s.Path)
		return s.reset()
	}
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("document file corrupted, reinitializing default", "path", s.Path, "error", err)
		return s.reset()
	}
	doc.EnsureDefaults()
	return doc, nil
}

func (s *Store) reset() (core.Document, error) {
	doc := core.NewDocument()
	if err := s.save(doc); err != nil {
		return core.Document{}, err
	}
	return doc, nil
}

// save rewrites the whole document atomically. Write failures are fatal to
// the operation and surfaced to the caller.
func (s *Store) save(doc core.Document) error {
	if err := s.Initialize(context.Background()); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	if err := writeFileAtomic(s.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to persist document: %w", err)
	}
	return nil
}

// mutate runs one read-mutate-rewrite cycle. When fn reports no change, the
// rewrite is skipped.
func (s *Store) mutate(fn func(doc *core.Document) (changed bool, err error)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	changed, err := fn(&doc)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.save(doc)
}

// Load implements core.Store.
func (s *Store) Load(ctx context.Context) (core.Document, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.load()
}

// UpsertStreet implements core.Store. Streets are insert-only: an existing
// record with the same derived id is left untouched.
func (s *Store) UpsertStreet(ctx context.Context, st core.Street) (string, error) {
	st.Interval = st.Interval.Normalize()
	id := st.ID
	if id == "" {
		id = core.DeriveID(st.Key())
	}
	st.ID = id

	err := s.mutate(func(doc *core.Document) (bool, error) {
		for _, existing := range doc.Streets {
			if existing.ID == id {
				return false, nil
			}
		}
		doc.Streets = append(doc.Streets, st)
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Street implements core.Store.
func (s *Store) Street(ctx context.Context, id string) (core.Street, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return core.Street{}, err
	}
	for _, st := range doc.Streets {
		if st.ID == id {
			return st, nil
		}
	}
	return core.Street{}, fmt.Errorf("%w: %s", core.ErrStreetNotFound, id)
}

// ListGroupedByMunicipality implements core.Store. Buckets appear in the
// insertion order of the first street seen for each municipality; street
// names within a bucket are collated per the configured locale.
func (s *Store) ListGroupedByMunicipality(ctx context.Context) ([]core.MunicipalityGroup, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	index := map[string]int{}
	groups := []core.MunicipalityGroup{}
	for _, st := range doc.Streets {
		i, ok := index[st.Municipality]
		if !ok {
			i = len(groups)
			index[st.Municipality] = i
			groups = append(groups, core.MunicipalityGroup{Municipality: st.Municipality})
		}
		groups[i].Streets = append(groups[i].Streets, st)
	}

	coll := newCollator(s.config.Collation, s.logger)
	for i := range groups {
		streets := groups[i].Streets
		sort.SliceStable(streets, func(a, b int) bool {
			return coll.CompareString(streets[a].Name, streets[b].Name) < 0
		})
	}
	return groups, nil
}

// SetHouseNumbers implements core.Store. The stored copy is deduplicated and
// sorted ascending.
func (s *Store) SetHouseNumbers(ctx context.Context, streetID string, numbers []int) error {
	return s.mutate(func(doc *core.Document) (bool, error) {
		doc.HouseNumbers[streetID] = dedupeSorted(numbers)
		return true, nil
	})
}

// ListHouseNumbers implements core.Store. An unresolved street yields an
// empty slice, not an error.
func (s *Store) ListHouseNumbers(ctx context.Context, streetID string) ([]int, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	nums := doc.HouseNumbers[streetID]
	if nums == nil {
		return []int{}, nil
	}
	return nums, nil
}

// ListNotes implements core.Store.
func (s *Store) ListNotes(ctx context.Context, streetID string, number int) ([]core.AddressNote, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	notes := []core.AddressNote{}
	for _, n := range doc.Notes {
		if n.StreetID == streetID && n.Number == number {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// AddNote implements core.Store. The id is derived from the note content and
// its creation instant, so two identical texts added at different times both
// survive.
func (s *Store) AddNote(ctx context.Context, streetID string, number int, text string) (string, error) {
	now := time.Now().UTC()
	id := core.DeriveID(streetID, fmt.Sprintf("%d", number), text, now.Format(time.RFC3339Nano))
	err := s.mutate(func(doc *core.Document) (bool, error) {
		doc.Notes = append(doc.Notes, core.AddressNote{
			ID:        id,
			StreetID:  streetID,
			Number:    number,
			Text:      text,
			CreatedAt: now,
		})
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteNote implements core.Store. Unknown ids are a no-op, and no rewrite
// happens in that case.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	return s.mutate(func(doc *core.Document) (bool, error) {
		kept := doc.Notes[:0]
		for _, n := range doc.Notes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		changed := len(kept) != len(doc.Notes)
		doc.Notes = kept
		return changed, nil
	})
}

// ListStreetNotes implements core.Store.
func (s *Store) ListStreetNotes(ctx context.Context, streetID string) ([]core.StreetNote, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	notes := []core.StreetNote{}
	for _, n := range doc.StreetNotes {
		if n.StreetID == streetID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// AddStreetNote implements core.Store.
func (s *Store) AddStreetNote(ctx context.Context, streetID, text string) (string, error) {
	now := time.Now().UTC()
	id := core.DeriveID(streetID, text, now.Format(time.RFC3339Nano))
	err := s.mutate(func(doc *core.Document) (bool, error) {
		doc.StreetNotes = append(doc.StreetNotes, core.StreetNote{
			ID:        id,
			StreetID:  streetID,
			Text:      text,
			CreatedAt: now,
		})
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// DeleteStreetNote implements core.Store.
func (s *Store) DeleteStreetNote(ctx context.Context, id string) error {
	return s.mutate(func(doc *core.Document) (bool, error) {
		kept := doc.StreetNotes[:0]
		for _, n := range doc.StreetNotes {
			if n.ID != id {
				kept = append(kept, n)
			}
		}
		changed := len(kept) != len(doc.StreetNotes)
		doc.StreetNotes = kept
		return changed, nil
	})
}

// ListSectors implements core.Store.
func (s *Store) ListSectors(ctx context.Context) ([]core.Sector, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Sectors, nil
}

// AddOrUpdateSector implements core.Store. Sectors upsert by the id derived
// from (name, note): on collision the existing record is updated in place
// rather than duplicated.
func (s *Store) AddOrUpdateSector(ctx context.Context, name, note, color string) (string, error) {
	sec := core.Sector{Name: name, Note: note, Color: color}
	sec.ID = core.DeriveID(sec.Key())

	err := s.mutate(func(doc *core.Document) (bool, error) {
		for i, existing := range doc.Sectors {
			if existing.ID == sec.ID {
				doc.Sectors[i] = sec
				return true, nil
			}
		}
		doc.Sectors = append(doc.Sectors, sec)
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return sec.ID, nil
}

// DeleteSector implements core.Store. Deleting a sector also removes every
// street assignment pointing to it, so assignments never dangle.
func (s *Store) DeleteSector(ctx context.Context, id string) error {
	return s.mutate(func(doc *core.Document) (bool, error) {
		kept := doc.Sectors[:0]
		for _, sec := range doc.Sectors {
			if sec.ID != id {
				kept = append(kept, sec)
			}
		}
		changed := len(kept) != len(doc.Sectors)
		doc.Sectors = kept

		for streetID, sectorID := range doc.StreetSectors {
			if sectorID == id {
				delete(doc.StreetSectors, streetID)
				changed = true
			}
		}
		return changed, nil
	})
}

// AssignSector implements core.Store. The target sector must exist at
// assignment time; an empty sectorID clears the mapping.
func (s *Store) AssignSector(ctx context.Context, streetID, sectorID string) error {
	return s.mutate(func(doc *core.Document) (bool, error) {
		if sectorID == "" {
			if _, ok := doc.StreetSectors[streetID]; !ok {
				return false, nil
			}
			delete(doc.StreetSectors, streetID)
			return true, nil
		}
		found := false
		for _, sec := range doc.Sectors {
			if sec.ID == sectorID {
				found = true
				break
			}
		}
		if !found {
			return false, fmt.Errorf("%w: %s", core.ErrSectorNotFound, sectorID)
		}
		doc.StreetSectors[streetID] = sectorID
		return true, nil
	})
}

// StreetSector implements core.Store.
func (s *Store) StreetSector(ctx context.Context, streetID string) (string, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return "", err
	}
	return doc.StreetSectors[streetID], nil
}

// ExportRaw implements core.Store.
func (s *Store) ExportRaw(ctx context.Context) (core.Document, error) {
	return s.Load(ctx)
}

// Replace implements core.Store. The candidate is validated and normalized
// into the canonical shape, then becomes the new persisted document; there is
// no merge with pre-existing data.
func (s *Store) Replace(ctx context.Context, raw any) error {
	doc, err := NormalizeDocument(raw)
	if err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.save(doc)
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)

// dedupeSorted returns a deduplicated ascending copy of numbers.
func dedupeSorted(numbers []int) []int {
	seen := make(map[int]struct{}, len(numbers))
	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
