package leafleter_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovordanyi/leafleter"
)

func intp(n int) *int { return &n }

// TestPlannerLifecycle walks the main flow end to end: seed, expand, annotate,
// sector, export, import into a second planner.
func TestPlannerLifecycle(t *testing.T) {
	ctx := context.Background()
	dataFile := filepath.Join(t.TempDir(), "leafleter.json")

	svc, err := leafleter.New(dataFile)
	require.NoError(t, err)

	// Seed the built-in street list, twice to prove idempotence.
	_, err = svc.Seed(ctx, leafleter.DefaultStreets())
	require.NoError(t, err)
	_, err = svc.Seed(ctx, leafleter.DefaultStreets())
	require.NoError(t, err)

	groups, err := svc.Streets(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Streets, len(leafleter.DefaultStreets()))

	// Expand a bounded street.
	store, err := leafleter.Open(dataFile)
	require.NoError(t, err)
	resolver := leafleter.NewResolver(store)

	var bounded leafleter.Street
	for _, st := range groups[0].Streets {
		if st.Name == "Ady Endre utca" && st.End != nil {
			bounded = st
		}
	}
	require.NotEmpty(t, bounded.ID)

	res, err := resolver.Resolve(ctx, bounded)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, res.Numbers)

	// Annotate an address on it.
	noteID, err := svc.AddNote(ctx, bounded.ID, 5, "ring twice")
	require.NoError(t, err)
	notes, err := svc.Notes(ctx, bounded.ID, 5)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, noteID, notes[0].ID)

	// Group it into a sector.
	sectorID, err := svc.AddOrUpdateSector(ctx, "North", "", "#ff0000")
	require.NoError(t, err)
	require.NoError(t, svc.AssignSector(ctx, bounded.ID, sectorID))

	// Round-trip through export and import.
	exportPath := filepath.Join(t.TempDir(), "export.json")
	_, err = svc.Export(ctx, exportPath)
	require.NoError(t, err)

	second, err := leafleter.New(filepath.Join(t.TempDir(), "other.json"))
	require.NoError(t, err)
	require.NoError(t, second.Import(ctx, exportPath))

	nums, err := second.HouseNumbers(ctx, bounded.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Numbers, nums)

	assigned, err := second.StreetSector(ctx, bounded.ID)
	require.NoError(t, err)
	assert.Equal(t, sectorID, assigned)
}

func TestWatchAcrossInstances(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	dataFile := filepath.Join(t.TempDir(), "leafleter.json")
	watcherSvc, err := leafleter.New(dataFile)
	require.NoError(t, err)
	writerSvc, err := leafleter.New(dataFile)
	require.NoError(t, err)

	// Prime the file so the watcher has something to observe.
	_, err = watcherSvc.AddStreet(ctx, leafleter.Street{Name: "Ács utca", Municipality: "Miskolc", Start: intp(1)})
	require.NoError(t, err)

	events, err := watcherSvc.Watch(ctx)
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	_, err = writerSvc.AddStreet(ctx, leafleter.Street{Name: "Áchim utca", Municipality: "Miskolc", Start: intp(1)})
	require.NoError(t, err)

	select {
	case ev, ok := <-events:
		require.True(t, ok)
		assert.Equal(t, dataFile, ev.Path)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for a document change event")
	}
}
