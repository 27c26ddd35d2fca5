package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovordanyi/leafleter/pkg/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(Config{Path: filepath.Join(t.TempDir(), "leafleter.json")})
	require.NoError(t, store.Initialize(context.Background()))
	return store
}

func intp(n int) *int { return &n }

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing File Yields Default Document", func(t *testing.T) {
		store := newTestStore(t)
		doc, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, doc.Streets)
		assert.NotNil(t, doc.HouseNumbers)
		assert.NotNil(t, doc.StreetSectors)

		// The default must also have been persisted.
		_, err = os.Stat(store.Path)
		assert.NoError(t, err)
	})

	t.Run("Corrupt File Reinitializes", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, os.WriteFile(store.Path, []byte("{{{"), 0644))

		doc, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, doc.Streets)

		data, err := os.ReadFile(store.Path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"streets"`)
	})

	t.Run("Absent Keys Default Empty", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, os.WriteFile(store.Path, []byte(`{"streets": []}`), 0644))

		doc, err := store.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, doc.Notes)
		assert.NotNil(t, doc.Sectors)
	})
}

func TestStore_UpsertStreet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	st := core.Street{Name: "Ady Endre utca", Municipality: "Miskolc", Start: intp(1), End: intp(9)}

	id1, err := store.UpsertStreet(ctx, st)
	require.NoError(t, err)
	id2, err := store.UpsertStreet(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, id1, id2, "same identity must upsert to the same record")

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Streets, 1)

	// Same name, different segment: a separate record.
	id3, err := store.UpsertStreet(ctx, core.Street{Name: "Ady Endre utca", Municipality: "Miskolc", Start: intp(14)})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)

	got, err := store.Street(ctx, id3)
	require.NoError(t, err)
	assert.Nil(t, got.End)

	_, err = store.Street(ctx, "does-not-exist")
	assert.ErrorIs(t, err, core.ErrStreetNotFound)
}

func TestStore_ListGroupedByMunicipality(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	seed := []core.Street{
		{Name: "Béke utca", Municipality: "Miskolc"},
		{Name: "Fő utca", Municipality: "Szirmabesenyő"},
		{Name: "Áfonyás utca", Municipality: "Miskolc"},
		{Name: "Ady Endre utca", Municipality: "Miskolc"},
	}
	for _, st := range seed {
		_, err := store.UpsertStreet(ctx, st)
		require.NoError(t, err)
	}

	groups, err := store.ListGroupedByMunicipality(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Buckets keep first-seen order, Miskolc before Szirmabesenyő.
	assert.Equal(t, "Miskolc", groups[0].Municipality)
	assert.Equal(t, "Szirmabesenyő", groups[1].Municipality)

	// Within a bucket names collate per locale: accented Á sorts with A,
	// so Ady < Áfonyás < Béke.
	names := []string{}
	for _, st := range groups[0].Streets {
		names = append(names, st.Name)
	}
	assert.Equal(t, []string{"Ady Endre utca", "Áfonyás utca", "Béke utca"}, names)
}

func TestStore_HouseNumbers(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("Stored Deduplicated and Sorted", func(t *testing.T) {
		require.NoError(t, store.SetHouseNumbers(ctx, "street-1", []int{3, 1, 2, 2}))
		nums, err := store.ListHouseNumbers(ctx, "street-1")
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, nums)
	})

	t.Run("Unresolved Street Yields Empty", func(t *testing.T) {
		nums, err := store.ListHouseNumbers(ctx, "never-set")
		require.NoError(t, err)
		assert.NotNil(t, nums)
		assert.Empty(t, nums)
	})
}

func TestStore_Notes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	id1, err := store.AddNote(ctx, "street-1", 5, "dog at the gate")
	require.NoError(t, err)
	id2, err := store.AddNote(ctx, "street-1", 5, "dog at the gate")
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2, "identical texts at different instants are distinct notes")

	notes, err := store.ListNotes(ctx, "street-1", 5)
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	t.Run("Delete Unknown ID Is No-Op", func(t *testing.T) {
		before, err := os.Stat(store.Path)
		require.NoError(t, err)

		require.NoError(t, store.DeleteNote(ctx, "ghost"))

		after, err := os.Stat(store.Path)
		require.NoError(t, err)
		assert.Equal(t, before.ModTime(), after.ModTime(), "no-op delete must not rewrite the file")
	})

	require.NoError(t, store.DeleteNote(ctx, id1))
	notes, err = store.ListNotes(ctx, "street-1", 5)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestStore_Sectors(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("Upsert by Name and Note", func(t *testing.T) {
		id1, err := store.AddOrUpdateSector(ctx, "North", "", "#ff0000")
		require.NoError(t, err)
		id2, err := store.AddOrUpdateSector(ctx, "North", "", "#00ff00")
		require.NoError(t, err)
		assert.Equal(t, id1, id2)

		sectors, err := store.ListSectors(ctx)
		require.NoError(t, err)
		require.Len(t, sectors, 1)
		assert.Equal(t, "#00ff00", sectors[0].Color, "color update must land on the existing record")
	})

	t.Run("Assignment Requires Existing Sector", func(t *testing.T) {
		err := store.AssignSector(ctx, "street-1", "no-such-sector")
		assert.ErrorIs(t, err, core.ErrSectorNotFound)
	})

	t.Run("Assign and Clear", func(t *testing.T) {
		id, err := store.AddOrUpdateSector(ctx, "South", "hills", "")
		require.NoError(t, err)

		require.NoError(t, store.AssignSector(ctx, "street-1", id))
		got, err := store.StreetSector(ctx, "street-1")
		require.NoError(t, err)
		assert.Equal(t, id, got)

		require.NoError(t, store.AssignSector(ctx, "street-1", ""))
		got, err = store.StreetSector(ctx, "street-1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Delete Cascades to Assignments", func(t *testing.T) {
		id, err := store.AddOrUpdateSector(ctx, "East", "", "#0000ff")
		require.NoError(t, err)
		require.NoError(t, store.AssignSector(ctx, "street-2", id))

		require.NoError(t, store.DeleteSector(ctx, id))

		got, err := store.StreetSector(ctx, "street-2")
		require.NoError(t, err)
		assert.Empty(t, got, "deleting a sector must drop its assignments")
	})
}

func TestStore_Replace(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	_, err := store.UpsertStreet(ctx, core.Street{Name: "Doomed utca", Municipality: "Elsewhere"})
	require.NoError(t, err)

	raw := map[string]any{
		"streets": []any{
			map[string]any{"name": "Ács utca", "municipality": "Miskolc"},
		},
	}
	require.NoError(t, store.Replace(ctx, raw))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Streets, 1)
	assert.Equal(t, "Ács utca", doc.Streets[0].Name, "replace must not merge with prior state")

	assert.ErrorIs(t, store.Replace(ctx, "not a document"), core.ErrInvalidDocument)
}

func TestStore_InitializeMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "leafleter.json")
	store := NewStore(Config{Path: missing, MustExist: true})
	assert.Error(t, store.Initialize(context.Background()))
}
