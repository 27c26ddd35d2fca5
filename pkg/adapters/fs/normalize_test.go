package fs

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkovordanyi/leafleter/pkg/core"
)

// decode mirrors the import gateway's decoder mode, numbers arrive as
// json.Number.
func decode(t *testing.T, src string) any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(src))
	dec.UseNumber()
	var raw any
	require.NoError(t, dec.Decode(&raw))
	return raw
}

func TestNormalizeDocument(t *testing.T) {
	t.Run("Non-Object Is Invalid", func(t *testing.T) {
		_, err := NormalizeDocument([]any{1, 2})
		assert.ErrorIs(t, err, core.ErrInvalidDocument)
		_, err = NormalizeDocument(nil)
		assert.ErrorIs(t, err, core.ErrInvalidDocument)
	})

	t.Run("Empty Object Yields Default Document", func(t *testing.T) {
		doc, err := NormalizeDocument(map[string]any{})
		require.NoError(t, err)
		assert.NotNil(t, doc.Streets)
		assert.NotNil(t, doc.HouseNumbers)
		assert.NotNil(t, doc.StreetSectors)
	})

	t.Run("Drops Unsalvageable Streets", func(t *testing.T) {
		raw := decode(t, `{"streets": [
			{"name": "  ", "municipality": "Miskolc"},
			{"name": "Ács utca", "municipality": ""},
			{"name": " Ács utca ", "municipality": " Miskolc ", "start": "1", "end": 9, "interval": "odd"},
			"not an object"
		]}`)
		doc, err := NormalizeDocument(raw)
		require.NoError(t, err)
		require.Len(t, doc.Streets, 1)

		st := doc.Streets[0]
		assert.Equal(t, "Ács utca", st.Name)
		assert.Equal(t, "Miskolc", st.Municipality)
		require.NotNil(t, st.Start)
		require.NotNil(t, st.End)
		assert.Equal(t, 1, *st.Start)
		assert.Equal(t, 9, *st.End)
		assert.Equal(t, core.IntervalOdd, st.Interval)
		assert.NotEmpty(t, st.ID, "missing id is derived from identity")
	})

	t.Run("Duplicate Street IDs Keep First", func(t *testing.T) {
		raw := decode(t, `{"streets": [
			{"id": "dup", "name": "First utca", "municipality": "Miskolc"},
			{"id": "dup", "name": "Second utca", "municipality": "Miskolc"}
		]}`)
		doc, err := NormalizeDocument(raw)
		require.NoError(t, err)
		require.Len(t, doc.Streets, 1)
		assert.Equal(t, "First utca", doc.Streets[0].Name)
	})

	t.Run("House Numbers Coerced and Deduplicated", func(t *testing.T) {
		raw := decode(t, `{"houseNumbers": {"s1": [3, "1", 2.0, 2, 1.5, "x"]}}`)
		doc, err := NormalizeDocument(raw)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, doc.HouseNumbers["s1"])
	})

	t.Run("Notes Require Street Text and Number", func(t *testing.T) {
		raw := decode(t, `{"notes": [
			{"streetId": "s1", "number": 5, "text": "ok", "created_at": "2024-03-01T10:00:00Z"},
			{"streetId": "", "number": 5, "text": "dropped"},
			{"streetId": "s1", "text": "no number"},
			{"streetId": "s1", "number": 5, "text": "  "}
		]}`)
		doc, err := NormalizeDocument(raw)
		require.NoError(t, err)
		require.Len(t, doc.Notes, 1)
		assert.Equal(t, "ok", doc.Notes[0].Text)
		assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), doc.Notes[0].CreatedAt)
	})

	t.Run("Unparseable Timestamp Defaults to Now", func(t *testing.T) {
		raw := decode(t, `{"streetNotes": [
			{"streetId": "s1", "text": "hello", "created_at": "yesterday-ish"}
		]}`)
		doc, err := NormalizeDocument(raw)
		require.NoError(t, err)
		require.Len(t, doc.StreetNotes, 1)
		assert.WithinDuration(t, time.Now().UTC(), doc.StreetNotes[0].CreatedAt, time.Minute)
	})

	t.Run("Dangling Sector Assignments Dropped", func(t *testing.T) {
		raw := decode(t, `{
			"sectors": [{"id": "sec1", "name": "North"}, {"name": ""}],
			"streetSectors": {"s1": "sec1", "s2": "ghost", "s3": ""}
		}`)
		doc, err := NormalizeDocument(raw)
		require.NoError(t, err)
		require.Len(t, doc.Sectors, 1)
		assert.Equal(t, map[string]string{"s1": "sec1"}, doc.StreetSectors)
	})
}
