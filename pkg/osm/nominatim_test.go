package osm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocoder(t *testing.T) {
	ctx := context.Background()

	t.Run("Resolves and Memoizes", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, "Ady Endre utca", r.URL.Query().Get("street"))
			assert.Equal(t, "Miskolc", r.URL.Query().Get("city"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			w.Write([]byte(`[{"lat": "48.0935", "lon": "20.7784"}]`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL, 0)
		coords, found, err := g.GeocodeStreet(ctx, "Ady Endre utca", "Miskolc")
		require.NoError(t, err)
		require.True(t, found)
		assert.InDelta(t, 48.0935, coords.Lat, 1e-9)
		assert.InDelta(t, 20.7784, coords.Lon, 1e-9)

		_, found, err = g.GeocodeStreet(ctx, "Ady Endre utca", "Miskolc")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, 1, requests, "found results must be served from cache")
	})

	t.Run("Address Query Includes Number", func(t *testing.T) {
		var gotStreet string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotStreet = r.URL.Query().Get("street")
			w.Write([]byte(`[{"lat": "48.1", "lon": "20.8"}]`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL, 0)
		_, found, err := g.GeocodeAddress(ctx, "Ady Endre utca", 5, "Miskolc")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "5 Ady Endre utca", gotStreet)
	})

	t.Run("No Match Is Not an Error and Not Cached", func(t *testing.T) {
		requests := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.Write([]byte(`[]`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL, 0)
		for i := 0; i < 2; i++ {
			_, found, err := g.GeocodeStreet(ctx, "Ghost utca", "Miskolc")
			require.NoError(t, err)
			assert.False(t, found)
		}
		assert.Equal(t, 2, requests, "misses must not be cached")
	})

	t.Run("Malformed Coordinates Are an Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"lat": "north-ish", "lon": "20.8"}]`))
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL, 0)
		_, _, err := g.GeocodeStreet(ctx, "Ady Endre utca", "Miskolc")
		assert.Error(t, err)
	})

	t.Run("Non-200 Status Is an Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "blocked", http.StatusForbidden)
		}))
		defer srv.Close()

		g := NewGeocoder(srv.URL, 0)
		_, _, err := g.GeocodeStreet(ctx, "Ady Endre utca", "Miskolc")
		assert.Error(t, err)
	})
}
