package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// DefaultNominatimURL is the public Nominatim instance.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// LatLon is a geographic coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves streets and exact addresses to coordinates via the
// Nominatim search API. Found results are memoized for the process lifetime;
// misses and failures are not cached, so a retry re-queries.
type Geocoder struct {
	endpoint string
	hc       *http.Client

	mu    sync.RWMutex
	cache map[string]LatLon
}

// NewGeocoder creates a geocoder against the given endpoint. Empty endpoint
// and zero timeout select the defaults.
func NewGeocoder(endpoint string, timeout time.Duration) *Geocoder {
	if endpoint == "" {
		endpoint = DefaultNominatimURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Geocoder{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: timeout},
		cache:    make(map[string]LatLon),
	}
}

// GeocodeStreet resolves a street center. The boolean reports whether a
// match was found; "not found" is not an error.
func (g *Geocoder) GeocodeStreet(ctx context.Context, street, municipality string) (LatLon, bool, error) {
	return g.lookup(ctx, street, municipality)
}

// GeocodeAddress resolves an exact address (house number + street). Callers
// typically fall back to GeocodeStreet when this finds nothing.
func (g *Geocoder) GeocodeAddress(ctx context.Context, street string, number int, municipality string) (LatLon, bool, error) {
	return g.lookup(ctx, fmt.Sprintf("%d %s", number, street), municipality)
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (g *Geocoder) lookup(ctx context.Context, street, city string) (LatLon, bool, error) {
	key := street + "," + city
	g.mu.RLock()
	cached, ok := g.cache[key]
	g.mu.RUnlock()
	if ok {
		return cached, true, nil
	}

	q := url.Values{}
	q.Set("street", street)
	q.Set("city", city)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"/search?"+q.Encode(), nil)
	if err != nil {
		return LatLon{}, false, fmt.Errorf("nominatim: %w", err)
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := g.hc.Do(req)
	if err != nil {
		return LatLon{}, false, fmt.Errorf("nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LatLon{}, false, fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return LatLon{}, false, fmt.Errorf("nominatim: decode response: %w", err)
	}
	if len(results) == 0 {
		return LatLon{}, false, nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		return LatLon{}, false, fmt.Errorf("nominatim: malformed coordinates %q,%q", results[0].Lat, results[0].Lon)
	}

	coords := LatLon{Lat: lat, Lon: lon}
	g.mu.Lock()
	g.cache[key] = coords
	g.mu.Unlock()
	return coords, true, nil
}
