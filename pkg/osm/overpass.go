// Package osm contains clients for the read-only OpenStreetMap query
// services the planner consults: Overpass (house-number tags) and Nominatim
// (geocoding). Both are plain HTTP+JSON APIs used at most once per distinct
// query per run.
package osm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultOverpassURL is the public Overpass API interpreter endpoint.
const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// DefaultTimeout bounds one external query end to end.
const DefaultTimeout = 30 * time.Second

var numericToken = regexp.MustCompile(`^\d+$`)

// OverpassClient queries the Overpass API for the house numbers known for a
// street. It implements the resolver's lookup source contract.
type OverpassClient struct {
	endpoint string
	hc       *http.Client
}

// NewOverpassClient creates a client against the given endpoint. Empty
// endpoint and zero timeout select the defaults.
func NewOverpassClient(endpoint string, timeout time.Duration) *OverpassClient {
	if endpoint == "" {
		endpoint = DefaultOverpassURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &OverpassClient{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: timeout},
	}
}

type overpassResponse struct {
	Elements []struct {
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// HouseNumbers returns the distinct strictly-numeric house-number tags for
// the street, sorted ascending. Tags like "12/a" are discarded: only tokens
// that are entirely digits survive. An empty result is not an error.
func (c *OverpassClient) HouseNumbers(ctx context.Context, street, municipality string) ([]int, error) {
	query := buildQuery(street, municipality)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("overpass: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("overpass: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("overpass: decode response: %w", err)
	}

	seen := map[int]struct{}{}
	numbers := []int{}
	for _, el := range parsed.Elements {
		tag, ok := el.Tags["addr:housenumber"]
		if !ok || !numericToken.MatchString(tag) {
			continue
		}
		n, err := strconv.Atoi(tag)
		if err != nil {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	return numbers, nil
}

// buildQuery assembles the Overpass QL query: entities tagging the street
// with a house number, preferring matches that also carry the municipality
// as addr:city but falling back to city-less tagging.
func buildQuery(street, municipality string) string {
	s := escapeQL(street)
	m := escapeQL(municipality)
	return fmt.Sprintf(`[out:json][timeout:25];
(
  node["addr:street"="%[1]s"]["addr:housenumber"]["addr:city"="%[2]s"];
  way["addr:street"="%[1]s"]["addr:housenumber"]["addr:city"="%[2]s"];
  relation["addr:street"="%[1]s"]["addr:housenumber"]["addr:city"="%[2]s"];
  node["addr:street"="%[1]s"]["addr:housenumber"];
  way["addr:street"="%[1]s"]["addr:housenumber"];
  relation["addr:street"="%[1]s"]["addr:housenumber"];
);
out body;`, s, m)
}

func escapeQL(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `"`, `\"`)
}
