package fs

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dkovordanyi/leafleter/pkg/core"
)

// NormalizeDocument validates an arbitrary decoded JSON value and coerces it
// into the canonical document shape. Entities that cannot be salvaged are
// dropped silently, per-entity:
//
//   - streets need a non-empty trimmed name and municipality
//   - notes need a non-empty streetId and text (address notes also an
//     integer number)
//   - house-number lists are integer-coerced and deduplicated
//   - sectors need a non-empty name
//   - sector assignments must reference a surviving sector
//
// Only an entirely non-object input is an error.
func NormalizeDocument(raw any) (core.Document, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return core.Document{}, core.ErrInvalidDocument
	}

	doc := core.NewDocument()

	streetIDs := map[string]struct{}{}
	for _, item := range asSlice(m["streets"]) {
		sm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimSpace(asString(sm["name"]))
		municipality := strings.TrimSpace(asString(sm["municipality"]))
		if name == "" || municipality == "" {
			continue
		}
		st := core.Street{
			Name:         name,
			Municipality: municipality,
			Start:        asIntPtr(sm["start"]),
			End:          asIntPtr(sm["end"]),
			Interval:     core.Interval(asString(sm["interval"])).Normalize(),
		}
		st.ID = strings.TrimSpace(asString(sm["id"]))
		if st.ID == "" {
			st.ID = core.DeriveID(st.Key())
		}
		if _, dup := streetIDs[st.ID]; dup {
			continue
		}
		streetIDs[st.ID] = struct{}{}
		doc.Streets = append(doc.Streets, st)
	}

	if hn, ok := m["houseNumbers"].(map[string]any); ok {
		for streetID, v := range hn {
			nums := []int{}
			for _, item := range asSlice(v) {
				if n, ok := asInt(item); ok {
					nums = append(nums, n)
				}
			}
			doc.HouseNumbers[streetID] = dedupeSorted(nums)
		}
	}

	for _, item := range asSlice(m["notes"]) {
		nm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		streetID := strings.TrimSpace(asString(nm["streetId"]))
		text := strings.TrimSpace(asString(nm["text"]))
		number, numOK := asInt(nm["number"])
		if streetID == "" || text == "" || !numOK {
			continue
		}
		createdAt := asTime(nm["created_at"])
		id := strings.TrimSpace(asString(nm["id"]))
		if id == "" {
			id = core.DeriveID(streetID, strconv.Itoa(number), text, createdAt.Format(time.RFC3339Nano))
		}
		doc.Notes = append(doc.Notes, core.AddressNote{
			ID:        id,
			StreetID:  streetID,
			Number:    number,
			Text:      text,
			CreatedAt: createdAt,
		})
	}

	for _, item := range asSlice(m["streetNotes"]) {
		nm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		streetID := strings.TrimSpace(asString(nm["streetId"]))
		text := strings.TrimSpace(asString(nm["text"]))
		if streetID == "" || text == "" {
			continue
		}
		createdAt := asTime(nm["created_at"])
		id := strings.TrimSpace(asString(nm["id"]))
		if id == "" {
			id = core.DeriveID(streetID, text, createdAt.Format(time.RFC3339Nano))
		}
		doc.StreetNotes = append(doc.StreetNotes, core.StreetNote{
			ID:        id,
			StreetID:  streetID,
			Text:      text,
			CreatedAt: createdAt,
		})
	}

	sectorIDs := map[string]struct{}{}
	for _, item := range asSlice(m["sectors"]) {
		sm, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name := strings.TrimSpace(asString(sm["name"]))
		if name == "" {
			continue
		}
		sec := core.Sector{
			Name:  name,
			Note:  asString(sm["note"]),
			Color: asString(sm["color"]),
		}
		sec.ID = strings.TrimSpace(asString(sm["id"]))
		if sec.ID == "" {
			sec.ID = core.DeriveID(sec.Key())
		}
		if _, dup := sectorIDs[sec.ID]; dup {
			continue
		}
		sectorIDs[sec.ID] = struct{}{}
		doc.Sectors = append(doc.Sectors, sec)
	}

	if ss, ok := m["streetSectors"].(map[string]any); ok {
		for streetID, v := range ss {
			sectorID := strings.TrimSpace(asString(v))
			if streetID == "" || sectorID == "" {
				continue
			}
			if _, ok := sectorIDs[sectorID]; !ok {
				continue
			}
			doc.StreetSectors[streetID] = sectorID
		}
	}

	return doc, nil
}

func asSlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// asInt coerces JSON numbers (json.Number or float64 depending on decoder
// mode) and numeric strings to int. Non-integer values are rejected.
func asInt(v any) (int, bool) {
	switch t := v.(type) {
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		n := int(t)
		if float64(n) != t {
			return 0, false
		}
		return n, true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

func asIntPtr(v any) *int {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	n, ok := asInt(v)
	if !ok {
		return nil
	}
	return &n
}

// asTime parses an RFC 3339 timestamp, defaulting to now when absent or
// unparseable.
func asTime(v any) time.Time {
	s := strings.TrimSpace(asString(v))
	if s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC()
		}
	}
	return time.Now().UTC()
}
