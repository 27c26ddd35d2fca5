// Street is the central entity of the domain.
package core

import (
	"fmt"
	"strconv"
	"time"
)

// Interval constrains which integers in a street's house-number range are
// considered addressable.
type Interval string

const (
	IntervalAll  Interval = "all"
	IntervalEven Interval = "even"
	IntervalOdd  Interval = "odd"
)

// Normalize maps unrecognized values to IntervalAll.
func (i Interval) Normalize() Interval {
	switch i {
	case IntervalAll, IntervalEven, IntervalOdd:
		return i
	}
	return IntervalAll
}

// Matches reports whether n satisfies the parity predicate.
func (i Interval) Matches(n int) bool {
	switch i {
	case IntervalEven:
		return n%2 == 0
	case IntervalOdd:
		return n%2 != 0
	}
	return true
}

// Street is a named thoroughfare within a municipality, optionally bounded by
// a house-number range and a parity filter. A nil End means the range is open
// and house numbers must be resolved from an external source or manual entry.
type Street struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Municipality string   `json:"municipality"`
	Start        *int     `json:"start"`
	End          *int     `json:"end"`
	Interval     Interval `json:"interval"`
}

// Key returns the canonical identity key for the street. Identical keys yield
// identical derived IDs, which is what makes upserts idempotent.
func (s Street) Key() string {
	return s.Municipality + "|" + s.Name + "|" + intPtrString(s.Start) + "|" + intPtrString(s.End) + "|" + string(s.Interval.Normalize())
}

// RangeText renders the display annotation for the street's configured range:
// "(1–9)", "(14–)" for an open end, "(3)" for a single number, or "" when no
// range is configured.
func (s Street) RangeText() string {
	switch {
	case s.Start != nil && s.End != nil && *s.Start != *s.End:
		return fmt.Sprintf("(%d–%d)", *s.Start, *s.End)
	case s.Start != nil && s.End == nil:
		return fmt.Sprintf("(%d–)", *s.Start)
	case s.Start != nil && s.End != nil:
		return fmt.Sprintf("(%d)", *s.Start)
	}
	return ""
}

func intPtrString(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// AddressNote is a free-text note attached to a single address (street +
// house number). Notes are immutable: they are created and deleted, never
// edited in place.
type AddressNote struct {
	ID        string    `json:"id"`
	StreetID  string    `json:"streetId"`
	Number    int       `json:"number"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// StreetNote is a free-text note scoped to a whole street.
type StreetNote struct {
	ID        string    `json:"id"`
	StreetID  string    `json:"streetId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Sector is a user-defined grouping of streets, e.g. a distribution zone.
// Its identity derives from (name, note), so re-adding the same pair updates
// the record instead of duplicating it.
type Sector struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Note  string `json:"note"`
	Color string `json:"color"`
}

// Key returns the canonical identity key for the sector.
func (s Sector) Key() string {
	return s.Name + "|" + s.Note
}

// Document is the whole persisted state: five entity collections plus the
// street-to-sector assignment map. It is read and rewritten as a unit.
type Document struct {
	Streets       []Street          `json:"streets"`
	HouseNumbers  map[string][]int  `json:"houseNumbers"`
	Notes         []AddressNote     `json:"notes"`
	StreetNotes   []StreetNote      `json:"streetNotes"`
	Sectors       []Sector          `json:"sectors"`
	StreetSectors map[string]string `json:"streetSectors"`
}

// NewDocument returns an empty document with all collections initialized.
func NewDocument() Document {
	return Document{
		Streets:       []Street{},
		HouseNumbers:  map[string][]int{},
		Notes:         []AddressNote{},
		StreetNotes:   []StreetNote{},
		Sectors:       []Sector{},
		StreetSectors: map[string]string{},
	}
}

// EnsureDefaults replaces nil collections with empty ones. Older documents may
// lack newer top-level keys; absent keys default to empty on load.
func (d *Document) EnsureDefaults() {
	if d.Streets == nil {
		d.Streets = []Street{}
	}
	if d.HouseNumbers == nil {
		d.HouseNumbers = map[string][]int{}
	}
	if d.Notes == nil {
		d.Notes = []AddressNote{}
	}
	if d.StreetNotes == nil {
		d.StreetNotes = []StreetNote{}
	}
	if d.Sectors == nil {
		d.Sectors = []Sector{}
	}
	if d.StreetSectors == nil {
		d.StreetSectors = map[string]string{}
	}
}

// MunicipalityGroup is one display bucket of the grouped street listing.
type MunicipalityGroup struct {
	Municipality string   `json:"municipality"`
	Streets      []Street `json:"streets"`
}

// EventType represents the type of change observed on the document.
type EventType string

const (
	EventModify EventType = "MODIFY"
)

// Event represents an observed change of the persisted document, e.g. an
// external process rewriting the backing file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements the lifecycle event contract.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
