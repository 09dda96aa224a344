// Package cities provides the city-to-timezone table and name resolution for tzol.
package cities

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed cities.yaml
var tableData []byte

// Entry pairs a city name with its IANA timezone identifier.
type Entry struct {
	City     string
	Timezone string
}

// Location parses the entry's timezone. The embedded asset is checked by
// TestTableLocationsLoad and `tzol doctor`, and time/tzdata is linked in,
// so a failure here means the asset is broken and it panics instead of
// returning an error.
func (e Entry) Location() *time.Location {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		panic(fmt.Sprintf("invalid timezone %q for city %q: %v", e.Timezone, e.City, err))
	}
	return loc
}

// NotFoundError reports a requested city with no table entry.
type NotFoundError struct {
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Timezone not found for city: %s", e.City)
}

// Table is a read-only mapping from city name to timezone identifier.
type Table struct {
	zones map[string]string
}

// NewTable copies m into a new Table.
func NewTable(m map[string]string) *Table {
	zones := make(map[string]string, len(m))
	for city, tz := range m {
		zones[city] = tz
	}
	return &Table{zones: zones}
}

// Parse decodes a YAML document of `City: Area/Location` pairs.
func Parse(data []byte) (*Table, error) {
	m := map[string]string{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse city table: %w", err)
	}
	return &Table{zones: m}, nil
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the table built from the embedded asset. It is parsed
// once per process and never modified afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(tableData)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Len returns the number of cities in the table.
func (t *Table) Len() int {
	return len(t.zones)
}

// Lookup returns the timezone identifier for city. Matching is exact.
func (t *Table) Lookup(city string) (string, bool) {
	tz, ok := t.zones[city]
	return tz, ok
}

// Names returns all city names in sorted order.
func (t *Table) Names() []string {
	names := lo.Keys(t.zones)
	slices.Sort(names)
	return names
}

// Entries returns every entry sorted by city name.
func (t *Table) Entries() []Entry {
	return lo.Map(t.Names(), func(city string, _ int) Entry {
		return Entry{City: city, Timezone: t.zones[city]}
	})
}

// Resolve maps each requested city to its table entry, in input order.
// It stops at the first unknown name and returns a *NotFoundError for it;
// no partial result is returned in that case.
func (t *Table) Resolve(names []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		tz, ok := t.zones[name]
		if !ok {
			return nil, &NotFoundError{City: name}
		}
		entries = append(entries, Entry{City: name, Timezone: tz})
	}
	return entries, nil
}
