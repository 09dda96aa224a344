package cities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := Default()
	require.NotNil(t, table)
	assert.Greater(t, table.Len(), 100)
	assert.Same(t, table, Default(), "Default() should return the same table")
}

func TestTableLocationsLoad(t *testing.T) {
	for _, e := range Default().Entries() {
		assert.NotEmpty(t, e.City)
		assert.NotEmpty(t, e.Timezone, "city %q has empty timezone", e.City)
		assert.NotPanics(t, func() { e.Location() }, "city %q", e.City)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		city   string
		wantTZ string
		wantOK bool
	}{
		{"exact match", "London", "Europe/London", true},
		{"multi-word", "New York", "America/New_York", true},
		{"alias shares zone", "Beijing", "Asia/Shanghai", true},
		{"lowercase does not match", "london", "", false},
		{"surrounding space does not match", " London", "", false},
		{"prefix does not match", "Lond", "", false},
		{"unknown", "Atlantis", "", false},
	}

	table := Default()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tz, ok := table.Lookup(tt.city)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantTZ, tz)
		})
	}
}

func TestResolve_PreservesOrder(t *testing.T) {
	got, err := Default().Resolve([]string{"Tokyo", "London", "Tokyo"})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{City: "Tokyo", Timezone: "Asia/Tokyo"},
		{City: "London", Timezone: "Europe/London"},
		{City: "Tokyo", Timezone: "Asia/Tokyo"},
	}, got)
}

func TestResolve_Empty(t *testing.T) {
	got, err := Default().Resolve(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_FirstMissing(t *testing.T) {
	got, err := Default().Resolve([]string{"London", "Atlantis", "Paris", "Lemuria"})
	require.Error(t, err)
	assert.Nil(t, got, "no partial result on failure")

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Atlantis", nf.City)
	assert.Equal(t, "Timezone not found for city: Atlantis", err.Error())
}

func TestEntryLocation_PanicsOnBadZone(t *testing.T) {
	e := Entry{City: "Nowhere", Timezone: "Invalid/Zone"}
	assert.Panics(t, func() { e.Location() })
}

func TestParse(t *testing.T) {
	table, err := Parse([]byte("Alpha: Europe/Paris\nBeta Town: Asia/Tokyo\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"Alpha", "Beta Town"}, table.Names())

	_, err = Parse([]byte("- not\n- a map\n"))
	assert.Error(t, err)
}

func TestNewTable_CopiesInput(t *testing.T) {
	m := map[string]string{"Alpha": "Europe/Paris"}
	table := NewTable(m)
	m["Alpha"] = "Asia/Tokyo"
	m["Beta"] = "Asia/Tokyo"

	tz, ok := table.Lookup("Alpha")
	assert.True(t, ok)
	assert.Equal(t, "Europe/Paris", tz)
	assert.Equal(t, 1, table.Len())
}

func TestEntries_Sorted(t *testing.T) {
	table := NewTable(map[string]string{"b": "UTC", "a": "UTC", "c": "UTC"})
	entries := table.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].City)
	assert.Equal(t, "c", entries[2].City)
}
