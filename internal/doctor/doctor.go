package doctor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jamonette/tzol/internal/cities"
	"github.com/jamonette/tzol/internal/clock"
	"github.com/jamonette/tzol/internal/config"
	"github.com/jamonette/tzol/internal/ui"
)

// Status represents the result of a health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string
	Status  Status
	Message string
}

// Env is what the checks inspect.
type Env struct {
	Table      *cities.Table
	ConfigPath string
	Now        time.Time
}

// Check is a single health check function.
type Check func(env Env) Result

// Run executes all checks and prints a diagnostic report. It returns the
// number of failed checks.
func Run(w io.Writer, env Env) int {
	checks := []Check{
		CheckTableEntries,
		CheckTableLocations,
		CheckLocalZone,
		CheckConfigFile,
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Boldf("  tzol doctor"))
	fmt.Fprintln(w)

	var fails int
	for _, check := range checks {
		result := check(env)
		fmt.Fprintf(w, "  %s  %s\n", statusIcon(result.Status), result.Message)
		if result.Status == StatusFail {
			fails++
		}
	}

	fmt.Fprintln(w)
	if fails == 0 {
		fmt.Fprintln(w, ui.Greenf("  All checks passed!"))
	} else {
		fmt.Fprintln(w, ui.Redf("  %d check(s) failed", fails))
	}
	fmt.Fprintln(w)
	return fails
}

func statusIcon(s Status) string {
	switch s {
	case StatusPass:
		return ui.Greenf("PASS")
	case StatusWarn:
		return ui.Yellowf("WARN")
	case StatusFail:
		return ui.Redf("FAIL")
	default:
		return "????"
	}
}

// CheckTableEntries verifies the table is non-empty and has no blank keys or values.
func CheckTableEntries(env Env) Result {
	if env.Table == nil || env.Table.Len() == 0 {
		return Result{Name: "table_entries", Status: StatusFail,
			Message: "City table: empty"}
	}
	var blank []string
	for _, e := range env.Table.Entries() {
		if strings.TrimSpace(e.City) == "" || strings.TrimSpace(e.Timezone) == "" {
			blank = append(blank, fmt.Sprintf("%q", e.City))
		}
	}
	if len(blank) > 0 {
		return Result{Name: "table_entries", Status: StatusFail,
			Message: fmt.Sprintf("City table: blank entries: %s", strings.Join(blank, ", "))}
	}
	return Result{Name: "table_entries", Status: StatusPass,
		Message: fmt.Sprintf("City table: %d cities", env.Table.Len())}
}

// CheckTableLocations loads every timezone identifier in the table.
func CheckTableLocations(env Env) Result {
	if env.Table == nil || env.Table.Len() == 0 {
		return Result{Name: "table_locations", Status: StatusFail,
			Message: "Timezones: no table loaded"}
	}
	var bad []string
	zones := map[string]bool{}
	for _, e := range env.Table.Entries() {
		if _, err := time.LoadLocation(e.Timezone); err != nil {
			bad = append(bad, fmt.Sprintf("%s (%s)", e.City, e.Timezone))
			continue
		}
		zones[e.Timezone] = true
	}
	if len(bad) > 0 {
		return Result{Name: "table_locations", Status: StatusFail,
			Message: fmt.Sprintf("Timezones: %d unparseable: %s", len(bad), strings.Join(bad, ", "))}
	}
	return Result{Name: "table_locations", Status: StatusPass,
		Message: fmt.Sprintf("Timezones: all %d distinct identifiers load", len(zones))}
}

// CheckLocalZone warns when the local zone has a sub-hour offset, which the
// clock rows truncate.
func CheckLocalZone(env Env) Result {
	name, secs := env.Now.Zone()
	if secs%3600 != 0 {
		return Result{Name: "local_zone", Status: StatusWarn,
			Message: fmt.Sprintf("Local zone: %s is UTC%s, rows align to whole hours", name, clock.FormatUTCOffset(secs))}
	}
	return Result{Name: "local_zone", Status: StatusPass,
		Message: fmt.Sprintf("Local zone: %s (UTC%s)", name, clock.FormatUTCOffset(secs))}
}

// CheckConfigFile verifies the config file, if present, loads.
func CheckConfigFile(env Env) Result {
	if env.ConfigPath == "" {
		return Result{Name: "config_file", Status: StatusPass,
			Message: "Config file: none, using defaults"}
	}
	if _, err := os.Stat(env.ConfigPath); os.IsNotExist(err) {
		return Result{Name: "config_file", Status: StatusPass,
			Message: fmt.Sprintf("Config file: %s not found, using defaults", env.ConfigPath)}
	}
	if _, err := config.Load(env.ConfigPath, true); err != nil {
		return Result{Name: "config_file", Status: StatusFail,
			Message: fmt.Sprintf("Config file: %v", err)}
	}
	return Result{Name: "config_file", Status: StatusPass,
		Message: fmt.Sprintf("Config file: %s OK", env.ConfigPath)}
}
