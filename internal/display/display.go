// Package display writes 24-hour clock rows to a terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/jamonette/tzol/internal/cities"
	"github.com/jamonette/tzol/internal/clock"
	"github.com/jamonette/tzol/internal/ui"
)

const (
	// LocalLabel titles the viewer's own row.
	LocalLabel = "local time"
	// DefaultLabelWidth is the width of the row title column.
	DefaultLabelWidth = 20

	separator = "  "
)

// StyleCodes returns the SGR codes for a cell style.
func StyleCodes(s clock.Style) string {
	switch s {
	case clock.StyleWorkdayCurrent:
		return ui.Red + ui.BgBlue
	case clock.StyleWorkday:
		return ui.White + ui.BgBlue
	case clock.StyleCurrent:
		return ui.Red
	default:
		return ""
	}
}

// FitLabel pads or truncates label to exactly width terminal columns.
func FitLabel(label string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(label, width, ""), width)
}

// FormatRow renders row as a single newline-terminated line.
func FormatRow(row clock.Row, labelWidth int) string {
	var b strings.Builder
	b.WriteString(ui.Paint(ui.Blue, FitLabel(row.Label, labelWidth)))
	for _, c := range row.Cells {
		codes := StyleCodes(c.Style)
		b.WriteString(ui.Paint(codes, c.Label()))
		if c.SeparatorStyled {
			b.WriteString(ui.Paint(codes, separator))
		} else {
			b.WriteString(separator)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// Renderer writes clock rows to w.
type Renderer struct {
	w          io.Writer
	labelWidth int
}

// NewRenderer returns a Renderer writing to w. A non-positive width falls
// back to DefaultLabelWidth.
func NewRenderer(w io.Writer, labelWidth int) *Renderer {
	if labelWidth <= 0 {
		labelWidth = DefaultLabelWidth
	}
	return &Renderer{w: w, labelWidth: labelWidth}
}

// WriteRow prints one row.
func (r *Renderer) WriteRow(row clock.Row) error {
	_, err := io.WriteString(r.w, FormatRow(row, r.labelWidth))
	return err
}

// Render prints the local row followed by one row per entry, in order.
// now is sampled once by the caller and shared by every row; its location
// is taken as the viewer's local zone.
func (r *Renderer) Render(entries []cities.Entry, now time.Time) error {
	if err := r.WriteRow(clock.BuildRow(LocalLabel, 0, now.Hour())); err != nil {
		return fmt.Errorf("write local row: %w", err)
	}

	for _, e := range entries {
		target := now.In(e.Location())
		row := clock.RowAt(e.City, target, now)
		log.Debug().
			Str("city", e.City).
			Str("timezone", e.Timezone).
			Int("offset", clock.OffsetHours(target, now)).
			Int("hour", target.Hour()).
			Msg("render row")
		if err := r.WriteRow(row); err != nil {
			return fmt.Errorf("write row for %s: %w", e.City, err)
		}
	}
	return nil
}
