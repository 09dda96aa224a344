// Package clock holds the hour arithmetic behind a 24-hour clock row:
// rotation by a zone offset, workday and current-hour predicates, and
// per-cell style selection.
package clock

import (
	"fmt"
	"time"
)

const (
	HoursPerDay  = 24
	WorkdayStart = 9
	WorkdayEnd   = 17
)

// Style is the emphasis applied to one hour cell.
type Style int

const (
	StylePlain          Style = iota // default terminal rendering
	StyleCurrent                     // current hour outside the workday
	StyleWorkday                     // business hours block
	StyleWorkdayCurrent              // current hour inside the workday
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleCurrent:
		return "current"
	case StyleWorkday:
		return "workday"
	case StyleWorkdayCurrent:
		return "workday-current"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// IsWorkdayHour reports whether hour falls in [WorkdayStart, WorkdayEnd].
func IsWorkdayHour(hour int) bool {
	return hour >= WorkdayStart && hour <= WorkdayEnd
}

// StyleFor maps the two cell predicates to a style.
func StyleFor(workday, current bool) Style {
	switch {
	case workday && current:
		return StyleWorkdayCurrent
	case workday:
		return StyleWorkday
	case current:
		return StyleCurrent
	default:
		return StylePlain
	}
}

// Hours returns 0..23 in natural order.
func Hours() []int {
	hours := make([]int, HoursPerDay)
	for i := range hours {
		hours[i] = i
	}
	return hours
}

func mod(k, n int) int {
	k %= n
	if k < 0 {
		k += n
	}
	return k
}

// RotateLeft returns a copy of s rotated left by k positions. k is reduced
// modulo len(s), so any integer is accepted.
func RotateLeft[T any](s []T, k int) []T {
	out := make([]T, len(s))
	if len(s) == 0 {
		return out
	}
	k = mod(k, len(s))
	n := copy(out, s[k:])
	copy(out[n:], s[:k])
	return out
}

// RotateRight returns a copy of s rotated right by k positions.
func RotateRight[T any](s []T, k int) []T {
	if len(s) == 0 {
		return make([]T, 0)
	}
	return RotateLeft(s, len(s)-mod(k, len(s)))
}

// Rotate orders the hours so that column c holds (c + offset) mod 24:
// left by offset when it is non-negative, right by -offset otherwise.
func Rotate(offset int) []int {
	if offset >= 0 {
		return RotateLeft(Hours(), offset)
	}
	return RotateRight(Hours(), -offset)
}

// UTCOffsetHours returns t's offset from UTC in whole hours, truncated
// toward zero. Sub-hour offsets are not modeled.
func UTCOffsetHours(t time.Time) int {
	_, secs := t.Zone()
	return secs / 3600
}

// FormatUTCOffset renders an offset in seconds as a signed hour with
// minutes only when non-zero, e.g. "+9", "-3:30".
func FormatUTCOffset(secs int) string {
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	h, m := secs/3600, secs%3600/60
	if m == 0 {
		return fmt.Sprintf("%s%d", sign, h)
	}
	return fmt.Sprintf("%s%d:%02d", sign, h, m)
}

// OffsetHours returns how many whole hours target's zone is ahead of
// local's zone. Each side is truncated before subtracting.
func OffsetHours(target, local time.Time) int {
	return UTCOffsetHours(target) - UTCOffsetHours(local)
}

// Cell is one column of a clock row.
type Cell struct {
	Hour  int
	Style Style
	// SeparatorStyled is false for the cell closing the workday; its
	// trailing gap is always printed without styling.
	SeparatorStyled bool
}

// Label is the two-digit, zero-padded hour.
func (c Cell) Label() string {
	return fmt.Sprintf("%02d", c.Hour)
}

// Row is one rendered clock line: a title and 24 cells.
type Row struct {
	Label string
	Cells []Cell
}

// BuildRow lays out the 24 cells for a zone that is offset hours ahead of
// the viewer and whose current hour of day is currentHour.
func BuildRow(label string, offset, currentHour int) Row {
	hours := Rotate(offset)
	cells := make([]Cell, len(hours))
	for i, h := range hours {
		cells[i] = Cell{
			Hour:            h,
			Style:           StyleFor(IsWorkdayHour(h), h == currentHour),
			SeparatorStyled: h != WorkdayEnd,
		}
	}
	return Row{Label: label, Cells: cells}
}

// RowAt builds the row for the zone of target, relative to local.
func RowAt(label string, target, local time.Time) Row {
	return BuildRow(label, OffsetHours(target, local), target.Hour())
}
