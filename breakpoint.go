package showcase

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidBreakpoints is returned when a breakpoint table cannot be resolved
// unambiguously.
var ErrInvalidBreakpoints = errors.New("invalid breakpoints")

// Layout holds the card geometry for one viewport width.
type Layout struct {
	CardWidth    float64
	Gap          float64
	VisibleCount float64
}

// Stride is the distance between the left edges of two adjacent cards.
func (l Layout) Stride() float64 {
	return l.CardWidth + l.Gap
}

// Breakpoint maps viewport widths up to and including MaxWidth to a layout.
// MaxWidth 0 means unbounded and is only valid on the last row.
type Breakpoint struct {
	MaxWidth     int     `yaml:"maxWidth"`
	CardWidth    float64 `yaml:"cardWidth"`
	Gap          float64 `yaml:"gap"`
	VisibleCount float64 `yaml:"visibleCount"`
}

// Layout returns the row's layout.
func (b Breakpoint) Layout() Layout {
	return Layout{CardWidth: b.CardWidth, Gap: b.Gap, VisibleCount: b.VisibleCount}
}

// BreakpointTable is evaluated top to bottom; the first row whose MaxWidth
// covers the viewport wins.
type BreakpointTable []Breakpoint

// DefaultBreakpoints returns the project carousel table.
func DefaultBreakpoints() BreakpointTable {
	return BreakpointTable{
		{MaxWidth: 480, CardWidth: 260, Gap: 12, VisibleCount: 1.2},
		{MaxWidth: 768, CardWidth: 280, Gap: 16, VisibleCount: 1.5},
		{MaxWidth: 1024, CardWidth: 280, Gap: 16, VisibleCount: 2.5},
		{MaxWidth: 0, CardWidth: 300, Gap: 24, VisibleCount: 3},
	}
}

// Resolve returns the layout for a viewport width. A width past every bounded
// row falls into the last row. An empty table resolves with the defaults.
func (t BreakpointTable) Resolve(width int) Layout {
	if len(t) == 0 {
		return DefaultBreakpoints().Resolve(width)
	}
	for _, b := range t {
		if b.MaxWidth == 0 || width <= b.MaxWidth {
			return b.Layout()
		}
	}
	return t[len(t)-1].Layout()
}

// Validate checks that rows are in ascending order, that only the last row is
// unbounded, and that every row has usable geometry.
func (t BreakpointTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: table is empty", ErrInvalidBreakpoints)
	}
	prev := 0
	for i, b := range t {
		last := i == len(t)-1
		switch {
		case b.MaxWidth < 0:
			return fmt.Errorf("%w: row %d: negative maxWidth %d", ErrInvalidBreakpoints, i, b.MaxWidth)
		case b.MaxWidth == 0 && !last:
			return fmt.Errorf("%w: row %d: only the last row may be unbounded", ErrInvalidBreakpoints, i)
		case b.MaxWidth != 0 && last:
			return fmt.Errorf("%w: row %d: last row must be unbounded (maxWidth 0)", ErrInvalidBreakpoints, i)
		case b.MaxWidth != 0 && b.MaxWidth <= prev:
			return fmt.Errorf("%w: row %d: maxWidth %d not above %d", ErrInvalidBreakpoints, i, b.MaxWidth, prev)
		case b.CardWidth <= 0:
			return fmt.Errorf("%w: row %d: cardWidth must be positive", ErrInvalidBreakpoints, i)
		case b.Gap < 0:
			return fmt.Errorf("%w: row %d: gap must not be negative", ErrInvalidBreakpoints, i)
		case b.VisibleCount < 1:
			return fmt.Errorf("%w: row %d: visibleCount %.2f is below 1", ErrInvalidBreakpoints, i, b.VisibleCount)
		}
		prev = b.MaxWidth
	}
	return nil
}

// MaxIndex is the last window index that does not overshoot the collection:
// max(0, total - floor(visible)).
func MaxIndex(total int, visible float64) int {
	return max(0, total-int(math.Floor(visible)))
}

// Tier is a coarse device class derived from viewport width.
type Tier uint8

const (
	TierMobile  Tier = iota // width <= 768
	TierTablet              // width <= 1024
	TierDesktop             // wider
)

func (t Tier) String() string {
	switch t {
	case TierMobile:
		return "mobile"
	case TierTablet:
		return "tablet"
	default:
		return "desktop"
	}
}

// TierForWidth classifies a viewport width.
func TierForWidth(width int) Tier {
	switch {
	case width <= 768:
		return TierMobile
	case width <= 1024:
		return TierTablet
	default:
		return TierDesktop
	}
}
