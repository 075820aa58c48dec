// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"
	"strconv"
)

// Unit is a CSS unit attached to a Measure
type Unit string

const (
	UnitPx      Unit = "px"
	UnitRem     Unit = "rem"
	UnitEm      Unit = "em"
	UnitPercent Unit = "%"
	UnitMs      Unit = "ms"
	UnitS       Unit = "s"
)

// rootFontSize is the pixel size assumed for rem and em conversions.
const rootFontSize = 16

// Measure is a typed CSS length or duration.
type Measure struct {
	Value float64
	Unit  Unit
}

func Px(v float64) Measure  { return Measure{Value: v, Unit: UnitPx} }
func Rem(v float64) Measure { return Measure{Value: v, Unit: UnitRem} }
func Ms(v float64) Measure  { return Measure{Value: v, Unit: UnitMs} }
func Sec(v float64) Measure { return Measure{Value: v, Unit: UnitS} }

// String renders the measure as CSS, e.g. "2px" or "0.15s".
func (m Measure) String() string {
	return strconv.FormatFloat(m.Value, 'f', -1, 64) + string(m.Unit)
}

// IsZero reports whether the measure has no extent, whatever its unit.
func (m Measure) IsZero() bool {
	return m.Value == 0
}

// Pixels converts a length to pixels. Time units and percentages are rejected.
func (m Measure) Pixels() (float64, error) {
	switch m.Unit {
	case UnitPx:
		return m.Value, nil
	case UnitRem, UnitEm:
		return m.Value * rootFontSize, nil
	}
	return 0, fmt.Errorf("%w: %s is not an absolute length", ErrUnitMismatch, m)
}

// Millis converts a duration to milliseconds. Lengths are rejected.
func (m Measure) Millis() (float64, error) {
	switch m.Unit {
	case UnitMs:
		return m.Value, nil
	case UnitS:
		return math.Round(m.Value*1e6) / 1e3, nil
	}
	return 0, fmt.Errorf("%w: %s is not a duration", ErrUnitMismatch, m)
}
