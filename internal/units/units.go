// Package units converts data quantities into a count of bits.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnknownUnit is returned for a unit tag outside the six known units
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrInvalidQuantity is returned for non-numeric or non-positive quantities
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	// ErrOverflow is returned when the bit count does not fit in an int64
	ErrOverflow = errors.New("bit count overflows")
)

// Unit is one of the six supported data units
type Unit string

const (
	Bit      Unit = "b"
	Byte     Unit = "B"
	Kilobit  Unit = "Kb"
	Kilobyte Unit = "KB"
	Megabit  Unit = "Mb"
	Megabyte Unit = "MB"
)

var multipliers = map[Unit]int64{
	Bit:      1,
	Byte:     8,
	Kilobit:  1000,
	Kilobyte: 1024 * 8,
	Megabit:  1000 * 1000,
	Megabyte: 1024 * 1024 * 8,
}

var names = map[Unit]string{
	Bit:      "bit",
	Byte:     "byte",
	Kilobit:  "kilobit",
	Kilobyte: "kilobyte",
	Megabit:  "megabit",
	Megabyte: "megabyte",
}

// All returns the units in selector order
func All() []Unit {
	return []Unit{Bit, Byte, Kilobit, Kilobyte, Megabit, Megabyte}
}

// String returns the unit symbol
func (u Unit) String() string {
	return string(u)
}

// Name returns the long unit name, e.g. "kilobyte"
func (u Unit) Name() string {
	if n, ok := names[u]; ok {
		return n
	}
	return string(u)
}

// Multiplier returns the number of bits in one unit, or 0 if the unit is unknown
func (u Unit) Multiplier() int64 {
	return multipliers[u]
}

// Valid reports whether u is one of the known units
func (u Unit) Valid() bool {
	_, ok := multipliers[u]
	return ok
}

// Parse resolves a unit tag. Symbols (b, B, Kb, KB, Mb, MB) are case-sensitive;
// long names such as "kilobyte" or "bits" are not.
func Parse(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	if u := Unit(s); u.Valid() {
		return u, nil
	}

	long := strings.TrimSuffix(strings.ToLower(s), "s")
	for u, name := range names {
		if name == long {
			return u, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// ParseQuantity parses a strictly positive base-10 integer
func ParseQuantity(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, s)
	}
	return n, nil
}

// Convert returns the number of bits in quantity units of unit.
// Unknown units yield 0 alongside ErrUnknownUnit.
func Convert(quantity int64, unit Unit) (int64, error) {
	mult, ok := multipliers[unit]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, string(unit))
	}
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if quantity > math.MaxInt64/mult {
		return 0, fmt.Errorf("%w: %d %s", ErrOverflow, quantity, unit.Name())
	}
	return quantity * mult, nil
}

// ConvertString parses unit and converts quantity in one step
func ConvertString(quantity int64, unit string) (int64, error) {
	u, err := Parse(unit)
	if err != nil {
		return 0, err
	}
	return Convert(quantity, u)
}
