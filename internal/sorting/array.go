package sorting

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a single bar magnitude.
type Value int

// Array is an ordered snapshot of values.
type Array []Value

func (a Array) Clone() Array {
	if a == nil {
		return Array{}
	}
	c := make(Array, len(a))
	copy(c, a)
	return c
}

func (a Array) Equal(b Array) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String formats the array the way the UI labels show it, e.g. [5,3,8,1].
func (a Array) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(int(v))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (a Array) Max() Value {
	var m Value
	for _, v := range a {
		if v > m {
			m = v
		}
	}
	return m
}

// Bounds limits the arrays accepted for recording.
type Bounds struct {
	Min    Value `yaml:"min" json:"min"`
	Max    Value `yaml:"max" json:"max"`
	MaxLen int   `yaml:"max_length" json:"max_length"`
}

const (
	DefaultMinValue = 1
	DefaultMaxValue = 100
	DefaultMaxLen   = 10
)

func DefaultBounds() Bounds {
	return Bounds{Min: DefaultMinValue, Max: DefaultMaxValue, MaxLen: DefaultMaxLen}
}

// Clamp forces v into [b.Min, b.Max].
func (b Bounds) Clamp(v Value) Value {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Check reports whether a fits the bounds.
func (b Bounds) Check(a Array) error {
	if b.MaxLen > 0 && len(a) > b.MaxLen {
		return fmt.Errorf("%w: %d > %d", ErrTooLong, len(a), b.MaxLen)
	}
	for i, v := range a {
		if v < b.Min || v > b.Max {
			return fmt.Errorf("%w: a[%d]=%d not in [%d,%d]", ErrValueBounds, i, v, b.Min, b.Max)
		}
	}
	return nil
}
