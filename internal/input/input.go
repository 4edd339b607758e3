// Package input turns user text into bounded arrays.
//
// Parsing never fails: unparseable tokens are dropped, the result is
// truncated to the maximum length and values are clamped into range. What
// was changed is reported in a Notice so the UI can tell the user.
package input

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

// DefaultRandomLen is the length of generated arrays.
const DefaultRandomLen = 8

// Notice describes the repairs Parse applied to its input.
type Notice struct {
	Dropped   int
	Truncated int
	Clamped   int
	MaxLen    int
}

func (n Notice) Empty() bool {
	return n.Dropped == 0 && n.Truncated == 0 && n.Clamped == 0
}

func (n Notice) String() string {
	var parts []string
	if n.Truncated > 0 {
		parts = append(parts, fmt.Sprintf("array size limited to %d; only the first %d elements were used", n.MaxLen, n.MaxLen))
	}
	if n.Dropped > 0 {
		parts = append(parts, fmt.Sprintf("%d invalid value(s) ignored", n.Dropped))
	}
	if n.Clamped > 0 {
		parts = append(parts, fmt.Sprintf("%d value(s) clamped into range", n.Clamped))
	}
	return strings.Join(parts, "; ")
}

// Parse reads a comma-separated list of integers. ok is false when nothing
// usable remains, in which case the caller keeps its previous array.
func Parse(text string, b sorting.Bounds) (arr sorting.Array, n Notice, ok bool) {
	n.MaxLen = b.MaxLen
	for _, tok := range strings.Split(text, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := parseLeadingInt(tok)
		if err != nil {
			n.Dropped++
			continue
		}
		arr = append(arr, sorting.Value(v))
	}
	if b.MaxLen > 0 && len(arr) > b.MaxLen {
		n.Truncated = len(arr) - b.MaxLen
		arr = arr[:b.MaxLen]
	}
	for i, v := range arr {
		c := b.Clamp(v)
		if c != v {
			n.Clamped++
			arr[i] = c
		}
	}
	if len(arr) == 0 {
		return nil, n, false
	}
	return arr, n, true
}

// parseLeadingInt accepts an optional sign followed by digits and ignores
// any trailing garbage, so "12px" reads as 12 and "abc" is rejected.
func parseLeadingInt(tok string) (int, error) {
	end := 0
	if end < len(tok) && (tok[end] == '-' || tok[end] == '+') {
		end++
	}
	start := end
	for end < len(tok) && tok[end] >= '0' && tok[end] <= '9' {
		end++
	}
	if end == start {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.Atoi(tok[:end])
	if err != nil {
		// Out-of-range magnitudes still clamp; keep the sign.
		if errors.Is(err, strconv.ErrRange) {
			if tok[0] == '-' {
				return -1 << 31, nil
			}
			return 1<<31 - 1, nil
		}
		return 0, err
	}
	return v, nil
}

// Random returns n values drawn uniformly from the bounds. n is capped at
// the maximum length.
func Random(rng *rand.Rand, n int, b sorting.Bounds) sorting.Array {
	if b.MaxLen > 0 && n > b.MaxLen {
		n = b.MaxLen
	}
	if n < 0 {
		n = 0
	}
	span := int(b.Max-b.Min) + 1
	if span < 1 {
		span = 1
	}
	arr := make(sorting.Array, n)
	for i := range arr {
		arr[i] = b.Min + sorting.Value(rng.Intn(span))
	}
	return arr
}

// Format renders an array as the comma-separated text Parse accepts.
func Format(a sorting.Array) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}
