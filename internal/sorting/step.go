package sorting

import "fmt"

// Kind tags the variant carried by a Step.
type Kind uint8

const (
	KindMarker Kind = iota + 1
	KindCompare
	KindSwap
)

var kindNames = map[Kind]string{
	KindMarker:  "marker",
	KindCompare: "compare",
	KindSwap:    "swap",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("sorting: invalid step kind %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	for kind, name := range kindNames {
		if name == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("sorting: invalid step kind %q", b)
}

// Label names the logical part of an algorithm a Marker refers to.
// Renderers map labels to their own pseudocode lines.
type Label uint8

const (
	LabelNone Label = iota
	LabelPassStart
	LabelCompare
	LabelSwapDecision
	LabelSwapDone
	LabelPassEnd
	LabelScanStart
	LabelNewMinimum
)

var labelNames = map[Label]string{
	LabelNone:         "",
	LabelPassStart:    "pass_start",
	LabelCompare:      "compare",
	LabelSwapDecision: "swap_decision",
	LabelSwapDone:     "swap_done",
	LabelPassEnd:      "pass_end",
	LabelScanStart:    "scan_start",
	LabelNewMinimum:   "new_minimum",
}

func (l Label) String() string {
	if s, ok := labelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("label(%d)", uint8(l))
}

func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Label) UnmarshalText(b []byte) error {
	for label, name := range labelNames {
		if name == string(b) {
			*l = label
			return nil
		}
	}
	return fmt.Errorf("sorting: invalid marker label %q", b)
}

// Step is one discrete visualization event. Only the fields relevant to
// Kind are meaningful: Label for markers; I, J, Pass and Swaps for
// comparisons; I and J for swaps.
type Step struct {
	Kind  Kind  `json:"kind"`
	Label Label `json:"label,omitempty"`
	I     int   `json:"i"`
	J     int   `json:"j"`
	Pass  int   `json:"pass"`
	Swaps int   `json:"swaps"`
}

// Marker records entry into the part of an algorithm named by l.
func Marker(l Label) Step {
	return Step{Kind: KindMarker, Label: l}
}

// Compare records a comparison of positions i and j. swaps counts the swaps
// completed before this comparison.
func Compare(i, j, pass, swaps int) Step {
	return Step{Kind: KindCompare, I: i, J: j, Pass: pass, Swaps: swaps}
}

// Swap records an exchange of positions i and j.
func Swap(i, j int) Step {
	return Step{Kind: KindSwap, I: i, J: j}
}

// Indexed reports whether the step addresses array positions.
func (s Step) Indexed() bool {
	return s.Kind == KindCompare || s.Kind == KindSwap
}

func (s Step) String() string {
	switch s.Kind {
	case KindMarker:
		return "marker " + s.Label.String()
	case KindCompare:
		return fmt.Sprintf("compare %d,%d pass=%d swaps=%d", s.I, s.J, s.Pass, s.Swaps)
	case KindSwap:
		return fmt.Sprintf("swap %d,%d", s.I, s.J)
	}
	return s.Kind.String()
}

// Sequence is the ordered output of a recording. Treat it as read-only.
type Sequence []Step

// Count returns the number of steps of the given kind.
func (s Sequence) Count(k Kind) int {
	n := 0
	for _, st := range s {
		if st.Kind == k {
			n++
		}
	}
	return n
}

func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}
