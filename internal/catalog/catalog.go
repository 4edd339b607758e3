// Package catalog holds the display material for each algorithm: its
// pseudocode, which pseudocode line each step highlights, and reference
// implementations in several languages.
package catalog

import (
	"fmt"
	"sort"

	"github.com/san-kum/sortviz/internal/sorting"
)

// View selects what the code panel shows.
type View string

const (
	ViewPseudo View = "pseudo"
	ViewPython View = "python"
	ViewC      View = "c"
	ViewCPP    View = "cpp"
	ViewJava   View = "java"
)

var views = []View{ViewPseudo, ViewPython, ViewC, ViewCPP, ViewJava}

func Views() []View {
	out := make([]View, len(views))
	copy(out, views)
	return out
}

func ParseView(s string) (View, error) {
	for _, v := range views {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown code view %q", s)
}

// NextView cycles through the views in order.
func NextView(v View) View {
	for i, x := range views {
		if x == v {
			return views[(i+1)%len(views)]
		}
	}
	return ViewPseudo
}

// Entry is the display material of one algorithm.
type Entry struct {
	Name        string
	Description string
	Pseudocode  []string
	Code        map[View]string

	markerLines map[sorting.Label]int
	compareLine int
	swapLine    int
}

// Line returns the pseudocode line a step highlights, or -1.
func (e *Entry) Line(st sorting.Step) int {
	switch st.Kind {
	case sorting.KindMarker:
		if l, ok := e.markerLines[st.Label]; ok {
			return l
		}
	case sorting.KindCompare:
		return e.compareLine
	case sorting.KindSwap:
		return e.swapLine
	}
	return -1
}

type Registry struct {
	entries map[string]*Entry
}

func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]*Entry)}
	r.entries["bubble"] = bubbleEntry()
	r.entries["selection"] = selectionEntry()
	return r
}

func (r *Registry) Get(name string) (*Entry, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sorting.ErrUnknownAlgorithm, name)
	}
	return e, nil
}

// For returns the entry of alg; every algorithm in sorting.Algorithms has one.
func (r *Registry) For(alg sorting.Algorithm) *Entry {
	e, err := r.Get(alg.Name())
	if err != nil {
		return &Entry{Name: alg.Name(), Code: map[View]string{}}
	}
	return e
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
