package config

import (
	"sort"

	"github.com/san-kum/sortviz/internal/sorting"
)

var Presets = map[string]*Config{
	"sample":     {Array: sorting.Array{5, 3, 8, 1}},
	"sorted":     {Array: sorting.Array{1, 2, 3, 4, 5, 6, 7, 8}},
	"reversed":   {Array: sorting.Array{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
	"duplicates": {Array: sorting.Array{2, 2, 2}},
	"few-unique": {Array: sorting.Array{3, 1, 3, 1, 2, 3, 1, 2}},
	"single":     {Array: sorting.Array{42}},
	"selection-showcase": {
		Algorithm: "selection",
		Array:     sorting.Array{64, 25, 12, 22, 11},
	},
}

// GetPreset returns a copy of the named preset layered over the defaults.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	if p.Algorithm != "" {
		cfg.Algorithm = p.Algorithm
	}
	cfg.Array = p.Array.Clone()
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
