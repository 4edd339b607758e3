// Package trace writes recordings to JSON and CSV and reads JSON traces
// back for replay.
package trace

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

var ErrMalformed = errors.New("trace: malformed trace")

// Document is the on-disk JSON form of a recording.
type Document struct {
	Algorithm string             `json:"algorithm"`
	Original  sorting.Array      `json:"original"`
	Sorted    sorting.Array      `json:"sorted"`
	StepCount int                `json:"step_count"`
	Steps     sorting.Sequence   `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewDocument(rec sorting.Recording) Document {
	return Document{
		Algorithm: rec.Algorithm,
		Original:  rec.Original,
		Sorted:    rec.Sorted,
		StepCount: rec.Len(),
		Steps:     rec.Steps,
		Metrics:   metrics.Collect(rec.Steps),
	}
}

func (d Document) Recording() sorting.Recording {
	return sorting.Recording{
		Algorithm: d.Algorithm,
		Original:  d.Original,
		Sorted:    d.Sorted,
		Steps:     d.Steps,
	}
}

func WriteJSON(w io.Writer, rec sorting.Recording) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(rec))
}

func WriteJSONFile(path string, rec sorting.Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteJSON(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadJSON decodes a trace and checks it with Verify.
func ReadJSON(r io.Reader, b sorting.Bounds) (sorting.Recording, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return sorting.Recording{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	rec := doc.Recording()
	if err := Verify(rec, b); err != nil {
		return sorting.Recording{}, err
	}
	if rec.Steps == nil {
		rec.Steps = sorting.Sequence{}
	}
	return rec, nil
}

func ReadJSONFile(path string, b sorting.Bounds) (sorting.Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return sorting.Recording{}, err
	}
	defer f.Close()
	return ReadJSON(f, b)
}

// Verify reports ErrMalformed unless the algorithm is known, the original
// array fits b, every step index is in range and the swaps turn the
// original array into the sorted one.
func Verify(rec sorting.Recording, b sorting.Bounds) error {
	if _, err := sorting.Lookup(rec.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := b.Check(rec.Original); err != nil {
		return fmt.Errorf("%w: original: %v", ErrMalformed, err)
	}
	if err := sorting.Validate(rec.Steps, len(rec.Original)); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	got, err := sorting.Replay(rec.Steps, rec.Original)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !got.Equal(rec.Sorted) {
		return fmt.Errorf("%w: replay gives %s, trace says %s", ErrMalformed, got, rec.Sorted)
	}
	return nil
}

var csvHeader = []string{"index", "kind", "label", "i", "j", "pass", "swaps", "array"}

// WriteCSV writes one row per step. The array column holds the array
// after the step has been applied.
func WriteCSV(w io.Writer, rec sorting.Recording) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	cur := rec.Original.Clone()
	for idx, st := range rec.Steps {
		if st.Kind == sorting.KindSwap {
			if err := sorting.CheckStep(idx, st, len(cur)); err != nil {
				return err
			}
			cur[st.I], cur[st.J] = cur[st.J], cur[st.I]
		}
		row := []string{
			strconv.Itoa(idx),
			st.Kind.String(),
			st.Label.String(),
			"", "", "", "",
			cur.String(),
		}
		if st.Indexed() {
			row[3] = strconv.Itoa(st.I)
			row[4] = strconv.Itoa(st.J)
		}
		if st.Kind == sorting.KindCompare {
			row[5] = strconv.Itoa(st.Pass)
			row[6] = strconv.Itoa(st.Swaps)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
