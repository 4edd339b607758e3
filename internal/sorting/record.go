package sorting

// Record runs alg on a private copy of a and returns the steps and the
// sorted result. The caller's array is left untouched.
func Record(alg Algorithm, a Array) (Sequence, Array) {
	work := a.Clone()
	if len(work) == 0 {
		return Sequence{}, work
	}
	steps := alg.Steps(work)
	if steps == nil {
		steps = Sequence{}
	}
	return steps, work
}

// Recording is everything playback needs from one run.
type Recording struct {
	Algorithm string   `json:"algorithm"`
	Original  Array    `json:"original"`
	Sorted    Array    `json:"sorted"`
	Steps     Sequence `json:"steps"`
}

func NewRecording(alg Algorithm, a Array) Recording {
	steps, sorted := Record(alg, a)
	return Recording{
		Algorithm: alg.Name(),
		Original:  a.Clone(),
		Sorted:    sorted,
		Steps:     steps,
	}
}

func (r Recording) Len() int { return len(r.Steps) }

// Validate checks that every indexed step addresses a position below n.
func Validate(seq Sequence, n int) error {
	for idx, st := range seq {
		if err := CheckStep(idx, st, n); err != nil {
			return err
		}
	}
	return nil
}

// CheckStep validates a single step against an array of length n.
func CheckStep(idx int, st Step, n int) error {
	if !st.Indexed() {
		return nil
	}
	if st.I < 0 || st.I >= n || st.J < 0 || st.J >= n {
		return &StepError{Index: idx, Step: st, Len: n, Wrapped: ErrIndexOutOfRange}
	}
	return nil
}

// Replay applies the swap steps of seq to a copy of a.
func Replay(seq Sequence, a Array) (Array, error) {
	out := a.Clone()
	for idx, st := range seq {
		if err := CheckStep(idx, st, len(out)); err != nil {
			return nil, err
		}
		if st.Kind == KindSwap {
			out[st.I], out[st.J] = out[st.J], out[st.I]
		}
	}
	return out, nil
}

// Frames returns the array after every swap, starting with a itself.
func Frames(seq Sequence, a Array) ([]Array, error) {
	cur := a.Clone()
	frames := []Array{cur.Clone()}
	for idx, st := range seq {
		if err := CheckStep(idx, st, len(cur)); err != nil {
			return nil, err
		}
		if st.Kind == KindSwap {
			cur[st.I], cur[st.J] = cur[st.J], cur[st.I]
			frames = append(frames, cur.Clone())
		}
	}
	return frames, nil
}
