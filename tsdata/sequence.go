package tsdata

// Sequence is an ordered finite numeric series of nominal length D. It is
// stored either densely (a full []float64) or sparsely (a map[int]float64,
// absent indices treated as zero); both forms expose the same dense view.
type Sequence struct {
	dense  []float64
	sparse map[int]float64
	length int
}

// NewDense wraps values as a dense Sequence. The slice is retained without
// copying; callers must not mutate it afterwards.
func NewDense(values []float64) Sequence {
	return Sequence{dense: values, length: len(values)}
}

// NewSparse builds a Sequence of nominal length n from index->value pairs.
// Absent indices are treated as zero when the sequence is densified.
func NewSparse(n int, values map[int]float64) Sequence {
	return Sequence{sparse: values, length: n}
}

// Len returns the sequence's nominal length D.
func (s Sequence) Len() int {
	return s.length
}

// IsSparse reports whether the sequence is stored in sparse form.
func (s Sequence) IsSparse() bool {
	return s.sparse != nil
}

// At returns the value at index i, treating absent sparse indices as zero.
func (s Sequence) At(i int) float64 {
	if s.sparse != nil {
		return s.sparse[i]
	}
	return s.dense[i]
}

// Dense returns a dense []float64 view of length Len(). For a dense
// Sequence this is the backing slice itself; for a sparse Sequence it
// materialises a fresh, zero-filled copy.
func (s Sequence) Dense() []float64 {
	if s.sparse == nil {
		return s.dense
	}
	out := make([]float64, s.length)
	for idx, v := range s.sparse {
		if idx >= 0 && idx < s.length {
			out[idx] = v
		}
	}
	return out
}
