// Package dtw computes Dynamic Time Warping alignments between numeric
// sequences, with optional traceback recovery and memory-mode selection.
package dtw

// MemoryMode controls how Align stores its dynamic-programming matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory. Required
//     when ReturnPath is set. Memory: O(n·m).
//   - Rolling    — keep only two rows (current and previous). Cannot
//     recover a traceback. Memory: O(min(n, m)).
type MemoryMode int

const (
	// FullMatrix stores every row, enabling path recovery. O(n·m) memory.
	FullMatrix MemoryMode = iota

	// Rolling keeps only two rows, no path recovery. O(min(n,m)) memory.
	Rolling
)

// Options configures a single Align call.
//
//   - Window       — Sakoe-Chiba band half-width. 0 (or negative) means
//     unconstrained. When positive, Align widens it as needed so a valid
//     path always exists for sequences of unequal length.
//   - SlopePenalty — additive cost applied to insertion/deletion steps.
//   - ReturnPath   — if true, Align backtracks and returns the optimal
//     alignment path. Requires MemoryMode == FullMatrix.
//   - MemoryMode   — FullMatrix or Rolling.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// Result is the outcome of an Align call.
type Result struct {
	// Distance is the square root of the optimal accumulated path cost.
	Distance float64

	// Path is the optimal alignment, ordered from (0,0) to (n-1,m-1).
	// Populated only when Options.ReturnPath was set.
	Path [][2]int
}
