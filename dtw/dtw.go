package dtw

import (
	"errors"
	"math"
)

// Align — Dynamic Time Warping
//
// Description:
//
//	Align measures the minimum-cost monotone alignment between two
//	sequences that may vary in speed or phase. Step cost is the squared
//	difference of aligned values; the reported distance is the square
//	root of the optimal accumulated path cost.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and within the Sakoe-Chiba band, if constrained):
//     cost  = (a[i-1] - b[j-1])^2
//     diag  = D[i-1][j-1]
//     left  = D[i][j-1]   + SlopePenalty
//     up    = D[i-1][j]   + SlopePenalty
//     D[i][j] = cost + min(diag, left, up)
//  4. distance = sqrt(D[n][m]).
//  5. If ReturnPath, backtrack from (n,m) to (0,0) following the stored
//     predecessor, preferring diagonal, then left, then up on ties.
//
// Complexity:
//
//	Time   = O(n·m). Banding limits which cells are computed, but every
//	         cell of the grid is still visited, so it is not O(n·w).
//	Memory = O(n·m) (FullMatrix) or O(min(n,m)) (Rolling)
//
// Errors:
//   - ErrInvalidShape        — if either input is empty.
//   - ErrPathNeedsFullMatrix — if ReturnPath=true with MemoryMode=Rolling.
var (
	// ErrInvalidShape indicates one or both input sequences are empty.
	ErrInvalidShape = errors.New("dtw: sequences must be non-empty")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

const (
	dirDiag uint8 = iota
	dirLeft
	dirUp
)

// Align computes the Dynamic Time Warping distance between a and b.
//
// If opts.ReturnPath is true, opts.MemoryMode must be FullMatrix.
//
// Example:
//
//	res, err := dtw.Align(seqA, seqB, dtw.Options{ReturnPath: true, MemoryMode: dtw.FullMatrix})
func Align(a, b []float64, opts Options) (Result, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return Result{}, ErrInvalidShape
	}
	if opts.ReturnPath && opts.MemoryMode != FullMatrix {
		return Result{}, ErrPathNeedsFullMatrix
	}

	window := 0
	if opts.Window > 0 {
		window = opts.Window
		if min := int(math.Ceil(math.Abs(float64(n - m)))); window < min {
			window = min
		}
	}
	banded := window > 0

	if opts.MemoryMode == FullMatrix || opts.ReturnPath {
		return alignFull(a, b, opts.SlopePenalty, banded, window, opts.ReturnPath)
	}
	return alignRolling(a, b, opts.SlopePenalty, banded, window)
}

func inBand(i, j, n, m, w int) bool {
	center := float64(i) * float64(m) / float64(n)
	return math.Abs(center-float64(j)) <= float64(w)
}

func alignFull(a, b []float64, penalty float64, banded bool, window int, wantPath bool) (Result, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	var pred [][]uint8
	if wantPath {
		pred = make([][]uint8, n+1)
		for i := range pred {
			pred[i] = make([]uint8, m+1)
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if banded && !inBand(i, j, n, m, window) {
				continue
			}
			diff := a[i-1] - b[j-1]
			cost := diff * diff

			diag := dp[i-1][j-1]
			best := diag
			dir := dirDiag

			left := dp[i][j-1] + penalty
			if left < best {
				best = left
				dir = dirLeft
			}
			up := dp[i-1][j] + penalty
			if up < best {
				best = up
				dir = dirUp
			}

			dp[i][j] = cost + best
			if wantPath {
				pred[i][j] = dir
			}
		}
	}

	distance := math.Sqrt(dp[n][m])
	result := Result{Distance: distance}
	if wantPath {
		result.Path = backtrace(pred, n, m)
	}
	return result, nil
}

func backtrace(pred [][]uint8, n, m int) [][2]int {
	path := make([][2]int, 0, n+m)
	i, j := n, m
	for i >= 1 && j >= 1 {
		path = append(path, [2]int{i - 1, j - 1})
		switch pred[i][j] {
		case dirLeft:
			j--
		case dirUp:
			i--
		default:
			i--
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}

func alignRolling(a, b []float64, penalty float64, banded bool, window int) (Result, error) {
	n, m := len(a), len(b)
	// Roll over the shorter sequence. The recurrence is symmetric under
	// transposition; the band test stays in the original (a, b) frame.
	swapped := m > n
	if swapped {
		a, b = b, a
		n, m = m, n
	}
	inf := math.Inf(1)

	dp := [2][]float64{make([]float64, m+1), make([]float64, m+1)}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		curr, prev := i%2, (i-1)%2
		dp[curr][0] = inf
		for j := 1; j <= m; j++ {
			inside := !banded || inBand(i, j, n, m, window)
			if banded && swapped {
				inside = inBand(j, i, m, n, window)
			}
			if !inside {
				dp[curr][j] = inf
				continue
			}
			diff := a[i-1] - b[j-1]
			cost := diff * diff

			diag := dp[prev][j-1]
			left := dp[curr][j-1] + penalty
			up := dp[prev][j] + penalty

			best := diag
			if left < best {
				best = left
			}
			if up < best {
				best = up
			}
			dp[curr][j] = cost + best
		}
	}

	return Result{Distance: math.Sqrt(dp[n%2][m])}, nil
}
