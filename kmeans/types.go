package kmeans

import (
	"errors"
	"math/rand"

	"github.com/mikhailzhukov/dtwcluster/centroid"
	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// State names a stage of the fitter's state machine.
type State int

const (
	// Seeded means initial centroids exist, from seeding.Init or an
	// explicit override.
	Seeded State = iota

	// Assigning means every member is being attributed to its closest
	// centroid.
	Assigning

	// Updating means every cluster is rebuilding its centroid.
	Updating

	// Converged means no member changed cluster, or centroid
	// displacement fell below the convergence threshold.
	Converged

	// Exhausted means MaxIter iterations elapsed without convergence.
	Exhausted
)

// ErrDegenerateInput indicates fewer distinct sequences are available than
// the requested K.
var ErrDegenerateInput = errors.New("kmeans: fewer distinct sequences than k")

// ErrInternalInvariant indicates a cluster that was re-seeded on the
// previous iteration is empty again on the current one.
var ErrInternalInvariant = errors.New("kmeans: empty cluster persisted after re-seed")

// convergenceEpsilon bounds squared centroid displacement below which the
// fitter declares convergence, per the 1e-6 squared-units contract.
const convergenceEpsilon = 1e-6

// Config parameterises a single Fit invocation.
type Config struct {
	K                int
	MaxIter          int
	Metric           distance.Func
	Strategy         centroid.Strategy
	RNG              *rand.Rand
	InitialCentroids []tsdata.Sequence // optional K-Means++ override
}

// Result is the outcome of a completed or exhausted Fit run.
type Result struct {
	Centroids   []tsdata.Sequence
	Assignments []int   // per pool index, cluster index
	Members     [][]int // per cluster index, pool indices
	State       State
	Iterations  int
}
