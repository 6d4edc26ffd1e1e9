package seeding

import "math/rand"

// defaultSeed is the fixed seed used when a caller passes seed==0.
const defaultSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand. Policy: seed==0 uses
// defaultSeed; otherwise the provided seed is used verbatim.
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style avalanche finalizer, so nearby streams do
// not correlate.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier. If base is nil, defaultSeed is used as the
// parent. Otherwise base.Int63() is consumed once to decorrelate
// consecutive derivations before mixing with stream via DeriveSeed.
//
// Call during setup, not in hot loops, to create one RNG per sweep branch
// or per-worker stream.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
