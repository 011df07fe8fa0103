package util

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	mrand "math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

// floats are drawn at most this many times per requested value
// before giving up on a range too narrow to hold them
const floatDrawsPerValue = 64

// RandomSeed reads a seed from crypto/rand, falling back
// to the wall clock if the system source is unavailable.
func RandomSeed() int64 {
	var b [8]byte
	if ErrOnly(crand.Read(b[:])) != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// NewRandom returns a generator owned by the caller: seed it once, draw many.
// Without an explicit seed, RandomSeed is used.
func NewRandom(seeds ...int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(First(seeds, RandomSeed())))
}

// UniqueInts draws count pairwise distinct integers in [min, max].
func UniqueInts[T constraints.Integer](rng *mrand.Rand, count int, min, max T) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}
	values := make([]T, count)
	if err := FillUniqueInts(rng, values, min, max); err != nil {
		return nil, err
	}
	return values, nil
}

// FillUniqueInts fills out with pairwise distinct integers in [min, max].
func FillUniqueInts[T constraints.Integer](rng *mrand.Rand, out []T, min, max T) error {
	if max < min {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, min, max)
	}

	// two's complement keeps the difference exact for signed types too
	var (
		span  = uint64(max) - uint64(min)
		count = uint64(len(out))
	)
	if span != math.MaxUint64 && count > span+1 {
		return fmt.Errorf("%w: %d values requested from [%v, %v]", ErrRangeExhausted, count, min, max)
	}

	if span != math.MaxUint64 && count > span/2 {
		shuffleInts(rng, out, min, span)
	} else {
		sampleInts(rng, out, min, span)
	}
	return nil
}

func sampleInts[T constraints.Integer](rng *mrand.Rand, out []T, min T, span uint64) {
	seen := make(map[uint64]struct{}, len(out))
	for i := 0; i < len(out); {
		offset := uintInclusive(rng, span)
		if _, ok := seen[offset]; ok {
			continue
		}
		seen[offset] = struct{}{}
		out[i] = T(uint64(min) + offset)
		i++
	}
}

// shuffleInts runs a partial Fisher-Yates over the virtual sequence
// 0..span, only materializing the swapped positions.
func shuffleInts[T constraints.Integer](rng *mrand.Rand, out []T, min T, span uint64) {
	swapped := make(map[uint64]uint64, len(out))
	at := func(i uint64) uint64 {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}
	for i := range out {
		var (
			from = uint64(i)
			to   = from + uintInclusive(rng, span-from)
			pick = at(to)
		)
		swapped[to] = at(from)
		out[i] = T(uint64(min) + pick)
	}
}

// uintInclusive returns a uniform value in [0, n].
func uintInclusive(rng *mrand.Rand, n uint64) uint64 {
	if n == math.MaxUint64 {
		return rng.Uint64()
	}
	bound := n + 1
	if bound <= math.MaxInt64 {
		return uint64(rng.Int63n(int64(bound)))
	}
	for {
		if v := rng.Uint64(); v < bound {
			return v
		}
	}
}

// UniqueFloats draws count pairwise distinct floats in [min, max).
func UniqueFloats[T constraints.Float](rng *mrand.Rand, count int, min, max T) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}
	values := make([]T, count)
	if err := FillUniqueFloats(rng, values, min, max); err != nil {
		return nil, err
	}
	return values, nil
}

// FillUniqueFloats fills out with pairwise distinct floats in [min, max).
func FillUniqueFloats[T constraints.Float](rng *mrand.Rand, out []T, min, max T) error {
	var (
		lower = float64(min)
		upper = float64(max)
	)
	if math.IsNaN(lower) || math.IsNaN(upper) || math.IsInf(lower, 0) || math.IsInf(upper, 0) || max <= min {
		return fmt.Errorf("%w: [%v, %v)", ErrInvalidRange, min, max)
	}

	seen := make(map[T]struct{}, len(out))
	for i, draws := 0, 0; i < len(out); draws++ {
		if draws >= floatDrawsPerValue*len(out) {
			return fmt.Errorf("%w: %d values requested from [%v, %v)", ErrRangeExhausted, len(out), min, max)
		}

		fraction := rng.Float64()
		value := T(lower*(1-fraction) + upper*fraction)
		if value < min || value >= max {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out[i] = value
		i++
	}
	return nil
}
