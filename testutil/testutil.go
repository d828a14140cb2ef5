// Package testutil provides deterministic random bitmap generators for
// tests and benchmarks.
package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/barch"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Byte returns a pseudo-random byte.
func (r *RNG) Byte() byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return byte(r.rand.Intn(256))
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// RandomBitmap generates a width x height bitmap with uniformly random
// pixel values.
func (r *RNG) RandomBitmap(width, height uint) *barch.Bitmap {
	bm, err := barch.NewBitmap(width, height, barch.White)
	if err != nil {
		panic(err)
	}
	data := bm.Data()
	for i := range data {
		data[i] = r.Byte()
	}
	return bm
}

// DocumentBitmap generates a bitmap shaped like a scanned document:
// whiteRowRatio of the rows are entirely white, and the remaining rows mix
// white runs, black runs and occasional gray pixels.
func (r *RNG) DocumentBitmap(width, height uint, whiteRowRatio float64) *barch.Bitmap {
	bm, err := barch.NewBitmap(width, height, barch.White)
	if err != nil {
		panic(err)
	}
	for y := uint(0); y < height; y++ {
		if r.Float64() < whiteRowRatio {
			continue
		}
		row, err := bm.RowAt(y)
		if err != nil {
			panic(err)
		}
		for x := range row {
			switch r.Intn(10) {
			case 0:
				row[x] = r.Byte()
			case 1, 2, 3:
				row[x] = barch.Black
			default:
				row[x] = barch.White
			}
		}
	}
	return bm
}
