package generator

import (
	"errors"

	"github.com/lintang-b-s/algotrace/pkg/util"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidSize  = errors.New("generator: invalid size")
	ErrInvalidRange = errors.New("generator: invalid range")
)

// RandomArray. n integers drawn uniformly from [min, max]. the same seed always gives the same array.
func RandomArray(n, min, max int, seed uint64) ([]int, error) {
	if n < 0 {
		return nil, util.WrapErrorf(ErrInvalidSize, util.ErrBadParamInput, "array size must not be negative, got %d", n)
	}
	if min > max {
		return nil, util.WrapErrorf(ErrInvalidRange, util.ErrBadParamInput, "min %d is greater than max %d", min, max)
	}

	rng := rand.New(rand.NewSource(seed))
	span := max - min + 1
	values := make([]int, n)
	for i := range values {
		values[i] = min + rng.Intn(span)
	}
	return values, nil
}

// NewRand. seeded source shared by the board generators.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
