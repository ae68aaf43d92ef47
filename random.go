package gmix

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

var (
	sharedRandOnce sync.Once
	sharedRand     *rand.Rand
)

// sharedRandomState returns the process-wide default generator, created on
// first use and alive for the lifetime of the process. Callers that share
// it advance the same stream, so reproducibility across callers requires
// explicit seeds or generator handles.
func sharedRandomState() *rand.Rand {
	sharedRandOnce.Do(func() {
		sharedRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	})
	return sharedRand
}

// RandomState resolves a seed into a generator handle.
//
// A nil seed returns the process-wide shared generator. An integer seed
// (any built-in integer kind) returns a fresh, independently seeded
// generator that reproduces the same sequence every time the same seed is
// given. An existing *rand.Rand is returned unchanged, and a rand.Source is
// wrapped. Any other value fails with ErrInvalidParameter.
func RandomState(seed any) (*rand.Rand, error) {
	switch s := seed.(type) {
	case nil:
		return sharedRandomState(), nil
	case int:
		return seededRand(uint64(s)), nil
	case int32:
		return seededRand(uint64(s)), nil
	case int64:
		return seededRand(uint64(s)), nil
	case uint:
		return seededRand(uint64(s)), nil
	case uint32:
		return seededRand(uint64(s)), nil
	case uint64:
		return seededRand(s), nil
	case *rand.Rand:
		return s, nil
	case rand.Source:
		return rand.New(s), nil
	default:
		return nil, fmt.Errorf("%w: seed must be nil, an integer, or a generator, got %T", ErrInvalidParameter, seed)
	}
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
