package gmix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample draws n points from the component's distribution. rng may be nil,
// in which case the process-wide shared generator is used. The diagonal
// form draws each dimension independently; the full form delegates to
// gonum's multivariate normal.
func (c *Core) Sample(n int, rng *rand.Rand) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: sample count must be >= 0, got %d", ErrInvalidParameter, n)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = sharedRandomState()
	}

	out := make([][]float64, n)

	if c.diagonal() {
		dists := make([]distuv.Normal, c.dim)
		for i, v := range c.Sigma {
			if v <= 0 {
				return nil, fmt.Errorf("%w: variance for dimension %d is %v, covariance is not positive definite",
					ErrDimensionMismatch, i, v)
			}
			dists[i] = distuv.Normal{Mu: c.Mu[i], Sigma: math.Sqrt(v), Src: rng}
		}
		for s := 0; s < n; s++ {
			point := make([]float64, c.dim)
			for i := range point {
				point[i] = dists[i].Rand()
			}
			out[s] = point
		}
		return out, nil
	}

	normal, err := c.fullNormal(rng)
	if err != nil {
		return nil, err
	}
	for s := 0; s < n; s++ {
		out[s] = normal.Rand(nil)
	}
	return out, nil
}

// Sample draws n points from the cluster's mixture by ancestral sampling:
// pick a member Core with probability proportional to its weight, then draw
// from it. All members must share the same dimensionality. rng may be nil,
// in which case the process-wide shared generator is used.
func (cc *CoreCluster) Sample(n int, rng *rand.Rand) ([][]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: sample count must be >= 0, got %d", ErrInvalidParameter, n)
	}
	total, err := cc.totalWeight()
	if err != nil {
		return nil, err
	}
	dim := cc.Cores[0].Dim()
	for i, core := range cc.Cores {
		if core.Dim() != dim {
			return nil, fmt.Errorf("%w: member core %d is %d-dimensional but member core 0 is %d-dimensional",
				ErrDimensionMismatch, i, core.Dim(), dim)
		}
	}
	if rng == nil {
		rng = sharedRandomState()
	}

	out := make([][]float64, n)
	for s := 0; s < n; s++ {
		core := cc.Cores[pickWeighted(cc.Cores, total, rng)]
		point, err := core.Sample(1, rng)
		if err != nil {
			return nil, err
		}
		out[s] = point[0]
	}
	return out, nil
}

// pickWeighted selects a member index with probability Weight()/total.
// The final index absorbs any floating-point remainder.
func pickWeighted(cores []*Core, total float64, rng *rand.Rand) int {
	u := rng.Float64() * total
	var cum float64
	for i, core := range cores {
		cum += core.Weight()
		if u < cum {
			return i
		}
	}
	return len(cores) - 1
}
