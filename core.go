package gmix

import "fmt"

// Core is a single Gaussian distribution used as a component of a larger
// mixture. The zero value is not usable; construct with [NewCore] or
// [DefaultCore].
//
// Fields are exported so an embedding application can inspect or adjust
// parameters, but every density query re-validates them, so a mutation that
// breaks the mean/covariance contract surfaces on the next query rather
// than corrupting results silently.
type Core struct {
	// Mu is the mean vector, one entry per feature dimension.
	Mu []float64

	// Sigma is the covariance representation, flat row-major. A slice of
	// length d holds per-dimension variances (fully independent
	// dimensions). A slice of length d*d holds a full covariance matrix.
	// Any other length fails validation.
	Sigma []float64

	// Delta is the component's weight in a larger mixture, a vector of
	// exactly one non-negative entry.
	Delta []float64

	// Cluster is the CoreCluster this Core is associated with, or nil.
	// The association is a plain back-reference: membership in the
	// cluster's Cores is never cross-checked.
	Cluster *CoreCluster

	dim int
}

// NewCore constructs and validates a Core. A nil delta defaults to a unit
// weight. cluster may be nil.
func NewCore(mu, sigma, delta []float64, cluster *CoreCluster) (*Core, error) {
	if delta == nil {
		delta = []float64{1}
	}
	c := &Core{
		Mu:      mu,
		Sigma:   sigma,
		Delta:   delta,
		Cluster: cluster,
		dim:     -1,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultCore returns a 1-dimensional standard Gaussian: zero mean, unit
// variance, unit weight, no cluster.
func DefaultCore() *Core {
	c, err := NewCore([]float64{0}, []float64{1}, []float64{1}, nil)
	if err != nil {
		// The default parameters always validate.
		panic(err)
	}
	return c
}

// Validate checks the parameter contract and refreshes the derived
// dimensionality. It is called at construction and again before every
// density query; call it directly after mutating fields to fail fast.
func (c *Core) Validate() error {
	c.dim = -1
	if len(c.Mu) == 0 {
		return fmt.Errorf("%w: mu must be a non-empty vector", ErrInvalidParameter)
	}
	if len(c.Sigma) == 0 {
		return fmt.Errorf("%w: sigma must be a non-empty vector", ErrInvalidParameter)
	}
	if len(c.Delta) != 1 {
		return fmt.Errorf("%w: delta must be a vector of exactly one weight, got length %d", ErrInvalidParameter, len(c.Delta))
	}
	if c.Delta[0] < 0 {
		return fmt.Errorf("%w: delta weight must be >= 0, got %v", ErrInvalidParameter, c.Delta[0])
	}

	d := len(c.Mu)
	if len(c.Sigma) != d && len(c.Sigma) != d*d {
		return fmt.Errorf("%w: mu has %d dimensions but sigma has length %d (want %d or %d)",
			ErrDimensionMismatch, d, len(c.Sigma), d, d*d)
	}
	c.dim = d
	return nil
}

// Dim returns the feature dimensionality established by the last successful
// validation, or -1 if the Core has never validated.
func (c *Core) Dim() int {
	return c.dim
}

// Weight returns the scalar mixture weight stored in Delta.
// Panics if Delta is empty; Validate rejects that shape.
func (c *Core) Weight() float64 {
	return c.Delta[0]
}

// diagonal reports whether Sigma is the per-dimension variance form.
// Only meaningful after a successful Validate.
func (c *Core) diagonal() bool {
	return len(c.Sigma) == c.dim
}
