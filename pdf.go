package gmix

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// densityFunc evaluates the probability density at one point of Dim()
// features. Built per query by newDensityFunc.
type densityFunc func(x []float64) float64

// newDensityFunc compiles the Core's parameters into a point evaluator.
// The diagonal form precomputes the log normalization constant
// -(d/2)·log 2π - ½·Σ log σᵢ so each point costs O(d). The full-matrix
// form delegates to gonum's multivariate normal, which factorizes the
// covariance once per call here.
func (c *Core) newDensityFunc() (densityFunc, error) {
	if c.diagonal() {
		logNorm := -0.5 * float64(c.dim) * math.Log(2*math.Pi)
		for i, v := range c.Sigma {
			if v <= 0 {
				return nil, fmt.Errorf("%w: variance for dimension %d is %v, covariance is not positive definite",
					ErrDimensionMismatch, i, v)
			}
			logNorm -= 0.5 * math.Log(v)
		}
		mu := c.Mu
		variances := c.Sigma
		return func(x []float64) float64 {
			var maha float64
			for i := range x {
				d := x[i] - mu[i]
				maha += d * d / variances[i]
			}
			return math.Exp(logNorm - 0.5*maha)
		}, nil
	}

	normal, err := c.fullNormal(nil)
	if err != nil {
		return nil, err
	}
	return normal.Prob, nil
}

// fullNormal builds the gonum multivariate normal for the full-covariance
// form of Sigma. src is only needed when the caller will sample.
func (c *Core) fullNormal(src rand.Source) (*distmv.Normal, error) {
	cov := mat.NewSymDense(c.dim, c.Sigma)
	normal, ok := distmv.NewNormal(c.Mu, cov, src)
	if !ok {
		return nil, fmt.Errorf("%w: covariance is not positive definite", ErrDimensionMismatch)
	}
	return normal, nil
}

// Pdf evaluates the multivariate normal probability density at a single
// query point. The Core's parameters are re-validated first, so a mutation
// since construction fails here rather than producing garbage.
func (c *Core) Pdf(x []float64) (float64, error) {
	if err := c.Validate(); err != nil {
		return 0, err
	}
	flat, rows, err := FormatVector(x, c.dim)
	if err != nil {
		return 0, err
	}
	if rows != 1 {
		return 0, fmt.Errorf("%w: expected a single %d-dimensional point, got %d stacked points (use PdfBatch)",
			ErrMalformedInput, c.dim, rows)
	}
	eval, err := c.newDensityFunc()
	if err != nil {
		return 0, err
	}
	return eval(flat), nil
}

// PdfBatch evaluates the density at each row of xs and returns one value
// per row. All rows must have the Core's dimensionality.
func (c *Core) PdfBatch(xs [][]float64) ([]float64, error) {
	flat, n, dims, err := FormatArray(xs)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if dims != c.dim {
		return nil, fmt.Errorf("%w: batch has %d features but the core is %d-dimensional",
			ErrMalformedInput, dims, c.dim)
	}
	return c.pdfFlat(flat, n)
}

// pdfFlat evaluates the density for n rows of flat row-major data.
// Callers have already validated the Core and the layout.
func (c *Core) pdfFlat(flat []float64, n int) ([]float64, error) {
	eval, err := c.newDensityFunc()
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = eval(flat[i*c.dim : (i+1)*c.dim])
	}
	return out, nil
}
