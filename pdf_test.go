package gmix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPdf_PeakDensity2D(t *testing.T) {
	core, err := NewCore([]float64{0, 0}, []float64{1, 1}, nil, nil)
	require.NoError(t, err)

	// Peak of a 2-D standard normal: 1/(2π) ≈ 0.159155.
	p, err := core.Pdf([]float64{0, 0})
	require.NoError(t, err)
	expected := 1 / (2 * math.Pi)
	if !almostEqual(p, expected, floatTol) {
		t.Errorf("expected %v, got %v", expected, p)
	}
}

func TestPdf_ExampleScenario(t *testing.T) {
	core, err := NewCore([]float64{0, 0}, []float64{1, 1}, nil, nil)
	require.NoError(t, err)

	out, err := core.PdfBatch([][]float64{{0, 0}, {1, 1}})
	require.NoError(t, err)
	require.Len(t, out, 2)

	// 1/(2π) ≈ 0.159155 and 1/(2π·e) ≈ 0.058550.
	if !almostEqual(out[0], 1/(2*math.Pi), floatTol) {
		t.Errorf("expected %v at the mean, got %v", 1/(2*math.Pi), out[0])
	}
	if !almostEqual(out[1], 1/(2*math.Pi*math.E), floatTol) {
		t.Errorf("expected %v at (1,1), got %v", 1/(2*math.Pi*math.E), out[1])
	}
}

func TestPdf_PeakMatchesClosedForm(t *testing.T) {
	// Peak density of diag(σ₁²,…,σₙ²) at μ is 1/((2π)^{n/2}·Πσᵢ).
	cases := []struct {
		mu    []float64
		sigma []float64
	}{
		{[]float64{3}, []float64{4}},
		{[]float64{1, -2}, []float64{0.5, 2}},
		{[]float64{0, 0, 0}, []float64{1, 4, 9}},
	}
	for _, tc := range cases {
		core, err := NewCore(tc.mu, tc.sigma, nil, nil)
		require.NoError(t, err)

		d := float64(len(tc.mu))
		prodStd := 1.0
		for _, v := range tc.sigma {
			prodStd *= math.Sqrt(v)
		}
		expected := 1 / (math.Pow(2*math.Pi, d/2) * prodStd)

		p, err := core.Pdf(tc.mu)
		require.NoError(t, err)
		if !almostEqual(p, expected, 1e-10) {
			t.Errorf("mu=%v sigma=%v: expected %v, got %v", tc.mu, tc.sigma, expected, p)
		}
	}
}

func TestPdfBatch_CountAndNonNegative(t *testing.T) {
	core, err := NewCore([]float64{1, 2, 3}, []float64{1, 2, 3}, nil, nil)
	require.NoError(t, err)

	xs := make([][]float64, 17)
	for i := range xs {
		xs[i] = []float64{float64(i), float64(i) - 5, float64(i) * 0.5}
	}
	out, err := core.PdfBatch(xs)
	require.NoError(t, err)
	require.Len(t, out, len(xs))
	for i, p := range out {
		if p < 0 {
			t.Errorf("density %d is negative: %v", i, p)
		}
	}
}

func TestPdf_FullCovarianceMatchesDiagonal(t *testing.T) {
	diag, err := NewCore([]float64{1, -1}, []float64{2, 3}, nil, nil)
	require.NoError(t, err)
	full, err := NewCore([]float64{1, -1}, []float64{2, 0, 0, 3}, nil, nil)
	require.NoError(t, err)

	points := [][]float64{{1, -1}, {0, 0}, {2.5, -3}}
	for _, x := range points {
		pd, err := diag.Pdf(x)
		require.NoError(t, err)
		pf, err := full.Pdf(x)
		require.NoError(t, err)
		if !almostEqual(pd, pf, 1e-12) {
			t.Errorf("x=%v: diagonal %v != full %v", x, pd, pf)
		}
	}
}

func TestPdf_FullCovarianceNotPositiveDefinite(t *testing.T) {
	// [[1,2],[2,1]] has eigenvalues 3 and -1.
	core, err := NewCore([]float64{0, 0}, []float64{1, 2, 2, 1}, nil, nil)
	require.NoError(t, err)

	_, err = core.Pdf([]float64{0, 0})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPdf_ZeroVarianceNotPositiveDefinite(t *testing.T) {
	core, err := NewCore([]float64{0, 0}, []float64{1, 0}, nil, nil)
	require.NoError(t, err)

	_, err = core.Pdf([]float64{0, 0})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestPdf_WrongLengthPoint(t *testing.T) {
	core, err := NewCore([]float64{0, 0}, []float64{1, 1}, nil, nil)
	require.NoError(t, err)

	_, err = core.Pdf([]float64{0, 0, 0})
	require.ErrorIs(t, err, ErrMalformedInput)

	_, err = core.Pdf(nil)
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestPdf_StackedPointRejected(t *testing.T) {
	core, err := NewCore([]float64{0, 0}, []float64{1, 1}, nil, nil)
	require.NoError(t, err)

	// Two stacked 2-D points belong in PdfBatch.
	_, err = core.Pdf([]float64{0, 0, 1, 1})
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestPdfBatch_RaggedInput(t *testing.T) {
	core, err := NewCore([]float64{0, 0}, []float64{1, 1}, nil, nil)
	require.NoError(t, err)

	_, err = core.PdfBatch([][]float64{{0, 0}, {1}})
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestPdfBatch_WrongWidth(t *testing.T) {
	core, err := NewCore([]float64{0, 0}, []float64{1, 1}, nil, nil)
	require.NoError(t, err)

	_, err = core.PdfBatch([][]float64{{0, 0, 0}})
	require.ErrorIs(t, err, ErrMalformedInput)
}
