package gmix

import "fmt"

// FormatArray normalizes a batch of data points into the flat row-major
// layout used throughout the package: one row per point, one column per
// feature. Returns the flat data along with the row and column counts.
//
// The input must be non-empty and rectangular with at least one feature;
// ragged rows or zero-width rows fail with ErrMalformedInput.
func FormatArray(data [][]float64) ([]float64, int, int, error) {
	n := len(data)
	if n == 0 {
		return nil, 0, 0, fmt.Errorf("%w: empty batch", ErrMalformedInput)
	}
	dims := len(data[0])
	if dims == 0 {
		return nil, 0, 0, fmt.Errorf("%w: rows must have at least one feature", ErrMalformedInput)
	}
	flat := make([]float64, n*dims)
	for i, row := range data {
		if len(row) != dims {
			return nil, 0, 0, fmt.Errorf("%w: ragged batch, row 0 has %d features but row %d has %d",
				ErrMalformedInput, dims, i, len(row))
		}
		copy(flat[i*dims:], row)
	}
	return flat, n, dims, nil
}

// FormatVector normalizes a flat sequence into rows of dims features and
// returns the flat data along with the row count. A sequence of exactly
// dims values is a single point; a longer sequence whose length is a
// multiple of dims is a stacked batch (a flattened higher-rank structure
// whose trailing axis is the feature axis). Anything else fails with
// ErrMalformedInput.
func FormatVector(data []float64, dims int) ([]float64, int, error) {
	if dims <= 0 {
		return nil, 0, fmt.Errorf("%w: feature dimension must be >= 1, got %d", ErrMalformedInput, dims)
	}
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty point", ErrMalformedInput)
	}
	if len(data)%dims != 0 {
		return nil, 0, fmt.Errorf("%w: length %d is not a multiple of the feature dimension %d",
			ErrMalformedInput, len(data), dims)
	}
	flat := make([]float64, len(data))
	copy(flat, data)
	return flat, len(data) / dims, nil
}
