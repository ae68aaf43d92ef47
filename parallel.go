package gmix

import (
	"fmt"
	"sync"
)

// PdfBatchParallel evaluates the density at each row of xs using multiple
// goroutines. workers controls the degree of parallelism; if <= 1, it falls
// back to the single-threaded PdfBatch.
//
// The result is bitwise identical to PdfBatch: one density per input row.
// Density evaluation consumes no randomness, so no generator isolation is
// needed.
func (c *Core) PdfBatchParallel(xs [][]float64, workers int) ([]float64, error) {
	if workers <= 1 {
		return c.PdfBatch(xs)
	}

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
	if n <= 1 {
		return c.pdfFlat(flat, n)
	}

	out := make([]float64, n)

	// Split rows across workers. Each worker evaluates a contiguous range
	// with its own compiled evaluator, so no synchronization is needed for
	// writes and no evaluator state is shared.
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	rowsPerWorker := (n + workers - 1) / workers

	for w := 0; w < workers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			eval, err := c.newDensityFunc()
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			for i := start; i < end; i++ {
				out[i] = eval(flat[i*dims : (i+1)*dims])
			}
		}(startRow, endRow)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
