// Package parallel provides the band partitioning and worker pool used to
// run heatmap passes across goroutines.
//
// The canvas is split into horizontal bands of whole rows. Each band is
// written by exactly one task, so passes need no locks or atomics and
// produce the same bytes as a sequential run.
package parallel

// MinBandRows is the smallest band height worth scheduling on its own.
const MinBandRows = 16

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Contains reports whether row y lies in the band.
func (b Band) Contains(y int) bool {
	return y >= b.Y0 && y < b.Y1
}

// Bands splits height rows into at most n contiguous bands of nearly
// equal size. Bands are never shorter than MinBandRows unless height
// itself is. The bands cover [0, height) in order without gaps.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, (height+MinBandRows-1)/MinBandRows))

	bands := make([]Band, n)
	size, extra := height/n, height%n
	y := 0
	for i := range bands {
		rows := size
		if i < extra {
			rows++
		}
		bands[i] = Band{Y0: y, Y1: y + rows}
		y += rows
	}
	return bands
}

// ForEachBand runs fn once per band of height on the pool and waits for
// all of them. With a nil pool, fn runs once over the whole height on the
// calling goroutine.
func ForEachBand(pool *WorkerPool, height int, fn func(b Band)) {
	if pool == nil || pool.Workers() == 1 {
		if height > 0 {
			fn(Band{Y0: 0, Y1: height})
		}
		return
	}

	bands := Bands(height, pool.Workers())
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { fn(b) }
	}
	pool.ExecuteAll(work)
}
