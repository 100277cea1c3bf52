package iterate

// Range is a half-open index interval [Start, End) assigned to one worker
// during weighted iteration.
type Range struct {
	Start, End int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// partition splits [0, len(seq)) into exactly workers contiguous ranges of
// approximately equal total weight.
//
// The scan is greedy and single-pass: it accumulates weight for the current
// range and closes the range at the current index, inclusive, as soon as the
// next element's weight would push the accumulator past target. Closed
// ranges are never rebalanced. The final range absorbs all trailing
// elements, so skewed weights can leave later ranges empty; empty ranges sit
// at the end of the slice as zero-width intervals and the partition still
// covers [0, len(seq)) with no gaps or overlaps.
//
// workers must be in [1, len(seq)] and seq must be non-empty.
func partition[T any](seq []T, weight WeightFunc[T], workers int) []Range {
	n := len(seq)
	ranges := make([]Range, workers)

	var total float64
	for i := range seq {
		total += weight(&seq[i])
	}
	target := total / float64(workers)

	var accum float64
	start := 0
	ri := 0
	for i := 0; i < n; i++ {
		w := weight(&seq[i])

		// The last element and the last range always absorb the remainder.
		if i < n-1 && ri < workers-1 && accum+w > target {
			ranges[ri] = Range{Start: start, End: i + 1}
			ri++
			start = i + 1
			accum = 0
			continue
		}
		accum += w
	}

	ranges[ri] = Range{Start: start, End: n}
	for ri++; ri < workers; ri++ {
		ranges[ri] = Range{Start: n, End: n}
	}
	return ranges
}
