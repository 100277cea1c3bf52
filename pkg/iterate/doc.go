/*
Package iterate provides synchronous parallel iteration over slices, built
on the worker pool in pkg/pool.

Iterate splits a slice uniformly: one job per element, all bulk-enqueued to
an ephemeral pool sized to min(workers, len(seq)). IterateWeighted instead
partitions the slice into contiguous index ranges of approximately equal
total weight, one job per range, using a caller-supplied per-element cost
estimate. Both calls block until every element has been visited.

Callbacks are expressed through a small set of visitor shapes picked at the
call site:

	// element only
	iterate.Iterate(iterate.Each(func(v *Item) { v.Process() }), 0, items)

	// element and index
	iterate.Iterate(iterate.EachIndexed(func(v *Item, i int) {
		v.Rank = i
	}), 8, items)

	// element, index and whole sequence (the canonical shape)
	iterate.Iterate(func(v *Item, i int, seq []Item) {
		v.Next = &seq[(i+1)%len(seq)]
	}, 8, items)

Any additional inputs a callback needs are closure captures.

Visitation order is unspecified: callbacks must not assume one index is
processed before or after another, and the aggregate effect must be
order-independent. A callback that panics crashes the process; the pool
machinery installs no recovery.

Weighted iteration uses a greedy single-pass partitioner. It always emits
exactly min(workers, len(seq)) ranges covering the slice contiguously, but
makes no optimality claim: once a range closes it is never rebalanced, and
heavily skewed weights can leave trailing workers with empty ranges.
*/
package iterate
