package iterate

// Visitor is the canonical per-element callback shape: the element, its
// index, and the whole sequence. Narrower callbacks are lifted to this shape
// with Each and EachIndexed; the choice is made at the call site and checked
// at compile time.
type Visitor[T any] func(elem *T, index int, seq []T)

// WeightFunc estimates the processing cost of a single element. It must
// return a well-defined non-negative value; negative or NaN weights produce
// unspecified partitioning.
type WeightFunc[T any] func(elem *T) float64

// Each lifts an element-only callback to the canonical visitor shape.
func Each[T any](fn func(elem *T)) Visitor[T] {
	return func(elem *T, _ int, _ []T) {
		fn(elem)
	}
}

// EachIndexed lifts an element-and-index callback to the canonical visitor
// shape.
func EachIndexed[T any](fn func(elem *T, index int)) Visitor[T] {
	return func(elem *T, index int, _ []T) {
		fn(elem, index)
	}
}
