// SPDX-License-Identifier: Apache-2.0

package fold

// A Pred is a condition on an element and its index.
type Pred[E any] = func(elem E, index int) bool

// Not negates a predicate.
//
// Example:
//
//	odd := fold.Not(isEven)
func Not[E any](pred Pred[E]) Pred[E] {
	return func(elem E, index int) bool {
		return !pred(elem, index)
	}
}

// And combines predicates with logical AND.
//
// Evaluation short-circuits on the first false. With no predicates, the
// result is always true.
func And[E any](preds ...Pred[E]) Pred[E] {
	return func(elem E, index int) bool {
		for _, p := range preds {
			if !p(elem, index) {
				return false
			}
		}
		return true
	}
}

// Or combines predicates with logical OR.
//
// Evaluation short-circuits on the first true. With no predicates, the
// result is always false.
func Or[E any](preds ...Pred[E]) Pred[E] {
	return func(elem E, index int) bool {
		for _, p := range preds {
			if p(elem, index) {
				return true
			}
		}
		return false
	}
}

// Always matches every element.
func Always[E any]() Pred[E] {
	return func(E, int) bool { return true }
}

// Never matches no element.
func Never[E any]() Pred[E] {
	return func(E, int) bool { return false }
}

// Equals matches elements equal to v.
func Equals[E comparable](v E) Pred[E] {
	return func(elem E, _ int) bool {
		return elem == v
	}
}

// Where ignores the index and tests the element only.
func Where[E any](f func(E) bool) Pred[E] {
	return func(elem E, _ int) bool {
		return f(elem)
	}
}

// AtIndex matches the element at position i.
func AtIndex[E any](i int) Pred[E] {
	return func(_ E, index int) bool {
		return index == i
	}
}
