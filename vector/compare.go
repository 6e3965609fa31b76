// Package vector: equality and lexicographic ordering over the logical
// element sequence. Capacity never participates in comparison.
package vector

import "cmp"

// Equal reports whether a and b hold the same number of elements with
// element-wise equal values. A nil *Vector compares as empty.
// Complexity: O(min size)
func Equal[T comparable](a, b *Vector[T]) bool {
	as, bs := seq(a), seq(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// Compare performs a three-way lexicographic comparison of a and b:
// −1 when a < b, 0 when equal, +1 when a > b. A sequence that is a
// proper prefix of the other compares as less, so an empty vector
// precedes any non-empty one. All relational helpers below derive from
// Compare, which guarantees trichotomy by construction.
// Complexity: O(min size)
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	as, bs := seq(a), seq(b)
	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := cmp.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(as), len(bs))
}

// Less reports a < b in lexicographic order.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual reports a ≤ b in lexicographic order.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) <= 0 }

// Greater reports a > b in lexicographic order.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports a ≥ b in lexicographic order.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }

// seq returns the live range of v, treating nil as empty.
func seq[T any](v *Vector[T]) []T {
	if v == nil {
		return nil
	}
	return v.buf[:v.size]
}
