// Package vector: Vector type declaration, sentinel errors, and the
// capacity rule shared by every growth path.
package vector

import (
	"errors"
	"math/bits"
)

// Sentinel errors for vector operations.
var (
	// ErrEmpty indicates Front, Back or PopBack was called on an empty vector.
	ErrEmpty = errors.New("vector: vector is empty")

	// ErrIndexRange indicates a position outside the valid range for the operation.
	ErrIndexRange = errors.New("vector: index out of range")

	// ErrNegativeCount indicates a negative element count or target size.
	ErrNegativeCount = errors.New("vector: negative count")

	// ErrNilVector indicates a nil *Vector argument.
	ErrNilVector = errors.New("vector: nil vector")
)

// Vector is a resizable, contiguous, 0-indexed sequence of T.
//
// It owns its backing buffer exclusively: len(buf) is the capacity,
// buf is nil exactly when capacity is 0, and capacity is always 0 or a
// power of two. Elements [0,size) are live; slots [size,cap) are kept
// zeroed so released references are not retained.
//
// The zero value is an empty vector ready to use.
type Vector[T any] struct {
	buf  []T // owned storage; len(buf) == capacity, nil iff capacity == 0
	size int // count of live elements, size <= len(buf)
}

// nextPow2 returns the smallest power of two ≥ n, with nextPow2(0) == 0.
// It is the single source of truth for every capacity decision, so
// PushBack, Insert, Resize and Reserve can never diverge.
func nextPow2(n int) int {
	if n <= 1 {
		return n
	}
	return 1 << bits.Len(uint(n-1))
}
