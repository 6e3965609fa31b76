// Package vector: construction, copying, and read-only accessors.
package vector

// New returns an empty vector: size 0, capacity 0, no buffer.
// Equivalent to the zero value; provided for symmetry with NewFilled.
// Complexity: O(1)
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewFilled returns a vector of n copies of value.
//
// For n == 0 it behaves exactly like New: no buffer is allocated.
// Otherwise capacity is the smallest power of two ≥ n and size is n.
// Returns ErrNegativeCount when n < 0.
// Complexity: O(n)
func NewFilled[T any](n int, value T) (*Vector[T], error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	v := &Vector[T]{}
	if n == 0 {
		return v, nil
	}
	v.buf = make([]T, nextPow2(n))
	v.size = n
	for i := 0; i < n; i++ {
		v.buf[i] = value
	}
	return v, nil
}

// Clone returns a deep, narrowing copy of v.
//
// Only the live range [0,size) is copied into a fresh buffer whose
// capacity is the smallest power of two ≥ size (0 when v is empty).
// Excess capacity of the source is never preserved, and the clone never
// shares storage with v.
// Complexity: O(size)
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	if v.size == 0 {
		return c
	}
	c.buf = make([]T, nextPow2(v.size))
	c.size = v.size
	copy(c.buf, v.buf[:v.size])
	return c
}

// CopyFrom replaces v's contents with a deep copy of other.
//
// Implemented as clone-then-swap, so it is safe under self-assignment
// (v.CopyFrom(v) leaves v observably unchanged) and all-or-nothing: the
// previous buffer is released only once the copy fully exists. Like
// Clone, the adopted capacity is narrowed to nextPow2(other.size).
// Returns ErrNilVector when other is nil.
// Complexity: O(other.size)
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if other == nil {
		return ErrNilVector
	}
	tmp := other.Clone()
	v.buf, v.size = tmp.buf, tmp.size
	return nil
}

// At returns the element at position i.
// Returns the zero value and ErrIndexRange when i is outside [0,size).
// Complexity: O(1)
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, ErrIndexRange
	}
	return v.buf[i], nil
}

// Set overwrites the element at position i with value.
// Returns ErrIndexRange when i is outside [0,size).
// Complexity: O(1)
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.size {
		return ErrIndexRange
	}
	v.buf[i] = value
	return nil
}

// Front returns the first element. Returns ErrEmpty when size is 0.
// Complexity: O(1)
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[0], nil
}

// Back returns the last element. Returns ErrEmpty when size is 0.
// Complexity: O(1)
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[v.size-1], nil
}

// Data returns a read/write window over the live range [0,size).
//
// The window aliases the owned buffer — writes through it are visible in
// the vector. Indexing it is the unchecked access path: bounds are the
// caller's responsibility, as with a raw array. The window stays valid
// only until the next capacity-changing operation (see package doc);
// it is nil when the vector is empty and unallocated.
// Complexity: O(1)
func (v *Vector[T]) Data() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf[:v.size:v.size]
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of allocated slots (0 or a power of two).
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether the vector holds no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }
