// Package vector: mutating operations. Every method here re-establishes
// the package invariants (power-of-two capacity, size ≤ capacity, zeroed
// spare slots) before returning, and leaves the vector untouched when it
// reports a precondition error.
package vector

// grow ensures capacity ≥ need, reallocating to nextPow2(need) when the
// current buffer is too small. Live elements are copied into the new
// buffer before the old one is released, so a vector is never observable
// in a partially-moved state.
func (v *Vector[T]) grow(need int) {
	if need <= len(v.buf) {
		return
	}
	nb := make([]T, nextPow2(need))
	copy(nb, v.buf[:v.size])
	v.buf = nb
}

// release zeroes slots [from,to) so the spare region holds no stale
// references. Keeps invariant 4 and lets the GC reclaim erased values.
func (v *Vector[T]) release(from, to int) {
	var zero T
	for i := from; i < to; i++ {
		v.buf[i] = zero
	}
}

// PushBack appends value at position size, growing the buffer when the
// new size would exceed capacity. A push into a capacity-0 vector lands
// on capacity 1.
// Complexity: O(1) amortized
func (v *Vector[T]) PushBack(value T) {
	v.grow(v.size + 1)
	v.buf[v.size] = value
	v.size++
}

// PopBack removes the last element. Capacity is unchanged.
// Returns ErrEmpty when size is 0.
// Complexity: O(1)
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return ErrEmpty
	}
	v.size--
	v.release(v.size, v.size+1)
	return nil
}

// Insert places value before position pos, shifting [pos,size) right by
// one. pos == size appends. Returns ErrIndexRange unless 0 ≤ pos ≤ size.
// Complexity: O(size − pos), plus reallocation on growth
func (v *Vector[T]) Insert(pos int, value T) error {
	if pos < 0 || pos > v.size {
		return ErrIndexRange
	}
	v.grow(v.size + 1)
	copy(v.buf[pos+1:v.size+1], v.buf[pos:v.size])
	v.buf[pos] = value
	v.size++
	return nil
}

// InsertN places count copies of value before position pos, shifting
// [pos,size) right by count. count == 0 is a no-op (pos still checked).
// Returns ErrIndexRange unless 0 ≤ pos ≤ size, ErrNegativeCount when
// count < 0.
// Complexity: O(size − pos + count), plus reallocation on growth
func (v *Vector[T]) InsertN(pos, count int, value T) error {
	if pos < 0 || pos > v.size {
		return ErrIndexRange
	}
	if count < 0 {
		return ErrNegativeCount
	}
	if count == 0 {
		return nil
	}
	v.grow(v.size + count)
	copy(v.buf[pos+count:v.size+count], v.buf[pos:v.size])
	for i := pos; i < pos+count; i++ {
		v.buf[i] = value
	}
	v.size += count
	return nil
}

// Erase removes the element at position pos, shifting [pos+1,size) left
// by one. Capacity is unchanged. Returns ErrIndexRange unless
// 0 ≤ pos < size.
// Complexity: O(size − pos)
func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= v.size {
		return ErrIndexRange
	}
	copy(v.buf[pos:v.size-1], v.buf[pos+1:v.size])
	v.size--
	v.release(v.size, v.size+1)
	return nil
}

// EraseRange removes elements [first,last), shifting [last,size) left by
// last−first. An empty range is a no-op. Capacity is unchanged.
// Returns ErrIndexRange unless 0 ≤ first ≤ last ≤ size.
// Complexity: O(size − first)
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || first > last || last > v.size {
		return ErrIndexRange
	}
	n := last - first
	if n == 0 {
		return nil
	}
	copy(v.buf[first:v.size-n], v.buf[last:v.size])
	v.release(v.size-n, v.size)
	v.size -= n
	return nil
}

// Resize sets size to n, appending zero values of T on extension.
// Shrinking is logical truncation only — capacity never decreases.
// Returns ErrNegativeCount when n < 0.
// Complexity: O(|n − size|), plus reallocation on growth
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeWith(n, zero)
}

// ResizeWith sets size to n, appending copies of value on extension.
// Same capacity behavior as Resize.
// Complexity: O(|n − size|), plus reallocation on growth
func (v *Vector[T]) ResizeWith(n int, value T) error {
	if n < 0 {
		return ErrNegativeCount
	}
	switch {
	case n > v.size:
		v.grow(n)
		for i := v.size; i < n; i++ {
			v.buf[i] = value
		}
		v.size = n
	case n < v.size:
		v.release(n, v.size)
		v.size = n
	}
	return nil
}

// Reserve guarantees capacity ≥ n. A request at or below the current
// capacity is a no-op; otherwise the buffer is reallocated to
// nextPow2(n), preserving live elements and size.
// Returns ErrNegativeCount when n < 0.
// Complexity: O(size) on reallocation, O(1) otherwise
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	v.grow(n)
	return nil
}

// ShrinkToFit reduces capacity to nextPow2(size) — the only operation,
// besides Clear, that ever shrinks. On an empty vector the buffer is
// released entirely. A vector already at minimal capacity is untouched.
// Complexity: O(size)
func (v *Vector[T]) ShrinkToFit() {
	target := nextPow2(v.size)
	if target == len(v.buf) {
		return
	}
	if target == 0 {
		v.buf = nil
		return
	}
	nb := make([]T, target)
	copy(nb, v.buf[:v.size])
	v.buf = nb
}

// Clear empties the vector and releases its buffer: size 0, capacity 0,
// indistinguishable from a freshly constructed vector.
// Complexity: O(1)
func (v *Vector[T]) Clear() {
	v.buf = nil
	v.size = 0
}

// Swap exchanges size, capacity and buffer ownership between v and
// other in O(1). No elements are copied, and at no point do both
// vectors reference the same buffer. Returns ErrNilVector when other is
// nil. Swapping a vector with itself is a no-op.
func (v *Vector[T]) Swap(other *Vector[T]) error {
	if other == nil {
		return ErrNilVector
	}
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	return nil
}
