// Package vector provides Vector[T], a generic dynamic array that owns
// one contiguous buffer and manages its capacity explicitly.
//
// What:
//
//   - Vector[T] tracks a logical size and a physical capacity; capacity is
//     always 0 or an exact power of two.
//   - Growth reallocates to the smallest power of two ≥ the new size;
//     erase, pop and resize-down never shrink. Only ShrinkToFit and Clear
//     release storage.
//   - Clone and CopyFrom produce deep, narrowing copies: the copy's
//     capacity is the smallest power of two ≥ the copied size, regardless
//     of any excess capacity the source held.
//   - Swap exchanges buffer ownership between two vectors in O(1) without
//     copying elements.
//   - Equal and Compare order vectors lexicographically over the logical
//     element sequence, independent of capacity.
//
// Why:
//
//   - Deterministic storage: every growth path funnels through a single
//     nextPow2 rule, so capacity after any operation sequence is exactly
//     reproducible.
//   - Value semantics: no two live vectors ever share a buffer, so
//     mutating a copy can never disturb the original.
//
// Complexity:
//
//   - PushBack / PopBack: O(1) amortized / O(1).
//   - Insert / Erase at position p: O(size − p) element moves.
//   - Clone, CopyFrom, Reserve, ShrinkToFit: O(size).
//   - Swap: O(1).
//
// Concurrency:
//
//	Vector is NOT safe for concurrent use. It models single-owner,
//	single-threaded semantics; callers needing shared access must
//	serialize it externally.
//
// Invalidation:
//
//	The slice returned by Data is a window onto the owned buffer. Any
//	operation that may change capacity (PushBack, Insert, InsertN,
//	Resize, Reserve, ShrinkToFit, Clear, CopyFrom, Swap) invalidates
//	previously obtained windows.
//
// Errors:
//
//   - ErrEmpty: Front, Back or PopBack on an empty vector.
//   - ErrIndexRange: position outside the valid range for the operation.
//   - ErrNegativeCount: negative element count or size.
//   - ErrNilVector: nil *Vector passed where a vector is required.
package vector
