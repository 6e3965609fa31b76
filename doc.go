// Package dynarr is an in-memory playground for hand-managed container
// storage — a generic dynamic array with an explicit capacity policy,
// plus a small exhaustive sudoku engine kept to the same
// "own your buffer" discipline.
//
// 🚀 What is dynarr?
//
//	A small, focused library that brings together:
//		• vector/ — Vector[T]: contiguous, indexable, power-of-two capacity,
//		  deep narrowing copies, O(1) swap, lexicographic ordering
//		• sudoku/ — 9×9 grid validation and exhaustive backtracking
//		  solution counting
//		• cmd/sudoku — a tiny CLI over the solver
//
// ✨ Why choose dynarr?
//
//   - Predictable storage – capacity is always 0 or a power of two,
//     and only Clear/ShrinkToFit ever release it
//   - Value semantics – copies are deep and independent, never aliased
//   - Pure Go – no cgo, single-owner single-threaded semantics, zero
//     runtime deps in the library packages
//
// Quick ASCII example:
//
//	size: 5              capacity: 8
//	[ a b c d e | . . . ]
//	  live range  spare slots
//
// Dive into vector/doc.go and sudoku/doc.go for the full contracts.
//
//	go get github.com/h3ic/dynarr/vector
package dynarr
