// Package sop provides the value model for two-level boolean expressions in
// sum-of-products form, together with the algebraic primitives used by the
// factoring engine.
//
// An expression is a sum (OR) of cubes, and a cube is a product (AND) of
// named literals. Both are value types: every operation returns a new value
// and never mutates its operands. Cubes keep their literals sorted by name,
// and expressions keep their cubes sorted by (size, literal sequence), so
// that two structurally equal values always compare and print identically,
// regardless of the order their parts were produced in.
//
// The empty cube denotes the constant 1; the empty expression denotes the
// constant 0.
//
// Algebraic division is the workhorse of kerneling. For any expression f and
// cube d, Divide returns q and r such that
//
//	f = d*q + r
//
// and the round trip AddExpr(MultiplyCube(d, q), r) reconstructs f exactly.
package sop
