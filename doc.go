// Package geompred is a small, dependency-light toolkit for exact
// geometric predicates: orientation, bisector, and in-ball tests that
// stay correct even when the inputs are nearly degenerate.
//
// 🚀 What is geompred?
//
//	A Go port of the classic adaptive-precision predicate construction:
//	fast floating-point arithmetic first, falling back to exact
//	multi-precision arithmetic only on the rare input where rounding
//	error could flip the answer's sign.
//
//	  • expansion/  — error-free transforms and multi-precision expansion arithmetic
//	  • point/      — plain and weighted 2D/3D point types
//	  • predicate/  — the ten adaptive predicate entry points
//	  • predicatestat/ — read-only fallback-rate reporting for callers that care
//
// ✨ Why choose geompred?
//
//   - Correct       — every predicate call returns the exact sign, never a
//     rounding-error guess
//   - Fast          — the common case never touches multi-precision arithmetic
//   - Zero-alloc    — the filtered fast path allocates nothing
//   - Pure Go       — no cgo
//
// Under the hood, everything is organized under four subpackages:
//
//	expansion/    — TwoSum/TwoProduct error-free transforms, expansion sum/scale/dot
//	point/        — Point2, Point3, WeightedPoint2, WeightedPoint3
//	predicate/    — Orient2D/3D, Bisect2D/3D(W), InBall2D/3D(W)
//	predicatestat/ — Collect()/Reset() wrapping predicate's dispatch counters
//
// A predicate call, at a glance:
//
//	sign := predicate.Orient2D(a, b, c) // >0 left turn, <0 right turn, 0 collinear
//
// See cmd/geompred-bench for a runnable driver over the worked
// scenarios and an optional random-input fuzz mode.
//
//	go get github.com/katalvlaran/geompred
package geompred
