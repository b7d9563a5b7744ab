// Package tensor provides the numeric storage layer for minigrad.
//
// A Buffer is a dense row-major float64 array with a Shape. Every kernel
// returns a freshly allocated Buffer; nothing here tracks gradients. The
// graph and differentiation rules live in internal/autodiff.
//
// Elementwise and reduction kernels are built on gonum/floats, matrix
// products on gonum/mat.
package tensor
