// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the numeric buffer type used by minigrad.
//
// A Buffer is a dense row-major float64 array with a Shape. Buffers carry
// no gradient state; wrap them in autodiff nodes to differentiate.
//
// Example:
//
//	import "github.com/born-ml/minigrad/tensor"
//
//	func main() {
//	    a, _ := tensor.NewBuffer([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    b := tensor.Ones(tensor.Shape{2})
//	    c, _ := a.Add(b) // broadcasts [2] over [2, 2]
//	}
//
// Errors returned by this package and by the autodiff layer wrap the
// sentinel values below; match them with errors.Is.
package tensor
