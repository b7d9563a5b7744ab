// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor_test

import (
	"testing"

	"github.com/born-ml/minigrad/tensor"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBufferAPI verifies the Buffer alias exposes the expected API.
func TestBufferAPI(t *testing.T) {
	a, err := tensor.NewBuffer([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	c, err := a.Add(tensor.Ones(tensor.Shape{2}))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 5}, c.Data())

	_, err = a.MatMul(tensor.Zeros(tensor.Shape{3, 1}))
	assert.True(t, errors.Is(err, tensor.ErrShape))

	shape, broadcast, err := tensor.BroadcastShapes(tensor.Shape{2, 1}, tensor.Shape{3})
	require.NoError(t, err)
	assert.True(t, broadcast)
	assert.Equal(t, tensor.Shape{2, 3}, shape)
}
