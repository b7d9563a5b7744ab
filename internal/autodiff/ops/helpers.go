package ops

import (
	"github.com/born-ml/minigrad/internal/tensor"
	"github.com/pkg/errors"
)

// reduceBroadcast reduces a gradient tensor to match the target shape.
// This is necessary when broadcasting was used in the forward pass.
//
// Example:
//
//	Forward: a[3,1] + b[3,4] -> c[3,4]  (a was broadcast along dim 1)
//	Backward: grad_c[3,4] -> grad_a[3,1] (sum along dim 1)
func reduceBroadcast(name string, grad *tensor.Buffer, target tensor.Shape) (*tensor.Buffer, error) {
	out, err := grad.SumToShape(target)
	if err != nil {
		return nil, errors.Wrapf(err, "%s backward", name)
	}
	return out, nil
}

// gradList collects the gradients of inputs flagged in needs, in input order.
// compute is called only for those inputs.
func gradList(needs []bool, compute func(i int) (*tensor.Buffer, error)) ([]*tensor.Buffer, error) {
	grads := make([]*tensor.Buffer, 0, len(needs))
	for i, need := range needs {
		if !need {
			continue
		}
		g, err := compute(i)
		if err != nil {
			return nil, err
		}
		grads = append(grads, g)
	}
	return grads, nil
}
