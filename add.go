// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"math/big"
)

// Add returns the sum u + v computed digit by digit in base, together with
// the trace of every carry resolution.
func Add(u, v *big.Int, base int) (*Result, error) {
	x, y, err := operands(u, v, base)
	if err != nil {
		return nil, err
	}
	r := newResult(OpAdd, x, y, base)
	w, steps := addTrace(x, y, base)
	r.Value = newOperand(w, base)
	r.AddSteps = steps
	return r, nil
}

// addTrace adds x and y. The shorter operand is padded with zeros so that
// both have n = max(len(x), len(y)) digits; the unnormalized sum always has
// n+1 digits, the last one being the final carry.
func addTrace(x, y Buffer, b int) (Buffer, []AddStep) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	x, y = x.clone().extend(n), y.clone().extend(n)

	w := Buffer(nil).make(n + 1)[:0]
	steps := make([]AddStep, 0, n+1)
	k := 0
	for i := 0; i < n; i++ {
		d, c := addWWW(x[i], y[i], k, b)
		w = w.push(d)
		steps = append(steps, AddStep{
			Index:    i,
			CarryIn:  k,
			CarryOut: c,
			U:        x[i],
			V:        y[i],
			Sum:      x[i] + y[i] + k,
			Digit:    d,
			Result:   w.partial(n + 1),
			Summary:  fmt.Sprintf("%d + %d + %d = %d -> %d (carry %d)", x[i], y[i], k, x[i]+y[i]+k, d, c),
		})
		k = c
	}

	w = w.push(k)
	steps = append(steps, AddStep{
		Index:   n,
		CarryIn: k,
		Sum:     k,
		Digit:   k,
		Result:  w.cells(),
		Final:   true,
		Summary: fmt.Sprintf("final carry: %d", k),
	})
	return w.norm(), steps
}
