// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"math/big"
)

// Sub returns the magnitude of the difference of u and v computed digit by
// digit in base, together with the trace of every borrow resolution.
//
// If u < v the operands are swapped before subtracting and r.Swapped is set;
// r.U and r.V then hold the swapped operands so that r.Value = r.U - r.V
// always holds. The sign is left to the caller.
func Sub(u, v *big.Int, base int) (*Result, error) {
	x, y, err := operands(u, v, base)
	if err != nil {
		return nil, err
	}
	swapped := x.cmp(y) < 0
	if swapped {
		x, y = y, x
	}
	r := newResult(OpSub, x, y, base)
	r.Swapped = swapped
	w, steps := subTrace(x, y, base)
	r.Value = newOperand(w, base)
	r.SubSteps = steps
	return r, nil
}

// subTrace computes x - y for x >= y.
func subTrace(x, y Buffer, b int) (Buffer, []SubStep) {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	x, y = x.clone().extend(n), y.clone().extend(n)

	w := Buffer(nil).make(n)[:0]
	steps := make([]SubStep, 0, n+1)
	k := 0
	for i := 0; i < n; i++ {
		d, kOut, raw := subWWW(x[i], y[i], k, b)
		w = w.push(d)
		steps = append(steps, SubStep{
			Index:     i,
			BorrowIn:  k,
			BorrowOut: kOut,
			U:         x[i],
			V:         y[i],
			Diff:      raw,
			Digit:     d,
			Result:    w.partial(n + 1),
			Summary:   fmt.Sprintf("%d - %d + (%d) = %d -> %d (borrow %d)", x[i], y[i], k, raw, d, kOut),
		})
		k = kOut
	}

	if debugRadix && k != 0 {
		panic("BUG: non-zero terminal borrow")
	}
	steps = append(steps, SubStep{
		Index:    n,
		BorrowIn: k,
		Result:   w.cells(),
		Final:    true,
		Summary:  fmt.Sprintf("final borrow: %d", k),
	})
	return w.norm(), steps
}
