// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"math/big"
)

// Mul returns the product u × v computed with the schoolbook algorithm in
// base, together with the trace of every digit multiply-accumulate.
func Mul(u, v *big.Int, base int) (*Result, error) {
	x, y, err := operands(u, v, base)
	if err != nil {
		return nil, err
	}
	r := newResult(OpMul, x, y, base)
	w, steps := mulTrace(x, y, base)
	r.Value = newOperand(w, base)
	r.MulSteps = steps
	return r, nil
}

// mulTrace computes x*y into a zero-filled buffer of len(x)+len(y) digits.
// Rows for zero digits of y are skipped and produce no steps.
//
// At every cell, u[j]*v[i] + w[i+j] + carry <= (b-1)**2 + 2*(b-1) < b**2, so
// the carry is always below b.
func mulTrace(x, y Buffer, b int) (Buffer, []MulStep) {
	n, m := len(x), len(y)
	w := zeros(n + m)
	var steps []MulStep
	for i := 0; i < m; i++ {
		vi := y[i]
		if vi == 0 {
			continue
		}
		k := 0
		for j := 0; j < n; j++ {
			uj, prev := x[j], w[i+j]
			c, d := mulAddWWW(uj, vi, prev, k, b)
			w[i+j] = d
			steps = append(steps, MulStep{
				Kind:     Calculation,
				I:        i,
				J:        j,
				U:        uj,
				V:        vi,
				CarryIn:  k,
				Partial:  prev,
				Product:  uj * vi,
				Sum:      uj*vi + prev + k,
				Digit:    d,
				CarryOut: c,
				Result:   w.cells(),
				Summary: fmt.Sprintf("u[%d]=%d × v[%d]=%d + w[%d]=%d + %d (carry) = %d",
					j, uj, i, vi, i+j, prev, k, uj*vi+prev+k),
			})
			k = c
		}
		if k != 0 {
			prev := w[i+n]
			w[i+n] = prev + k
			steps = append(steps, MulStep{
				Kind:     FinalCarry,
				I:        i,
				J:        n,
				V:        vi,
				Partial:  prev,
				Sum:      prev + k,
				Digit:    prev + k,
				CarryOut: k,
				Result:   w.cells(),
				Summary:  fmt.Sprintf("final carry for v[%d]=%d: add %d to column %d", i, vi, k, i+n),
			})
		}
	}
	return w.norm(), steps
}
