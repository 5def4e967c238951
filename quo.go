// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"math/big"
)

// QuoRem returns the quotient u / v and the remainder u % v computed by long
// division in base (Knuth, TAOCP vol. 2, 4.3.1, algorithm D), together with
// the trace of every quotient digit estimation and correction.
//
// QuoRem fails with ErrDivisionByZero if v == 0, whatever the values of u
// and base.
func QuoRem(u, v *big.Int, base int) (*Result, error) {
	if v.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, u)
	}
	x, y, err := operands(u, v, base)
	if err != nil {
		return nil, err
	}
	r := newResult(OpDiv, x, y, base)
	if x.cmp(y) < 0 {
		rem := newOperand(x.clone(), base)
		r.Value = newOperand(Buffer{0}, base)
		r.Remainder = &rem
		return r, nil
	}
	q, rm, div, steps := quoTrace(x, y, base)
	rem := newOperand(rm, base)
	r.Value = newOperand(q, base)
	r.Remainder = &rem
	r.Division = div
	r.DivSteps = steps
	return r, nil
}

// quoTrace divides x by y for x >= y > 0.
//
// Both operands are scaled by d = b / (y[n-1] + 1) so that the leading digit
// of the divisor is at least b/2; the estimate
//
//   q̂ = min((ũ[n]*b + ũ[n-1]) / v[n-1], b-1)
//
// is then never below the true quotient digit and exceeds it by at most 2.
// The correction loop does not rely on that bound: it decrements q̂ until
// q̂*v no longer exceeds the window.
func quoTrace(x, y Buffer, b int) (q, rem Buffer, div *Division, steps []DivStep) {
	n := len(y)
	m := len(x) - n
	d := b / (y[n-1] + 1)

	// un gets one extra zero digit on top so that the first window always
	// has n+1 digits. vn never grows since (y[n-1]+1)*d <= b.
	un := mulVW(nil, x, d, b).push(0)
	vn := mulVW(nil, y, d, b)
	if debugRadix && len(vn) != n {
		panic("BUG: normalized divisor has grown")
	}
	div = &Division{Factor: d, UNorm: un.clone(), VNorm: vn.clone()}

	qs := make(Buffer, 0, m+1) // most significant digit first
	steps = make([]DivStep, 0, m+1)
	vTop := vn.at(-1)
	for j := m; j >= 0; j-- {
		ut := un.window(j, n+1)

		est := (ut[n]*b + ut[n-1]) / vTop
		if est > b-1 {
			est = b - 1
		}

		qHat := est
		p := mulVW(nil, vn, qHat, b).extend(n + 1)
		var adj []Adjustment
		for c := p.cmp(ut); c > 0; c = p.cmp(ut) {
			adj = append(adj, Adjustment{QHat: qHat, Product: p, Window: ut.clone(), Cmp: c})
			qHat--
			p = mulVW(nil, vn, qHat, b).extend(n + 1)
		}

		rj, k := subVV(nil, ut, p, b)
		if debugRadix && k != 0 {
			panic("BUG: accepted trial product exceeds the window")
		}
		rj = rj.norm()
		for i := 0; i <= n; i++ {
			un.setAt(j+i, rj.get(i))
		}
		qs = qs.push(qHat)

		steps = append(steps, DivStep{
			J:           j,
			Window:      ut,
			Estimate:    est,
			Adjustments: adj,
			QHat:        qHat,
			Product:     p,
			Remainder:   rj,
			State:       un.cells(),
			Summary: fmt.Sprintf("estimated q[%d] = %d, adjusted to %d after %d corrections",
				j, est, qHat, len(adj)),
		})
	}

	q = qs.reverse()

	// un[0:n] holds the normalized remainder rem*d.
	rd := ToDecimal(un.window(0, n), b)
	rd.Quo(rd, big.NewInt(int64(d)))
	rem = toBase(rd, b)

	return q.norm(), rem.norm(), div, steps
}

// reverse returns a copy of x with its digits in reverse order.
func (x Buffer) reverse() Buffer {
	z := Buffer(nil).make(len(x))
	for i, d := range x {
		z[len(x)-1-i] = d
	}
	return z
}
