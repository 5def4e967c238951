// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"fmt"
	"math/big"
)

// Verify checks r against an independent evaluation with math/big: every
// digit sequence must be normalized, in range, and consistent with its
// string and decimal forms, the result must satisfy the arithmetic identity
// of r.Op, and every carry or borrow in the trace must be within its bounds.
//
// The returned error wraps ErrInvariant.
func (r *Result) Verify() error {
	if err := checkBase(r.Base); err != nil {
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
	for _, o := range []struct {
		name string
		x    *Operand
	}{{"u", &r.U}, {"v", &r.V}, {"result", &r.Value}, {"remainder", r.Remainder}} {
		if o.x == nil {
			continue
		}
		if err := o.x.check(r.Base); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvariant, o.name, err)
		}
	}

	u, v, w := r.U.Decimal, r.V.Decimal, r.Value.Decimal
	want := new(big.Int)
	switch r.Op {
	case OpAdd:
		want.Add(u, v)
	case OpSub:
		if u.Cmp(v) < 0 {
			return fmt.Errorf("%w: u = %s < v = %s after swap", ErrInvariant, u, v)
		}
		want.Sub(u, v)
	case OpMul:
		want.Mul(u, v)
		if len(r.Value.Digits) > len(r.U.Digits)+len(r.V.Digits) {
			return fmt.Errorf("%w: product has %d digits", ErrInvariant, len(r.Value.Digits))
		}
	case OpDiv:
		if r.Remainder == nil {
			return fmt.Errorf("%w: missing remainder", ErrInvariant)
		}
		if v.Sign() == 0 {
			return fmt.Errorf("%w: zero divisor", ErrInvariant)
		}
		rm := r.Remainder.Decimal
		if rm.Cmp(v) >= 0 {
			return fmt.Errorf("%w: remainder %s >= divisor %s", ErrInvariant, rm, v)
		}
		// q*v + r == u
		want.Mul(w, v)
		want.Add(want, rm)
		if want.Cmp(u) != 0 {
			return fmt.Errorf("%w: %s * %s + %s = %s, want %s", ErrInvariant, w, v, rm, want, u)
		}
		want.Set(w)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownOp, r.Op)
	}
	if want.Cmp(w) != 0 {
		return fmt.Errorf("%w: %v(%s, %s) = %s, want %s", ErrInvariant, r.Op, u, v, w, want)
	}
	return r.checkSteps()
}

func (x *Operand) check(b int) error {
	if len(x.Digits) == 0 {
		return fmt.Errorf("empty digit sequence")
	}
	for i, d := range x.Digits {
		if d < 0 || d >= b {
			return fmt.Errorf("digit %d = %d out of range", i, d)
		}
	}
	if n := x.Digits.msd(); n != len(x.Digits) {
		return fmt.Errorf("%d most significant zeros", len(x.Digits)-n)
	}
	if s := x.Digits.String(); s != x.String {
		return fmt.Errorf("string %q, want %q", x.String, s)
	}
	if x.Decimal == nil || ToDecimal(x.Digits, b).Cmp(x.Decimal) != 0 {
		return fmt.Errorf("decimal %v does not match digits %v", x.Decimal, x.Digits)
	}
	return nil
}

func (r *Result) checkSteps() error {
	b := r.Base
	for i := range r.AddSteps {
		s := &r.AddSteps[i]
		if s.CarryIn < 0 || s.CarryIn > 1 || s.CarryOut < 0 || s.CarryOut > 1 {
			return fmt.Errorf("%w: add step %d: carry %d -> %d", ErrInvariant, i, s.CarryIn, s.CarryOut)
		}
		if s.Digit < 0 || s.Digit >= b || s.Sum != s.CarryOut*b+s.Digit {
			return fmt.Errorf("%w: add step %d: %d != %d*%d + %d", ErrInvariant, i, s.Sum, s.CarryOut, b, s.Digit)
		}
	}
	for i := range r.SubSteps {
		s := &r.SubSteps[i]
		if s.BorrowIn < -1 || s.BorrowIn > 0 || s.BorrowOut < -1 || s.BorrowOut > 0 {
			return fmt.Errorf("%w: sub step %d: borrow %d -> %d", ErrInvariant, i, s.BorrowIn, s.BorrowOut)
		}
		if s.Final && s.BorrowIn != 0 {
			return fmt.Errorf("%w: terminal borrow %d", ErrInvariant, s.BorrowIn)
		}
		if s.Digit < 0 || s.Digit >= b {
			return fmt.Errorf("%w: sub step %d: digit %d", ErrInvariant, i, s.Digit)
		}
	}
	for i := range r.MulSteps {
		s := &r.MulSteps[i]
		if s.CarryIn < 0 || s.CarryIn >= b || s.CarryOut < 0 || s.CarryOut >= b {
			return fmt.Errorf("%w: mul step %d: carry %d -> %d", ErrInvariant, i, s.CarryIn, s.CarryOut)
		}
		if s.Digit < 0 || s.Digit >= b {
			return fmt.Errorf("%w: mul step %d: digit %d", ErrInvariant, i, s.Digit)
		}
	}
	for i := range r.DivSteps {
		s := &r.DivSteps[i]
		if s.QHat < 0 || s.QHat >= b || s.Estimate-s.QHat != len(s.Adjustments) {
			return fmt.Errorf("%w: div step %d: estimate %d, q̂ %d, %d corrections",
				ErrInvariant, i, s.Estimate, s.QHat, len(s.Adjustments))
		}
		if s.Product.cmp(s.Window) > 0 {
			return fmt.Errorf("%w: div step %d: accepted product exceeds window", ErrInvariant, i)
		}
	}
	return nil
}
