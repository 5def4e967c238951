// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import "math/big"

// An Operand is an integer in the three forms carried by a Result: its
// digits (least significant first), its base-B display string and its
// decimal value.
type Operand struct {
	Digits  Buffer   `json:"digits"`
	String  string   `json:"string"`
	Decimal *big.Int `json:"decimal"`
}

func newOperand(x Buffer, base int) Operand {
	return Operand{
		Digits:  x,
		String:  x.String(),
		Decimal: ToDecimal(x, base),
	}
}

// Division holds the preprocessing data of a long division: the
// normalization factor and both normalized operands.
type Division struct {
	Factor int    `json:"d"`
	UNorm  Buffer `json:"u_norm"`
	VNorm  Buffer `json:"v_norm"`
}

// A Result is the complete record of one operation. Only the step slice
// matching Op is set. Results are not modified by the engines once returned.
type Result struct {
	Op        Op       `json:"op"`
	Base      int      `json:"base"`
	U         Operand  `json:"u"`
	V         Operand  `json:"v"`
	Value     Operand  `json:"result"`
	Remainder *Operand `json:"remainder,omitempty"`
	// Swapped is set by Sub when u < v: Value is then v - u.
	Swapped bool `json:"swapped,omitempty"`

	AddSteps []AddStep `json:"add_steps,omitempty"`
	SubSteps []SubStep `json:"sub_steps,omitempty"`
	MulSteps []MulStep `json:"mul_steps,omitempty"`
	DivSteps []DivStep `json:"div_steps,omitempty"`
	Division *Division `json:"division,omitempty"`
}

func newResult(op Op, u, v Buffer, base int) *Result {
	return &Result{
		Op:   op,
		Base: base,
		U:    newOperand(u.clone(), base),
		V:    newOperand(v.clone(), base),
	}
}

// Steps returns the number of steps in the trace of r.
func (r *Result) Steps() int {
	switch r.Op {
	case OpAdd:
		return len(r.AddSteps)
	case OpSub:
		return len(r.SubSteps)
	case OpMul:
		return len(r.MulSteps)
	case OpDiv:
		return len(r.DivSteps)
	}
	return 0
}

// Quotient returns the quotient of a division. It is the same as r.Value.
func (r *Result) Quotient() Operand { return r.Value }
