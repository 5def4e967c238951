// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strings"
)

const debugRadix = true

// MaxBase is the largest number base accepted by the engines: 2**31-1 with
// 64 bits ints, 2**15-1 with 32 bits ints. Any intermediate value of a digit
// operation is below MaxBase**2 and fits in an int.
const MaxBase = 1<<(bits.UintSize/2-1) - 1

// Errors returned by the engines. They are wrapped with the offending value;
// use errors.Is to test for them.
var (
	ErrDivisionByZero  = errors.New("division by zero")
	ErrInvalidBase     = errors.New("invalid base")
	ErrNegativeOperand = errors.New("negative operand")
	ErrUnknownOp       = errors.New("unknown operation")
	ErrInvariant       = errors.New("invariant violation")
)

// indexError is raised by a panic when a Buffer is accessed out of its
// bounds. It denotes a bug in an engine and never reaches callers of the
// public API.
type indexError struct {
	i, n int
}

func (e indexError) Error() string {
	return fmt.Sprintf("radix: BUG: digit index %d out of range [0:%d]", e.i, e.n)
}

// An Op selects one of the four digit algorithms.
type Op byte

// Supported operations.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

var opNames = [...]string{
	OpAdd: "add",
	OpSub: "subtract",
	OpMul: "multiply",
	OpDiv: "divide",
}

// names accepted by ParseOp in addition to the canonical ones.
var opAliases = map[string]Op{
	"+": OpAdd, "sum": OpAdd, "suma": OpAdd,
	"-": OpSub, "sub": OpSub, "resta": OpSub,
	"*": OpMul, "x": OpMul, "mul": OpMul, "multiplicacion": OpMul,
	"/": OpDiv, "div": OpDiv, "quo": OpDiv, "division": OpDiv,
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", byte(op))
}

// ParseOp returns the Op named by s. Matching is case insensitive.
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, name := range opNames {
		if s == name {
			return Op(op), nil
		}
	}
	if op, ok := opAliases[s]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownOp, s)
}

// MarshalText implements encoding.TextMarshaler.
func (op Op) MarshalText() ([]byte, error) {
	if int(op) >= len(opNames) {
		return nil, fmt.Errorf("%w %d", ErrUnknownOp, byte(op))
	}
	return []byte(opNames[op]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (op *Op) UnmarshalText(text []byte) error {
	o, err := ParseOp(string(text))
	if err != nil {
		return err
	}
	*op = o
	return nil
}

func checkBase(base int) error {
	if base < 2 || base > MaxBase {
		return fmt.Errorf("%w %d: must be between 2 and %d", ErrInvalidBase, base, MaxBase)
	}
	return nil
}

func checkOperand(name string, x *big.Int) error {
	if x.Sign() < 0 {
		return fmt.Errorf("%w: %s = %s", ErrNegativeOperand, name, x)
	}
	return nil
}

// operands validates base and both operands and converts them to base.
func operands(u, v *big.Int, base int) (ub, vb Buffer, err error) {
	if err = checkBase(base); err != nil {
		return nil, nil, err
	}
	if err = checkOperand("u", u); err != nil {
		return nil, nil, err
	}
	if err = checkOperand("v", v); err != nil {
		return nil, nil, err
	}
	return toBase(u, base), toBase(v, base), nil
}
