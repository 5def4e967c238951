package radix

import (
	"fmt"
	"math/big"
)

// Compute runs op on u and v in base and returns the resulting trace.
//
// The error is one of ErrInvalidBase, ErrNegativeOperand, ErrDivisionByZero
// or ErrUnknownOp, possibly wrapped. No Result is returned on error.
func Compute(op Op, u, v *big.Int, base int) (*Result, error) {
	switch op {
	case OpAdd:
		return Add(u, v, base)
	case OpSub:
		return Sub(u, v, base)
	case OpMul:
		return Mul(u, v, base)
	case OpDiv:
		return QuoRem(u, v, base)
	}
	return nil, fmt.Errorf("%w %d", ErrUnknownOp, byte(op))
}

// ComputeUint64 is a shorthand for Compute with uint64 operands.
func ComputeUint64(op Op, u, v uint64, base int) (*Result, error) {
	return Compute(op, new(big.Int).SetUint64(u), new(big.Int).SetUint64(v), base)
}
