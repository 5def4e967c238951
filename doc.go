// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package radix implements schoolbook arithmetic on non-negative integers
written in an arbitrary base B and records a step by step trace of every
digit operation, suitable for driving an educational visualization.

Numbers are held in a Buffer, a little-endian slice of digits in [0, B):

    x := radix.Buffer{1, 0, 1} // 101 in base 2, that is 5

Digits are plain ints, never letters: in base 16 the digit fifteen is the
int 15 and Buffer.String renders it as the two characters "15". Conversions
between Buffers and decimal integers go through math/big:

    x, err := radix.ToBase(big.NewInt(5), 2) // Buffer{1, 0, 1}
    n := radix.ToDecimal(x, 2)                // 5

Each operation takes its operands as *big.Int and returns a *Result that
carries the operands and the result in three forms (digits, base-B string and
decimal value), together with the trace of the algorithm:

    func Add(u, v *big.Int, base int) (*Result, error)    // AddSteps
    func Sub(u, v *big.Int, base int) (*Result, error)    // SubSteps
    func Mul(u, v *big.Int, base int) (*Result, error)    // MulSteps
    func QuoRem(u, v *big.Int, base int) (*Result, error) // DivSteps

Compute dispatches on an Op. The algorithms are the classical ones from
Knuth, TAOCP vol. 2, section 4.3.1: carry propagation for addition, borrow
propagation for subtraction (the smaller operand is always subtracted from the
larger one; Result.Swapped tells which way), the O(n·m) schoolbook product,
and algorithm D for long division, with normalization of the operands,
quotient digit estimation, trial products and correction.

Traces show partial results as Snapshots: each Cell is either a computed
digit or pending, so that a consumer can display a result that is filled in
progressively.

All functions are pure: they allocate their own working buffers and can be
called concurrently. A Result is not modified once returned.

Errors are reported with the sentinel values ErrInvalidBase,
ErrNegativeOperand and ErrDivisionByZero, wrapped with the offending values;
test them with errors.Is. See the context sub-package for a way to chain
operations with a single error check.

Results encode to JSON through their struct tags, and to MessagePack through
MarshalBinary, with the same field names.
*/
package radix
