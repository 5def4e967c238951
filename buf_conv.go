// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"math/big"
	"strconv"
)

// ToBase returns the digits of x in the given base. Zero is Buffer{0}.
//
// ToBase fails with ErrInvalidBase if base is not in [2, MaxBase] and with
// ErrNegativeOperand if x < 0.
func ToBase(x *big.Int, base int) (Buffer, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}
	if err := checkOperand("x", x); err != nil {
		return nil, err
	}
	return toBase(x, base), nil
}

// toBase converts x by repeated division: digit i is (x / base**i) % base.
func toBase(x *big.Int, base int) Buffer {
	if x.Sign() == 0 {
		return Buffer{0}
	}
	if x.IsUint64() {
		// fast path for small values
		b := uint64(base)
		var z Buffer
		for n := x.Uint64(); n != 0; n /= b {
			z = z.push(int(n % b))
		}
		return z
	}
	var (
		q  = new(big.Int).Set(x)
		r  big.Int
		bb = big.NewInt(int64(base))
		z  Buffer
	)
	for q.Sign() != 0 {
		q.QuoRem(q, bb, &r)
		z = z.push(int(r.Int64()))
	}
	return z
}

// ToDecimal returns the value of x in base as a big.Int, evaluated most
// significant digit first: acc = acc*base + digit.
func ToDecimal(x Buffer, base int) *big.Int {
	var (
		z  = new(big.Int)
		bb = big.NewInt(int64(base))
		d  big.Int
	)
	for i := len(x) - 1; i >= 0; i-- {
		z.Mul(z, bb)
		z.Add(z, d.SetInt64(int64(x[i])))
	}
	return z
}

// String returns the digits of x most significant first, each digit written
// as its decimal numeral. No separator is inserted, so for bases above 10 a
// digit may span several characters. The empty Buffer is rendered as "0".
func (x Buffer) String() string {
	return string(x.utoa(nil))
}

// utoa appends the display form of x to buf.
func (x Buffer) utoa(buf []byte) []byte {
	if len(x) == 0 {
		return append(buf, '0')
	}
	for i := len(x) - 1; i >= 0; i-- {
		buf = strconv.AppendInt(buf, int64(x[i]), 10)
	}
	return buf
}
