// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

// Buffer is a non-negative integer x of the form
//
//   x = x[n-1]*B^(n-1) + x[n-2]*B^(n-2) + ... + x[1]*B + x[0]
//
// with 0 <= x[i] < B and 0 <= i < n, stored least significant digit first.
// The base B is not part of the Buffer; it is fixed by the operation that
// produced it.
//
// A Buffer is normalized if it contains no most-significant zero digits
// beyond the first. Unlike math/big, zero is never the empty slice: its
// normalized representation is Buffer{0}. Engines may hold denormalized
// values during an operation but always normalize what they return.
type Buffer []int

// Len returns the number of digits in x.
func (x Buffer) Len() int { return len(x) }

// Digits returns a copy of the digits of x, least significant first.
func (x Buffer) Digits() []int {
	return append([]int(nil), x...)
}

func (z Buffer) make(n int) Buffer {
	if n <= cap(z) {
		return z[:n] // reuse z
	}
	if n == 1 {
		return make(Buffer, 1)
	}
	const e = 4 // extra capacity
	return make(Buffer, n, n+e)
}

// zeros returns a Buffer of n zero digits.
func zeros(n int) Buffer {
	z := Buffer(nil).make(n)
	for i := range z {
		z[i] = 0
	}
	return z
}

func (z Buffer) set(x Buffer) Buffer {
	z = z.make(len(x))
	copy(z, x)
	return z
}

func (x Buffer) clone() Buffer {
	return Buffer(nil).set(x)
}

func (z Buffer) push(d int) Buffer {
	return append(z, d)
}

// pop removes the most significant digit of z and returns it.
func (z Buffer) pop() (Buffer, int) {
	n := len(z)
	if n == 0 {
		panic(indexError{-1, 0})
	}
	return z[:n-1], z[n-1]
}

// index resolves i against the length of x. Negative indices count from the
// most significant digit: -1 is x[len(x)-1].
func (x Buffer) index(i int) int {
	j := i
	if j < 0 {
		j += len(x)
	}
	if j < 0 || j >= len(x) {
		panic(indexError{i, len(x)})
	}
	return j
}

// at returns digit i of x. See index for negative i.
func (x Buffer) at(i int) int {
	return x[x.index(i)]
}

func (z Buffer) setAt(i, d int) {
	z[z.index(i)] = d
}

// get returns digit i of x, or 0 if i >= len(x).
func (x Buffer) get(i int) int {
	if i >= len(x) {
		return 0
	}
	return x[x.index(i)]
}

// window returns a new Buffer holding the n digits x[i:i+n]; positions
// beyond len(x) are zero.
func (x Buffer) window(i, n int) Buffer {
	z := zeros(n)
	for k := range z {
		z[k] = x.get(i + k)
	}
	return z
}

// extend pads z with most-significant zeros up to n digits.
func (z Buffer) extend(n int) Buffer {
	for len(z) < n {
		z = z.push(0)
	}
	return z
}

// msd returns the number of significant digits of x, at least 1.
func (x Buffer) msd() int {
	i := len(x)
	for i > 1 && x[i-1] == 0 {
		i--
	}
	return i
}

// norm strips most-significant zeros from z. An empty z becomes Buffer{0}.
func (z Buffer) norm() Buffer {
	if len(z) == 0 {
		return z.push(0)
	}
	return z[:z.msd()]
}

// isZero reports whether x == 0.
func (x Buffer) isZero() bool {
	return x.msd() == 1 && x.get(0) == 0
}

// cmp compares x and y as integers, ignoring most-significant zeros. The
// result is -1, 0 or +1 for x < y, x == y and x > y.
func (x Buffer) cmp(y Buffer) int {
	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	for i := n - 1; i >= 0; i-- {
		xi, yi := x.get(i), y.get(i)
		if xi != yi {
			if xi < yi {
				return -1
			}
			return 1
		}
	}
	return 0
}

// cells returns a snapshot of x where all digits are computed.
func (x Buffer) cells() Snapshot {
	s := make(Snapshot, len(x))
	for i, d := range x {
		s[i] = Computed(d)
	}
	return s
}

// partial returns a snapshot of length n of which the first len(x) cells are
// the digits of x and the remaining ones are pending.
func (x Buffer) partial(n int) Snapshot {
	s := make(Snapshot, n)
	for i := range s {
		if i < len(x) {
			s[i] = Computed(x[i])
		}
	}
	return s
}
