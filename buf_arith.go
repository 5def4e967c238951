// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the elementary digit operations used by the engines.
// Digits are plain ints in [0, b) with 2 <= b <= MaxBase; products are
// computed in int64 so that x*y + c + w never overflows.

package radix

// addWWW returns the digit s and the carry c of x + y + cIn, with
// x + y + cIn = c*b + s. If x, y < b and cIn <= 1, c is either 0 or 1.
func addWWW(x, y, cIn, b int) (s, c int) {
	s = x + y + cIn
	if s >= b {
		return s - b, 1
	}
	return s, 0
}

// subWWW returns the digit d and the borrow k of x - y + kIn, with kIn
// either 0 or -1. The raw difference r = x - y + kIn is returned as well so
// that traces can show it. The resulting borrow is either 0 or -1.
func subWWW(x, y, kIn, b int) (d, k, r int) {
	r = x - y + kIn
	if r < 0 {
		return r + b, -1, r
	}
	return r, 0, r
}

// mulAddWWW returns hi and lo such that x*y + w + c = hi*b + lo. With
// x, y, w, c < b, the total is below b*b and hi < b.
func mulAddWWW(x, y, w, c, b int) (hi, lo int) {
	t := int64(x)*int64(y) + int64(w) + int64(c)
	return int(t / int64(b)), int(t % int64(b))
}

// mulVW sets z to x*y and returns z. The result has len(x)+1 digits if the
// final carry is non-zero, len(x) otherwise.
func mulVW(z, x Buffer, y, b int) Buffer {
	z = z.make(len(x))
	c := 0
	for i := 0; i < len(z) && i < len(x); i++ {
		c, z[i] = mulAddWWW(x[i], y, 0, c, b)
	}
	if c != 0 {
		z = z.push(c)
	}
	return z
}

// subVV sets z to x - y for len(x) digits, treating missing digits of y as
// zero, and returns z and the final borrow, 0 or 1. The caller must ensure
// x >= y for the borrow to be 0.
func subVV(z, x, y Buffer, b int) (Buffer, int) {
	z = z.make(len(x))
	k := 0
	for i := 0; i < len(z) && i < len(x); i++ {
		z[i], k, _ = subWWW(x[i], y.get(i), k, b)
	}
	return z, -k
}
