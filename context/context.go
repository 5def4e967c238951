// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides a base and error context for chaining radix
// operations.
//
// All operators of the form
//
//    func (c *Context) BinaryOp(u, v *big.Int) *radix.Result
//
// run the corresponding radix function in c's base.
//
// A Context catches errors: if an operation fails, it returns nil and the
// error is recorded. Further operations with the context will be no-ops
// (they simply return nil) until (*Context).Err is called to check for
// errors. Only the first error is kept.
//
// A Context is not safe for concurrent use.
package context

import (
	"math/big"

	"github.com/db47h/radix"
	"go.uber.org/zap"
)

// DefaultBase is the base of a Context created with a zero base.
const DefaultBase = 10

// A Context is a wrapper around the radix engines that facilitates
// management of the number base, logging and error handling.
type Context struct {
	base int
	log  *zap.Logger
	err  error
}

// New creates a new context with the given base. If base is 0, it is set to
// DefaultBase. An invalid base is reported by the first operation.
func New(base int) *Context {
	return new(Context).SetBase(base).SetLogger(nil)
}

// Base returns the base of c.
func (c *Context) Base() int {
	return c.base
}

// SetBase sets c's base and returns c. If base is 0, it is set to
// DefaultBase.
func (c *Context) SetBase(base int) *Context {
	if base == 0 {
		base = DefaultBase
	}
	c.base = base
	return c
}

// SetLogger sets the logger c reports operations to and returns c. A nil
// logger disables logging.
func (c *Context) SetLogger(l *zap.Logger) *Context {
	if l == nil {
		l = zap.NewNop()
	}
	c.log = l
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// run records the outcome of op.
func (c *Context) run(op radix.Op, u, v *big.Int, f func(u, v *big.Int, base int) (*radix.Result, error)) *radix.Result {
	if c.err != nil {
		return nil
	}
	r, err := f(u, v, c.base)
	if err != nil {
		c.log.Warn("operation failed",
			zap.Stringer("op", op),
			zap.Int("base", c.base),
			zap.Stringer("u", u),
			zap.Stringer("v", v),
			zap.Error(err))
		c.err = err
		return nil
	}
	c.log.Debug("operation",
		zap.Stringer("op", op),
		zap.Int("base", c.base),
		zap.Stringer("u", u),
		zap.Stringer("v", v),
		zap.Int("steps", r.Steps()),
		zap.String("result", r.Value.String))
	return r
}

// Add returns the traced sum u + v in c's base.
func (c *Context) Add(u, v *big.Int) *radix.Result {
	return c.run(radix.OpAdd, u, v, radix.Add)
}

// Sub returns the traced difference |u - v| in c's base.
func (c *Context) Sub(u, v *big.Int) *radix.Result {
	return c.run(radix.OpSub, u, v, radix.Sub)
}

// Mul returns the traced product u × v in c's base.
func (c *Context) Mul(u, v *big.Int) *radix.Result {
	return c.run(radix.OpMul, u, v, radix.Mul)
}

// QuoRem returns the traced quotient and remainder of u / v in c's base.
func (c *Context) QuoRem(u, v *big.Int) *radix.Result {
	return c.run(radix.OpDiv, u, v, radix.QuoRem)
}

// Compute runs op on u and v in c's base.
func (c *Context) Compute(op radix.Op, u, v *big.Int) *radix.Result {
	return c.run(op, u, v, func(u, v *big.Int, base int) (*radix.Result, error) {
		return radix.Compute(op, u, v, base)
	})
}

// Verify checks r with (*radix.Result).Verify and records a failure. It
// returns r, or nil if the check failed or c already holds an error.
func (c *Context) Verify(r *radix.Result) *radix.Result {
	if c.err != nil || r == nil {
		return nil
	}
	if err := r.Verify(); err != nil {
		c.log.Error("verification failed", zap.Stringer("op", r.Op), zap.Error(err))
		c.err = err
		return nil
	}
	return r
}
