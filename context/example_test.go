package context_test

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/db47h/radix"
	"github.com/db47h/radix/context"
)

// divmod computes u / v and u % v in base, then checks that q*v + r == u by
// running the traced product and sum through the same context. Errors are
// checked once, at the end.
func divmod(ctx *context.Context, u, v *big.Int) (*radix.Result, error) {
	q := ctx.QuoRem(u, v)
	if q != nil {
		p := ctx.Mul(q.Value.Decimal, v)
		if p != nil {
			s := ctx.Add(p.Value.Decimal, q.Remainder.Decimal)
			if s != nil && s.Value.Decimal.Cmp(u) != 0 {
				return nil, errors.New("q*v + r != u")
			}
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("divmod %v / %v: %w", u, v, err)
	}
	return q, nil
}

func Example() {
	ctx := context.New(16)
	q, err := divmod(ctx, big.NewInt(87892), big.NewInt(255))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("q = %s (%v), r = %s (%v)\n",
		q.Value.String, q.Value.Decimal, q.Remainder.String, q.Remainder.Decimal)

	_, err = divmod(ctx, big.NewInt(1), big.NewInt(0))
	fmt.Println(err)
	fmt.Println(errors.Is(err, radix.ErrDivisionByZero))

	// Output:
	// q = 158 (344), r = 1012 (172)
	// divmod 1 / 0: division by zero: 1 / 0
	// true
}
