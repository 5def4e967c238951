// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render writes radix results in the output formats of the radix
// command.
package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/db47h/radix"
	"github.com/db47h/radix/internal/config"
)

// Write writes r to w in the given format, one of the config.Format*
// constants.
func Write(w io.Writer, r *radix.Result, format string, indent bool) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		if indent {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(r)
	case config.FormatMsgpack:
		return r.EncodeTo(w)
	case config.FormatText:
		return Text(w, r)
	}
	return fmt.Errorf("unknown format %q", format)
}

var opSymbols = [...]string{
	radix.OpAdd: "+",
	radix.OpSub: "-",
	radix.OpMul: "×",
	radix.OpDiv: "/",
}

// Text writes a human readable trace of r: a header with the operands in
// base r.Base, one line per step, then the result.
func Text(w io.Writer, r *radix.Result) error {
	bw := bufio.NewWriter(w)
	sym := "?"
	if int(r.Op) < len(opSymbols) {
		sym = opSymbols[r.Op]
	}
	fmt.Fprintf(bw, "%s %s %s (base %d)\n", r.U.String, sym, r.V.String, r.Base)
	if r.Swapped {
		fmt.Fprintln(bw, "operands swapped: u < v")
	}
	if d := r.Division; d != nil {
		fmt.Fprintf(bw, "normalization: d = %d, u*d = %s, v*d = %s\n", d.Factor, d.UNorm, d.VNorm)
	}

	n := 0
	step := func(summary, state string) {
		n++
		fmt.Fprintf(bw, "%4d  %-48s %s\n", n, summary, state)
	}
	for i := range r.AddSteps {
		s := &r.AddSteps[i]
		step(s.Summary, snapshot(s.Result))
	}
	for i := range r.SubSteps {
		s := &r.SubSteps[i]
		step(s.Summary, snapshot(s.Result))
	}
	for i := range r.MulSteps {
		s := &r.MulSteps[i]
		step(s.Summary, snapshot(s.Result))
	}
	for i := range r.DivSteps {
		s := &r.DivSteps[i]
		step(s.Summary, "u_norm = "+snapshot(s.State))
		for _, a := range s.Adjustments {
			fmt.Fprintf(bw, "      q̂ = %d: %s > %s\n", a.QHat, a.Product, a.Window)
		}
	}

	fmt.Fprintf(bw, "result: %s (decimal %v)\n", r.Value.String, r.Value.Decimal)
	if rm := r.Remainder; rm != nil {
		fmt.Fprintf(bw, "remainder: %s (decimal %v)\n", rm.String, rm.Decimal)
	}
	return bw.Flush()
}

// snapshot renders s most significant cell first, digits separated by
// spaces so that multi-character digits stay readable.
func snapshot(s radix.Snapshot) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := len(s) - 1; i >= 0; i-- {
		sb.WriteString(s[i].String())
		if i > 0 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
