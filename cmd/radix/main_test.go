// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/db47h/radix"
	"github.com/db47h/radix/internal/config"
	"go.uber.org/zap"
)

func TestRun(t *testing.T) {
	for _, td := range []struct {
		args []string
		opts options
		want string
		err  error
	}{
		{[]string{"add", "5", "3", "2"}, options{format: "text"}, "result: 1000 (decimal 8)", nil},
		{[]string{"/", "17", "5", "16"}, options{format: "text", verify: true}, "remainder: 2 (decimal 2)", nil},
		{[]string{"multiply", "123", "45"}, options{}, `"string": "5535"`, nil},
		{[]string{"divide", "1", "0"}, options{}, "", radix.ErrDivisionByZero},
		{[]string{"pow", "1", "2"}, options{}, "", radix.ErrUnknownOp},
		{[]string{"add", "1"}, options{}, "", errUsage},
		{[]string{"add", "1", "x"}, options{}, "", errUsage},
		{[]string{"add", "1", "1", "1"}, options{}, "", radix.ErrInvalidBase},
		{[]string{"add", "-1", "1"}, options{}, "", radix.ErrNegativeOperand},
	} {
		var out bytes.Buffer
		err := run(&out, config.DefaultConfig(), td.opts, td.args, zap.NewNop())
		if td.err != nil {
			if !errors.Is(err, td.err) {
				t.Errorf("%v: got error %v, want %v", td.args, err, td.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%v: %v", td.args, err)
			continue
		}
		if !strings.Contains(out.String(), td.want) {
			t.Errorf("%v: output does not contain %q:\n%s", td.args, td.want, out.String())
		}
	}
}

func TestRun_badFormat(t *testing.T) {
	err := run(new(bytes.Buffer), config.DefaultConfig(), options{format: "xml"}, []string{"add", "1", "1"}, zap.NewNop())
	if err == nil {
		t.Fatal("no error for format xml")
	}
}

func TestNewLogger(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		if _, err := newLogger(lvl); err != nil {
			t.Errorf("newLogger(%q): %v", lvl, err)
		}
	}
	if _, err := newLogger("loud"); err == nil {
		t.Error("newLogger(\"loud\"): no error")
	}
}
