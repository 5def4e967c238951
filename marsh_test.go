// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/vmihailenco/msgpack/v5"
)

var resultOpts = cmp.Options{
	cmp.Comparer(func(x, y *big.Int) bool {
		if x == nil || y == nil {
			return x == y
		}
		return x.Cmp(y) == 0
	}),
	cmp.Comparer(func(x, y Cell) bool { return x == y }),
	cmpopts.EquateEmpty(),
}

func testResults(t *testing.T) []*Result {
	t.Helper()
	return []*Result{
		mustCompute(t, OpAdd, 999, 1, 10),
		mustCompute(t, OpSub, 5, 12, 10),
		mustCompute(t, OpMul, 99, 9, 10),
		mustCompute(t, OpDiv, 400, 59, 10),
		mustCompute(t, OpDiv, 6, 7, 10),
		mustCompute(t, OpMul, 1<<62, 1<<62, MaxBase),
	}
}

func TestResult_json(t *testing.T) {
	for _, r := range testResults(t) {
		b, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		var got Result
		if err = json.Unmarshal(b, &got); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(r, &got, resultOpts); diff != "" {
			t.Errorf("%v: json round trip mismatch (-want +got):\n%s", r.Op, diff)
		}
	}
}

func TestResult_msgpack(t *testing.T) {
	for _, r := range testResults(t) {
		b, err := r.MarshalBinary()
		if err != nil {
			t.Fatal(err)
		}
		var got Result
		if err = got.UnmarshalBinary(b); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(r, &got, resultOpts); diff != "" {
			t.Errorf("%v: msgpack round trip mismatch (-want +got):\n%s", r.Op, diff)
		}
		if err = got.Verify(); err != nil {
			t.Errorf("%v: decoded result: %v", r.Op, err)
		}
	}
}

// Results embedded in other values are encoded through MarshalBinary.
func TestResult_msgpackEmbedded(t *testing.T) {
	type envelope struct {
		ID     int
		Result *Result
	}
	in := envelope{42, mustCompute(t, OpDiv, 1000, 7, 10)}
	b, err := msgpack.Marshal(&in)
	if err != nil {
		t.Fatal(err)
	}
	var out envelope
	if err = msgpack.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out, resultOpts); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCell_encoding(t *testing.T) {
	s := Snapshot{Computed(0), Computed(12), Pending()}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[0,12,null]" {
		t.Fatalf("json = %s", b)
	}
	var got Snapshot
	if err = json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, got, resultOpts); diff != "" {
		t.Errorf("json mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	if err = msgpack.NewEncoder(&buf).Encode(s); err != nil {
		t.Fatal(err)
	}
	got = nil
	if err = msgpack.NewDecoder(&buf).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, got, resultOpts); diff != "" {
		t.Errorf("msgpack mismatch (-want +got):\n%s", diff)
	}
	if d, ok := got[1].Digit(); !ok || d != 12 || !got[2].IsPending() || got[2].String() != "_" {
		t.Errorf("decoded cells = %v", got)
	}
}
