// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package radix

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// A Cell is one position of a progressive result snapshot: either a computed
// digit or a position the algorithm has not reached yet. The zero value is
// pending.
type Cell struct {
	d  int
	ok bool
}

// Computed returns a Cell holding digit d.
func Computed(d int) Cell { return Cell{d: d, ok: true} }

// Pending returns a Cell for a digit that is not yet computed.
func Pending() Cell { return Cell{} }

// Digit returns the digit held by c and whether it is computed.
func (c Cell) Digit() (int, bool) { return c.d, c.ok }

// IsPending reports whether c has not been computed yet.
func (c Cell) IsPending() bool { return !c.ok }

func (c Cell) String() string {
	if !c.ok {
		return "_"
	}
	return strconv.Itoa(c.d)
}

var jsonNull = []byte("null")

// MarshalJSON encodes a pending cell as null and a computed one as a number.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.ok {
		return jsonNull, nil
	}
	return strconv.AppendInt(nil, int64(c.d), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Cell) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*c = Cell{}
		return nil
	}
	var d int
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	*c = Computed(d)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder. Pending cells are nil.
func (c Cell) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !c.ok {
		return enc.EncodeNil()
	}
	return enc.EncodeInt(int64(c.d))
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (c *Cell) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		*c = Cell{}
		return dec.DecodeNil()
	}
	d, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	*c = Computed(d)
	return nil
}

// A Snapshot is the state of a result buffer at one step, least significant
// position first.
type Snapshot []Cell

// Buffer returns the computed prefix of s, stopping at the first pending
// cell.
func (s Snapshot) Buffer() Buffer {
	var z Buffer
	for _, c := range s {
		if !c.ok {
			break
		}
		z = z.push(c.d)
	}
	return z
}

// Pending returns the number of pending cells in s.
func (s Snapshot) Pending() int {
	n := 0
	for _, c := range s {
		if !c.ok {
			n++
		}
	}
	return n
}
