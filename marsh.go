// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements encoding/decoding of Results.

package radix

import (
	"bytes"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Results are encoded in MessagePack with the same field names as in JSON.
const structTag = "json"

// result has the fields of Result but none of its methods; encoding it
// does not recurse into MarshalBinary.
type result Result

// EncodeTo writes r to w in MessagePack format.
func (r *Result) EncodeTo(w io.Writer) error {
	enc := msgpack.NewEncoder(w)
	enc.SetCustomStructTag(structTag)
	enc.UseCompactInts(true)
	return enc.Encode((*result)(r))
}

// DecodeFrom reads a MessagePack encoded Result from rd into r.
func (r *Result) DecodeFrom(rd io.Reader) error {
	dec := msgpack.NewDecoder(rd)
	dec.SetCustomStructTag(structTag)
	return dec.Decode((*result)(r))
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// encoding is MessagePack.
func (r *Result) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (r *Result) UnmarshalBinary(data []byte) error {
	return r.DecodeFrom(bytes.NewReader(data))
}
