/*

  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved

  Licensed under the Apache License, Version 2.0 (the "License");
  you may not use this file except in compliance with the License.
  You may obtain a copy of the License at

      http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.

*/

package oid

import (
	"bytes"
	"encoding/binary"
	"time"
)

const (
	// Size of identifier in bytes
	Size = 12
	// HexSize is length of canonical hex form
	HexSize = 2 * Size
)

/*

ID is a 96-bit identifier packed as ⟨𝒕, 𝒎, 𝒘, 𝒔⟩, big-endian per field.
The value is immutable, it is safe to copy and share.

The value is comparable, == and map keys behave as Eq.
*/
type ID struct {
	raw [Size]byte
}

func mk(raw [Size]byte) ID {
	return ID{raw: raw}
}

/*

New generates unique identifier at current time of the clock.

  32 bit        24 bit     16 bit     24 bit
  |------------|----------|--------|----------|
      ⟨𝒕⟩          ⟨𝒎⟩        ⟨𝒘⟩        ⟨𝒔⟩

*/
func New(clock Chronos) ID {
	return mkOID(clock.T(), clock.M(), clock.W(), clock.S())
}

/*

NewAt generates unique identifier at given time, seconds since Unix epoch.
The counter is advanced as it is done by New.
*/
func NewAt(clock Chronos, t int64) ID {
	return mkOID(t, clock.M(), clock.W(), clock.S())
}

func mkOID(t int64, machine uint32, worker uint16, seq uint32) ID {
	var raw [Size]byte

	// only 32 lower bits of timestamp are kept
	binary.BigEndian.PutUint32(raw[0:4], uint32(t))
	putUint24(raw[4:7], machine)
	binary.BigEndian.PutUint16(raw[7:9], worker)
	putUint24(raw[9:12], seq)

	return mk(raw)
}

func putUint24(b []byte, v uint32) {
	b[0] = byte(v >> 16)
	b[1] = byte(v >> 8)
	b[2] = byte(v)
}

func uint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

/*

FromTime builds identifier with timestamp fraction only, other fractions are
zero. It is not unique, use it as a bound for range queries e.g. all
identifiers generated before the instant.
*/
func FromTime(t int64) ID {
	return mkOID(t, 0, 0, 0)
}

/*

FromUnix builds identifier with timestamp fraction only, see FromTime.
Sub-second precision is truncated.
*/
func FromUnix(t time.Time) ID {
	return FromTime(t.Unix())
}

/*

FromBytes decodes identifier from 12 bytes, no other length is accepted.
*/
func FromBytes(val []byte) (ID, error) {
	if len(val) != Size {
		return ID{}, errLength("bytes", len(val))
	}

	var raw [Size]byte
	copy(raw[:], val)
	return mk(raw), nil
}

/*

FromArray builds identifier from fixed-size array
*/
func FromArray(raw [Size]byte) ID {
	return mk(raw)
}

/*

FromHex decodes identifier from 24 hex digits, case-insensitive.
*/
func FromHex(val string) (ID, error) {
	if len(val) != HexSize {
		return ID{}, errLength("string", len(val))
	}

	if !isHex(val) {
		return ID{}, errNotHex(val)
	}

	return mk(decode16(val)), nil
}

/*

MustHex decodes identifier from hex string, it panics on malformed input.
*/
func MustHex(val string) ID {
	id, err := FromHex(val)
	if err != nil {
		panic(err)
	}
	return id
}

/*******************************************************************************

Lenses of identifier

*******************************************************************************/

// Time returns ⟨𝒕⟩ timestamp fraction, seconds since Unix epoch.
func Time(id ID) uint32 {
	return binary.BigEndian.Uint32(id.raw[0:4])
}

// Machine returns ⟨𝒎⟩ machine tag fraction.
func Machine(id ID) uint32 {
	return uint24(id.raw[4:7])
}

// Worker returns ⟨𝒘⟩ worker tag fraction.
func Worker(id ID) uint16 {
	return binary.BigEndian.Uint16(id.raw[7:9])
}

// Seq returns ⟨𝒔⟩ counter fraction. The value of counter at the time of
// identifier creation.
func Seq(id ID) uint32 {
	return uint24(id.raw[9:12])
}

// Bytes encodes identifier to byte slice
func Bytes(id ID) []byte {
	b := make([]byte, Size)
	copy(b, id.raw[:])
	return b
}

/*******************************************************************************

Ordering

*******************************************************************************/

// Eq compares identifiers, returns true if values are equal
func Eq(a, b ID) bool {
	return a.raw == b.raw
}

// Compare returns -1, 0, 1. Byte order matches order of canonical hex
// form, which is the generation order at seconds precision.
func Compare(a, b ID) int {
	return bytes.Compare(a.raw[:], b.raw[:])
}

// Before returns true if identifier a is less than b
func Before(a, b ID) bool {
	return Compare(a, b) < 0
}

// After returns true if identifier a is greater than b
func After(a, b ID) bool {
	return Compare(a, b) > 0
}

/*******************************************************************************

Methods

*******************************************************************************/

// Hex renders identifier to canonical form of 24 lower-case hex digits.
func (id ID) Hex() string {
	return render(id.raw)
}

// String encodes identifier to canonical hex form
func (id ID) String() string {
	return id.Hex()
}

// Bytes returns a copy of raw 12 bytes
func (id ID) Bytes() []byte {
	return Bytes(id)
}

// Time returns the generation time of identifier, accurate to the second.
func (id ID) Time() time.Time {
	return time.Unix(int64(Time(id)), 0)
}

// IsZero returns true if all bytes of identifier are zero
func (id ID) IsZero() bool {
	return id.raw == [Size]byte{}
}
