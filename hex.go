//
//   Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//   Licensed under the Apache License, Version 2.0 (the "License");
//   you may not use this file except in compliance with the License.
//   You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
//

package oid

import "sync/atomic"

// hexTable maps byte value to its two digits
var hexTable [256][2]byte

// nibble maps ASCII code to its hex value, 0xff for non-hex symbols
var nibble [256]byte

func init() {
	const digits = "0123456789abcdef"

	for i := 0; i < 256; i++ {
		hexTable[i] = [2]byte{digits[i>>4], digits[i&0x0f]}
		nibble[i] = 0xff
	}

	for i := 0; i < 10; i++ {
		nibble['0'+i] = byte(i)
	}

	for i := 0; i < 6; i++ {
		nibble['a'+i] = byte(10 + i)
		nibble['A'+i] = byte(10 + i)
	}
}

var hexCache atomic.Bool

func init() { hexCache.Store(true) }

// HexCache toggles process-wide memoization of the canonical hex form.
// It is enabled by default.
func HexCache(enabled bool) { hexCache.Store(enabled) }

// rendered is memoized hex form of identifier
type rendered struct {
	raw [Size]byte
	hex string
}

// hexMemo is direct-mapped memo of recently rendered identifiers, the slot
// is chosen by low bytes of timestamp and counter.
var hexMemo [256]atomic.Pointer[rendered]

func render(raw [Size]byte) string {
	if !hexCache.Load() {
		return encode16(raw)
	}

	slot := &hexMemo[raw[3]^raw[11]]
	if r := slot.Load(); r != nil && r.raw == raw {
		return r.hex
	}

	hex := encode16(raw)
	slot.Store(&rendered{raw: raw, hex: hex})
	return hex
}

func encode16(raw [Size]byte) string {
	b := make([]byte, HexSize)
	for i, x := range raw {
		b[2*i] = hexTable[x][0]
		b[2*i+1] = hexTable[x][1]
	}
	return string(b)
}

// isHex checks that text is exactly 24 hex digits, case-insensitive
func isHex[T string | []byte](text T) bool {
	if len(text) != HexSize {
		return false
	}

	for i := 0; i < len(text); i++ {
		if nibble[text[i]] == 0xff {
			return false
		}
	}
	return true
}

// decode16 expects validated input, see isHex
func decode16[T string | []byte](text T) (raw [Size]byte) {
	for i := 0; i < Size; i++ {
		raw[i] = nibble[text[2*i]]<<4 | nibble[text[2*i+1]]
	}
	return
}
