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
	"reflect"
	"strings"
)

/*

Peer is identifier-like value, e.g. identifier of other version of the
schema. It renders itself as 24 hex digits and exposes the embedded id,
either raw 12 bytes or 24 hex digits.
*/
type Peer interface {
	Hex() string
	Bytes() []byte
}

/*

FromPeer adopts identifier-like value. The embedded raw bytes are taken as-is,
otherwise the hex form is decoded.
*/
func FromPeer(peer Peer) (ID, error) {
	if id, ok := peer.(ID); ok {
		return id, nil
	}

	if isNil(peer) {
		return ID{}, errType(peer)
	}

	raw := peer.Bytes()
	switch {
	case len(raw) == Size:
		return FromBytes(raw)
	case len(raw) == HexSize && isHex(raw):
		return mk(decode16(raw)), nil
	default:
		return FromHex(peer.Hex())
	}
}

/*

From builds identifier from any supported representation:
  - nil generates a new one using default Clock;
  - a number generates a new one at given time, seconds;
  - a string of 24 hex digits is decoded;
  - a string of 12 characters or 12 bytes are taken as raw value;
  - ID and Peer are adopted.

Everything else fails with ErrInvalidArgument.
*/
func From(x any) (ID, error) {
	if x == nil {
		return New(Clock), nil
	}

	if t, ok := seconds(x); ok {
		return NewAt(Clock, t), nil
	}

	switch v := x.(type) {
	case ID:
		return v, nil
	case *ID:
		if v == nil {
			return New(Clock), nil
		}
		return *v, nil
	case [Size]byte:
		return mk(v), nil
	case string:
		if len(v) == Size {
			return FromBytes([]byte(v))
		}
		return FromHex(v)
	case []byte:
		return FromBytes(v)
	case Peer:
		return FromPeer(v)
	default:
		return ID{}, errType(x)
	}
}

/*

IsValid checks if value is acceptable by From. It never fails.
*/
func IsValid(x any) bool {
	if x == nil {
		return false
	}

	if _, ok := seconds(x); ok {
		return true
	}

	switch v := x.(type) {
	case ID, [Size]byte:
		return true
	case *ID:
		return v != nil
	case string:
		return len(v) == Size || isHex(v)
	case []byte:
		return len(v) == Size
	case Peer:
		if isNil(v) {
			return false
		}
		raw := v.Bytes()
		return len(raw) == Size || isHex(raw)
	default:
		return false
	}
}

// isNil detects typed nil peer, e.g. nil pointer of identifier-like type
func isNil(peer Peer) bool {
	if peer == nil {
		return true
	}

	v := reflect.ValueOf(peer)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// seconds extracts timestamp from numeric value, truncating toward zero
func seconds(x any) (int64, bool) {
	switch v := x.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		return int64(v), true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}

/*

Equal compares identifier with other representation: ID, Peer, raw 12 bytes
or 24 hex digits. Any other value is not equal.
*/
func (id ID) Equal(x any) bool {
	switch v := x.(type) {
	case ID:
		return Eq(id, v)
	case *ID:
		return v != nil && Eq(id, *v)
	case [Size]byte:
		return id.raw == v
	case string:
		switch {
		case len(v) == Size:
			return v == string(id.raw[:])
		case isHex(v):
			return strings.EqualFold(v, id.Hex())
		default:
			return false
		}
	case []byte:
		switch {
		case len(v) == Size:
			return bytes.Equal(v, id.raw[:])
		case isHex(v):
			return decode16(v) == id.raw
		default:
			return false
		}
	case Peer:
		return !isNil(v) && strings.EqualFold(v.Hex(), id.Hex())
	default:
		return false
	}
}
