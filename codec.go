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
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// oidJSON is the document-store tagging of identifier {"$oid": "…"}
type oidJSON struct {
	OID string `json:"$oid" yaml:"$oid"`
}

/*

MarshalJSON encodes identifier as {"$oid": "<24 hex digits>"}
*/
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(oidJSON{OID: id.Hex()})
}

/*

UnmarshalJSON decodes identifier either from {"$oid": "…"} or
from plain hex string, null leaves identifier unchanged
*/
func (id *ID) UnmarshalJSON(b []byte) (err error) {
	var val string

	if string(b) == "null" {
		return nil
	}

	if len(b) > 0 && b[0] == '{' {
		var doc oidJSON
		if err = json.Unmarshal(b, &doc); err != nil {
			return
		}
		val = doc.OID
	} else if err = json.Unmarshal(b, &val); err != nil {
		return
	}

	*id, err = FromHex(val)
	return
}

// MarshalText encodes identifier to canonical hex form
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Hex()), nil
}

// UnmarshalText decodes identifier from hex form
func (id *ID) UnmarshalText(b []byte) (err error) {
	*id, err = FromHex(string(b))
	return
}

/*

MarshalYAML encodes identifier as plain scalar of hex digits
*/
func (id ID) MarshalYAML() (any, error) {
	return id.Hex(), nil
}

/*

UnmarshalYAML decodes identifier from scalar or from $oid mapping
*/
func (id *ID) UnmarshalYAML(node *yaml.Node) (err error) {
	var val string

	switch node.Kind {
	case yaml.ScalarNode:
		val = node.Value
	case yaml.MappingNode:
		var doc oidJSON
		if err = node.Decode(&doc); err != nil {
			return
		}
		val = doc.OID
	default:
		return fmt.Errorf("%w: yaml node at line %d is not scalar", ErrInvalidArgument, node.Line)
	}

	*id, err = FromHex(val)
	return
}

/*

Value implements driver.Valuer, identifier is stored as canonical hex, which
keeps the column sortable by generation time.
*/
func (id ID) Value() (driver.Value, error) {
	return id.Hex(), nil
}

/*

Scan implements sql.Scanner. It accepts hex text or raw 12 bytes.
*/
func (id *ID) Scan(src any) (err error) {
	switch v := src.(type) {
	case string:
		*id, err = FromHex(v)
	case []byte:
		if len(v) == Size {
			*id, err = FromBytes(v)
			return
		}
		*id, err = FromHex(string(bytes.TrimSpace(v)))
	default:
		err = errType(src)
	}
	return
}
