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
	"errors"
	"fmt"
)

// ErrInvalidArgument is reported whenever input cannot be decoded to
// identifier. The actual error wraps it with the reason.
var ErrInvalidArgument = errors.New("invalid argument")

func errLength(kind string, n int) error {
	return fmt.Errorf("%w: must be a 12-byte value or a 24-character hex string, got %s of length %d",
		ErrInvalidArgument, kind, n)
}

func errNotHex(text string) error {
	return fmt.Errorf("%w: not a hex string %q", ErrInvalidArgument, text)
}

func errType(x any) error {
	return fmt.Errorf("%w: must be a 12-byte value or a 24-character hex string, got %T",
		ErrInvalidArgument, x)
}
