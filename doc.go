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

/*

Package oid implements compact, time-ordered 96-bit identifiers for documents
of schemaless stores. The identifier is allocated without central authority
or coordination with other processes.

Key features

↣ IDs allocation does not require centralized authority or coordination with
other nodes.

↣ IDs are roughly sortable by allocation time at seconds precision, both as
bytes and as canonical hex text.

↣ IDs generated by the process are strictly ordered by counter.

↣ IDs are interchangeable with document-store ecosystems: canonical form is
24 lower-case hex digits, JSON form is {"$oid": "…"}.

Identity Schema

A fixed size of 96-bit is used to implement identity schema, each fraction
is big-endian

  32 bit        24 bit     16 bit     24 bit
  |------------|----------|--------|----------|
      ⟨𝒕⟩          ⟨𝒎⟩        ⟨𝒘⟩        ⟨𝒔⟩

↣ ⟨𝒕⟩ is 32-bit timestamp, seconds since Unix epoch.

↣ ⟨𝒎⟩ is 24-bit machine tag. It is allocated randomly to each process using
cryptographic random generator, environment or application provided value.
Host name hashing is not used, it requires a blocking lookup.

↣ ⟨𝒘⟩ is 16-bit worker tag, process id modulo 2¹⁶ by default.

↣ ⟨𝒔⟩ is 24-bit monotonic counter. It is seeded randomly once per generator
context and advanced atomically on each allocation. It wraps from 0xffffff
to 0x000000, which allows about 16M allocations per second on single process.

The generator context is injectable (see Chronos, NewClock, NewClockMock).
The package declares global default context Clock.

The identifier is not a security token, values are predictable.

Usage

  id := oid.New(oid.Clock)
  id.Hex()  // 24 hex digits
  id.Time() // generation time

  id, err := oid.FromHex("507f1f77bcf86cd799439011")
  if errors.Is(err, oid.ErrInvalidArgument) {
    // ...
  }

  // all identifiers generated before the instant
  bound := oid.FromUnix(time.Now())

*/
package oid
