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

package oid_test

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fogfish/it/v2"
	"github.com/fogfish/oid"
	"golang.org/x/sync/errgroup"
)

func TestLayout(t *testing.T) {
	c := oid.NewClockMock(
		oid.WithMachineID(0xabcdef),
		oid.WithWorkerID(0x1234),
		oid.WithClock(func() int64 { return 1000000000 }),
		oid.WithCounter(0x10),
	)
	a := oid.New(c)

	it.Then(t).Should(
		it.Equal(a.Hex(), "3b9aca00abcdef1234000011"),
		it.Equal(oid.Time(a), 1000000000),
		it.Equal(oid.Machine(a), 0xabcdef),
		it.Equal(oid.Worker(a), 0x1234),
		it.Equal(oid.Seq(a), 0x11),
	)
}

func TestFromTime(t *testing.T) {
	a := oid.FromTime(0x43bc9f65)
	b := oid.NewAt(oid.NewClockMock(oid.WithCounter(0xffffff)), 0x43bc9f65)
	d := oid.FromUnix(time.Unix(0x43bc9f65, 999999999))
	e := oid.FromTime(1136214245)

	it.Then(t).Should(
		it.Equal(a.Hex(), "43bc9f650000000000000000"),
		it.Equal(b.Hex(), "43bc9f650000000000000000"),
		it.Equal(e.Hex(), "43b940e50000000000000000"),
		it.True(oid.Eq(a, d)),
		it.Equal(a.Time(), time.Unix(1136435045, 0)),
	)
}

func TestTimestamp(t *testing.T) {
	a := oid.NewAt(oid.Clock, 1000000000)
	b := oid.FromTime(1<<32 + 5)

	it.Then(t).Should(
		it.Equal(a.Time().Unix(), 1000000000),
		it.Equal(a.Time().Nanosecond(), 0),
		it.Equal(oid.Time(b), 5),
	)
}

func TestNew(t *testing.T) {
	c := oid.NewClock()
	a := oid.New(c)
	b := oid.New(c)

	it.Then(t).Should(
		it.True(!oid.Eq(a, b)),
		it.Equal(oid.Machine(a), oid.Machine(b)),
		it.Equal(oid.Worker(a), oid.Worker(b)),
		it.Equal((oid.Seq(b)-oid.Seq(a))&0xffffff, 1),
	)
}

func TestMonotonic(t *testing.T) {
	c := oid.NewClock()
	a := oid.New(c)

	for i := 0; i < 100000; i++ {
		b := oid.New(c)
		if (oid.Seq(b)-oid.Seq(a))&0xffffff != 1 {
			t.Fatalf("counter is not monotonic %s %s", a, b)
		}
		a = b
	}
}

func TestConcurrent(t *testing.T) {
	c := oid.NewClock()

	var (
		mu   sync.Mutex
		seen = map[uint32]struct{}{}
		g    errgroup.Group
	)

	for w := 0; w < 8; w++ {
		g.Go(func() error {
			seq := make([]uint32, 0, 10000)
			for i := 0; i < 10000; i++ {
				seq = append(seq, oid.Seq(oid.New(c)))
			}

			mu.Lock()
			defer mu.Unlock()
			for _, s := range seq {
				if _, has := seen[s]; has {
					return errors.New("duplicate counter")
				}
				seen[s] = struct{}{}
			}
			return nil
		})
	}

	it.Then(t).Should(
		it.Nil(g.Wait()),
		it.Equal(len(seen), 80000),
	)
}

func TestCodec(t *testing.T) {
	for i := 0; i < 24; i++ {
		c := oid.NewClock(
			oid.WithMachineID(1 << i),
			oid.WithWorkerID(uint16(1<<(i%16))),
		)

		a := oid.New(c)
		b, errB := oid.FromBytes(oid.Bytes(a))
		d, errD := oid.FromHex(a.Hex())

		it.Then(t).Should(
			it.Nil(errB),
			it.Nil(errD),
			it.True(oid.Eq(a, b)),
			it.True(oid.Eq(a, d)),
			it.Equal(len(a.Hex()), 24),
			it.Equal(a.Hex(), strings.ToLower(a.Hex())),
			it.Equal(a.String(), a.Hex()),
		)
	}
}

func TestFromHex(t *testing.T) {
	a, errA := oid.FromHex("507F1F77BCF86CD799439011")
	b := oid.MustHex("507f1f77bcf86cd799439011")

	it.Then(t).Should(
		it.Nil(errA),
		it.Equal(a.Hex(), "507f1f77bcf86cd799439011"),
		it.True(oid.Eq(a, b)),
		it.Equiv(a.Bytes(), []byte{0x50, 0x7f, 0x1f, 0x77, 0xbc, 0xf8, 0x6c, 0xd7, 0x99, 0x43, 0x90, 0x11}),
	)
}

func TestFromHexFailure(t *testing.T) {
	for _, val := range []string{
		"",
		"507f1f77bcf86cd79943901",
		"507f1f77bcf86cd7994390111",
		"zzzf1f77bcf86cd799439011",
		"507f1f77bcf86cd79943901 ",
	} {
		_, err := oid.FromHex(val)

		it.Then(t).Should(
			it.True(errors.Is(err, oid.ErrInvalidArgument)),
		)
	}
}

func TestFromBytesFailure(t *testing.T) {
	for _, val := range [][]byte{nil, make([]byte, 11), make([]byte, 13), make([]byte, 24)} {
		_, err := oid.FromBytes(val)

		it.Then(t).Should(
			it.True(errors.Is(err, oid.ErrInvalidArgument)),
		)
	}
}

func TestErrorMessages(t *testing.T) {
	_, errLen := oid.FromHex("507f")
	_, errHex := oid.FromHex("zzzf1f77bcf86cd799439011")

	it.Then(t).Should(
		it.True(strings.Contains(errLen.Error(), "24-character hex string")),
		it.True(strings.Contains(errHex.Error(), "not a hex string")),
	)
}

func TestMustHex(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		it.Then(t).Should(
			it.True(errors.Is(err, oid.ErrInvalidArgument)),
		)
	}()

	oid.MustHex("not-a-valid-id")
	t.Fatal("expected panic")
}

func TestOrdering(t *testing.T) {
	c := oid.NewClock(oid.WithCounter(0))

	seq := []oid.ID{
		oid.FromTime(1),
		oid.NewAt(c, 1),
		oid.NewAt(c, 1),
		oid.FromTime(2),
		oid.NewAt(c, 1 << 31),
	}

	txt := make([]string, len(seq))
	for i, x := range seq {
		txt[i] = x.Hex()
	}

	it.Then(t).Should(
		it.True(sort.StringsAreSorted(txt)),
		it.True(sort.SliceIsSorted(seq, func(i, j int) bool { return oid.Before(seq[i], seq[j]) })),
		it.True(oid.After(seq[2], seq[1])),
		it.Equal(oid.Compare(seq[1], seq[1]), 0),
		it.Equal(oid.Compare(seq[0], seq[4]), -1),
	)
}

func TestHexCache(t *testing.T) {
	defer oid.HexCache(true)

	oid.HexCache(false)
	a := oid.MustHex(hexID)
	ha := a.Hex()
	oid.HexCache(true)
	b := oid.MustHex(hexID)
	hb := b.Hex()

	it.Then(t).Should(
		it.True(a == b),
		it.True(oid.Eq(a, b)),
		it.Equal(ha, hexID),
		it.Equal(hb, hexID),
		it.Equal(b.Hex(), hexID),
	)
}

func TestValueEquality(t *testing.T) {
	defer oid.HexCache(true)

	zero := oid.FromArray([12]byte{})
	hex, _ := oid.FromHex("000000000000000000000000")

	oid.HexCache(false)
	uncached := oid.MustHex(hexID)
	oid.HexCache(true)
	cached := oid.MustHex(hexID)

	seen := map[oid.ID]bool{oid.ID{}: true, cached: true}

	it.Then(t).Should(
		it.True(oid.ID{} == zero),
		it.True(zero == hex),
		it.True(uncached == cached),
		it.True(seen[zero]),
		it.True(seen[hex]),
		it.True(seen[uncached]),
		it.Equal(len(seen), 2),
	)
}

func TestIsZero(t *testing.T) {
	it.Then(t).Should(
		it.True(oid.ID{}.IsZero()),
		it.True(oid.FromTime(0).IsZero()),
		it.True(!oid.New(oid.Clock).IsZero()),
	)
}

var last oid.ID

func BenchmarkNew(b *testing.B) {
	var val oid.ID
	for i := 0; i < b.N; i++ {
		val = oid.New(oid.Clock)
	}
	last = val
}

var text string

func BenchmarkHex(b *testing.B) {
	defer oid.HexCache(true)
	oid.HexCache(false)

	val := oid.New(oid.Clock)
	for i := 0; i < b.N; i++ {
		text = val.Hex()
	}
}
