//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package oid

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Chronos is an abstraction of generator context used by library.
type Chronos interface {
	// Machine tag ⟨𝒎⟩ of ID allocator, 24 bits
	M() uint32
	// Worker tag ⟨𝒘⟩ of ID allocator, 16 bits
	W() uint16
	// Wall-clock ⟨𝒕⟩, seconds since Unix epoch
	T() int64
	// Next value of monotonic counter ⟨𝒔⟩, 24 bits
	S() uint32
}

// Clock is global default instance of generator context
//
// If the application needs own default context e.g. with machine tag
// derived from environment, it declares own clock.
var Clock Chronos = NewClock()

const seqMask = 0x00ffffff

// Generator context, the default one
type clock struct {
	// Machine tag ⟨𝒎⟩
	machine uint32
	// Worker tag ⟨𝒘⟩
	worker uint16
	// Wall-clock ⟨𝒕⟩ generator
	ticker func() int64
	// Counter ⟨𝒔⟩, only 24 lower bits are significant
	seq    atomic.Uint32
	logger zerolog.Logger
}

func (c *clock) M() uint32 { return c.machine }
func (c *clock) W() uint16 { return c.worker }
func (c *clock) T() int64  { return c.ticker() }

func (c *clock) S() uint32 {
	// 2³² is a multiple of 2²⁴, masking keeps wraparound exact
	s := c.seq.Add(1) & seqMask
	if s == 0 {
		c.logger.Debug().
			Uint32("machine", c.machine).
			Uint16("worker", c.worker).
			Int64("second", c.ticker()).
			Msg("counter wraparound")
	}
	return s
}

// Creates instance of generator context
func NewClock(opts ...Config) Chronos {
	c := &clock{logger: zerolog.Nop()}
	defopt := []Config{WithClockUnix(), WithMachineRandom(), WithWorkerPid(), WithCounterRandom()}

	for _, opt := range append(defopt, opts...) {
		opt(c)
	}

	c.logger.Debug().
		Uint32("machine", c.machine).
		Uint16("worker", c.worker).
		Uint32("seed", c.seq.Load()&seqMask).
		Msg("generator context")

	return c
}

// Create mock instance of generator context
func NewClockMock(opts ...Config) Chronos {
	c := &clock{
		machine: 0,
		worker:  0,
		ticker:  func() int64 { return 0 },
		logger:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config option of default generator context behavior.
// Config options allows to define custom strategies to obtain
// ⟨𝒎⟩ machine, ⟨𝒘⟩ worker, ⟨𝒕⟩ timestamp or ⟨𝒔⟩ seed.
type Config func(*clock)

// WithMachineID explicitly configures ⟨𝒎⟩ machine tag
func WithMachineID(id uint32) Config {
	return func(c *clock) {
		c.machine = id & 0x00ffffff
	}
}

// WithMachineFromEnv configures ⟨𝒎⟩ machine tag using env variable.
//
// CONFIG_OID_MACHINE_ID - defines machine tag as a string
func WithMachineFromEnv() Config {
	return func(c *clock) {
		hash := sha256.Sum256([]byte(os.Getenv("CONFIG_OID_MACHINE_ID")))
		c.machine = uint32(hash[0])<<16 | uint32(hash[1])<<8 | uint32(hash[2])
	}
}

// WithMachineRandom configures ⟨𝒎⟩ machine tag using cryptographic random generator
func WithMachineRandom() Config {
	return func(c *clock) {
		c.machine = random24()
	}
}

// WithWorkerID explicitly configures ⟨𝒘⟩ worker tag
func WithWorkerID(id uint16) Config {
	return func(c *clock) {
		c.worker = id
	}
}

// WithWorkerPid configures ⟨𝒘⟩ worker tag as process id modulo 2¹⁶
func WithWorkerPid() Config {
	return func(c *clock) {
		c.worker = uint16(os.Getpid() % 0x10000)
	}
}

// WithClock configures a custom timestamp generator function, seconds
func WithClock(ticker func() int64) Config {
	return func(c *clock) {
		c.ticker = ticker
	}
}

// WithClockUnix configures unix timestamp time.Now().Unix() as generator function
func WithClockUnix() Config {
	return func(c *clock) {
		c.ticker = unixtime
	}
}

func unixtime() int64 {
	return time.Now().Unix()
}

// WithCounter configures initial value of ⟨𝒔⟩ counter,
// the first generated identifier gets seed + 1.
func WithCounter(seed uint32) Config {
	return func(c *clock) {
		c.seq.Store(seed & seqMask)
	}
}

// WithCounterRandom seeds ⟨𝒔⟩ counter using cryptographic random generator
func WithCounterRandom() Config {
	return func(c *clock) {
		c.seq.Store(random24())
	}
}

// WithLogger configures logger for generator diagnostics
func WithLogger(logger zerolog.Logger) Config {
	return func(c *clock) {
		c.logger = logger
	}
}

func random24() uint32 {
	bytes := make([]byte, 4)
	if _, err := io.ReadFull(rand.Reader, bytes); err != nil {
		panic(err.Error())
	}

	return binary.BigEndian.Uint32(bytes) & 0x00ffffff
}
