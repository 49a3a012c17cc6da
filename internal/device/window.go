// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package device

import "sync/atomic"

// Window is a 32-bit register view of one region. Offsets are in bytes and
// must be word aligned.
type Window interface {
	Load32(off uint32) uint32
	Store32(off, v uint32)
	// Len returns the window size in bytes.
	Len() uint32
	Close() error
}

// Mem is a RAM backed Window used to simulate a region.
type Mem struct {
	words []uint32
	// If non-nil, Stored is called after every store. Set it before the
	// window is shared.
	Stored func(off, v uint32)
}

func NewMem(n uint32) *Mem {
	return &Mem{words: make([]uint32, (n+3)/4)}
}

func (m *Mem) Load32(off uint32) uint32 {
	return atomic.LoadUint32(&m.words[off/4])
}

func (m *Mem) Store32(off, v uint32) {
	atomic.StoreUint32(&m.words[off/4], v)
	if m.Stored != nil {
		m.Stored(off, v)
	}
}

func (m *Mem) Len() uint32  { return uint32(len(m.words) * 4) }
func (m *Mem) Close() error { return nil }
