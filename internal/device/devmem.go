// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package device

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is the default physical memory device.
var DevMem = "/dev/mem"

// mapped is a Window onto physical memory. The mapping covers whole pages;
// win is the region within them.
type mapped struct {
	mem []byte
	win []byte
}

func mapRegion(f *os.File, r Region) (*mapped, error) {
	page := uint64(os.Getpagesize())
	base := r.Base &^ (page - 1)
	skip := r.Base - base
	n := (skip + uint64(r.Size) + page - 1) &^ (page - 1)
	mem, err := unix.Mmap(int(f.Fd()), int64(base), int(n),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%s: mmap %#x+%#x: %w",
			r.Name, r.Base, r.Size, err)
	}
	return &mapped{
		mem: mem,
		win: mem[skip : skip+uint64(r.Size)],
	}, nil
}

func (m *mapped) word(off uint32) *uint32 {
	_ = m.win[off+3]
	return (*uint32)(unsafe.Pointer(&m.win[off]))
}

func (m *mapped) Load32(off uint32) uint32 {
	return atomic.LoadUint32(m.word(off))
}

func (m *mapped) Store32(off, v uint32) {
	atomic.StoreUint32(m.word(off), v)
}

func (m *mapped) Len() uint32 { return uint32(len(m.win)) }

func (m *mapped) Close() error {
	if m.mem == nil {
		return nil
	}
	err := unix.Munmap(m.mem)
	m.mem, m.win = nil, nil
	return err
}
