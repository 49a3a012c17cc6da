// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package device provides register access to the performance counters, the
// SGDMA engines, and the on-chip buffer shared with the soft core.
package device

import (
	"errors"
	"fmt"
	"os"
)

// Handle groups the windows of one transfer channel. A Handle is valid only
// if every window is mapped.
type Handle struct {
	w [nBlocks]Window
}

// Open maps each region of the layout through the named memory device. If
// any mapping fails, those already made are released.
func Open(devmem string, l Layout) (h *Handle, err error) {
	f, err := os.OpenFile(devmem, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, err
	}
	// mappings outlive the descriptor
	defer f.Close()

	h = new(Handle)
	defer func() {
		if err != nil {
			h.Close()
			h = nil
		}
	}()
	for b := range h.w {
		var m *mapped
		if m, err = mapRegion(f, l[b]); err != nil {
			return
		}
		h.w[b] = m
	}
	return h, nil
}

// New returns a Handle of the given windows, e.g. from Simulate.
func New(w [nBlocks]Window) (*Handle, error) {
	for b, x := range w {
		if x == nil {
			return nil, fmt.Errorf("%s: missing window", Block(b))
		}
	}
	return &Handle{w: w}, nil
}

// Simulate returns a Handle of RAM windows sized by the layout.
func Simulate(l Layout) *Handle {
	h := new(Handle)
	for b := range h.w {
		h.w[b] = NewMem(l[b].Size)
	}
	return h
}

// Close releases the windows in reverse order of Open.
func (h *Handle) Close() error {
	var errs []error
	for b := len(h.w) - 1; b >= 0; b-- {
		if h.w[b] == nil {
			continue
		}
		if err := h.w[b].Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", Block(b), err))
		}
		h.w[b] = nil
	}
	return errors.Join(errs...)
}

func (h *Handle) Window(b Block) Window { return h.w[b] }

func (h *Handle) ReadRegister(b Block, off uint32) uint32 {
	return h.w[b].Load32(off)
}

func (h *Handle) WriteRegister(b Block, off, v uint32) {
	h.w[b].Store32(off, v)
}

// The sentinel is the last word of a size byte transfer.
func (h *Handle) ReadSentinel(size uint32) uint32 {
	return h.w[Shared].Load32(size - 4)
}

func (h *Handle) WriteSentinel(size, v uint32) {
	h.w[Shared].Store32(size-4, v)
}

// BufferSize returns the capacity of the shared buffer in bytes.
func (h *Handle) BufferSize() uint32 { return h.w[Shared].Len() }

// ClearInterrupt acknowledges the ingress SGDMA completion.
func (h *Handle) ClearInterrupt() {
	h.WriteRegister(DMAIngress, DMAStatus,
		h.ReadRegister(DMAIngress, DMAStatus))
}
