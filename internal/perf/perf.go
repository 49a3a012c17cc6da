// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package perf drives an FPGA performance counter block.
//
// Each slot n has a begin strobe at n*16+4 and an end strobe at n*16; the
// end address also reads back the slot's accumulated time. Slot 0 is the
// global section: its begin strobe starts measuring and writing 1 to its
// end address resets every slot.
package perf

import "github.com/platinasystems/datamover/internal/device"

// Calibrations is the number of begin/end pairs timed by Calibrate.
const Calibrations = 100

type Counter struct {
	h *device.Handle
	b device.Block
}

func New(h *device.Handle, b device.Block) Counter { return Counter{h, b} }

func beginOffset(slot uint32) uint32 { return (slot*4 + 1) * 4 }
func endOffset(slot uint32) uint32   { return slot * 4 * 4 }

func (c Counter) Reset()            { c.h.WriteRegister(c.b, 0, 1) }
func (c Counter) StartMeasuring()   { c.Begin(0) }
func (c Counter) Begin(slot uint32) { c.h.WriteRegister(c.b, beginOffset(slot), 0) }
func (c Counter) End(slot uint32)   { c.h.WriteRegister(c.b, endOffset(slot), 0) }
func (c Counter) Result(slot uint32) uint32 {
	return c.h.ReadRegister(c.b, endOffset(slot))
}

// Calibrate times back to back strobes of slot 1 and returns the accumulated
// count, the cost of the counter's own register writes. The result is only
// reported to the soft core.
func Calibrate(c Counter) uint32 {
	c.Reset()
	c.StartMeasuring()
	for i := 0; i < Calibrations; i++ {
		c.Begin(1)
		c.End(1)
	}
	period := c.Result(1)
	c.Reset()
	return period
}
