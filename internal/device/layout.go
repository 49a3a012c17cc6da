// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package device

//go:generate go tool stringer -type=Block -linecomment

// Block selects one of the mapped windows of a Handle.
type Block int

const (
	PerfIngress Block = iota // nios2-perf
	PerfHPS                  // hps-perf
	DMAIngress               // nios2-sgdma
	DMARegress               // hps-sgdma
	Shared                   // ocram
)

const nBlocks = 5

// Register offsets and values.
const (
	// Status of the ingress SGDMA, write-one-to-clear.
	DMAStatus = 0x00
	// Descriptor control of the regress SGDMA.
	DMADescControl = 0x2c
	DMAGo          = 0x80004000

	// Magic marks a completed transfer in the last word of its buffer.
	Magic = 0xF0F0F0F0
)

// Region is a physical address range.
type Region struct {
	Name string
	Base uint64
	Size uint32
}

func (r Region) End() uint64 { return r.Base + uint64(r.Size) - 1 }

func (r Region) overlaps(start, end uint64) bool {
	return r.Base <= end && start <= r.End()
}

type Layout [nBlocks]Region

// DefaultLayout is the Cyclone V SoC reference design: the soft core and its
// peripherals on the lightweight HPS-to-FPGA bridge, the shared buffer in
// HPS on-chip RAM.
var DefaultLayout = Layout{
	PerfIngress: {"nios ii perfcounter", 0xff200000, 0x80},
	PerfHPS:     {"hps perfcounter", 0xff200300, 0x80},
	DMAIngress:  {"nios ii sgdma", 0xff200080, 0x40},
	DMARegress:  {"hps sgdma", 0xff2000c0, 0x40},
	Shared:      {"ocram", 0xffff0000, 0x4000},
}
