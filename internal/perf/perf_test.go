// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package perf

import (
	"fmt"
	"testing"

	"github.com/platinasystems/datamover/internal/device"
)

// counter emulates a performance counter block that advances by tick on
// every strobe while measuring.
type counter struct {
	tick      uint32
	measuring bool
	open      [4]bool
	sum       [4]uint32
	now       uint32
	writes    []string
}

func (c *counter) Load32(off uint32) uint32 {
	if off%16 == 0 {
		return c.sum[off/16]
	}
	return 0
}

func (c *counter) Store32(off, v uint32) {
	slot := off / 16
	c.now += c.tick
	switch {
	case off == 0 && v == 1:
		c.writes = append(c.writes, "reset")
		*c = counter{tick: c.tick, writes: c.writes}
	case off%16 == 4:
		c.writes = append(c.writes, fmt.Sprint("begin", slot))
		if slot == 0 {
			c.measuring = true
		} else if c.measuring {
			c.open[slot] = true
			c.sum[slot] -= c.now
		}
	case off%16 == 0:
		c.writes = append(c.writes, fmt.Sprint("end", slot))
		if c.open[slot] {
			c.open[slot] = false
			c.sum[slot] += c.now
		}
	}
}

func (c *counter) Len() uint32  { return 0x80 }
func (c *counter) Close() error { return nil }

func handle(t *testing.T, c *counter) *device.Handle {
	l := device.DefaultLayout
	var w [5]device.Window
	for b := range w {
		w[b] = device.NewMem(l[b].Size)
	}
	w[device.PerfHPS] = c
	h, err := device.New(w)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func TestOffsets(t *testing.T) {
	for _, x := range []struct {
		slot, begin, end uint32
	}{
		{0, 0x04, 0x00},
		{1, 0x14, 0x10},
		{2, 0x24, 0x20},
	} {
		if got := beginOffset(x.slot); got != x.begin {
			t.Errorf("begin(%d) %#x != %#x", x.slot, got, x.begin)
		}
		if got := endOffset(x.slot); got != x.end {
			t.Errorf("end(%d) %#x != %#x", x.slot, got, x.end)
		}
	}
}

func TestCalibrate(t *testing.T) {
	c := &counter{tick: 3}
	period := Calibrate(New(handle(t, c), device.PerfHPS))
	if period != Calibrations*3 {
		t.Errorf("period %d != %d", period, Calibrations*3)
	}
	var begins, ends int
	for _, w := range c.writes {
		switch w {
		case "begin1":
			begins++
		case "end1":
			ends++
		}
	}
	if begins != Calibrations || ends != Calibrations {
		t.Errorf("%d begins and %d ends", begins, ends)
	}
	n := len(c.writes)
	if c.writes[0] != "reset" || c.writes[1] != "begin0" ||
		c.writes[n-1] != "reset" {
		t.Errorf("sequence %v...%v", c.writes[:2], c.writes[n-1:])
	}
}

func TestCalibrateRepeatable(t *testing.T) {
	a, b := &counter{tick: 1}, &counter{tick: 5}
	Calibrate(New(handle(t, a), device.PerfHPS))
	Calibrate(New(handle(t, b), device.PerfHPS))
	if fmt.Sprint(a.writes) != fmt.Sprint(b.writes) {
		t.Error("write sequences differ")
	}
}
