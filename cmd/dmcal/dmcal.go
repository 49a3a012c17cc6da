// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package dmcal measures the data write period the way the daemon does at
// startup.
package dmcal

import (
	"fmt"
	"strconv"

	"github.com/platinasystems/datamover/internal/device"
	"github.com/platinasystems/datamover/internal/perf"
	"github.com/platinasystems/datamover/lang"
	"github.com/platinasystems/parms"
)

type Command struct{}

func (Command) String() string { return "dmcal" }

func (Command) Usage() string { return "dmcal [-mem FILE] [-n COUNT]" }

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "calibrate the data write period",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Time 100 begin/end strobes of the HPS performance counter and
	print the result; repeat COUNT times. Don't run this while a
	transfer daemon is measuring.

OPTIONS
	-mem FILE
		default: /dev/mem
	-n COUNT
		default: 1`,
	}
}

func (Command) Main(args ...string) error {
	parm, args := parms.New(args, "-mem", "-n")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	fn := parm.ByName["-mem"]
	if len(fn) == 0 {
		fn = device.DevMem
	}
	n := 1
	if s := parm.ByName["-n"]; len(s) > 0 {
		var err error
		if n, err = strconv.Atoi(s); err != nil || n < 1 {
			return fmt.Errorf("-n: %q: invalid", s)
		}
	}
	h, err := device.Open(fn, device.DefaultLayout)
	if err != nil {
		return err
	}
	defer h.Close()
	c := perf.New(h, device.PerfHPS)
	for i := 0; i < n; i++ {
		fmt.Println(perf.Calibrate(c))
	}
	return nil
}
