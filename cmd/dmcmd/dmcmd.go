// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package dmcmd submits a transfer command to a running daemon as though
// sent by the soft core.
package dmcmd

import (
	"fmt"
	"strconv"

	"github.com/platinasystems/atsock"
	"github.com/platinasystems/datamover/cmd/dmstat"
	"github.com/platinasystems/datamover/internal/mover"
	"github.com/platinasystems/datamover/lang"
	"github.com/platinasystems/parms"
)

type Command struct{}

func (Command) String() string { return "dmcmd" }

func (Command) Usage() string {
	return "dmcmd [-i NAME] -size BYTES -mode poll|interrupt"
}

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "submit a transfer command",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Encode a command word and submit it through the daemon's RPC
	socket, exactly as if it had arrived on the receive mailbox.

OPTIONS
	-i NAME
		daemon instance; default: datamoverd
	-size BYTES
		transfer size, a multiple of 4
	-mode poll|interrupt
		completion detection`,
	}
}

func (Command) Main(args ...string) error {
	parm, args := parms.New(args, "-i", "-size", "-mode")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	w, err := word(parm.ByName["-size"], parm.ByName["-mode"])
	if err != nil {
		return err
	}
	name := parm.ByName["-i"]
	if len(name) == 0 {
		name = dmstat.Instance
	}
	cl, err := atsock.NewRpcClient(name)
	if err != nil {
		return err
	}
	defer cl.Close()
	return cl.Call("Info.Submit", w, &struct{}{})
}

func word(size, mode string) (uint32, error) {
	if len(size) == 0 {
		return 0, fmt.Errorf("missing -size")
	}
	n, err := strconv.ParseUint(size, 0, 30)
	if err != nil {
		return 0, fmt.Errorf("-size: %w", err)
	}
	for _, m := range []mover.Mode{mover.ModePoll, mover.ModeInterrupt} {
		if mode == m.String() {
			return mover.Encode(uint32(n), m), nil
		}
	}
	return 0, fmt.Errorf("-mode: %q: invalid", mode)
}
