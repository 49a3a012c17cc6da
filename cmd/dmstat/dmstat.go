// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package dmstat prints the status of a running transfer daemon.
package dmstat

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/platinasystems/atsock"
	"github.com/platinasystems/datamover/cmd/moverd"
	"github.com/platinasystems/datamover/lang"
	"github.com/platinasystems/parms"
)

// Instance is the daemon queried without -i.
var Instance = "datamoverd"

type Command struct{}

func (Command) String() string { return "dmstat" }

func (Command) Usage() string { return "dmstat [-i NAME]" }

func (Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "print transfer daemon status",
	}
}

func (Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
OPTIONS
	-i NAME
		daemon instance, e.g. pathfinderd; default: datamoverd`,
	}
}

func (Command) Main(args ...string) error {
	parm, args := parms.New(args, "-i")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	name := parm.ByName["-i"]
	if len(name) == 0 {
		name = Instance
	}
	cl, err := atsock.NewRpcClient(name)
	if err != nil {
		return err
	}
	defer cl.Close()
	var st moverd.Status
	if err = cl.Call("Info.Status", struct{}{}, &st); err != nil {
		return err
	}
	show(os.Stdout, &st, isatty.IsTerminal(os.Stdout.Fd()))
	return nil
}

func show(w io.Writer, st *moverd.Status, aligned bool) {
	fields := st.Fields()
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Key))
	}
	for _, f := range fields {
		if aligned {
			fmt.Fprintf(w, "%s.%-*s %s\n", st.Name, width, f.Key, f.Value)
		} else {
			fmt.Fprint(w, st.Name, ".", f.Key, ": ", f.Value, "\n")
		}
	}
}
