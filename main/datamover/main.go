// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// This is the datamover program; link it as datamoverd or pathfinderd to run
// a daemon by name.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/platinasystems/datamover"
	"github.com/platinasystems/datamover/cmd/dmcal"
	"github.com/platinasystems/datamover/cmd/dmcmd"
	"github.com/platinasystems/datamover/cmd/dmstat"
	"github.com/platinasystems/datamover/cmd/moverd"
)

var Exit = os.Exit
var Stderr io.Writer = os.Stderr

func Goes() *datamover.Goes {
	g := &datamover.Goes{NAME: "datamover"}
	g.Plot(&moverd.Command{Name: "datamoverd"},
		&moverd.Command{Name: "pathfinderd"},
		dmcal.Command{},
		dmcmd.Command{},
		dmstat.Command{},
	)
	return g
}

func main() {
	if err := Goes().Main(); err != nil {
		fmt.Fprintln(Stderr, err)
		Exit(1)
	}
}
