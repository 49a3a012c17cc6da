// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package cmd

import (
	"fmt"

	"github.com/platinasystems/datamover/lang"
)

type plain struct{}

func (plain) Apropos() lang.Alt    { return nil }
func (plain) Main(...string) error { return nil }
func (plain) String() string       { return "plain" }
func (plain) Usage() string        { return "plain" }

type daemon struct{ plain }

func (daemon) Kind() Kind { return Daemon }

func ExampleWhatKind() {
	for _, v := range []Cmd{plain{}, daemon{}} {
		k := WhatKind(v)
		fmt.Println(k, k.IsDaemon(), k.IsHidden())
	}
	fmt.Println(Hidden)
	// Output:
	// unknown false false
	// daemon true false
	// hidden
}
