// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package cmd defines the contract of every datamover command.
package cmd

import "github.com/platinasystems/datamover/lang"

type Cmd interface {
	Apropos() lang.Alt
	Main(...string) error
	// String returns the command name.
	String() string
	Usage() string
	/* Optional
	Close() error
	Kind() Kind
	Man() lang.Alt
	*/
}

const (
	Daemon Kind = 1 << iota
	Hidden
)

type Kind uint16

func WhatKind(v Cmd) Kind {
	if m, found := v.(kinder); found {
		return m.Kind()
	}
	return 0
}

type kinder interface {
	Kind() Kind
}

func (k Kind) IsDaemon() bool { return (k & Daemon) == Daemon }
func (k Kind) IsHidden() bool { return (k & Hidden) == Hidden }

func (k Kind) String() string {
	s := "unknown"
	switch k {
	case Daemon:
		s = "daemon"
	case Hidden:
		s = "hidden"
	}
	return s
}
