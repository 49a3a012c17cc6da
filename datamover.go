// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package datamover runs the transfer daemons and their tools as one
// multi-call program.
package datamover

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/platinasystems/datamover/cmd"
	"github.com/platinasystems/datamover/lang"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/log"
)

type Goes struct {
	NAME    string
	USAGE   string
	APROPOS lang.Alt
	MAN     lang.Alt
	ByName  map[string]cmd.Cmd
}

func (g *Goes) String() string { return g.NAME }

// Plot adds commands by their name.
func (g *Goes) Plot(cmds ...cmd.Cmd) {
	if g.ByName == nil {
		g.ByName = make(map[string]cmd.Cmd)
	}
	for _, v := range cmds {
		name := v.String()
		if _, found := g.ByName[name]; found {
			panic(fmt.Errorf("%s: duplicate", name))
		}
		g.ByName[name] = v
	}
}

// Names returns the sorted names of the commands that aren't hidden.
func (g *Goes) Names() []string {
	names := make([]string, 0, len(g.ByName))
	for k, v := range g.ByName {
		if !cmd.WhatKind(v).IsHidden() {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	return names
}

// Main runs the args[0] command. Without args, this uses os.Args with the
// command named by the program, as from a link, or by its first argument.
//
// If the command args have "-h", "-help", or "--help", this prints its
// usage instead. Similarly for "-apropos", "-man", and "-usage".
//
// A daemon is closed on SIGTERM or interrupt.
func (g *Goes) Main(args ...string) error {
	if len(args) == 0 && len(os.Args) > 0 {
		args = append([]string(nil), os.Args...)
		if _, found := g.ByName[filepath.Base(args[0])]; found {
			args[0] = filepath.Base(args[0])
		} else {
			args = args[1:]
		}
	}
	if len(args) == 0 {
		return fmt.Errorf("%s", Usage(g))
	}
	name, args := args[0], args[1:]
	switch name {
	case "apropos":
		return g.apropos(args...)
	case "help", "-h", "-help", "--help":
		return g.help(args...)
	case "man":
		return g.man(args...)
	case "usage":
		return g.usage(args...)
	}
	v := g.ByName[name]
	if v == nil {
		return fmt.Errorf("%s: command not found", name)
	}
	flag, args := flags.New(args, "-h", "-help", "--help",
		"-apropos", "-man", "-usage")
	switch {
	case flag.ByName["-h"], flag.ByName["-help"], flag.ByName["--help"]:
		return g.help(name)
	case flag.ByName["-apropos"]:
		return g.apropos(name)
	case flag.ByName["-man"]:
		return g.man(name)
	case flag.ByName["-usage"]:
		return g.usage(name)
	}
	k := cmd.WhatKind(v)
	if c, ok := v.(io.Closer); ok && k.IsDaemon() {
		defer closeOnSignal(name, c)()
	}
	err := v.Main(args...)
	if err == io.EOF {
		err = nil
	}
	if err != nil && !k.IsDaemon() {
		err = fmt.Errorf("%s: %w", name, err)
	}
	return err
}

// closeOnSignal returns a func to stop watching.
func closeOnSignal(name string, c io.Closer) func() {
	sig := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sig, syscall.SIGTERM, os.Interrupt)
	go func() {
		select {
		case s := <-sig:
			log.Print("daemon", "info", name, ": ", s)
			if err := c.Close(); err != nil {
				log.Print("daemon", "err", name, ": ", err)
			}
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sig)
		close(done)
	}
}
