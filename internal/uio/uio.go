// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package uio waits on an interrupt line exported by the Linux userspace I/O
// framework.
//
// Reading the device node blocks until the next interrupt and returns the
// total event count; writing 1 unmasks the line again.
package uio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

var Default = "/dev/uio0"

type Line struct {
	name string
	rw   io.ReadWriteCloser
	buf  [4]byte
}

func Open(fn string) (*Line, error) {
	f, err := os.OpenFile(fn, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return New(fn, f), nil
}

func New(name string, rw io.ReadWriteCloser) *Line {
	return &Line{name: name, rw: rw}
}

func (l *Line) String() string { return l.name }

// Enable unmasks the interrupt.
func (l *Line) Enable() error {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], 1)
	if _, err := l.rw.Write(b[:]); err != nil {
		return fmt.Errorf("%s: enable: %w", l.name, err)
	}
	return nil
}

// Wait blocks until the next interrupt and returns the event count. Only one
// goroutine may Wait.
func (l *Line) Wait() (uint32, error) {
	if _, err := io.ReadFull(l.rw, l.buf[:]); err != nil {
		return 0, err
	}
	return binary.NativeEndian.Uint32(l.buf[:]), nil
}

func (l *Line) Close() error { return l.rw.Close() }
