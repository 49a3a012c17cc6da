// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package mailbox exchanges words with the soft core through the
// inter-processor mailbox character devices.
//
// A message is two little-endian 32-bit words; the first is the payload and
// the second is zero.
package mailbox

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const MessageSize = 8

var (
	// Dir holds the device nodes of named channels.
	Dir = "/dev"

	// Default channel names.
	Rx = "mailbox_nios2ar:0"
	Tx = "mailbox_arm2nio:0"
)

// Channel is one direction of a mailbox. Send and Receive may be called from
// different goroutines.
type Channel struct {
	name string
	rw   io.ReadWriteCloser

	rmu, wmu sync.Mutex
	rbuf     [MessageSize]byte
	wbuf     [MessageSize]byte
}

// Open opens the named channel, relative to Dir unless absolute.
func Open(name string) (*Channel, error) {
	fn := name
	if !filepath.IsAbs(fn) {
		fn = filepath.Join(Dir, name)
	}
	f, err := os.OpenFile(fn, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	return New(name, f), nil
}

// New returns a Channel carried by rw, e.g. one end of a net.Pipe.
func New(name string, rw io.ReadWriteCloser) *Channel {
	return &Channel{name: name, rw: rw}
}

func (c *Channel) String() string { return c.name }

func (c *Channel) Send(word uint32) error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	binary.LittleEndian.PutUint32(c.wbuf[:4], word)
	binary.LittleEndian.PutUint32(c.wbuf[4:], 0)
	if _, err := c.rw.Write(c.wbuf[:]); err != nil {
		return fmt.Errorf("%s: send: %w", c.name, err)
	}
	return nil
}

// Receive blocks until a message arrives, the channel is closed, or the
// device fails.
func (c *Channel) Receive() (uint32, error) {
	c.rmu.Lock()
	defer c.rmu.Unlock()
	if _, err := io.ReadFull(c.rw, c.rbuf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, fmt.Errorf("%s: short message: %w", c.name, err)
		}
		return 0, err
	}
	return binary.LittleEndian.Uint32(c.rbuf[:4]), nil
}

func (c *Channel) Close() error { return c.rw.Close() }
