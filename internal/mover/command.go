// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import "fmt"

//go:generate go tool stringer -type=Mode -linecomment

// Mode selects how transfer completion is detected.
type Mode int32

const (
	ModeUnset     Mode = iota - 1 // unset
	ModePoll                      // poll
	ModeInterrupt                 // interrupt
)

// Command word fields.
const (
	SizeMask  = 0x3fffffff
	ModeShift = 30
)

// Command is a decoded mailbox word from the soft core.
type Command struct {
	Size uint32
	Mode Mode
}

func Decode(word uint32) Command {
	return Command{
		Size: word & SizeMask,
		Mode: Mode((word >> ModeShift) & 0x3),
	}
}

// Encode returns the command word the soft core sends for a transfer.
func Encode(size uint32, mode Mode) uint32 {
	return uint32(mode)<<ModeShift | size&SizeMask
}

func (c Command) Word() uint32 { return Encode(c.Size, c.Mode) }

// Validate returns ErrMalformedCommand unless the mode is known and the
// sentinel of a Size byte transfer is an aligned word within a buffer of the
// given capacity.
func (c Command) Validate(capacity uint32) error {
	switch {
	case c.Mode != ModePoll && c.Mode != ModeInterrupt:
		return fmt.Errorf("%w: mode %d", ErrMalformedCommand, int32(c.Mode))
	case c.Size == 0:
		return fmt.Errorf("%w: zero size", ErrMalformedCommand)
	case c.Size%4 != 0:
		return fmt.Errorf("%w: size %d isn't word aligned",
			ErrMalformedCommand, c.Size)
	case c.Size > capacity:
		return fmt.Errorf("%w: size %d exceeds %d byte buffer",
			ErrMalformedCommand, c.Size, capacity)
	}
	return nil
}

func (c Command) String() string {
	return fmt.Sprint("Mode: ", c.Mode, ", Data Size: ", c.Size)
}

// Descriptor is the state of the current transfer.
type Descriptor struct {
	Size uint32
	Mode Mode
	// A command is waiting for the poll worker.
	Pending bool
}
