// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import (
	"errors"
	"fmt"
	"testing"
)

func ExampleDecode() {
	for _, w := range []uint32{0x00001000, 0x40000100, 0xc0000040} {
		fmt.Println(Decode(w))
	}
	// Output:
	// Mode: poll, Data Size: 4096
	// Mode: interrupt, Data Size: 256
	// Mode: Mode(3), Data Size: 64
}

func TestEncode(t *testing.T) {
	for _, c := range []Command{
		{4096, ModePoll},
		{256, ModeInterrupt},
		{SizeMask, ModeInterrupt},
	} {
		if got := Decode(c.Word()); got != c {
			t.Errorf("%v: decoded %v", c, got)
		}
	}
	if w := Encode(4096, ModeInterrupt); w != 0x40001000 {
		t.Errorf("word %#x", w)
	}
}

func TestValidate(t *testing.T) {
	const capacity = 0x4000
	for _, x := range []struct {
		c  Command
		ok bool
	}{
		{Command{4, ModePoll}, true},
		{Command{capacity, ModeInterrupt}, true},
		{Command{0, ModePoll}, false},
		{Command{2, ModePoll}, false},
		{Command{6, ModeInterrupt}, false},
		{Command{capacity + 4, ModePoll}, false},
		{Command{64, Mode(2)}, false},
		{Command{64, Mode(3)}, false},
		{Command{64, ModeUnset}, false},
	} {
		err := x.c.Validate(capacity)
		if x.ok && err != nil {
			t.Errorf("%v: %v", x.c, err)
		}
		if !x.ok && !errors.Is(err, ErrMalformedCommand) {
			t.Errorf("%v: accepted", x.c)
		}
	}
}

func TestStrings(t *testing.T) {
	for _, x := range []struct {
		s    fmt.Stringer
		want string
	}{
		{ModeUnset, "unset"},
		{ModePoll, "poll"},
		{ModeInterrupt, "interrupt"},
		{Mode(-2), "Mode(-2)"},
		{NotRunning, "not-running"},
		{Stopping, "stopping"},
		{WorkerState(9), "WorkerState(9)"},
	} {
		if got := x.s.String(); got != x.want {
			t.Errorf("%q != %q", got, x.want)
		}
	}
}
