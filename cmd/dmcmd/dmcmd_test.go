// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dmcmd

import "testing"

func TestWord(t *testing.T) {
	for _, x := range []struct {
		size, mode string
		want       uint32
		ok         bool
	}{
		{"4096", "poll", 0x00001000, true},
		{"0x100", "interrupt", 0x40000100, true},
		{"", "poll", 0, false},
		{"4096", "", 0, false},
		{"4096", "unset", 0, false},
		{"-4", "poll", 0, false},
		{"0x40000000", "poll", 0, false},
	} {
		w, err := word(x.size, x.mode)
		if x.ok != (err == nil) {
			t.Errorf("%s %s: %v", x.size, x.mode, err)
			continue
		}
		if w != x.want {
			t.Errorf("%s %s: %#x", x.size, x.mode, w)
		}
	}
}

func TestMainArgs(t *testing.T) {
	if err := (Command{}).Main("-size", "64"); err == nil {
		t.Error("submitted without -mode")
	}
}
