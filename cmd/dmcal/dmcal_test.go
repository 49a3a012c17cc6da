// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dmcal

import (
	"path/filepath"
	"testing"
)

func TestMainArgs(t *testing.T) {
	for _, args := range [][]string{
		{"extra"},
		{"-n", "0"},
		{"-n", "many"},
		{"-mem", filepath.Join(t.TempDir(), "missing")},
	} {
		if err := (Command{}).Main(args...); err == nil {
			t.Errorf("%q: no error", args)
		}
	}
}
