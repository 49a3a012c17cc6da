// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package datamover

import "fmt"

// Help returns the usage of the named command or, without args, the program.
func (g *Goes) Help(args ...string) string {
	if len(args) > 0 {
		if v, found := g.ByName[args[0]]; found {
			return Usage(v)
		}
	}
	return Usage(g)
}

func (g *Goes) help(args ...string) error {
	fmt.Println(g.Help(args...))
	return nil
}
