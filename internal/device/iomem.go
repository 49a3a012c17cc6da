// Copyright © 2016-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package device

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ProcIomem lists the physical ranges claimed by kernel drivers.
var ProcIomem = "/proc/iomem"

// Claim is a leaf entry of /proc/iomem.
type Claim struct {
	What       string
	Start, End uint64
}

func (c Claim) String() string {
	return fmt.Sprintf("%x-%x : %s", c.Start, c.End, c.What)
}

// ReadClaims parses the leaf ranges of an iomem listing. Parent entries
// (buses, bridges) are skipped since they always contain their children.
// Unprivileged readers see zeroed ranges; these are skipped too.
func ReadClaims(r io.Reader) ([]Claim, error) {
	type entry struct {
		Claim
		depth int
	}
	var entries []entry
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.SplitN(line, ":", 2)
		if len(fields) != 2 {
			continue
		}
		var e entry
		e.depth = len(line) - len(strings.TrimLeft(line, " "))
		_, err := fmt.Sscanf(strings.TrimSpace(fields[0]), "%x-%x",
			&e.Start, &e.End)
		if err != nil {
			continue
		}
		e.What = strings.TrimSpace(fields[1])
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	var claims []Claim
	for i, e := range entries {
		if i+1 < len(entries) && entries[i+1].depth > e.depth {
			continue
		}
		if e.Start == 0 && e.End == 0 {
			continue
		}
		claims = append(claims, e.Claim)
	}
	return claims, nil
}

func FileClaims(fn string) ([]Claim, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadClaims(f)
}

// Conflicts returns a line for each region of the layout that overlaps a
// range already claimed by a kernel driver.
func (l Layout) Conflicts(claims []Claim) []string {
	var s []string
	for b, r := range l {
		for _, c := range claims {
			if r.overlaps(c.Start, c.End) {
				s = append(s, fmt.Sprintf("%s: %#x-%#x claimed by %q",
					Block(b), r.Base, r.End(), c.What))
			}
		}
	}
	return s
}
