// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package moverd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/platinasystems/datamover/internal/device"
	"github.com/platinasystems/datamover/internal/mover"
)

func ExampleCommand() {
	c := &Command{Name: "pathfinderd"}
	fmt.Println(c)
	fmt.Println(c.Usage())
	fmt.Println(c.Kind())
	// Output:
	// pathfinderd
	// pathfinderd [-cpu N] [-mem FILE] [-uio FILE] [-rx NAME] [-tx NAME]
	// daemon
}

func TestMainArgs(t *testing.T) {
	c := &Command{Name: "datamoverd"}
	if err := c.Main("extra"); err == nil {
		t.Error("accepted extra arg")
	}
	if err := c.Main("-cpu", "one"); err == nil {
		t.Error("accepted -cpu one")
	}
}

type discard struct{}

func (discard) Send(uint32) error { return nil }

func TestInfo(t *testing.T) {
	var st Status
	if err := new(Info).Status(struct{}{}, &st); err == nil {
		t.Fatal("status without mover")
	}

	m := mover.New(device.Simulate(device.DefaultLayout), discard{},
		mover.Config{Name: "datamover", Period: 42, CPU: -1})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	i := &Info{name: "datamover", period: 42, m: m}
	if err := i.Submit(mover.Encode(256, mover.ModeInterrupt), nil); err != nil {
		t.Fatal(err)
	}
	err := i.Submit(mover.Encode(0, mover.ModePoll), nil)
	if !errors.Is(err, mover.ErrMalformedCommand) {
		t.Fatal(err)
	}
	if err = i.Status(struct{}{}, &st); err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"period":    "42",
		"mode":      "interrupt",
		"size":      "256",
		"pending":   "false",
		"worker":    "not-running",
		"commands":  "1",
		"malformed": "1",
	}
	for _, f := range st.Fields() {
		if v, found := want[f.Key]; found && v != f.Value {
			t.Errorf("%s: %q != %q", f.Key, f.Value, v)
		}
	}
}

func TestClose(t *testing.T) {
	c := &Command{Name: "datamoverd"}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	select {
	case <-c.stopped():
	default:
		t.Error("stop channel open after Close")
	}
}
