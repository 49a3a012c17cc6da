// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package moverd

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/platinasystems/datamover/internal/mover"
)

// SubmitTimeout bounds an RPC Submit waiting on the coordinator.
var SubmitTimeout = 5 * time.Second

// Info is the daemon's RPC receiver.
type Info struct {
	name   string
	period uint32
	m      *mover.Mover
}

type Status struct {
	Name       string
	Period     uint32
	Descriptor mover.Descriptor
	Worker     mover.WorkerState
	Stats      mover.Stats
}

type Field struct {
	Key, Value string
}

func (i *Info) Status(_ struct{}, st *Status) error {
	if i.m == nil {
		return errors.New("not running")
	}
	*st = Status{
		Name:       i.name,
		Period:     i.period,
		Descriptor: i.m.Descriptor(),
		Worker:     i.m.WorkerState(),
		Stats:      i.m.Stats(),
	}
	return nil
}

// Submit injects a command word as though received from the soft core.
func (i *Info) Submit(word uint32, _ *struct{}) error {
	if i.m == nil {
		return errors.New("not running")
	}
	ctx, cancel := context.WithTimeout(context.Background(), SubmitTimeout)
	defer cancel()
	return i.m.Submit(ctx, word)
}

// Fields lists the status in display and publication order.
func (st *Status) Fields() []Field {
	u := func(v uint64) string { return strconv.FormatUint(v, 10) }
	d, s := st.Descriptor, st.Stats
	return []Field{
		{"period", strconv.FormatUint(uint64(st.Period), 10)},
		{"mode", d.Mode.String()},
		{"size", strconv.FormatUint(uint64(d.Size), 10)},
		{"pending", strconv.FormatBool(d.Pending)},
		{"worker", st.Worker.String()},
		{"commands", u(s.Commands)},
		{"malformed", u(s.Malformed)},
		{"acks", u(s.Acks)},
		{"ack.errors", u(s.AckErrors)},
		{"poll.triggers", u(s.PollTriggers)},
		{"irq.triggers", u(s.IrqTriggers)},
		{"irq.ignored", u(s.IrqIgnored)},
		{"worker.spawns", u(s.Spawns)},
		{"worker.failures", u(s.SpawnFailures)},
	}
}
