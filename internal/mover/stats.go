// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import "sync/atomic"

type Stats struct {
	Commands      uint64
	Malformed     uint64
	Acks          uint64
	AckErrors     uint64
	PollTriggers  uint64
	IrqTriggers   uint64
	IrqIgnored    uint64
	Spawns        uint64
	SpawnFailures uint64
}

type counters struct {
	commands      atomic.Uint64
	malformed     atomic.Uint64
	acks          atomic.Uint64
	ackErrors     atomic.Uint64
	pollTriggers  atomic.Uint64
	irqTriggers   atomic.Uint64
	irqIgnored    atomic.Uint64
	spawns        atomic.Uint64
	spawnFailures atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Commands:      c.commands.Load(),
		Malformed:     c.malformed.Load(),
		Acks:          c.acks.Load(),
		AckErrors:     c.ackErrors.Load(),
		PollTriggers:  c.pollTriggers.Load(),
		IrqTriggers:   c.irqTriggers.Load(),
		IrqIgnored:    c.irqIgnored.Load(),
		Spawns:        c.spawns.Load(),
		SpawnFailures: c.spawnFailures.Load(),
	}
}
