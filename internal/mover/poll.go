// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import (
	"context"

	"github.com/platinasystems/datamover/internal/device"
)

// poll spins on the sentinel word at the tail of a size byte transfer.
// Notices take priority over the sentinel; a notice for any mode other than
// poll ends the loop.
func (m *Mover) poll(ctx context.Context, w *worker, size uint32) {
	for {
		select {
		case n := <-w.inbox:
			if n.mode != ModePoll {
				return
			}
			size = n.size
			m.ack()
			continue
		case <-ctx.Done():
			return
		default:
		}
		if m.dev.ReadSentinel(size) != device.Magic {
			continue
		}
		m.trigger()
		m.dev.WriteSentinel(size, 0)
		m.stats.pollTriggers.Add(1)
	}
}
