// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import (
	"context"

	"github.com/platinasystems/datamover/internal/device"
)

// Soft core counter slots bracketing the two transfers.
const (
	ingressSlot = 1
	regressSlot = 2
)

// trigger hands the block that just landed in the shared buffer to the
// regress DMA.
func (m *Mover) trigger() {
	m.ingress.End(ingressSlot)
	m.dev.WriteRegister(device.DMARegress, device.DMADescControl,
		device.DMAGo)
	m.ingress.Begin(regressSlot)
}

// interrupt services one ingress completion interrupt. The caller re-enables
// the line.
func (m *Mover) interrupt() {
	m.dev.ClearInterrupt()
	if m.desc.Mode != ModeInterrupt {
		m.stats.irqIgnored.Add(1)
		return
	}
	m.trigger()
	m.stats.irqTriggers.Add(1)
}

// ack queues the calibrated write period for the soft core. A full queue
// drops the ack.
func (m *Mover) ack() {
	select {
	case m.acks <- m.Period:
	default:
		m.stats.ackErrors.Add(1)
		m.ackLog.Print("daemon", "err", m.Name, ": ack: queue full")
	}
}

// sendAcks transmits queued acks until the context is done. A Send that
// never returns holds only this goroutine.
func (m *Mover) sendAcks(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case v := <-m.acks:
			if err := m.tx.Send(v); err != nil {
				m.stats.ackErrors.Add(1)
				m.ackLog.Print("daemon", "err", m.Name, ": ack: ", err)
				continue
			}
			m.stats.acks.Add(1)
		}
	}
}
