// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package mover detects completion of soft core writes into the shared
// buffer, by interrupt or by polling a sentinel word, and chains each
// completed block to the regress DMA.
package mover

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/platinasystems/datamover/internal/device"
	"github.com/platinasystems/datamover/internal/perf"
	"github.com/platinasystems/log"
)

// Sender transmits a word to the soft core.
type Sender interface {
	Send(word uint32) error
}

type Config struct {
	// Name prefixes log lines, e.g. "datamover".
	Name string
	// Period is the calibrated write period acknowledged to the soft core.
	Period uint32
	// CPU pins the poll worker; negative leaves it unpinned.
	CPU int
}

// AckQueue is the number of acks held while the transmit mailbox is busy.
const AckQueue = 8

type event struct {
	word  uint32
	irq   bool
	reply chan error
}

type Mover struct {
	Config

	dev     *device.Handle
	ingress perf.Counter
	tx      Sender

	events  chan event
	acks    chan uint32
	done    chan struct{}
	started atomic.Bool

	// owned by Run
	desc   Descriptor
	worker *worker

	state atomic.Int32
	stats counters

	mu   sync.Mutex
	snap Descriptor
	snw  *worker

	malformedLog *log.RateLimited
	ackLog       *log.RateLimited
}

func New(dev *device.Handle, tx Sender, cfg Config) *Mover {
	m := &Mover{
		Config:  cfg,
		dev:     dev,
		ingress: perf.New(dev, device.PerfIngress),
		tx:      tx,
		events:  make(chan event),
		acks:    make(chan uint32, AckQueue),
		done:    make(chan struct{}),
		desc:    Descriptor{Mode: ModeUnset},

		malformedLog: log.NewRateLimited(10, time.Minute),
		ackLog:       log.NewRateLimited(10, time.Minute),
	}
	m.snap = m.desc
	return m
}

// Run services commands and interrupts until the context is done. The poll
// worker, if any, is stopped before Run returns.
func (m *Mover) Run(ctx context.Context) error {
	if m.started.Swap(true) {
		return errors.New("mover already running")
	}
	defer close(m.done)
	defer m.malformedLog.Close()
	defer m.ackLog.Close()
	defer m.stopPollWorker()

	sctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go m.sendAcks(sctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-m.events:
			if e.irq {
				m.interrupt()
				e.reply <- nil
			} else {
				e.reply <- m.command(ctx, e.word)
			}
			m.publish()
		}
	}
}

// Submit processes a command word from the soft core. It returns after the
// command takes effect; a malformed command returns ErrMalformedCommand.
func (m *Mover) Submit(ctx context.Context, word uint32) error {
	return m.post(ctx, event{word: word})
}

// Interrupt services an ingress completion interrupt.
func (m *Mover) Interrupt(ctx context.Context) error {
	return m.post(ctx, event{irq: true})
}

func (m *Mover) post(ctx context.Context, e event) error {
	e.reply = make(chan error, 1)
	select {
	case m.events <- e:
	case <-m.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	// Run always replies to an event it received.
	return <-e.reply
}

func (m *Mover) command(ctx context.Context, word uint32) error {
	c := Decode(word)
	if err := c.Validate(m.dev.BufferSize()); err != nil {
		m.stats.malformed.Add(1)
		m.malformedLog.Print("daemon", "warn", m.Name, ": ", err)
		return err
	}
	m.stats.commands.Add(1)
	m.desc.Size = c.Size
	log.Print("daemon", "info", m.Name, " CMD: ", c)
	m.dev.WriteSentinel(c.Size, 0)
	m.reap()
	if c.Mode != m.desc.Mode {
		m.desc.Mode = c.Mode
		if c.Mode == ModePoll {
			m.requestPollWorker(ctx)
		} else {
			m.stopPollWorker()
		}
	}
	if c.Mode == ModeInterrupt {
		m.ack()
	}
	if m.worker != nil {
		m.worker.post(notice{size: c.Size, mode: c.Mode})
	}
	return nil
}

func (m *Mover) publish() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = m.desc
	m.snw = m.worker
}

// Descriptor returns a snapshot of the current transfer.
func (m *Mover) Descriptor() Descriptor {
	m.mu.Lock()
	d, w := m.snap, m.snw
	m.mu.Unlock()
	d.Pending = w != nil && len(w.inbox) > 0
	return d
}

func (m *Mover) WorkerState() WorkerState {
	return WorkerState(m.state.Load())
}

func (m *Mover) Stats() Stats { return m.stats.snapshot() }
