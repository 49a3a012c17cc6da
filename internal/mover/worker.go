// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import (
	"context"
	"fmt"
	"runtime"

	"github.com/platinasystems/log"
)

//go:generate go tool stringer -type=WorkerState -linecomment

type WorkerState int32

const (
	NotRunning WorkerState = iota // not-running
	Starting                      // starting
	Running                       // running
	Stopping                      // stopping
)

// notice tells the poll worker that a command arrived.
type notice struct {
	size uint32
	mode Mode
}

type worker struct {
	inbox chan notice
	done  chan struct{}
}

// post queues n, replacing an unserviced notice. Only the coordinator posts.
func (w *worker) post(n notice) {
	for {
		select {
		case w.inbox <- n:
			return
		default:
		}
		select {
		case <-w.inbox:
		default:
		}
	}
}

func (w *worker) exited() bool {
	select {
	case <-w.done:
		return true
	default:
		return false
	}
}

// requestPollWorker starts the poll worker unless one is starting or running.
func (m *Mover) requestPollWorker(ctx context.Context) {
	if m.worker != nil {
		return
	}
	w := &worker{
		inbox: make(chan notice, 1),
		done:  make(chan struct{}),
	}
	m.worker = w
	m.state.Store(int32(Starting))
	go m.runWorker(ctx, w, m.desc.Size)
}

// stopPollWorker returns after the poll worker, if any, has exited.
func (m *Mover) stopPollWorker() {
	w := m.worker
	if w == nil {
		return
	}
	m.state.Store(int32(Stopping))
	w.post(notice{size: m.desc.Size, mode: ModeInterrupt})
	<-w.done
	m.worker = nil
	m.state.Store(int32(NotRunning))
}

// reap forgets a worker that exited on its own.
func (m *Mover) reap() {
	if m.worker != nil && m.worker.exited() {
		m.worker = nil
		m.state.Store(int32(NotRunning))
	}
}

func (m *Mover) runWorker(ctx context.Context, w *worker, size uint32) {
	defer close(w.done)
	// Never unlocked so that the pinned thread exits with the goroutine.
	runtime.LockOSThread()
	if m.CPU >= 0 {
		if err := pin(m.CPU); err != nil {
			m.stats.spawnFailures.Add(1)
			m.state.CompareAndSwap(int32(Starting), int32(NotRunning))
			log.Print("daemon", "err", m.Name, ": ",
				fmt.Errorf("%w: cpu %d: %w", ErrWorkerSpawn, m.CPU, err))
			return
		}
	}
	m.stats.spawns.Add(1)
	m.state.CompareAndSwap(int32(Starting), int32(Running))
	m.poll(ctx, w, size)
}
