// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import (
	"context"
	"errors"
)

type Receiver interface {
	Receive() (uint32, error)
}

// Line is a maskable interrupt.
type Line interface {
	Enable() error
	Wait() (uint32, error)
}

// ServeMailbox submits each received word until the receiver fails or the
// context is done. Malformed commands are dropped.
func (m *Mover) ServeMailbox(ctx context.Context, rx Receiver) error {
	for {
		word, err := rx.Receive()
		if err == nil {
			err = m.Submit(ctx, word)
			if errors.Is(err, ErrMalformedCommand) {
				continue
			}
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}

// ServeInterrupts services and re-enables the line after each interrupt until
// it fails or the context is done.
func (m *Mover) ServeInterrupts(ctx context.Context, l Line) error {
	for {
		err := l.Enable()
		if err == nil {
			_, err = l.Wait()
		}
		if err == nil {
			err = m.Interrupt(ctx)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
	}
}
