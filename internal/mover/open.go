// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import (
	"errors"
	"fmt"

	"github.com/platinasystems/datamover/internal/device"
	"github.com/platinasystems/datamover/internal/mailbox"
	"github.com/platinasystems/datamover/internal/perf"
	"github.com/platinasystems/datamover/internal/uio"
)

// Acquisition steps, replaced by tests.
var (
	openDevice  = device.Open
	openLine    = uio.Open
	openMailbox = mailbox.Open
	calibrate   = perf.Calibrate
)

// Platform names the device nodes of one instance.
type Platform struct {
	DevMem string
	Layout device.Layout
	UIO    string
	Rx, Tx string
}

// Resources are held for the life of the daemon.
type Resources struct {
	Dev    *device.Handle
	Line   *uio.Line
	Rx, Tx *mailbox.Channel
	// Period is the calibrated write period.
	Period uint32
}

// Open maps the regions, opens the interrupt line, calibrates, then opens
// the mailboxes. On failure, everything acquired is released and the error
// wraps ErrResourceUnavailable.
func Open(p Platform) (r *Resources, err error) {
	r = new(Resources)
	defer func() {
		if err != nil {
			r.Close()
			r = nil
		}
	}()
	if r.Dev, err = openDevice(p.DevMem, p.Layout); err != nil {
		return r, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	if r.Line, err = openLine(p.UIO); err != nil {
		return r, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	r.Period = calibrate(perf.New(r.Dev, device.PerfHPS))
	if r.Rx, err = openMailbox(p.Rx); err != nil {
		return r, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	if r.Tx, err = openMailbox(p.Tx); err != nil {
		return r, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	return r, nil
}

// Close releases in reverse order of acquisition.
func (r *Resources) Close() error {
	var errs []error
	if r.Tx != nil {
		errs = append(errs, r.Tx.Close())
	}
	if r.Rx != nil {
		errs = append(errs, r.Rx.Close())
	}
	if r.Line != nil {
		errs = append(errs, r.Line.Close())
	}
	if r.Dev != nil {
		errs = append(errs, r.Dev.Close())
	}
	return errors.Join(errs...)
}
