// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mover

import "errors"

var (
	// A region, the interrupt line, or a mailbox couldn't be acquired.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// The command was dropped; the descriptor is unchanged.
	ErrMalformedCommand = errors.New("malformed command")
	// The poll worker couldn't be started; poll mode has no completion
	// detection until the next switch into it.
	ErrWorkerSpawn = errors.New("poll worker spawn failed")
	ErrStopped     = errors.New("mover stopped")
)
