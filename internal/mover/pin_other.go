// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

//go:build !linux

package mover

import "errors"

func pin(cpu int) error {
	return errors.New("cpu affinity unsupported")
}
