// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package dmstat

import (
	"os"

	"github.com/platinasystems/datamover/cmd/moverd"
	"github.com/platinasystems/datamover/internal/mover"
)

var status = moverd.Status{
	Name:   "pathfinder",
	Period: 1234,
	Descriptor: mover.Descriptor{
		Size: 4096,
		Mode: mover.ModePoll,
	},
	Worker: mover.Running,
	Stats: mover.Stats{
		Commands:     2,
		Acks:         2,
		PollTriggers: 7,
		Spawns:       1,
	},
}

func Example_show() {
	show(os.Stdout, &status, false)
	// Output:
	// pathfinder.period: 1234
	// pathfinder.mode: poll
	// pathfinder.size: 4096
	// pathfinder.pending: false
	// pathfinder.worker: running
	// pathfinder.commands: 2
	// pathfinder.malformed: 0
	// pathfinder.acks: 2
	// pathfinder.ack.errors: 0
	// pathfinder.poll.triggers: 7
	// pathfinder.irq.triggers: 0
	// pathfinder.irq.ignored: 0
	// pathfinder.worker.spawns: 1
	// pathfinder.worker.failures: 0
}

func Example_aligned() {
	st := status
	st.Name = "dm"
	show(os.Stdout, &st, true)
	// Output:
	// dm.period          1234
	// dm.mode            poll
	// dm.size            4096
	// dm.pending         false
	// dm.worker          running
	// dm.commands        2
	// dm.malformed       0
	// dm.acks            2
	// dm.ack.errors      0
	// dm.poll.triggers   7
	// dm.irq.triggers    0
	// dm.irq.ignored     0
	// dm.worker.spawns   1
	// dm.worker.failures 0
}
