// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package moverd provides the chained DMA transfer daemon. The same command
// runs the datamover and pathfinder designs under different names.
package moverd

import (
	"context"
	"errors"
	"fmt"
	"net/rpc"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jpillora/backoff"
	"github.com/platinasystems/atsock"
	"github.com/platinasystems/datamover/cmd"
	"github.com/platinasystems/datamover/internal/device"
	"github.com/platinasystems/datamover/internal/mailbox"
	"github.com/platinasystems/datamover/internal/mover"
	"github.com/platinasystems/datamover/internal/uio"
	"github.com/platinasystems/datamover/lang"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/redis"
	"github.com/platinasystems/redis/publisher"
	"golang.org/x/sync/errgroup"
)

// Machines may change these before Main.
var (
	Layout = device.DefaultLayout
	CPU    = 1

	PublishInterval = 5 * time.Second
	RedisAttempts   = 3
)

type Command struct {
	Info
	// Name is the daemon and its socket, e.g. "datamoverd".
	Name string
	rpc  *atsock.RpcServer

	stop      chan struct{}
	stopOnce  sync.Once
	closeOnce sync.Once
}

func (c *Command) String() string { return c.Name }

func (c *Command) Usage() string {
	return c.Name + " [-cpu N] [-mem FILE] [-uio FILE] [-rx NAME] [-tx NAME]"
}

func (c *Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "chain soft core transfers to the regress DMA",
	}
}

func (c *Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Detect each block the soft core writes into on-chip memory, by
	interrupt or by polling the block's last word, and start the
	regress DMA. Commands arrive on the receive mailbox; each
	acknowledgment carries the calibrated data write period.

OPTIONS
	-cpu N
		pin the poll worker to CPU N; -1 leaves it unpinned
		default: 1
	-mem FILE
		default: /dev/mem
	-uio FILE
		completion interrupt, default: /dev/uio0
	-rx NAME
		receive mailbox, default: mailbox_nios2ar:0
	-tx NAME
		transmit mailbox, default: mailbox_arm2nio:0`,
	}
}

func (*Command) Kind() cmd.Kind { return cmd.Daemon }

func (c *Command) Main(args ...string) error {
	parm, args := parms.New(args, "-cpu", "-mem", "-uio", "-rx", "-tx")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	p := mover.Platform{
		DevMem: device.DevMem,
		Layout: Layout,
		UIO:    uio.Default,
		Rx:     mailbox.Rx,
		Tx:     mailbox.Tx,
	}
	for k, v := range map[string]*string{
		"-mem": &p.DevMem,
		"-uio": &p.UIO,
		"-rx":  &p.Rx,
		"-tx":  &p.Tx,
	} {
		if s := parm.ByName[k]; len(s) > 0 {
			*v = s
		}
	}
	cpu := CPU
	if s := parm.ByName["-cpu"]; len(s) > 0 {
		var err error
		if cpu, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("-cpu: %w", err)
		}
	}

	stop := c.stopped()
	name := strings.TrimSuffix(c.Name, "d")

	if claims, err := device.FileClaims(device.ProcIomem); err == nil {
		for _, s := range p.Layout.Conflicts(claims) {
			log.Print("daemon", "warn", c.Name, ": ", s)
		}
	}

	r, err := mover.Open(p)
	if err != nil {
		return err
	}
	defer r.Close()
	log.Print("daemon", "info", c.Name, ": data write period ", r.Period)

	m := mover.New(r.Dev, r.Tx, mover.Config{
		Name:   name,
		Period: r.Period,
		CPU:    cpu,
	})
	c.Info = Info{name: name, period: r.Period, m: m}

	if c.rpc, err = atsock.NewRpcServer(c.Name); err != nil {
		return err
	}
	defer c.rpc.Close()
	rpc.Register(&c.Info)

	var pub *publisher.Publisher
	if err = c.waitRedis(); err == nil {
		pub, err = publisher.New()
	}
	if err != nil {
		log.Print("daemon", "warn", c.Name, ": unpublished: ", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.Run(ctx) })
	g.Go(func() error { return m.ServeInterrupts(ctx, r.Line) })
	g.Go(func() error { return m.ServeMailbox(ctx, r.Rx) })
	g.Go(func() error {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
		// unblock the device reads and a stalled ack
		r.Line.Close()
		r.Rx.Close()
		r.Tx.Close()
		return nil
	})
	if pub != nil {
		g.Go(func() error { return c.publish(ctx, pub) })
	}
	if err = g.Wait(); errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

// Close may be called more than once, and before Main.
func (c *Command) Close() error {
	c.closeOnce.Do(func() { close(c.stopped()) })
	return nil
}

func (c *Command) stopped() chan struct{} {
	c.stopOnce.Do(func() { c.stop = make(chan struct{}) })
	return c.stop
}

func (c *Command) waitRedis() error {
	b := &backoff.Backoff{
		Min:    1 * time.Second,
		Max:    10 * time.Second,
		Factor: 2,
	}
	for {
		err := redis.IsReady()
		if err == nil || int(b.Attempt()) >= RedisAttempts-1 {
			return err
		}
		select {
		case <-c.stopped():
			return err
		case <-time.After(b.Duration()):
		}
	}
}

func (c *Command) publish(ctx context.Context, pub *publisher.Publisher) error {
	defer pub.Close()
	last := make(map[string]string)
	t := time.NewTicker(PublishInterval)
	defer t.Stop()
	for {
		var st Status
		c.Info.Status(struct{}{}, &st)
		for _, f := range st.Fields() {
			if last[f.Key] != f.Value {
				pub.Print(st.Name, ".", f.Key, ": ", f.Value)
				last[f.Key] = f.Value
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}
