// Copyright © 2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package mailbox

import (
	"bytes"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestPipe(t *testing.T) {
	a, b := net.Pipe()
	tx, rx := New("tx", a), New("rx", b)
	defer rx.Close()

	words := []uint32{0x1000, 0x40001000, 0xdeadbeef}
	go func() {
		for _, w := range words {
			if err := tx.Send(w); err != nil {
				t.Error(err)
			}
		}
		tx.Close()
	}()
	for _, want := range words {
		got, err := rx.Receive()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%#x != %#x", got, want)
		}
	}
	if _, err := rx.Receive(); err != io.EOF {
		t.Errorf("after close: %v", err)
	}
}

type rwc struct {
	bytes.Buffer
}

func (*rwc) Close() error { return nil }

func TestWire(t *testing.T) {
	buf := new(rwc)
	c := New("buf", buf)
	if err := c.Send(0x01020304); err != nil {
		t.Fatal(err)
	}
	want := []byte{4, 3, 2, 1, 0, 0, 0, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("% x", buf.Bytes())
	}
	buf.Reset()
	buf.Write([]byte{1, 2, 3})
	if _, err := c.Receive(); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("short message: %v", err)
	}
}

func TestOpen(t *testing.T) {
	defer func(s string) { Dir = s }(Dir)
	Dir = t.TempDir()
	if _, err := Open(Rx); !os.IsNotExist(err) {
		t.Fatalf("missing channel: %v", err)
	}
	fn := filepath.Join(Dir, Tx)
	if err := os.WriteFile(fn, nil, 0600); err != nil {
		t.Fatal(err)
	}
	c, err := Open(Tx)
	if err != nil {
		t.Fatal(err)
	}
	if c.String() != Tx {
		t.Error("name", c)
	}
	if err = c.Send(7); err != nil {
		t.Fatal(err)
	}
	c.Close()
	if b, _ := os.ReadFile(fn); len(b) != MessageSize || b[0] != 7 {
		t.Errorf("% x", b)
	}
}
