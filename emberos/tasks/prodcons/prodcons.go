// Package prodcons is a producer/consumer demo over a one-slot FIFO: the
// producer emits sequence numbers as fast as the mailbox lets it, the
// consumer drains one value per period and reports it.
package prodcons

import (
	"encoding/binary"
	"fmt"
	"io"

	"ember/emberos/kernel"
)

const slotSize = 4

type producerState struct {
	q    *kernel.Fifo
	next uint32
	slot [slotSize]byte
}

type consumerState struct {
	q     *kernel.Fifo
	w     io.Writer
	delay kernel.Tick
	slot  [slotSize]byte
}

// Register creates the FIFO and both tasks. The consumer reports one value
// every delay ticks to w; the producer runs one priority above it and blocks
// on the full mailbox in between.
func Register(k *kernel.Kernel, w io.Writer, prio uint8, delay kernel.Tick) (*kernel.Fifo, error) {
	q, err := kernel.NewFifo(slotSize, 1)
	if err != nil {
		return nil, err
	}
	if _, err := k.CreateTask(prio+1, &producerState{q: q}, producerBody); err != nil {
		return nil, err
	}
	if _, err := k.CreateTask(prio, &consumerState{q: q, w: w, delay: delay}, consumerBody); err != nil {
		return nil, err
	}
	return q, nil
}

func producerBody(t *kernel.Task) {
	s := t.Data.(*producerState)
	switch t.ResumePoint() {
	case 0:
		fallthrough
	case 1:
		binary.LittleEndian.PutUint32(s.slot[:], s.next)
		if s.q.BlockingWrite(t, 1, s.slot[:]) {
			return
		}
		s.next++
		t.Yield(1)
	}
}

func consumerBody(t *kernel.Task) {
	s := t.Data.(*consumerState)
	switch t.ResumePoint() {
	case 0:
		fallthrough
	case 1:
		if s.q.BlockingRead(t, 1, s.slot[:]) {
			return
		}
		fmt.Fprintf(s.w, "consumed %d\n", binary.LittleEndian.Uint32(s.slot[:]))
		t.Sleep(s.delay, 1)
	}
}
