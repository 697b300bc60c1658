// Package monitor periodically reports the CPU-load estimate and the task
// list through a text sink.
package monitor

import (
	"fmt"
	"io"

	"ember/emberos/kernel"
)

type state struct {
	k      *kernel.Kernel
	w      io.Writer
	period kernel.Tick
	flush  func() error
}

// Register creates the monitor task. flush may be nil; when set it is called
// after each report (a framebuffer console wants to present).
func Register(k *kernel.Kernel, w io.Writer, prio uint8, period kernel.Tick, flush func() error) (*kernel.Task, error) {
	return k.CreateTask(prio, &state{k: k, w: w, period: period, flush: flush}, body)
}

func body(t *kernel.Task) {
	s := t.Data.(*state)
	fmt.Fprintf(s.w, "cpu load %d%%, %d tasks\n", s.k.CPULoadPercent(), s.k.NumTasks())
	s.k.DumpTasks(s.w)
	if s.flush != nil {
		s.flush()
	}
	t.Sleep(s.period, 0)
}
