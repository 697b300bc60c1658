// Package app wires the kernel and the demo tasks to a HAL. The same wiring
// serves the desktop simulator (per-frame stepping) and hardware (endless
// scheduler loop).
package app

import (
	"io"

	"ember/emberos/console"
	"ember/emberos/kernel"
	"ember/emberos/tasks/blink"
	"ember/emberos/tasks/monitor"
	"ember/emberos/tasks/prodcons"
	"ember/hal"
)

// Config selects the demo tasks.
type Config struct {
	Blink    bool
	ProdCons bool
	Monitor  bool

	// StepsPerFrame bounds dispatch attempts per Step call when a host
	// frame loop owns the scheduler.
	StepsPerFrame int
}

// DefaultConfig enables everything.
func DefaultConfig() Config {
	return Config{Blink: true, ProdCons: true, Monitor: true}
}

// System is a wired kernel plus its demo tasks.
type System struct {
	K     *kernel.Kernel
	steps int
}

// New builds the kernel on the HAL clock and registers the configured demo
// tasks. Monitor output goes to the framebuffer console when a display is
// present and to the HAL logger otherwise; the producer/consumer demo always
// reports through the HAL logger.
func New(h hal.HAL, cfg Config) (*System, error) {
	k := kernel.New(h.Time(), kernel.ModePriority)

	logw := newLogWriter(h.Logger())
	var sink io.Writer = logw
	var flush func() error
	if d := h.Display(); d != nil {
		if fb := d.Framebuffer(); fb != nil {
			con := console.New(fb)
			sink = con
			flush = con.Flush
		}
	}

	if cfg.Blink {
		if _, err := blink.Register(k, h.LED(), 10, kernel.MillisToTicks(500)); err != nil {
			return nil, err
		}
	}
	if cfg.ProdCons {
		if _, err := prodcons.Register(k, logw, 20, kernel.MillisToTicks(250)); err != nil {
			return nil, err
		}
	}
	if cfg.Monitor {
		if _, err := monitor.Register(k, sink, 5, kernel.MillisToTicks(2000), flush); err != nil {
			return nil, err
		}
	}

	steps := cfg.StepsPerFrame
	if steps <= 0 {
		steps = 64
	}
	return &System{K: k, steps: steps}, nil
}

// Step runs up to StepsPerFrame dispatch attempts; for hosts that own the
// main loop. It stops early once nothing is ready.
func (s *System) Step() error {
	for i := 0; i < s.steps; i++ {
		if !s.K.Step() {
			break
		}
	}
	return nil
}

// Run hands the calling context to the scheduler forever; the native
// entrypoint.
func (s *System) Run() {
	s.K.Run()
}
