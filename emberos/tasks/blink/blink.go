// Package blink toggles an LED on a fixed period.
package blink

import (
	"ember/emberos/kernel"
	"ember/hal"
)

type state struct {
	led    hal.LED
	period kernel.Tick
	on     bool
}

// Register creates the blink task.
func Register(k *kernel.Kernel, led hal.LED, prio uint8, period kernel.Tick) (*kernel.Task, error) {
	return k.CreateTask(prio, &state{led: led, period: period}, body)
}

func body(t *kernel.Task) {
	s := t.Data.(*state)
	if s.on {
		s.led.Low()
	} else {
		s.led.High()
	}
	s.on = !s.on
	t.Sleep(s.period, 0)
}
