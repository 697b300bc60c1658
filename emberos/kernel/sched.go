package kernel

// Run dispatches tasks forever. It never returns in normal operation;
// platforms that own the main loop (a frame callback, tests) drive Step
// directly instead.
func (k *Kernel) Run() {
	for {
		k.Step()
	}
}

// Step examines each task once, starting at the dispatch cursor, and invokes
// the first eligible body. A task is eligible when it is Ready and at least
// its sleep time has passed since its last activation, in wrap-around tick
// arithmetic. Step reports whether a body ran.
//
// Immediately before the body is invoked the sleep time is reset to zero:
// a task that wants a delay must reassert it on every run.
func (k *Kernel) Step() bool {
	if k.root == nil {
		panic("kernel: empty task list")
	}
	pt := k.cursor
	for n := listLen(k.root); n > 0; n-- {
		if pt == nil {
			pt = k.root
		}
		t := pt.task
		now := k.clock.NowTicks()
		if t.state == StateReady && now-t.lastActivation >= t.sleepTicks {
			t.lastActivation = now
			t.sleepTicks = 0
			t.body(t)
			if k.mode == ModePriority {
				k.cursor = k.root
			} else {
				k.cursor = pt.next
			}
			return true
		}
		pt = pt.next
	}
	k.cursor = pt
	return false
}

// idleBody runs at the lowest priority and decrements the load counter
// toward zero. Left alone for a full measurement period it reaches 0; fully
// starved it leaves the counter at 100.
func (k *Kernel) idleBody(t *Task) {
	if k.loadCounter > 0 {
		k.loadCounter--
	}
	t.Sleep(idleTaskPeriod, 0)
}

// loadMeasureBody runs at the highest priority, publishes the counter and
// rearms it.
func (k *Kernel) loadMeasureBody(t *Task) {
	k.loadPercent = k.loadCounter // stays constant for the whole period
	k.loadCounter = 100
	t.Sleep(loadMeasureTaskPeriod, 0)
}

// CPULoadPercent returns the most recent CPU-load estimate in [0,100]. The
// estimate is coarse and biased high: it is a monitor, not a metric. Under
// round-robin dispatch the value is meaningless.
func (k *Kernel) CPULoadPercent() uint8 { return k.loadPercent }
