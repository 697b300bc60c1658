package kernel

import "testing"

type alternState struct {
	name byte
	log  *[]byte
	n    int
}

func alternBody(t *Task) {
	s := t.Data.(*alternState)
	switch t.ResumePoint() {
	case 0:
		fallthrough
	case 1:
		if s.n < 5 {
			s.n++
			*s.log = append(*s.log, s.name)
			t.Sleep(100, 1)
			return
		}
		t.End()
	}
}

func TestSamePriorityAlternation(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	var log []byte
	// Created second sorts first among equals; create B, then A.
	if _, err := k.CreateTask(2, &alternState{name: 'B', log: &log}, alternBody); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := k.CreateTask(2, &alternState{name: 'A', log: &log}, alternBody); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 700)

	if got := string(log); got != "ABABABABAB" {
		t.Fatalf("unexpected interleaving: %q", got)
	}
	if k.NumTasks() != 2 {
		t.Fatalf("ended tasks still listed: %d tasks", k.NumTasks())
	}
}

func TestPriorityPreference(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	var hRuns, lRuns []Tick
	if _, err := k.CreateTask(200, nil, func(t *Task) {
		hRuns = append(hRuns, c.now)
		t.Sleep(50, 0)
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := k.CreateTask(1, nil, func(t *Task) {
		lRuns = append(lRuns, c.now)
		t.Yield(0)
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 1000)

	if len(hRuns) < 18 || len(hRuns) > 21 {
		t.Fatalf("high-priority task ran %d times over 1000 ticks, expected about 20", len(hRuns))
	}
	for i := 1; i < len(hRuns); i++ {
		gap := hRuns[i] - hRuns[i-1]
		if gap < 50 || gap > 53 {
			t.Fatalf("activation gap %d at run %d, expected about 50", gap, i)
		}
	}
	if len(lRuns) < 500 {
		t.Fatalf("low-priority task starved: ran only %d times", len(lRuns))
	}
	// Whenever the high-priority task was due, it went first: the yielder
	// never ran with the high task overdue.
	hi := 0
	for _, at := range lRuns {
		for hi+1 < len(hRuns) && tickLE(hRuns[hi+1], at) {
			hi++
		}
		if at-hRuns[hi] > 50 {
			t.Fatalf("yielder ran at tick %d with high task overdue since %d", at, hRuns[hi])
		}
	}
}

func TestZeroSleepIsYield(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	var runs int
	if _, err := k.CreateTask(5, nil, func(t *Task) {
		runs++
		t.Sleep(0, 0)
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 10)
	if runs < 9 {
		t.Fatalf("zero-sleep task should run every pass, ran %d of 10", runs)
	}
}

func TestBodyWithoutSuspensionIsRescheduled(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	var runs int
	if _, err := k.CreateTask(5, nil, func(t *Task) {
		// No suspension primitive at all: the scheduler zeroed the sleep
		// time, so the task is due again on the next pass.
		runs++
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 10)
	if runs < 9 {
		t.Fatalf("expected immediate rescheduling, ran %d of 10", runs)
	}
}

func TestSleepAcrossTickWrap(t *testing.T) {
	c := &testClock{now: 0xFFCE}
	k := New(c, ModePriority)

	var runs []Tick
	if _, err := k.CreateTask(5, nil, func(t *Task) {
		runs = append(runs, c.now)
		t.Sleep(100, 0)
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 300)

	if len(runs) < 3 {
		t.Fatalf("task ran %d times, expected at least 3", len(runs))
	}
	for i := 1; i < len(runs); i++ {
		gap := runs[i] - runs[i-1] // unsigned subtraction spans the wrap
		if gap < 100 || gap > 104 {
			t.Fatalf("activation gap %d across wrap, expected about 100", gap)
		}
	}
}

func TestEndInsideBody(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	var runs int
	task, err := k.CreateTask(5, nil, func(t *Task) {
		runs++
		t.End()
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 20)

	if runs != 1 {
		t.Fatalf("ended task ran %d times", runs)
	}
	if listFind(k.root, task) != nil {
		t.Fatal("ended task still in the list")
	}
	if pct := k.CPULoadPercent(); pct > 100 {
		t.Fatalf("load estimate out of range: %d", pct)
	}
}

func TestRoundRobinIgnoresPriority(t *testing.T) {
	c := &testClock{}
	k := New(c, ModeRoundRobin)

	counts := map[byte]int{}
	var order []byte
	prios := map[byte]uint8{'a': 30, 'b': 20, 'c': 10}
	for _, name := range []byte{'a', 'b', 'c'} {
		name := name
		if _, err := k.CreateTask(prios[name], nil, func(t *Task) {
			counts[name]++
			order = append(order, name)
			t.Yield(0)
		}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	pump(k, c, 300)

	for _, name := range []byte{'a', 'b', 'c'} {
		if counts[name] < 85 {
			t.Fatalf("task %c ran %d of ~100 expected turns", name, counts[name])
		}
	}
	// Under priority dispatch the highest of the three would hog every pass;
	// round-robin interleaves them.
	for i := 1; i < len(order); i++ {
		if order[i] == order[i-1] {
			t.Fatalf("task %c ran twice in a row at %d", order[i], i)
		}
	}
}

func TestCPULoadIdleSystem(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	pump(k, c, 2100)

	if pct := k.CPULoadPercent(); pct > 1 {
		t.Fatalf("idle system load %d%%, expected 0", pct)
	}
}

func TestCPULoadBusySystem(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	if _, err := k.CreateTask(5, nil, func(t *Task) {
		t.Yield(0)
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 2100)

	if pct := k.CPULoadPercent(); pct != 100 {
		t.Fatalf("busy system load %d%%, expected 100", pct)
	}
}

func TestSleepZeroedBeforeEachInvocation(t *testing.T) {
	c := &testClock{}
	k := New(c, ModePriority)

	var observed []Tick
	if _, err := k.CreateTask(5, nil, func(t *Task) {
		observed = append(observed, t.sleepTicks)
		t.Sleep(25, 0)
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	pump(k, c, 100)

	if len(observed) < 3 {
		t.Fatalf("task ran %d times", len(observed))
	}
	for i, s := range observed {
		if s != 0 {
			t.Fatalf("run %d saw sleepTicks=%d, want 0", i, s)
		}
	}
}
