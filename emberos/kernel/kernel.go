package kernel

import "errors"

// Mode selects the dispatch policy.
type Mode uint8

const (
	// ModePriority restarts the scan at the head of the priority-sorted
	// list after every task run: a higher-priority ready task always runs
	// before a lower one.
	ModePriority Mode = iota

	// ModeRoundRobin keeps scanning past the task that just ran. The
	// CPU-load estimate is meaningless in this mode but does no harm.
	ModeRoundRobin
)

const (
	idleTaskPrio        = 0
	loadMeasureTaskPrio = 255

	// The idle period and the 100x load-measure period together calibrate
	// the CPU-load scale: an otherwise idle system lets the idle task
	// decrement the load counter from 100 to 0 between measurements.
	idleTaskPeriod        Tick = 10
	loadMeasureTaskPeriod Tick = 100 * idleTaskPeriod
)

// MaxSleep is the longest usable sleep duration. The wrap-around tick
// comparison reads intervals of 0x8000 ticks and above as already overdue.
const MaxSleep Tick = 0x7fff

var (
	// ErrRange reports a reserved priority, FIFO geometry outside [1,255],
	// or an attempt to delete a kernel-internal task.
	ErrRange = errors.New("kernel: value out of range")

	// ErrNotFound reports an operation on a task that is not in the task
	// list.
	ErrNotFound = errors.New("kernel: task not found")

	// ErrUninitialized reports an operation on a semaphore or FIFO that was
	// never created.
	ErrUninitialized = errors.New("kernel: not initialized")
)

// Kernel holds the task list, the dispatch cursor and the built-in idle and
// load-measure tasks. All kernel state is scoped to the instance; it must
// only ever be touched from the single context that runs the scheduler.
type Kernel struct {
	clock Clock
	mode  Mode

	root   *node
	cursor *node

	idle        *Task
	loadMeasure *Task

	loadPercent uint8
	loadCounter uint8
}

// New creates a kernel and installs the idle and load-measure tasks. The
// task list is never empty afterwards. A nil clock is an invariant
// violation and panics.
func New(clock Clock, mode Mode) *Kernel {
	if clock == nil {
		panic("kernel: nil clock")
	}
	k := &Kernel{clock: clock, mode: mode, loadPercent: 100, loadCounter: 100}
	k.idle = k.addTask(idleTaskPrio, nil, k.idleBody)
	k.loadMeasure = k.addTask(loadMeasureTaskPrio, nil, k.loadMeasureBody)
	return k
}

func (k *Kernel) addTask(prio uint8, data any, body Func) *Task {
	t := &Task{k: k, prio: prio, Data: data, body: body, state: StateReady}
	k.root = listInsert(k.root, t)
	listSortPrio(k.root)
	return t
}

// CreateTask registers a new task and returns its handle. Priorities 1..254
// are for application tasks; 0 and 255 are reserved and rejected with
// ErrRange, as is a nil body. The new task starts Ready.
func (k *Kernel) CreateTask(prio uint8, data any, body Func) (*Task, error) {
	if prio == idleTaskPrio || prio == loadMeasureTaskPrio {
		return nil, ErrRange
	}
	if body == nil {
		return nil, ErrRange
	}
	return k.addTask(prio, data, body), nil
}

// DeleteTask removes a task from the task list. The kernel-internal tasks
// cannot be deleted; trying returns ErrRange. Deleting a task that already
// left the list is a no-op. The caller must make sure the task is not
// blocked on a semaphore.
func (k *Kernel) DeleteTask(t *Task) error {
	if t == nil || t == k.idle || t == k.loadMeasure {
		return ErrRange
	}
	k.removeTask(t)
	return nil
}

func (k *Kernel) removeTask(t *Task) {
	k.root = listRemove(k.root, t)
}

// SuspendTask takes a task out of dispatch until ResumeTask. Suspending an
// already suspended task is a no-op.
func (k *Kernel) SuspendTask(t *Task) error {
	pt := listFind(k.root, t)
	if pt == nil {
		return ErrNotFound
	}
	pt.task.state = StateSuspended
	return nil
}

// ResumeTask puts a suspended task back into dispatch. Resuming a task that
// is blocked on a semaphore is an application error: the task re-executes
// its wait while the semaphore still queues it.
func (k *Kernel) ResumeTask(t *Task) error {
	pt := listFind(k.root, t)
	if pt == nil {
		return ErrNotFound
	}
	pt.task.state = StateReady
	return nil
}

// SetTaskPrio changes a task's priority and re-sorts the task list. The
// reserved priorities 0 and 255 are rejected with ErrRange.
func (k *Kernel) SetTaskPrio(t *Task, prio uint8) error {
	if prio == idleTaskPrio || prio == loadMeasureTaskPrio {
		return ErrRange
	}
	pt := listFind(k.root, t)
	if pt == nil {
		return ErrNotFound
	}
	pt.task.prio = prio
	listSortPrio(k.root)
	return nil
}

// Tasks returns the tasks in list order, highest priority first. The slice
// is a snapshot; diagnostics and tests only.
func (k *Kernel) Tasks() []*Task {
	ts := make([]*Task, 0, listLen(k.root))
	for pt := k.root; pt != nil; pt = pt.next {
		ts = append(ts, pt.task)
	}
	return ts
}

// NumTasks returns the number of tasks in the list, built-ins included.
func (k *Kernel) NumTasks() int { return listLen(k.root) }
