// Package kernel implements a cooperative, stackless tasking kernel for
// single-core targets: a priority-sorted task list, counting semaphores with
// a queue of blocked tasks, and a bounded slot FIFO for task-to-task
// transport. There is no preemption and there are no per-task stacks; every
// task shares the one execution stack and is realized as a callback that is
// re-entered at a recorded resume point.
//
// # Task bodies
//
// A task body is a function of one argument, the *Task. On every invocation
// the body dispatches on the task's resume point and continues from there:
//
//	func body(t *kernel.Task) {
//		s := t.Data.(*state)
//		switch t.ResumePoint() {
//		case 0:
//			s.n = 0
//			fallthrough
//		case 1:
//			if s.n < 5 {
//				s.n++
//				t.Sleep(100, 1) // resume in case 1
//				return
//			}
//			t.End()
//		}
//	}
//
// Yield and Sleep record the resume point of the *next* case arm; the body
// must return immediately afterwards. Sema.Wait, Fifo.BlockingWrite and
// Fifo.BlockingRead record their *own* arm: when they report true the body
// must return, and the next invocation re-executes the same call, which then
// completes without waiting. All of these may be called only directly from
// the body, never from a function the body calls; the resume point names a
// position in the body's own control flow.
//
// Locals do not survive a suspension. State a task needs across suspensions
// belongs in the struct hung on Task.Data.
//
// # Scheduling
//
// The scheduler zeroes a task's sleep time immediately before invoking its
// body: a body that returns without calling a suspension primitive is
// re-dispatched on the next pass with no delay. Sleeps are measured from the
// activation that requested them, in 16-bit millisecond ticks. The tick
// counter wraps every 65.536 s and comparisons use unsigned subtraction, so
// sleeps of 0x8000 ticks or more are not usable; see MaxSleep.
package kernel
