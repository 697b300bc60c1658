package kernel

import (
	"fmt"
	"io"
)

// DumpTasks writes one line per task (identity, state, priority) to w in
// list order, highest priority first. The sink is platform-provided and may
// be a console, a UART or a log buffer; this is for human debugging only.
func (k *Kernel) DumpTasks(w io.Writer) {
	for pt := k.root; pt != nil; pt = pt.next {
		fmt.Fprintf(w, "task %p state=%s prio=%d\n", pt.task, pt.task.state, pt.task.prio)
	}
}
