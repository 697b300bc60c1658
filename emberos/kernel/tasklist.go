package kernel

// node is one link of the singly linked task list. External references (the
// dispatch cursor, iteration) hold nodes; the sort below therefore swaps
// payloads, never nodes.
type node struct {
	task *Task
	next *node
}

// listInsert prepends t and returns the new root.
func listInsert(root *node, t *Task) *node {
	return &node{task: t, next: root}
}

// listRemove unlinks the node referencing t and returns the new root. A task
// that is not in the list is a no-op. The unlinked node keeps its next
// pointer, so a cursor parked on it can still advance.
func listRemove(root *node, t *Task) *node {
	if root == nil {
		return nil
	}
	if root.task == t {
		return root.next
	}
	for pt := root; pt.next != nil; pt = pt.next {
		if pt.next.task == t {
			pt.next = pt.next.next
			break
		}
	}
	return root
}

// listFind returns the node referencing t, or nil.
func listFind(root *node, t *Task) *node {
	for pt := root; pt != nil; pt = pt.next {
		if pt.task == t {
			return pt
		}
	}
	return nil
}

func listLen(root *node) int {
	n := 0
	for pt := root; pt != nil; pt = pt.next {
		n++
	}
	return n
}

// listSortPrio sorts the list by priority, highest first. Bubble sort over
// the payloads: equal-priority tasks keep their relative order and every
// node keeps its identity.
func listSortPrio(root *node) {
	if root == nil {
		return
	}
	for swapped := true; swapped; {
		swapped = false
		for pt := root; pt.next != nil; pt = pt.next {
			if pt.task.prio < pt.next.task.prio {
				pt.task, pt.next.task = pt.next.task, pt.task
				swapped = true
			}
		}
	}
}
