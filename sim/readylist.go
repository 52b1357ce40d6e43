// Implements the ReadyList, which holds all live processes known to the
// simulation at the current tick, including ones currently executing.

package sim

import (
	"fmt"
	"strings"
)

// ReadyList is the ordered collection of live processes. Insertion order is
// the tie-break baseline: every policy reorders it with stable sorts only,
// so equal keys never swap relative position.
//
// The list is owned exclusively by the Simulator; policies get a mutable
// view for the duration of one Reorder call.
type ReadyList struct {
	procs []*Process
}

// Append adds a process to the back of the ready list.
func (rl *ReadyList) Append(p *Process) {
	rl.procs = append(rl.procs, p)
}

// Len returns the number of live processes.
func (rl *ReadyList) Len() int {
	return len(rl.procs)
}

// Items returns the list contents for iteration.
// The returned slice is the list's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
// For reordering, use Reorder() instead.
func (rl *ReadyList) Items() []*Process {
	return rl.procs
}

// ByID returns the live process with the given id, or nil if absent.
func (rl *ReadyList) ByID(id int) *Process {
	for _, p := range rl.procs {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Remove deletes the process with the given id, preserving the relative
// order of the remaining processes. Returns false if the id is not live.
func (rl *ReadyList) Remove(id int) bool {
	for i, p := range rl.procs {
		if p.ID == id {
			rl.procs = append(rl.procs[:i], rl.procs[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder applies fn to the list contents, allowing in-place reordering.
// Policy.OrderReady is the primary consumer:
//
//	rl.Reorder(func(procs []*Process) {
//	    policy.OrderReady(procs, slots)
//	})
//
// fn receives the underlying slice and may sort it in-place.
// fn MUST NOT change the slice length (no append/delete).
func (rl *ReadyList) Reorder(fn func([]*Process)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rl.procs)
	fn(rl.procs)
	if len(rl.procs) != n {
		panic(fmt.Sprintf("Reorder: fn changed list length from %d to %d", n, len(rl.procs)))
	}
}

func (rl *ReadyList) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rl.procs {
		sb.WriteString(fmt.Sprint(p))
		if i < len(rl.procs)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
