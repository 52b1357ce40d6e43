// Implements the scheduling-policy engine: seven policies that reorder the
// ready list before the shared slot-fill step assigns processes to CPUs.

package sim

import (
	"fmt"
	"sort"
)

// Policy reorders the ready list before slot fill. Called once per tick with
// the current slot assignment (last tick's canonicalized output) so
// non-preemptive policies can exempt running processes.
// Implementations sort the slice in-place using sort.SliceStable only, so
// arrival order survives as the tie-break for equal keys.
type Policy interface {
	Name() string
	OrderReady(procs []*Process, slots []int)
}

// Assign runs one scheduling decision: policy reorder, then slot fill.
// Slot fill walks the reordered ready list, placing the next process id into
// each slot until slots or processes run out; leftover slots become idle.
// The filled slots are then canonicalized: occupied slots stably sorted
// ascending by id, idle slots pushed to the end. Canonicalization only
// shapes the emitted assignment; it never feeds back into ready-list order.
func Assign(p Policy, ready *ReadyList, slots []int) {
	ready.Reorder(func(procs []*Process) {
		p.OrderReady(procs, slots)
	})
	procs := ready.Items()
	for i := range slots {
		if i < len(procs) {
			slots[i] = procs[i].ID
		} else {
			slots[i] = IdleCPU
		}
	}
	canonicalizeSlots(slots)
}

// canonicalizeSlots stably sorts occupied slots ascending by id and pushes
// idle slots to the end, preserving idle-to-idle relative order.
func canonicalizeSlots(slots []int) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i] >= 0 && slots[j] >= 0 {
			return slots[i] < slots[j]
		}
		return slots[i] > slots[j]
	})
}

// runningPrefix returns how many processes at the front of the ready list
// are currently executing, identified by matching occupied slot ids against
// the list. Non-preemptive policies sort only procs[prefix:], leaving the
// running processes in their existing relative order.
func runningPrefix(procs []*Process, slots []int) int {
	prefix := 0
	for _, id := range slots {
		if id == IdleCPU || prefix == len(procs) {
			break
		}
		for _, p := range procs {
			if p.ID == id {
				prefix++
			}
		}
	}
	return prefix
}

// FCFSPolicy preserves First-Come-First-Served order (no-op).
// Arrival order is policy order end-to-end.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Name() string { return "fcfs" }

func (f *FCFSPolicy) OrderReady(_ []*Process, _ []int) {
	// No-op: arrival order preserved from admission order
}

// SJFPolicy sorts not-yet-running processes by total execution time
// ascending. Processes already occupying a slot are exempt, so a started
// job keeps its CPU until completion (non-preemptive).
type SJFPolicy struct{}

func (s *SJFPolicy) Name() string { return "sjf" }

func (s *SJFPolicy) OrderReady(procs []*Process, slots []int) {
	waiting := procs[runningPrefix(procs, slots):]
	sort.SliceStable(waiting, func(i, j int) bool {
		return waiting[i].ExecutionTime < waiting[j].ExecutionTime
	})
}

// SRTFPolicy sorts the entire ready list by remaining time ascending every
// tick, preempting a running process whenever a shorter one exists.
type SRTFPolicy struct{}

func (s *SRTFPolicy) Name() string { return "srtf" }

func (s *SRTFPolicy) OrderReady(procs []*Process, _ []int) {
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].RemainingTime < procs[j].RemainingTime
	})
}

// RRPolicy implements Round Robin: a process that has run a positive
// multiple of the slice length is moved to the back of the ready list,
// yielding its CPU to the next process in line. Processes not currently in
// any slot are never moved.
type RRPolicy struct {
	Slice int64 // time-slice length in ticks, must be > 0
}

func (r *RRPolicy) Name() string { return "rr" }

func (r *RRPolicy) OrderReady(procs []*Process, slots []int) {
	for _, id := range slots {
		if id == IdleCPU {
			break
		}
		idx := -1
		for i, p := range procs {
			if p.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			// Completed processes are cleared from their slots at the end of
			// each tick, so an occupied slot must always name a live process.
			panic(fmt.Sprintf("rr: slot references process %d absent from ready list", id))
		}
		executed := procs[idx].ExecutedTime()
		if executed > 0 && executed%r.Slice == 0 {
			moveToBack(procs, idx)
		}
	}
}

// moveToBack rotates procs[idx] to the end, shifting the tail left by one.
func moveToBack(procs []*Process, idx int) {
	p := procs[idx]
	copy(procs[idx:], procs[idx+1:])
	procs[len(procs)-1] = p
}

// PriorityFCFSPolicy sorts the full ready list by priority ascending (lower
// number = higher precedence); ties keep arrival order. Preemptive: a newly
// arrived high-priority process displaces a running low-priority one.
type PriorityFCFSPolicy struct{}

func (p *PriorityFCFSPolicy) Name() string { return "priority-fcfs" }

func (p *PriorityFCFSPolicy) OrderReady(procs []*Process, _ []int) {
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Priority < procs[j].Priority
	})
}

// PrioritySRTFPolicy sorts by remaining time ascending, then stably by
// priority ascending: priority dominates, remaining time breaks ties.
// Preemptive.
type PrioritySRTFPolicy struct{}

func (p *PrioritySRTFPolicy) Name() string { return "priority-srtf" }

func (p *PrioritySRTFPolicy) OrderReady(procs []*Process, _ []int) {
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].RemainingTime < procs[j].RemainingTime
	})
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Priority < procs[j].Priority
	})
}

// PriorityFCFSNPPolicy is the non-preemptive variant of PriorityFCFSPolicy:
// currently-running processes are exempt from reordering (same skip rule as
// SJF); only the waiting remainder is sorted by priority ascending.
type PriorityFCFSNPPolicy struct{}

func (p *PriorityFCFSNPPolicy) Name() string { return "priority-fcfs-np" }

func (p *PriorityFCFSNPPolicy) OrderReady(procs []*Process, slots []int) {
	waiting := procs[runningPrefix(procs, slots):]
	sort.SliceStable(waiting, func(i, j int) bool {
		return waiting[i].Priority < waiting[j].Priority
	})
}

// NewPolicy creates a Policy by name.
// Valid names are defined in ValidPolicies (bundle.go). rrSlice is the Round
// Robin time-slice length, meaningful only to "rr"; it must be > 0.
// Panics on unrecognized names -- callers validate with IsValidPolicy first,
// so an unknown name here is a configuration error caught before any tick runs.
func NewPolicy(name string, rrSlice int64) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch name {
	case "fcfs":
		return &FCFSPolicy{}
	case "sjf":
		return &SJFPolicy{}
	case "srtf":
		return &SRTFPolicy{}
	case "rr":
		if rrSlice <= 0 {
			panic(fmt.Sprintf("rr slice must be positive, got %d", rrSlice))
		}
		return &RRPolicy{Slice: rrSlice}
	case "priority-fcfs":
		return &PriorityFCFSPolicy{}
	case "priority-srtf":
		return &PrioritySRTFPolicy{}
	case "priority-fcfs-np":
		return &PriorityFCFSNPPolicy{}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}
