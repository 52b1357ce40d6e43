package sim

import (
	"testing"
)

func procIDs(procs []*Process) []int {
	ids := make([]int, len(procs))
	for i, p := range procs {
		ids[i] = p.ID
	}
	return ids
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func newProc(id int, prio int, exec, remaining int64) *Process {
	return &Process{ID: id, Priority: prio, ExecutionTime: exec, RemainingTime: remaining}
}

func idleSlots(n int) []int {
	slots := make([]int, n)
	for i := range slots {
		slots[i] = IdleCPU
	}
	return slots
}

func TestFCFSPolicy_PreservesOrder(t *testing.T) {
	// FCFS is a no-op: order unchanged
	p := &FCFSPolicy{}
	procs := []*Process{
		newProc(3, 0, 5, 5),
		newProc(1, 0, 1, 1),
		newProc(2, 0, 3, 3),
	}
	p.OrderReady(procs, idleSlots(1))

	got := procIDs(procs)
	want := []int{3, 1, 2}
	if !intsEqual(got, want) {
		t.Errorf("FCFSPolicy: got %v, want %v", got, want)
	}
}

func TestSJFPolicy_SortsByExecutionTime(t *testing.T) {
	p := &SJFPolicy{}
	procs := []*Process{
		newProc(1, 0, 9, 9),
		newProc(2, 0, 2, 2),
		newProc(3, 0, 5, 5),
	}
	p.OrderReady(procs, idleSlots(1))

	got := procIDs(procs)
	want := []int{2, 3, 1}
	if !intsEqual(got, want) {
		t.Errorf("SJF execution time ordering: got %v, want %v", got, want)
	}
}

func TestSJFPolicy_StableOnEqualExecutionTime(t *testing.T) {
	// Equal keys keep arrival order
	p := &SJFPolicy{}
	procs := []*Process{
		newProc(7, 0, 4, 4),
		newProc(5, 0, 4, 4),
		newProc(6, 0, 2, 2),
	}
	p.OrderReady(procs, idleSlots(1))

	got := procIDs(procs)
	want := []int{6, 7, 5}
	if !intsEqual(got, want) {
		t.Errorf("SJF stability: got %v, want %v", got, want)
	}
}

func TestSJFPolicy_ExemptsRunningProcesses(t *testing.T) {
	// Process 9 occupies a slot: it keeps its front position even though a
	// shorter job is waiting (non-preemptive)
	p := &SJFPolicy{}
	procs := []*Process{
		newProc(9, 0, 8, 5),
		newProc(2, 0, 1, 1),
		newProc(3, 0, 4, 4),
	}
	p.OrderReady(procs, []int{9})

	got := procIDs(procs)
	want := []int{9, 2, 3}
	if !intsEqual(got, want) {
		t.Errorf("SJF running exemption: got %v, want %v", got, want)
	}
}

func TestSRTFPolicy_SortsByRemainingTime(t *testing.T) {
	// Preemptive: the whole list is reordered, running or not
	p := &SRTFPolicy{}
	procs := []*Process{
		newProc(1, 0, 9, 4),
		newProc(2, 0, 3, 3),
		newProc(3, 0, 8, 1),
	}
	p.OrderReady(procs, []int{1})

	got := procIDs(procs)
	want := []int{3, 2, 1}
	if !intsEqual(got, want) {
		t.Errorf("SRTF remaining time ordering: got %v, want %v", got, want)
	}
}

func TestSRTFPolicy_StableOnEqualRemaining(t *testing.T) {
	p := &SRTFPolicy{}
	procs := []*Process{
		newProc(4, 0, 5, 2),
		newProc(2, 0, 2, 2),
		newProc(3, 0, 7, 2),
	}
	p.OrderReady(procs, idleSlots(1))

	got := procIDs(procs)
	want := []int{4, 2, 3}
	if !intsEqual(got, want) {
		t.Errorf("SRTF stability: got %v, want %v", got, want)
	}
}

func TestRRPolicy_MovesProcessAtSliceBoundary(t *testing.T) {
	// Executed time is a positive multiple of the slice: yield the CPU
	p := &RRPolicy{Slice: 2}
	procs := []*Process{
		newProc(1, 0, 6, 4), // executed 2, 2%2 == 0
		newProc(2, 0, 3, 3),
	}
	p.OrderReady(procs, []int{1})

	got := procIDs(procs)
	want := []int{2, 1}
	if !intsEqual(got, want) {
		t.Errorf("RR slice boundary: got %v, want %v", got, want)
	}
}

func TestRRPolicy_KeepsProcessMidSlice(t *testing.T) {
	p := &RRPolicy{Slice: 2}
	procs := []*Process{
		newProc(1, 0, 6, 5), // executed 1, mid-slice
		newProc(2, 0, 3, 3),
	}
	p.OrderReady(procs, []int{1})

	got := procIDs(procs)
	want := []int{1, 2}
	if !intsEqual(got, want) {
		t.Errorf("RR mid-slice: got %v, want %v", got, want)
	}
}

func TestRRPolicy_NeverMovesWaitingProcess(t *testing.T) {
	// Process 2 has executed a slice multiple's worth but occupies no slot:
	// the rule only applies to executing processes
	p := &RRPolicy{Slice: 2}
	procs := []*Process{
		newProc(1, 0, 6, 5),
		newProc(2, 0, 6, 4),
	}
	p.OrderReady(procs, []int{1})

	got := procIDs(procs)
	want := []int{1, 2}
	if !intsEqual(got, want) {
		t.Errorf("RR waiting process moved: got %v, want %v", got, want)
	}
}

func TestRRPolicy_FreshProcessNotMoved(t *testing.T) {
	// Executed time zero is not a positive multiple
	p := &RRPolicy{Slice: 1}
	procs := []*Process{
		newProc(1, 0, 3, 3),
		newProc(2, 0, 3, 3),
	}
	p.OrderReady(procs, []int{1})

	got := procIDs(procs)
	want := []int{1, 2}
	if !intsEqual(got, want) {
		t.Errorf("RR fresh process: got %v, want %v", got, want)
	}
}

func TestRRPolicy_AbsentSlotID_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("RRPolicy with stale slot id: expected panic, got nil")
		}
	}()
	p := &RRPolicy{Slice: 1}
	procs := []*Process{newProc(1, 0, 3, 3)}
	p.OrderReady(procs, []int{42})
}

func TestPriorityFCFSPolicy_SortsByPriorityAscending(t *testing.T) {
	// Lower priority number = higher precedence
	p := &PriorityFCFSPolicy{}
	procs := []*Process{
		newProc(1, 5, 3, 3),
		newProc(2, 1, 3, 3),
		newProc(3, 3, 3, 3),
	}
	p.OrderReady(procs, idleSlots(1))

	got := procIDs(procs)
	want := []int{2, 3, 1}
	if !intsEqual(got, want) {
		t.Errorf("PriorityFCFS ordering: got %v, want %v", got, want)
	}
}

func TestPriorityFCFSPolicy_TiesKeepArrivalOrder(t *testing.T) {
	p := &PriorityFCFSPolicy{}
	procs := []*Process{
		newProc(8, 2, 3, 3),
		newProc(4, 2, 1, 1),
		newProc(6, 2, 2, 2),
	}
	p.OrderReady(procs, idleSlots(1))

	got := procIDs(procs)
	want := []int{8, 4, 6}
	if !intsEqual(got, want) {
		t.Errorf("PriorityFCFS tie-break: got %v, want %v", got, want)
	}
}

func TestPrioritySRTFPolicy_PriorityDominatesRemainingBreaksTies(t *testing.T) {
	p := &PrioritySRTFPolicy{}
	procs := []*Process{
		newProc(1, 2, 9, 9),
		newProc(2, 1, 5, 5),
		newProc(3, 2, 2, 2),
		newProc(4, 1, 8, 8),
	}
	p.OrderReady(procs, idleSlots(1))

	got := procIDs(procs)
	want := []int{2, 4, 3, 1}
	if !intsEqual(got, want) {
		t.Errorf("PrioritySRTF ordering: got %v, want %v", got, want)
	}
}

func TestPriorityFCFSNPPolicy_ExemptsRunningProcesses(t *testing.T) {
	// Process 5 runs at priority 9; a priority-1 arrival must wait
	p := &PriorityFCFSNPPolicy{}
	procs := []*Process{
		newProc(5, 9, 8, 4),
		newProc(6, 1, 2, 2),
		newProc(7, 4, 3, 3),
	}
	p.OrderReady(procs, []int{5})

	got := procIDs(procs)
	want := []int{5, 6, 7}
	if !intsEqual(got, want) {
		t.Errorf("PriorityFCFSNP running exemption: got %v, want %v", got, want)
	}
}

func TestPriorityFCFSNPPolicy_MultipleRunningExempt(t *testing.T) {
	// Two occupied slots: the first two list positions stay untouched
	p := &PriorityFCFSNPPolicy{}
	procs := []*Process{
		newProc(5, 9, 8, 4),
		newProc(6, 7, 8, 2),
		newProc(7, 1, 3, 3),
		newProc(8, 0, 3, 3),
	}
	p.OrderReady(procs, []int{5, 6})

	got := procIDs(procs)
	want := []int{5, 6, 8, 7}
	if !intsEqual(got, want) {
		t.Errorf("PriorityFCFSNP multi-CPU exemption: got %v, want %v", got, want)
	}
}

func TestAssign_FillsSlotsInListOrder(t *testing.T) {
	ready := &ReadyList{}
	ready.Append(newProc(3, 0, 2, 2))
	ready.Append(newProc(1, 0, 2, 2))
	ready.Append(newProc(2, 0, 2, 2))
	slots := idleSlots(2)

	Assign(&FCFSPolicy{}, ready, slots)

	// First two in list order are 3 and 1; canonicalization sorts occupied ids
	want := []int{1, 3}
	if !intsEqual(slots, want) {
		t.Errorf("Assign slot fill: got %v, want %v", slots, want)
	}
	// Canonicalization must not feed back into ready-list order
	gotReady := procIDs(ready.Items())
	wantReady := []int{3, 1, 2}
	if !intsEqual(gotReady, wantReady) {
		t.Errorf("Assign disturbed ready list: got %v, want %v", gotReady, wantReady)
	}
}

func TestAssign_ExtraSlotsBecomeIdle(t *testing.T) {
	ready := &ReadyList{}
	ready.Append(newProc(4, 0, 2, 2))
	slots := []int{7, 8, 9}

	Assign(&FCFSPolicy{}, ready, slots)

	want := []int{4, IdleCPU, IdleCPU}
	if !intsEqual(slots, want) {
		t.Errorf("Assign idle fill: got %v, want %v", slots, want)
	}
}

func TestAssign_EmptyReadyList_AllIdle(t *testing.T) {
	ready := &ReadyList{}
	slots := []int{3, 1, 2}

	Assign(&FCFSPolicy{}, ready, slots)

	want := []int{IdleCPU, IdleCPU, IdleCPU}
	if !intsEqual(slots, want) {
		t.Errorf("Assign empty list: got %v, want %v", slots, want)
	}
}

func TestAssign_MoreProcessesThanSlots(t *testing.T) {
	ready := &ReadyList{}
	for id := 1; id <= 5; id++ {
		ready.Append(newProc(id, 0, 2, 2))
	}
	slots := idleSlots(2)

	Assign(&FCFSPolicy{}, ready, slots)

	want := []int{1, 2}
	if !intsEqual(slots, want) {
		t.Errorf("Assign overflow: got %v, want %v", slots, want)
	}
}

func TestCanonicalizeSlots_OccupiedAscendingIdleLast(t *testing.T) {
	slots := []int{IdleCPU, 9, IdleCPU, 2, 5}
	canonicalizeSlots(slots)

	want := []int{2, 5, 9, IdleCPU, IdleCPU}
	if !intsEqual(slots, want) {
		t.Errorf("canonicalizeSlots: got %v, want %v", slots, want)
	}
}

func TestNewPolicy_ValidNames_ReturnsCorrectType(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"fcfs", "fcfs"},
		{"sjf", "sjf"},
		{"srtf", "srtf"},
		{"rr", "rr"},
		{"priority-fcfs", "priority-fcfs"},
		{"priority-srtf", "priority-srtf"},
		{"priority-fcfs-np", "priority-fcfs-np"},
	}
	for _, tc := range cases {
		p := NewPolicy(tc.name, 1)
		if p.Name() != tc.want {
			t.Errorf("NewPolicy(%q): got policy named %q, want %q", tc.name, p.Name(), tc.want)
		}
	}
}

func TestNewPolicy_RRCarriesSlice(t *testing.T) {
	p := NewPolicy("rr", 3)
	rr, ok := p.(*RRPolicy)
	if !ok {
		t.Fatalf("NewPolicy(\"rr\"): expected *RRPolicy, got %T", p)
	}
	if rr.Slice != 3 {
		t.Errorf("RR slice: got %d, want 3", rr.Slice)
	}
}

func TestNewPolicy_UnknownName_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewPolicy(\"unknown\"): expected panic, got nil")
		}
	}()
	NewPolicy("unknown", 1)
}

func TestNewPolicy_EmptyName_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewPolicy(\"\"): expected panic, got nil")
		}
	}()
	NewPolicy("", 1)
}

func TestNewPolicy_RRNonPositiveSlice_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewPolicy(\"rr\", 0): expected panic, got nil")
		}
	}()
	NewPolicy("rr", 0)
}

func TestPolicy_AnyPolicy_PreservesAllProcesses(t *testing.T) {
	// Reordering must not add/remove/duplicate processes
	policies := []Policy{
		&FCFSPolicy{},
		&SJFPolicy{},
		&SRTFPolicy{},
		&RRPolicy{Slice: 2},
		&PriorityFCFSPolicy{},
		&PrioritySRTFPolicy{},
		&PriorityFCFSNPPolicy{},
	}
	for _, p := range policies {
		t.Run(p.Name(), func(t *testing.T) {
			procs := []*Process{
				newProc(1, 2, 5, 3),
				newProc(2, 1, 4, 4),
				newProc(3, 3, 2, 1),
			}
			p.OrderReady(procs, []int{1, IdleCPU})

			if len(procs) != 3 {
				t.Fatalf("list length changed: got %d, want 3", len(procs))
			}
			seen := make(map[int]bool)
			for _, pr := range procs {
				if seen[pr.ID] {
					t.Errorf("duplicate process %d", pr.ID)
				}
				seen[pr.ID] = true
			}
			for _, id := range []int{1, 2, 3} {
				if !seen[id] {
					t.Errorf("missing process %d", id)
				}
			}
		})
	}
}

func TestPolicy_EmptyList_NoOp(t *testing.T) {
	policies := []Policy{
		&FCFSPolicy{},
		&SJFPolicy{},
		&SRTFPolicy{},
		&RRPolicy{Slice: 1},
		&PriorityFCFSPolicy{},
		&PrioritySRTFPolicy{},
		&PriorityFCFSNPPolicy{},
	}
	for _, p := range policies {
		t.Run(p.Name(), func(t *testing.T) {
			procs := []*Process{}
			p.OrderReady(procs, idleSlots(2))
			if len(procs) != 0 {
				t.Errorf("empty list modified: got len %d, want 0", len(procs))
			}
		})
	}
}
