// sim/simulator.go
package sim

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// ArrivalBatch is one group of processes sharing an arrival timestamp.
type ArrivalBatch struct {
	Time  int64      // arrival tick declared by the input
	Procs []*Process // processes in input order; may be empty
}

// ArrivalSource supplies arrival batches in non-decreasing timestamp order,
// one batch per call. io.EOF signals end-of-input, distinct from an empty
// batch. Implementations live in sim/workload.
type ArrivalSource interface {
	Next() (*ArrivalBatch, error)
}

// TickSink consumes one record per tick: the tick number and the slot
// assignment, one value per CPU in fixed slot order (IdleCPU for sleeping
// CPUs). Implementations live in sim/trace.
type TickSink interface {
	WriteTick(tick int64, slots []int) error
}

// Simulator owns simulated time, the ready list, and the CPU slot vector.
// Each tick it admits newly arrived processes, invokes the policy, charges
// one tick of execution to every occupied slot, and emits the assignment.
// Single-threaded and deterministic: identical input yields identical output.
type Simulator struct {
	Clock int64
	// CPUs holds the current slot assignment: process id or IdleCPU per slot.
	// Fixed length for the run's duration; contents repositioned every tick.
	CPUs []int
	// Ready is the list of live processes, owned exclusively by the Simulator
	// and lent to the Policy for one synchronous call per tick.
	Ready   *ReadyList
	Policy  Policy
	Source  ArrivalSource
	Sink    TickSink
	Metrics *Metrics

	inputDone bool
}

// NewSimulator builds a Simulator with cpuCount idle slots.
// cpuCount must be positive; policy, source and sink must be non-nil.
func NewSimulator(policy Policy, cpuCount int, source ArrivalSource, sink TickSink) (*Simulator, error) {
	if policy == nil {
		return nil, fmt.Errorf("policy must not be nil")
	}
	if cpuCount <= 0 {
		return nil, fmt.Errorf("cpu count must be positive, got %d", cpuCount)
	}
	if source == nil {
		return nil, fmt.Errorf("arrival source must not be nil")
	}
	if sink == nil {
		return nil, fmt.Errorf("tick sink must not be nil")
	}
	cpus := make([]int, cpuCount)
	for i := range cpus {
		cpus[i] = IdleCPU
	}
	return &Simulator{
		Clock:   0,
		CPUs:    cpus,
		Ready:   &ReadyList{},
		Policy:  policy,
		Source:  source,
		Sink:    sink,
		Metrics: NewMetrics(),
	}, nil
}

// Run executes ticks until the terminal condition: input exhausted AND no
// live process left to occupy a slot. Returns the first malformed-input or
// sink error; the run produces no partial output for a failed tick.
func (s *Simulator) Run() error {
	for {
		if err := s.admit(); err != nil {
			return err
		}

		Assign(s.Policy, s.Ready, s.CPUs)
		logrus.Debugf("tick %d: assignment=%v ready=%v", s.Clock, s.CPUs, s.Ready)

		// The emitted row is the scheduled assignment, including processes
		// that complete this very tick.
		emitted := make([]int, len(s.CPUs))
		copy(emitted, s.CPUs)

		s.charge()

		if err := s.Sink.WriteTick(s.Clock, emitted); err != nil {
			return fmt.Errorf("emitting tick %d: %w", s.Clock, err)
		}

		s.Clock++
		// Terminal condition: no input remains and no live process does
		// either. An empty ready list is exactly "every CPU slot idle":
		// completed processes leave their slots immediately, and any live
		// process is rescheduled into a slot as long as one exists.
		if s.inputDone && s.Ready.Len() == 0 {
			logrus.Debugf("terminal condition reached at tick %d", s.Clock)
			return nil
		}
	}
}

// admit pulls the next arrival batch if input remains. The batch timestamp
// must equal the current clock: the input carries one group per tick until
// it ends, so any other value means the stream is out of order or has gaps.
func (s *Simulator) admit() error {
	if s.inputDone {
		return nil
	}
	batch, err := s.Source.Next()
	if err == io.EOF {
		s.inputDone = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading arrivals at tick %d: %w", s.Clock, err)
	}
	if batch.Time != s.Clock {
		return fmt.Errorf("malformed input: arrival batch timestamp %d does not match tick %d", batch.Time, s.Clock)
	}
	for _, p := range batch.Procs {
		p.ArrivalTime = s.Clock
		s.Ready.Append(p)
		logrus.Infof("<< Arrival: id %d (prio %d, exec %d) at tick %d", p.ID, p.Priority, p.ExecutionTime, s.Clock)
	}
	s.Metrics.ObserveReadyDepth(s.Ready.Len())
	return nil
}

// charge decrements the remaining time of every executing process and
// retires the ones that finish: they leave the ready list, their slot is
// cleared, and the slot vector is re-canonicalized so next tick's policy
// only ever sees live occupied slots.
func (s *Simulator) charge() {
	for i, id := range s.CPUs {
		if id == IdleCPU {
			continue
		}
		p := s.Ready.ByID(id)
		if p == nil {
			panic(fmt.Sprintf("slot %d references process %d absent from ready list", i, id))
		}
		p.RemainingTime--
		if p.RemainingTime == 0 {
			s.Ready.Remove(p.ID)
			s.CPUs[i] = IdleCPU
			s.Metrics.RecordCompletion(p, s.Clock)
			logrus.Infof(">> Completed: id %d at tick %d", p.ID, s.Clock)
		}
	}
	canonicalizeSlots(s.CPUs)
}
