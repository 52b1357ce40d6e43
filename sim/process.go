// Defines the Process struct that models one unit of work competing for CPU time.
// Tracks identity, priority, total and remaining execution time, and arrival tick.

package sim

import (
	"fmt"
)

// IdleCPU is the sentinel slot value meaning no process occupies the CPU.
const IdleCPU = -1

// Process models a single process's lifecycle in the simulation.
// It is created the tick its arrival record names and removed from the
// ready list the instant its remaining time reaches zero.
// While live, 0 < RemainingTime <= ExecutionTime holds.
type Process struct {
	ID       int // Unique identifier among currently-live processes
	Priority int // Scheduling precedence; lower value = higher precedence

	ExecutionTime int64 // Total CPU ticks required, fixed at creation
	RemainingTime int64 // Ticks still required; decremented every tick the process executes

	ArrivalTime int64 // Tick at which the process entered the ready list
}

// ExecutedTime returns how many ticks the process has run so far.
func (p *Process) ExecutedTime() int64 {
	return p.ExecutionTime - p.RemainingTime
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %d, Priority: %d, Remaining: %d/%d)", p.ID, p.Priority, p.RemainingTime, p.ExecutionTime)
}
