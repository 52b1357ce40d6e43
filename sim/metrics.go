// Tracks simulation-wide and per-process performance metrics such as:
// turnaround, waiting time, completion counts, and ready-list pressure.

package sim

import (
	"fmt"
	"io"
)

// Metrics aggregates statistics about the simulation for final reporting.
// Useful for comparing policies on the same workload.
type Metrics struct {
	CompletedProcesses int   // Number of processes that ran to completion
	TotalTurnaround    int64 // Sum of turnarounds (completion tick - arrival tick + 1)
	TotalWaiting       int64 // Sum of waiting times (turnaround - execution time)
	PeakReadyDepth     int   // Max ready-list length observed after admission

	Turnarounds map[int]int64 // map of process ID -> turnaround
}

func NewMetrics() *Metrics {
	return &Metrics{
		Turnarounds: make(map[int]int64),
	}
}

// RecordCompletion accounts for a process finishing during the given tick.
// The completing tick counts as executed time, hence the +1.
func (m *Metrics) RecordCompletion(p *Process, tick int64) {
	turnaround := tick - p.ArrivalTime + 1
	m.CompletedProcesses++
	m.TotalTurnaround += turnaround
	m.TotalWaiting += turnaround - p.ExecutionTime
	m.Turnarounds[p.ID] = turnaround
}

// ObserveReadyDepth updates the peak ready-list depth.
func (m *Metrics) ObserveReadyDepth(depth int) {
	if depth > m.PeakReadyDepth {
		m.PeakReadyDepth = depth
	}
}

// Print displays aggregated metrics at the end of the simulation.
// ticks is the total number of simulated ticks.
func (m *Metrics) Print(w io.Writer, ticks int64) {
	fmt.Fprintln(w, "=== Simulation Metrics ===")
	fmt.Fprintf(w, "Simulated Ticks      : %d\n", ticks)
	fmt.Fprintf(w, "Completed Processes  : %d\n", m.CompletedProcesses)
	fmt.Fprintf(w, "Peak Ready Depth     : %d\n", m.PeakReadyDepth)
	if m.CompletedProcesses > 0 {
		avgTurnaround := float64(m.TotalTurnaround) / float64(m.CompletedProcesses)
		avgWaiting := float64(m.TotalWaiting) / float64(m.CompletedProcesses)
		fmt.Fprintf(w, "Average Turnaround   : %.2f ticks\n", avgTurnaround)
		fmt.Fprintf(w, "Average Waiting      : %.2f ticks\n", avgWaiting)
	}
}
