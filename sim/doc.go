// Package sim provides the core discrete-time CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: the Process model and CPU slot sentinel
//   - policy.go: the seven scheduling policies and the shared slot-fill step
//   - simulator.go: the tick loop (admission, scheduling, charging, emission)
//
// # Architecture
//
// The sim package defines interfaces and the engine; collaborators live in
// sub-packages:
//   - sim/workload/: arrival-stream parsing (ArrivalSource implementations)
//   - sim/trace/: per-tick output sinks and trace export (TickSink implementations)
//
// # Key Interfaces
//
// The extension points are single-method or small interfaces:
//   - Policy: reorder the ready list before slot fill
//   - ArrivalSource: supply timestamp-grouped arrival batches
//   - TickSink: consume one (tick, slot assignment) record per tick
package sim
