// Package trace provides per-tick output sinks for the scheduling simulator:
// a plain text writer matching the classic `t cpu0 cpu1 ...` table format,
// an in-memory recorder, and a CSV/YAML trace exporter.
package trace

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sink consumes one record per tick. It mirrors sim.TickSink so this package
// does not need to import sim; every type here satisfies both.
type Sink interface {
	WriteTick(tick int64, slots []int) error
}

// TickRecord is one tick's slot assignment, captured for later export.
type TickRecord struct {
	Tick  int64
	Slots []int
}

// TextWriter emits the per-tick occupancy table as whitespace-separated
// rows: the tick number followed by one value per CPU (-1 for sleeping).
type TextWriter struct {
	w io.Writer
}

// NewTextWriter returns a TextWriter targeting w.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (tw *TextWriter) WriteTick(tick int64, slots []int) error {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(tick, 10))
	for _, id := range slots {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(id))
	}
	sb.WriteString("\n")
	if _, err := io.WriteString(tw.w, sb.String()); err != nil {
		return fmt.Errorf("writing tick row: %w", err)
	}
	return nil
}

// Recorder collects tick records in memory for post-run export or assertions.
type Recorder struct {
	Records []TickRecord
}

// NewRecorder creates a Recorder ready for recording.
func NewRecorder() *Recorder {
	return &Recorder{Records: make([]TickRecord, 0)}
}

// WriteTick appends a copy of the assignment; the simulator reuses its slot
// buffer between ticks, so the record must not alias it.
func (r *Recorder) WriteTick(tick int64, slots []int) error {
	copied := make([]int, len(slots))
	copy(copied, slots)
	r.Records = append(r.Records, TickRecord{Tick: tick, Slots: copied})
	return nil
}

// Tee fans every tick record out to all given sinks, stopping at the first
// error.
type Tee struct {
	sinks []Sink
}

// NewTee builds a Tee over the given sinks.
func NewTee(sinks ...Sink) *Tee {
	return &Tee{sinks: sinks}
}

func (t *Tee) WriteTick(tick int64, slots []int) error {
	for _, s := range t.sinks {
		if err := s.WriteTick(tick, slots); err != nil {
			return err
		}
	}
	return nil
}
