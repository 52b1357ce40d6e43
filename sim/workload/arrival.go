// Parses the arrival stream: one line per tick of the form
//
//	t id prio exec [id prio exec ...]
//
// grouped by shared timestamp. A line holding only a timestamp is an empty
// group; a blank line (or end of stream) signals end-of-input.

package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/schedsim/schedsim/sim"
)

// ArrivalReader implements sim.ArrivalSource over a tokenized text stream.
// Each Next call consumes exactly one input line and returns the arrival
// batch it declares. Timestamps must be non-decreasing; the simulator
// additionally requires each batch's timestamp to equal the tick it is
// admitted at.
type ArrivalReader struct {
	scanner  *bufio.Scanner
	line     int   // 1-based line number for error reporting
	lastTime int64 // last timestamp seen, for monotonicity checks
	started  bool
	done     bool
}

// NewArrivalReader wraps r in an ArrivalReader.
func NewArrivalReader(r io.Reader) *ArrivalReader {
	return &ArrivalReader{
		scanner: bufio.NewScanner(r),
	}
}

// Next returns the next arrival batch, or io.EOF once a blank line or the
// end of the stream is reached. End-of-input is permanent: every later call
// returns io.EOF without touching the underlying reader.
func (ar *ArrivalReader) Next() (*sim.ArrivalBatch, error) {
	if ar.done {
		return nil, io.EOF
	}
	if !ar.scanner.Scan() {
		ar.done = true
		if err := ar.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading arrival stream: %w", err)
		}
		return nil, io.EOF
	}
	ar.line++

	fields := strings.Fields(ar.scanner.Text())
	if len(fields) == 0 {
		// Blank line: end-of-input marker, not an empty group.
		ar.done = true
		return nil, io.EOF
	}
	if (len(fields)-1)%3 != 0 {
		return nil, fmt.Errorf("line %d: incomplete process tuple: %d tokens after timestamp, want a multiple of 3", ar.line, len(fields)-1)
	}

	t, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: bad timestamp %q: %w", ar.line, fields[0], err)
	}
	if ar.started && t < ar.lastTime {
		return nil, fmt.Errorf("line %d: timestamp %d decreases from %d", ar.line, t, ar.lastTime)
	}
	ar.started = true
	ar.lastTime = t

	batch := &sim.ArrivalBatch{Time: t}
	for i := 1; i < len(fields); i += 3 {
		p, err := parseProcess(fields[i], fields[i+1], fields[i+2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ar.line, err)
		}
		batch.Procs = append(batch.Procs, p)
	}
	return batch, nil
}

// parseProcess builds a Process from the (id, prio, exec) token triple.
// RemainingTime starts equal to ExecutionTime.
func parseProcess(idTok, prioTok, execTok string) (*sim.Process, error) {
	id, err := strconv.Atoi(idTok)
	if err != nil {
		return nil, fmt.Errorf("bad process id %q: %w", idTok, err)
	}
	prio, err := strconv.Atoi(prioTok)
	if err != nil {
		return nil, fmt.Errorf("bad priority %q: %w", prioTok, err)
	}
	exec, err := strconv.ParseInt(execTok, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad execution time %q: %w", execTok, err)
	}
	if exec <= 0 {
		return nil, fmt.Errorf("execution time must be positive, got %d", exec)
	}
	return &sim.Process{
		ID:            id,
		Priority:      prio,
		ExecutionTime: exec,
		RemainingTime: exec,
	}, nil
}
