package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Header captures run metadata for exported traces.
type Header struct {
	Version   int    `yaml:"trace_version"`
	TimeUnit  string `yaml:"time_unit"`
	CreatedAt string `yaml:"created_at,omitempty"`
	Policy    string `yaml:"policy"`
	CPUCount  int    `yaml:"cpu_count"`
	RRSlice   int64  `yaml:"rr_slice,omitempty"`
}

// Export writes the run header (YAML) and tick data (CSV) to separate files.
// The CSV carries one row per tick: tick,cpu_0,...,cpu_{n-1}.
func Export(header *Header, records []TickRecord, headerPath, dataPath string) error {
	headerData, err := yaml.Marshal(header)
	if err != nil {
		return fmt.Errorf("marshaling trace header: %w", err)
	}
	if err := os.WriteFile(headerPath, headerData, 0644); err != nil {
		return fmt.Errorf("writing trace header: %w", err)
	}

	file, err := os.Create(dataPath)
	if err != nil {
		return fmt.Errorf("creating trace data file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	columns := []string{"tick"}
	for i := 0; i < header.CPUCount; i++ {
		columns = append(columns, fmt.Sprintf("cpu_%d", i))
	}
	if err := w.Write(columns); err != nil {
		return fmt.Errorf("writing trace columns: %w", err)
	}
	for _, rec := range records {
		row := make([]string, 0, len(rec.Slots)+1)
		row = append(row, strconv.FormatInt(rec.Tick, 10))
		for _, id := range rec.Slots {
			row = append(row, strconv.Itoa(id))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing trace row for tick %d: %w", rec.Tick, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing trace data: %w", err)
	}
	return nil
}
