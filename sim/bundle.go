package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunBundle holds run configuration, loadable from a YAML file.
// Zero-value fields mean "not set in YAML" -- they do not override CLI flags.
type RunBundle struct {
	Policy  string `yaml:"policy"`
	CPUs    int    `yaml:"cpus"`
	RRSlice int64  `yaml:"rr_slice"`
}

// LoadRunBundle reads and parses a YAML run configuration file.
func LoadRunBundle(path string) (*RunBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var bundle RunBundle
	if err := yaml.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &bundle, nil
}

// ValidPolicies is the set of recognized scheduling policy names.
// Shared by Validate() and NewPolicy() to avoid duplication. The empty
// string is not a policy: a run without a policy selector is a
// configuration error.
var ValidPolicies = map[string]bool{
	"fcfs":             true,
	"sjf":              true,
	"srtf":             true,
	"rr":               true,
	"priority-fcfs":    true,
	"priority-srtf":    true,
	"priority-fcfs-np": true,
}

// IsValidPolicy returns true if name is a recognized scheduling policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// Validate checks that all names and parameter ranges in the bundle are
// valid. Unset fields (zero values) pass.
func (b *RunBundle) Validate() error {
	if b.Policy != "" && !IsValidPolicy(b.Policy) {
		return fmt.Errorf("unknown policy %q", b.Policy)
	}
	if b.CPUs < 0 {
		return fmt.Errorf("cpus must be non-negative, got %d", b.CPUs)
	}
	if b.RRSlice < 0 {
		return fmt.Errorf("rr_slice must be non-negative, got %d", b.RRSlice)
	}
	return nil
}
