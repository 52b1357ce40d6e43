package cmd

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	// CLI flags for the scheduling run
	policy     string // Scheduling policy name
	cpuCount   int    // Number of CPU slots
	rrSlice    int64  // Round Robin time-slice length (ticks)
	inputPath  string // Arrival stream path ("" = stdin)
	outputPath string // Tick table path ("" = stdout)
	configPath string // Optional YAML run bundle

	// CLI flags for trace export and reporting
	traceHeaderPath string // Trace header YAML path
	traceDataPath   string // Trace data CSV path
	showMetrics     bool   // Print end-of-run metrics to stderr
	logLevel        string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-time simulator for CPU process scheduling policies",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		// A YAML bundle fills in flags the user did not set explicitly.
		if configPath != "" {
			bundle, err := sim.LoadRunBundle(configPath)
			if err != nil {
				logrus.Fatalf("Unable to load run config: %v", err)
			}
			if err := bundle.Validate(); err != nil {
				logrus.Fatalf("Invalid run config: %v", err)
			}
			if !cmd.Flags().Changed("policy") && bundle.Policy != "" {
				policy = bundle.Policy
			}
			if !cmd.Flags().Changed("cpus") && bundle.CPUs != 0 {
				cpuCount = bundle.CPUs
			}
			if !cmd.Flags().Changed("rr-slice") && bundle.RRSlice != 0 {
				rrSlice = bundle.RRSlice
			}
		}

		if policy == "" {
			logrus.Fatalf("Scheduling policy not provided. Exiting simulation.")
		}
		if !sim.IsValidPolicy(policy) {
			logrus.Fatalf("Unknown scheduling policy %q", policy)
		}
		if cpuCount <= 0 {
			logrus.Fatalf("CPU count must be positive, got %d", cpuCount)
		}
		if rrSlice <= 0 {
			logrus.Fatalf("Round Robin slice must be positive, got %d", rrSlice)
		}
		if (traceHeaderPath == "") != (traceDataPath == "") {
			logrus.Fatalf("--trace-header and --trace-data must be given together")
		}

		input := io.Reader(os.Stdin)
		if inputPath != "" {
			f, err := os.Open(inputPath)
			if err != nil {
				logrus.Fatalf("Unable to open arrival stream: %v", err)
			}
			defer f.Close()
			input = f
		}
		output := io.Writer(os.Stdout)
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				logrus.Fatalf("Unable to create output file: %v", err)
			}
			defer f.Close()
			output = f
		}

		var sink sim.TickSink = trace.NewTextWriter(output)
		var recorder *trace.Recorder
		if traceDataPath != "" {
			recorder = trace.NewRecorder()
			sink = trace.NewTee(trace.NewTextWriter(output), recorder)
		}

		// Log configuration
		logrus.Infof("Starting simulation with policy=%s, cpus=%d, rr-slice=%d",
			policy, cpuCount, rrSlice)

		startTime := time.Now() // Get current time (start)

		// Initialize and run the simulator
		s, err := sim.NewSimulator(
			sim.NewPolicy(policy, rrSlice),
			cpuCount,
			workload.NewArrivalReader(input),
			sink,
		)
		if err != nil {
			logrus.Fatalf("Unable to initialize simulator: %v", err)
		}
		if err := s.Run(); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		if showMetrics {
			s.Metrics.Print(os.Stderr, s.Clock)
		}
		if recorder != nil {
			header := &trace.Header{
				Version:   1,
				TimeUnit:  "tick",
				CreatedAt: startTime.UTC().Format(time.RFC3339),
				Policy:    policy,
				CPUCount:  cpuCount,
				RRSlice:   rrSlice,
			}
			if err := trace.Export(header, recorder.Records, traceHeaderPath, traceDataPath); err != nil {
				logrus.Fatalf("Unable to export trace: %v", err)
			}
		}

		logrus.Infof("Simulation complete: %d ticks in %v.", s.Clock, time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&policy, "policy", "", "Scheduling policy (fcfs, sjf, srtf, rr, priority-fcfs, priority-srtf, priority-fcfs-np)")
	runCmd.Flags().IntVar(&cpuCount, "cpus", 1, "Number of CPUs")
	runCmd.Flags().Int64Var(&rrSlice, "rr-slice", 1, "Round Robin time-slice length (ticks)")
	runCmd.Flags().StringVar(&inputPath, "input", "", "Arrival stream file (default stdin)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Tick table output file (default stdout)")
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration file")

	runCmd.Flags().StringVar(&traceHeaderPath, "trace-header", "", "Export run metadata to this YAML file")
	runCmd.Flags().StringVar(&traceDataPath, "trace-data", "", "Export per-tick assignments to this CSV file")
	runCmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print end-of-run metrics to stderr")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
