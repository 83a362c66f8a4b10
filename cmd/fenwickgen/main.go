package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"fenwickgen/internal/config"
	"fenwickgen/internal/workload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	profile string

	// Generation flags; defaults mirror config.DefaultConfig.
	size       int
	operations int
	output     string
	queries    int
	seed       int64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fenwickgen",
	Short: "fenwickgen - random workload generator for Fenwick tree implementations",
	Long: `fenwickgen writes a text file describing a random sequence of point-update
and prefix-query operations against an array of a given size.

The first line of the file is "<size> <operations>". Each following line is
either "q <index>" (prefix query up to index) or "a <index> <value>" (add
value at index). The file is replayed by a separate Fenwick tree program;
this tool only produces it.

Examples:
  fenwickgen --size 1024 --operations 50000 --queries 30 --output bench.txt
  fenwickgen --profile workloads/smoke.yaml --seed 42`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.Flags().IntVar(&size, "size", 128, "Size of the Fenwick tree")
	rootCmd.Flags().IntVar(&operations, "operations", 1000, "Number of operations to generate")
	rootCmd.Flags().StringVar(&output, "output", "input.txt", "Output file path")
	rootCmd.Flags().IntVar(&queries, "queries", 20, "Percentage of query operations (0-100)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 derives one from the current time)")
	rootCmd.Flags().StringVar(&profile, "profile", "", "YAML workload profile; explicitly set flags override its values")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runGenerate assembles the requested parameters, validates them, and writes
// the workload file. Validation happens before the output file is opened, so
// a rejected run never creates or truncates it.
func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := &config.Config{
		Size:       size,
		Operations: operations,
		Output:     output,
		Queries:    queries,
		Seed:       seed,
	}
	if profile != "" {
		loaded, err := config.Load(profile)
		if err != nil {
			return fmt.Errorf("failed to load profile %s: %w", profile, err)
		}
		overrideFromFlags(cmd, loaded)
		cfg = loaded
		logger.Debug("Loaded workload profile", zap.String("path", profile))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(runSeed))

	logger.Info("Generating workload",
		zap.Int("size", cfg.Size),
		zap.Int("operations", cfg.Operations),
		zap.Int("queries", cfg.Queries),
		zap.String("output", cfg.Output))
	logger.Debug("Seeded random source", zap.Int64("seed", runSeed))

	gen := workload.New(cfg.Size, cfg.Queries, rng)
	if err := workload.WriteFile(cfg.Output, gen, cfg.Operations); err != nil {
		return err
	}

	fmt.Printf("Generated %d operations for a Fenwick tree of size %d\n", cfg.Operations, cfg.Size)
	fmt.Printf("Output written to %s\n", cfg.Output)
	return nil
}

// overrideFromFlags applies flags the user set explicitly on top of a loaded
// profile, so command line values always win over profile values.
func overrideFromFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("size") {
		cfg.Size = size
	}
	if cmd.Flags().Changed("operations") {
		cfg.Operations = operations
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = output
	}
	if cmd.Flags().Changed("queries") {
		cfg.Queries = queries
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
}
