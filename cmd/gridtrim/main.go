// Command gridtrim reads a board file, counts its occupied cells and reports
// how many can be removed: in one pass, and by cascading to a fixed point.
//
// Usage:
//
//	gridtrim [flags] <board-file>
//
// Output:
//
//	Rolls: <occupied cells>
//	Accessible: <cells removable in a single pass>
//	Gettable: <cells removed by the chosen reduction>
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gridtrim/board"
	"github.com/katalvlaran/gridtrim/internal/config"
	"github.com/katalvlaran/gridtrim/trim"
)

var (
	// Logger
	logger = zap.NewNop()

	// buildLogger constructs the process logger; replaced in tests.
	buildLogger = func(verbose bool) (*zap.Logger, error) {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		return cfg.Build()
	}
)

// runFlags holds the command-line flags of one invocation.
type runFlags struct {
	configPath string
	threshold  int
	occupied   string
	empty      string
	strict     bool
	mode       string
	order      string
	seed       int64
	rounds     int
	print      bool
	verbose    bool
}

// newRootCmd builds the gridtrim command with fresh flag storage.
func newRootCmd() *cobra.Command {
	f := &runFlags{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "gridtrim [flags] <board-file>",
		Short: "Count the cells of a board that survive the stability rule",
		Long: `gridtrim parses a rectangular board ('@' occupied, anything else empty)
and removes every occupied cell with fewer than --threshold occupied
neighbors. Each removal can expose further cells; the cascade continues
until the board is stable.

Modes:
  - cascade: worklist reduction to the fixed point (default)
  - sweep:   synchronous rounds, optionally capped with --rounds

Flags override values from --config.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := buildLogger(f.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			return run(cmd, cfg, args[0], f.print)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fl.IntVar(&f.threshold, "threshold", def.Threshold, "minimum occupied neighbors a cell needs to stay")
	fl.StringVar(&f.occupied, "occupied", def.Occupied, "token that marks an occupied cell")
	fl.StringVar(&f.empty, "empty", def.Empty, "token that marks an empty cell")
	fl.BoolVar(&f.strict, "strict", def.Strict, "reject tokens other than --occupied and --empty")
	fl.StringVar(&f.mode, "mode", def.Mode, "reduction mode: cascade | sweep")
	fl.StringVar(&f.order, "order", def.Order, "worklist order for cascade: lifo | fifo | shuffled")
	fl.Int64Var(&f.seed, "seed", def.Seed, "seed for --order shuffled")
	fl.IntVar(&f.rounds, "rounds", def.MaxRounds, "max rounds for sweep (0 = until stable)")
	fl.BoolVar(&f.print, "print", false, "print the reduced board")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// resolveConfig layers defaults, the optional config file and explicitly set flags.
func resolveConfig(cmd *cobra.Command, f *runFlags) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
		logger.Debug("Loaded config", zap.String("path", f.configPath))
	}

	fl := cmd.Flags()
	if fl.Changed("threshold") {
		cfg.Threshold = f.threshold
	}
	if fl.Changed("occupied") {
		cfg.Occupied = f.occupied
	}
	if fl.Changed("empty") {
		cfg.Empty = f.empty
	}
	if fl.Changed("strict") {
		cfg.Strict = f.strict
	}
	if fl.Changed("mode") {
		cfg.Mode = f.mode
	}
	if fl.Changed("order") {
		cfg.Order = f.order
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("rounds") {
		cfg.MaxRounds = f.rounds
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// run parses the board at path, reduces it and writes the report.
func run(cmd *cobra.Command, cfg config.Config, path string, printBoard bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read board: %w", err)
	}
	g, err := board.Parse(string(data), cfg.BoardOptions()...)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Info("Parsed board",
		zap.String("path", path),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height))

	accessible, err := trim.Accessible(g, cfg.Threshold)
	if err != nil {
		return err
	}

	start := time.Now()
	var res trim.Result
	switch cfg.Mode {
	case config.ModeSweep:
		res, err = trim.Sweep(g, cfg.TrimOptions()...)
	default:
		res, err = trim.Reduce(g, cfg.TrimOptions()...)
	}
	if err != nil {
		return fmt.Errorf("reduce %s: %w", path, err)
	}
	logger.Debug("Reduced board",
		zap.String("mode", cfg.Mode),
		zap.String("order", cfg.Order),
		zap.Int("threshold", cfg.Threshold),
		zap.Int("removed", res.Removed),
		zap.Int("remaining", res.Remaining),
		zap.Int("rounds", res.Rounds),
		zap.Duration("elapsed", time.Since(start)))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rolls: %d\n", res.Initial)
	fmt.Fprintf(out, "Accessible: %d\n", len(accessible))
	fmt.Fprintf(out, "Gettable: %d\n", res.Removed)
	if printBoard {
		fmt.Fprintln(out, g)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
