package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ridgeline/astar"
	"github.com/katalvlaran/ridgeline/config"
	"github.com/katalvlaran/ridgeline/logging"
	"github.com/katalvlaran/ridgeline/solver"
	"github.com/katalvlaran/ridgeline/telemetry"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	jsonLogs   bool
}

// solveFlags belong to the solve subcommand.
type solveFlags struct {
	path     bool
	estimate string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags

	root := &cobra.Command{
		Use:   "ridgeline",
		Short: "Shortest climbs across an elevation grid",
		Long: `ridgeline reads a grid of elevations 'a'..'z' with a start 'S' and an
end 'E' and finds the fewest steps to the end, where each step may climb
at most one level.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&rf.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&rf.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&rf.jsonLogs, "json-logs", false, "emit logs as JSON")

	root.AddCommand(newSolveCmd(&rf))

	return root
}

func newSolveCmd(rf *rootFlags) *cobra.Command {
	var sf solveFlags

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print both shortest step counts for a height map",
		Long: `solve reads a height map from file, or from stdin when file is absent
or "-", and prints:

  start to end: N
  nearest lowland to end: N

"no route found" replaces N when the end cannot be reached.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, rf, &sf)
		},
	}
	cmd.Flags().BoolVar(&sf.path, "path", false, "draw each route over the map")
	cmd.Flags().StringVar(&sf.estimate, "estimate", "", "forward estimate anchor: source or target")

	return cmd
}

// loadConfig reads the configuration file and applies flags that were set
// explicitly on the command line.
func loadConfig(cmd *cobra.Command, rf *rootFlags, sf *solveFlags) (config.Config, error) {
	cfg, err := config.Load(rf.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = rf.logLevel
	}
	if flags.Changed("json-logs") {
		cfg.Log.JSON = rf.jsonLogs
	}
	if flags.Changed("path") {
		cfg.Search.ReturnPath = sf.path
	}
	if flags.Changed("estimate") {
		cfg.Search.Estimate = sf.estimate
	}

	return cfg, cfg.Validate()
}

func runSolve(cmd *cobra.Command, args []string, rf *rootFlags, sf *solveFlags) error {
	cfg, err := loadConfig(cmd, rf, sf)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := telemetry.Init(ctx, cfg.Telemetry, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			logger.Warn("telemetry shutdown failed", slog.Any("error", serr))
		}
	}()

	estimate, err := astar.ParseEstimate(cfg.Search.Estimate)
	if err != nil {
		return err
	}
	opts := []solver.Option{solver.WithEstimate(estimate)}
	if cfg.Search.ReturnPath {
		opts = append(opts, solver.WithReturnPath())
	}
	s, err := solver.New(logger, opts...)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	rep, err := s.Solve(ctx, in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range rep.Lines() {
		fmt.Fprintln(out, line)
	}
	if cfg.Search.ReturnPath {
		if drawing := rep.Render(); drawing != "" {
			fmt.Fprintf(out, "\n%s\n", drawing)
		}
	}

	return nil
}

// openInput returns stdin for no argument or "-", else the named file.
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}
