package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildVersion is set at build time via ldflags.
var buildVersion = "dev"

// Global persistent flags, bound in newRootCmd.
var (
	flagConfigPath string
	flagAlgorithm  string
	flagAgent      string
	flagVerbose    bool
)

// CLIContext bundles the resolved settings and logger every subcommand
// needs. Built once in PersistentPreRunE and threaded through the command's
// context, eliminating redundant config/logger construction in each RunE.
type CLIContext struct {
	Algorithm string
	Agent     string
	Log       *zap.Logger
}

type cliContextKey struct{}

func cliContextFrom(ctx context.Context) *CLIContext {
	cc, _ := ctx.Value(cliContextKey{}).(*CLIContext)
	return cc
}

func mustCLIContext(ctx context.Context) *CLIContext {
	cc := cliContextFrom(ctx)
	if cc == nil {
		panic("BUG: CLIContext not found in context — PersistentPreRunE did not run")
	}
	return cc
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "seqcrdtctl",
		Short:         "Drive the sequence-CRDT integration engine from the command line",
		Version:       buildVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadCLIContext(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfigPath, "config", "./seqcrdt.toml", "config file path")
	cmd.PersistentFlags().StringVar(&flagAlgorithm, "algorithm", "", "integration algorithm: yjs, yjsMod, automerge, sync9")
	cmd.PersistentFlags().StringVar(&flagAgent, "agent", "", "default agent name for this run")
	cmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging, including lookup hit/miss telemetry")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newFuzzCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadCLIContext resolves settings from defaults, the config file, and CLI
// flags (flags win), builds the logger, and stashes the result on the
// command's context.
func loadCLIContext(cmd *cobra.Command) error {
	fileCfg, err := loadFileConfig(flagConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	algorithm := fileCfg.Algorithm
	if flagAlgorithm != "" {
		algorithm = flagAlgorithm
	}
	if _, ok := algorithmByName(algorithm); !ok {
		return fmt.Errorf("unknown algorithm %q", algorithm)
	}

	agent := fileCfg.Agent
	if flagAgent != "" {
		agent = flagAgent
	}
	if agent == "" {
		agent = uuid.NewString()
	}

	verbose := fileCfg.Verbose || flagVerbose
	log, err := buildLogger(verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	cc := &CLIContext{Algorithm: algorithm, Agent: agent, Log: log}
	cmd.SetContext(context.WithValue(cmd.Context(), cliContextKey{}, cc))
	return nil
}

// buildLogger returns a production-config logger for normal runs, or a
// development-config one (human-readable, debug-enabled) under --verbose.
func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
