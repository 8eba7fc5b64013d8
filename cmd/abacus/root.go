package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/abacus/internal/generator"
	"github.com/aretw0/abacus/internal/logging"
	"github.com/aretw0/abacus/pkg/adapters/gosym"
	"github.com/aretw0/abacus/pkg/adapters/memory"
)

var rootCmd = &cobra.Command{
	Use:   "abacus",
	Short: "Abacus is an algebra practice problem generator",
	Long:  `Abacus samples algebra practice problems from YAML worksheet definitions and assembles them into printable LaTeX or Markdown worksheets.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Seed for deterministic sampling (0 picks a random seed)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	name, _ := cmd.Flags().GetString("log-level")
	level := slog.LevelInfo
	switch name {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return logging.New(level)
}

// newGenerator wires the default stack: gosymbol engine, in-memory store.
// The returned rand source is shared with worksheet shuffling so a seed
// pins the whole run.
func newGenerator(cmd *cobra.Command, configSeed uint64) (*generator.Generator, *rand.Rand, *slog.Logger) {
	logger := newLogger(cmd)

	seed := configSeed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	gen := generator.New(gosym.New(), memory.NewStore(),
		generator.WithLogger(logger),
		generator.WithRand(rng),
	)
	return gen, rng, logger
}
