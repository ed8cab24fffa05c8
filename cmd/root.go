// Package cmd provides the command-line interface of the cache simulator.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/cachesim/mem/cache"
)

var (
	configPath string
	traceDB    string
	dump       bool
	printStats bool
	maxSteps   int
	logLevel   string
)

// rootCmd runs a machine-code program through a simulated cache.
var rootCmd = &cobra.Command{
	Use:   "cachesim <machine-code file> [blockSize numSets blocksPerSet]",
	Short: "Simulate an LC2K processor behind a set-associative cache",
	Long: `Cachesim runs an LC2K machine-code program and prints every ` +
		`word transferred between the processor, the cache, and the memory.`,
	Args: cobra.RangeArgs(1, 4),
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if code := execute(args, os.Stdout, logrus.StandardLogger()); code != 0 {
			atexit.Exit(code)
		}
	},
}

// execute runs the simulation and returns the exit code.
func execute(args []string, out io.Writer, logger logrus.FieldLogger) int {
	geometry, err := resolveGeometry(configPath, args[1:])
	if err == nil {
		err = runSimulation(options{
			programPath: args[0],
			geometry:    geometry,
			traceDB:     traceDB,
			dump:        dump,
			stats:       printStats,
			maxSteps:    maxSteps,
		}, out, logger)
	}

	return report(err, out, logger)
}

func report(err error, out io.Writer, logger logrus.FieldLogger) int {
	if err == nil {
		return 0
	}

	var configErr *cache.ConfigError
	var argErr *argError
	if errors.As(err, &configErr) || errors.As(err, &argErr) {
		fmt.Fprintf(out, "error: %s\n", err)
		return 1
	}

	logger.Error(err)

	return 1
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("cannot load .env: %v", err)
	}

	rootCmd.Flags().StringVar(&configPath, "config", "",
		"YAML file with block_size, num_sets, and blocks_per_set")
	rootCmd.Flags().StringVar(&traceDB, "trace-db",
		envDefault("CACHESIM_TRACE_DB", ""),
		"Record transfers and accesses into <name>.sqlite3")
	rootCmd.Flags().BoolVar(&dump, "dump", false,
		"Print the cache contents after the run")
	rootCmd.Flags().BoolVar(&printStats, "stats", false,
		"Log cache statistics after the run")
	rootCmd.Flags().IntVar(&maxSteps, "max-steps", 0,
		"Stop after this many instructions, 0 for no limit")
	rootCmd.Flags().StringVar(&logLevel, "log-level",
		envDefault("CACHESIM_LOG_LEVEL", "warn"),
		"Log level (trace, debug, info, warn, error, fatal, panic)")
}
