package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/structs"
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/lc2k"
	"github.com/sarchlab/cachesim/mem/cache"
	"github.com/sarchlab/cachesim/mem/trace"
	"github.com/sarchlab/cachesim/memory"
)

type options struct {
	programPath string
	geometry    Geometry
	traceDB     string
	dump        bool
	stats       bool
	maxSteps    int
}

// runSimulation loads a program, runs it through a cache of the given
// geometry, and writes the simulation output to out.
func runSimulation(
	opts options,
	out io.Writer,
	logger logrus.FieldLogger,
) error {
	program, err := readProgram(opts.programPath)
	if err != nil {
		return err
	}

	ctrl := memory.NewIdealController(memory.NewStorage(lc2k.MemorySize))
	if err := ctrl.Load(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	c, err := cache.MakeBuilder().
		WithBlockSize(opts.geometry.BlockSize).
		WithNumSets(opts.geometry.NumSets).
		WithBlocksPerSet(opts.geometry.BlocksPerSet).
		WithMemory(ctrl).
		WithOutput(out).
		WithLogger(logger).
		Build("Cache")
	if err != nil {
		return err
	}

	if opts.traceDB != "" {
		recorder := datarecording.New(opts.traceDB)
		defer recorder.Close()

		c.AcceptHook(trace.NewDBTracer(recorder))
		logger.WithField("db", opts.traceDB+".sqlite3").
			Info("recording cache transfers")
	}

	logger.WithField("words", len(program)).Debug("program loaded")

	machine := lc2k.NewMachine(c, ctrl, out)
	if err := machine.Run(opts.maxSteps); err != nil {
		return fmt.Errorf("running %s: %w", opts.programPath, err)
	}

	if opts.dump {
		c.Dump(out)
	}

	c.PrintStats(out)

	if opts.stats {
		fields := logrus.Fields(structs.Map(c.Stats()))
		fields["memory_accesses"] = ctrl.NumAccesses()
		logger.WithFields(fields).Info("cache statistics")
	}

	return nil
}

func readProgram(path string) ([]int32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &argError{fmt.Sprintf("can't open file %s", path)}
	}
	defer f.Close()

	program, err := lc2k.LoadProgram(f)
	if err != nil {
		return nil, &argError{err.Error()}
	}

	return program, nil
}
