package cache

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sarchlab/cachesim/mem/cache/internal/tagging"
	"github.com/sarchlab/cachesim/memory"
	"github.com/sarchlab/cachesim/sim"
)

// Builder can build caches.
type Builder struct {
	blockSize       int
	numSets         int
	blocksPerSet    int
	replaceStrategy string
	memory          memory.Controller
	output          io.Writer
	logger          logrus.FieldLogger
}

// MakeBuilder creates a new builder with a single one-word block.
func MakeBuilder() Builder {
	return Builder{
		blockSize:       1,
		numSets:         1,
		blocksPerSet:    1,
		replaceStrategy: "lru",
		output:          os.Stdout,
		logger:          logrus.StandardLogger(),
	}
}

// WithBlockSize sets the number of words in a block.
func (b Builder) WithBlockSize(blockSize int) Builder {
	b.blockSize = blockSize
	return b
}

// WithNumSets sets the number of sets.
func (b Builder) WithNumSets(numSets int) Builder {
	b.numSets = numSets
	return b
}

// WithBlocksPerSet sets the associativity.
func (b Builder) WithBlocksPerSet(blocksPerSet int) Builder {
	b.blocksPerSet = blocksPerSet
	return b
}

// WithReplaceStrategy sets how victims are picked. Only "lru" is supported.
func (b Builder) WithReplaceStrategy(replaceStrategy string) Builder {
	b.replaceStrategy = replaceStrategy
	return b
}

// WithMemory sets the memory below the cache.
func (b Builder) WithMemory(memory memory.Controller) Builder {
	b.memory = memory
	return b
}

// WithOutput sets where the geometry summary, the warnings, and the
// transfer log are written.
func (b Builder) WithOutput(output io.Writer) Builder {
	b.output = output
	return b
}

// WithLogger sets the logger for diagnostic messages.
func (b Builder) WithLogger(logger logrus.FieldLogger) Builder {
	b.logger = logger
	return b
}

// Build validates the geometry and builds a cache with all blocks invalid.
// An invalid geometry returns a *ConfigError. Sizes that are not powers of
// two are accepted with a warning.
func (b Builder) Build(name string) (*Comp, error) {
	if b.memory == nil {
		panic("cache " + name + " has no memory")
	}

	if err := b.validate(); err != nil {
		return nil, err
	}

	b.warnNonPowerOfTwo()
	b.printSummary()

	comp := &Comp{
		HookableBase: sim.NewHookableBase(),
		name:         name,
		tags: tagging.NewTagArray(
			b.numSets, b.blocksPerSet, b.blockSize),
		victimFinder: b.createVictimFinder(),
		mapper:       tagging.NewAddressMapper(b.blockSize, b.numSets),
		memory:       b.memory,
		memCapacity:  b.memoryCapacity(),
		logger:       b.logger,
	}

	comp.AcceptHook(NewTransferLogger(b.output))

	return comp, nil
}

func (b Builder) memoryCapacity() uint64 {
	if bounded, ok := b.memory.(memory.Bounded); ok {
		return bounded.Capacity()
	}

	return math.MaxUint64
}

func (b Builder) validate() error {
	if b.blockSize <= 0 || b.numSets <= 0 || b.blocksPerSet <= 0 {
		return &ConfigError{msg: "input parameters must be positive numbers"}
	}

	if b.numSets*b.blocksPerSet > MaxNumBlocks {
		return &ConfigError{msg: fmt.Sprintf(
			"cache must be no larger than %d blocks", MaxNumBlocks)}
	}

	if b.blockSize > MaxBlockSize {
		return &ConfigError{msg: fmt.Sprintf(
			"blocks must be no larger than %d words", MaxBlockSize)}
	}

	return nil
}

func (b Builder) warnNonPowerOfTwo() {
	if !tagging.IsPowerOfTwo(b.blockSize) {
		fmt.Fprintf(b.output,
			"warning: blockSize %d is not a power of 2\n", b.blockSize)
	}

	if !tagging.IsPowerOfTwo(b.numSets) {
		fmt.Fprintf(b.output,
			"warning: numSets %d is not a power of 2\n", b.numSets)
	}
}

func (b Builder) printSummary() {
	fmt.Fprintf(b.output,
		"Simulating a cache with %d total lines; each line has %d words\n",
		b.numSets*b.blocksPerSet, b.blockSize)
	fmt.Fprintf(b.output,
		"Each set in the cache contains %d lines; there are %d sets\n",
		b.blocksPerSet, b.numSets)
}

func (b Builder) createVictimFinder() tagging.VictimFinder {
	var victimFinder tagging.VictimFinder

	switch b.replaceStrategy {
	case "lru":
		victimFinder = tagging.NewLRUVictimFinder()
	default:
		panic("unknown replace strategy: " + b.replaceStrategy)
	}

	return victimFinder
}
