package cache

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/memory"
)

var _ = Describe("Builder", func() {
	var (
		output  *bytes.Buffer
		builder Builder
	)

	BeforeEach(func() {
		output = new(bytes.Buffer)
		builder = MakeBuilder().
			WithMemory(memory.NewIdealController(memory.NewStorage(65536))).
			WithOutput(output)
	})

	DescribeTable("invalid geometry",
		func(blockSize, numSets, blocksPerSet int, msg string) {
			comp, err := builder.
				WithBlockSize(blockSize).
				WithNumSets(numSets).
				WithBlocksPerSet(blocksPerSet).
				Build("Cache")

			Expect(comp).To(BeNil())
			Expect(err).To(MatchError(msg))

			var configErr *ConfigError
			Expect(errors.As(err, &configErr)).To(BeTrue())
			Expect(output.String()).To(BeEmpty())
		},
		Entry("zero block size", 0, 1, 1,
			"input parameters must be positive numbers"),
		Entry("negative sets", 4, -2, 1,
			"input parameters must be positive numbers"),
		Entry("zero associativity", 4, 2, 0,
			"input parameters must be positive numbers"),
		Entry("too many blocks", 4, 64, 8,
			"cache must be no larger than 256 blocks"),
		Entry("too many blocks checked before block size", 512, 512, 1,
			"cache must be no larger than 256 blocks"),
		Entry("block too large", 257, 1, 1,
			"blocks must be no larger than 256 words"),
	)

	It("should accept the largest geometry", func() {
		comp, err := builder.
			WithBlockSize(256).
			WithNumSets(16).
			WithBlocksPerSet(16).
			Build("Cache")

		Expect(err).NotTo(HaveOccurred())
		Expect(comp.NumSets()).To(Equal(16))
		Expect(comp.BlocksPerSet()).To(Equal(16))
		Expect(comp.BlockSize()).To(Equal(256))
	})

	It("should print the geometry summary", func() {
		comp, err := builder.
			WithBlockSize(4).
			WithNumSets(2).
			WithBlocksPerSet(1).
			Build("Cache")

		Expect(err).NotTo(HaveOccurred())
		Expect(comp.Name()).To(Equal("Cache"))
		Expect(output.String()).To(Equal(
			"Simulating a cache with 2 total lines; each line has 4 words\n" +
				"Each set in the cache contains 1 lines; there are 2 sets\n"))
	})

	It("should warn about sizes that are not powers of two", func() {
		_, err := builder.
			WithBlockSize(3).
			WithNumSets(6).
			WithBlocksPerSet(2).
			Build("Cache")

		Expect(err).NotTo(HaveOccurred())
		Expect(output.String()).To(Equal(
			"warning: blockSize 3 is not a power of 2\n" +
				"warning: numSets 6 is not a power of 2\n" +
				"Simulating a cache with 12 total lines; each line has 3 words\n" +
				"Each set in the cache contains 2 lines; there are 6 sets\n"))
	})

	It("should start with all blocks invalid", func() {
		comp, _ := builder.
			WithBlockSize(2).
			WithNumSets(4).
			WithBlocksPerSet(2).
			Build("Cache")

		for setID := 0; setID < 4; setID++ {
			for _, block := range comp.tags.GetSet(setID).Blocks {
				Expect(block.IsValid).To(BeFalse())
				Expect(block.IsDirty).To(BeFalse())
				Expect(block.Rank).To(Equal(0))
			}
		}
	})

	It("should install the transfer logger", func() {
		comp, _ := builder.Build("Cache")

		Expect(comp.NumHooks()).To(Equal(1))
		Expect(comp.Hooks()[0]).To(BeAssignableToTypeOf(&TransferLogger{}))
	})

	It("should panic without memory", func() {
		Expect(func() {
			_, _ = MakeBuilder().WithOutput(output).Build("Cache")
		}).To(Panic())
	})

	It("should panic on an unknown replace strategy", func() {
		Expect(func() {
			_, _ = builder.WithReplaceStrategy("random").Build("Cache")
		}).To(Panic())
	})
})
