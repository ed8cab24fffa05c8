package cache

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/sim"
)

var _ = Describe("TransferLogger", func() {
	var (
		buf    *bytes.Buffer
		logger *TransferLogger
	)

	BeforeEach(func() {
		buf = new(bytes.Buffer)
		logger = NewTransferLogger(buf)
	})

	DescribeTable("line format",
		func(t Transfer, line string) {
			logger.Func(sim.HookCtx{Pos: HookPosTransfer, Item: t})

			Expect(buf.String()).To(Equal(line + "\n"))
		},
		Entry("cache to processor",
			Transfer{Address: 5, Size: 1, Direction: CacheToProcessor},
			"$$$ transferring word [5-5] from the cache to the processor"),
		Entry("processor to cache",
			Transfer{Address: 9, Size: 1, Direction: ProcessorToCache},
			"$$$ transferring word [9-9] from the processor to the cache"),
		Entry("memory to cache",
			Transfer{Address: 16, Size: 8, Direction: MemoryToCache},
			"$$$ transferring word [16-23] from the memory to the cache"),
		Entry("cache to memory",
			Transfer{Address: 0, Size: 4, Direction: CacheToMemory},
			"$$$ transferring word [0-3] from the cache to the memory"),
		Entry("cache to nowhere",
			Transfer{Address: 256, Size: 256, Direction: CacheToNowhere},
			"$$$ transferring word [256-511] from the cache to nowhere"),
	)

	It("should ignore other hook positions", func() {
		logger.Func(sim.HookCtx{Pos: HookPosAccess, Item: AccessRecord{}})

		Expect(buf.String()).To(BeEmpty())
	})

	It("should panic on an unknown direction", func() {
		t := Transfer{Address: 1, Size: 1, Direction: Direction(17)}

		Expect(func() {
			logger.Func(sim.HookCtx{Pos: HookPosTransfer, Item: t})
		}).To(Panic())
	})
})

var _ = Describe("Direction", func() {
	It("should only accept the five directions", func() {
		Expect(CacheToNowhere.IsValid()).To(BeTrue())
		Expect(Direction(-1).IsValid()).To(BeFalse())
		Expect(numDirections.IsValid()).To(BeFalse())
		Expect(Direction(9).String()).To(Equal("Direction(9)"))
	})

	It("should tell processor-facing directions", func() {
		Expect(CacheToProcessor.IsProcessorFacing()).To(BeTrue())
		Expect(ProcessorToCache.IsProcessorFacing()).To(BeTrue())
		Expect(MemoryToCache.IsProcessorFacing()).To(BeFalse())
		Expect(CacheToMemory.IsProcessorFacing()).To(BeFalse())
		Expect(CacheToNowhere.IsProcessorFacing()).To(BeFalse())
	})
})
