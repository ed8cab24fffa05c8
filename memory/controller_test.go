package memory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/memory"
)

var _ = Describe("IdealController", func() {
	var (
		storage *memory.Storage
		ctrl    *memory.IdealController
	)

	BeforeEach(func() {
		storage = memory.NewStorage(65536)
		ctrl = memory.NewIdealController(storage)
	})

	It("should count every access", func() {
		ctrl.Access(3, true, 9)
		ctrl.Access(3, false, 0)
		ctrl.Access(4, false, 0)

		Expect(ctrl.NumAccesses()).To(Equal(3))
	})

	It("should return the written word", func() {
		Expect(ctrl.Access(10, true, 42)).To(Equal(int32(42)))
		Expect(ctrl.Access(10, false, 0)).To(Equal(int32(42)))
	})

	It("should not count loading or peeking", func() {
		Expect(ctrl.Load([]int32{5, 6, 7})).To(Succeed())

		v, err := ctrl.Peek(2)

		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(int32(7)))
		Expect(ctrl.NumAccesses()).To(Equal(0))
		Expect(ctrl.Extent()).To(Equal(uint64(3)))
	})

	It("should grow the extent on writes past the end", func() {
		Expect(ctrl.Load([]int32{1, 2})).To(Succeed())

		ctrl.Access(1, true, 0)
		Expect(ctrl.Extent()).To(Equal(uint64(2)))

		ctrl.Access(9, true, 0)
		Expect(ctrl.Extent()).To(Equal(uint64(10)))
	})

	It("should not grow the extent on reads", func() {
		ctrl.Access(20, false, 0)

		Expect(ctrl.Extent()).To(Equal(uint64(0)))
	})

	It("should report the storage capacity", func() {
		var bounded memory.Bounded = ctrl

		Expect(bounded.Capacity()).To(Equal(uint64(65536)))
	})

	It("should panic on an address the storage rejects", func() {
		Expect(func() { ctrl.Access(65536, false, 0) }).To(Panic())
	})
})
