package memory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/memory"
)

var _ = Describe("Storage", func() {
	It("should read zero from untouched words", func() {
		storage := memory.NewStorage(8192)

		res, err := storage.Read(100)

		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(Equal(int32(0)))
	})

	It("should read and write in single unit", func() {
		storage := memory.NewStorage(4096)
		Expect(storage.Write(0, 1)).To(Succeed())
		Expect(storage.Write(1, -2)).To(Succeed())

		res, _ := storage.Read(0)
		Expect(res).To(Equal(int32(1)))

		res, _ = storage.Read(1)
		Expect(res).To(Equal(int32(-2)))
	})

	It("should read and write across units", func() {
		storage := memory.NewStorage(8192)
		Expect(storage.Write(4095, 7)).To(Succeed())
		Expect(storage.Write(4096, 8)).To(Succeed())

		res, _ := storage.Read(4095)
		Expect(res).To(Equal(int32(7)))

		res, _ = storage.Read(4096)
		Expect(res).To(Equal(int32(8)))
	})

	It("should return error if accessing over the capacity", func() {
		storage := memory.NewStorage(4096)

		err := storage.Write(4096, 1)
		Expect(err).To(MatchError(memory.ErrOutOfRange))

		_, err = storage.Read(5000)
		Expect(err).To(MatchError(memory.ErrOutOfRange))
	})
})
