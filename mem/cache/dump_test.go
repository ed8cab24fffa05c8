package cache

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/memory"
)

var _ = Describe("Dump", func() {
	It("should print every block of every set", func() {
		ctrl := memory.NewIdealController(memory.NewStorage(64))
		Expect(ctrl.Load([]int32{1, 2, 3, 4, 5, 6})).To(Succeed())

		output := new(bytes.Buffer)
		comp, err := MakeBuilder().
			WithBlockSize(2).
			WithNumSets(2).
			WithBlocksPerSet(2).
			WithMemory(ctrl).
			WithOutput(output).
			Build("Cache")
		Expect(err).NotTo(HaveOccurred())

		comp.Access(0, false, 0)
		comp.Access(2, false, 0)
		comp.Access(5, true, -7)

		dump := new(bytes.Buffer)
		comp.Dump(dump)

		Expect(dump.String()).To(Equal("\ncache:\n" +
			"\tset 0:\n" +
			"\t\t[ 0 ]: { 1 2 }\n" +
			"\t\t[ 1 ]: { 5 -7 }\n" +
			"\tset 1:\n" +
			"\t\t[ 0 ]: { 3 4 }\n" +
			"\t\t[ 1 ]: { 0 0 }\n" +
			"end cache\n"))
	})

	It("should not print statistics", func() {
		ctrl := memory.NewIdealController(memory.NewStorage(64))
		comp, _ := MakeBuilder().
			WithMemory(ctrl).
			WithOutput(new(bytes.Buffer)).
			Build("Cache")
		comp.Access(0, false, 0)

		buf := new(bytes.Buffer)
		comp.PrintStats(buf)

		Expect(buf.String()).To(BeEmpty())
	})
})
