package cache

import (
	"github.com/sarchlab/cachesim/mem/cache/internal/tagging"
)

type missOutcome struct {
	evicted   bool
	wroteBack bool
}

// handleMiss finds a block in the set for the data at addr, evicting the
// previous content if needed, and fills the block from memory.
func (c *Comp) handleMiss(
	addr uint64,
	setID int,
	tag uint64,
) (*tagging.Block, missOutcome) {
	outcome := missOutcome{}

	block := c.victimFinder.FindVictim(c.tags.GetSet(setID))
	if block == nil {
		panic(&InvariantError{Address: addr, SetID: setID})
	}

	if block.IsValid {
		outcome.evicted = true
		outcome.wroteBack = c.evict(block)
	}

	c.fill(block, addr, tag)

	return block, outcome
}

// evict removes the content of a valid block. Dirty data is written back to
// memory. It returns true if a write-back happened.
func (c *Comp) evict(block *tagging.Block) bool {
	baseAddr := c.mapper.BlockAddress(block.Tag, block.SetID)
	size := len(block.Data)

	if !block.IsDirty {
		c.traceTransfer(baseAddr, size, CacheToNowhere)
		return false
	}

	for i, word := range block.Data {
		if !c.inMemory(baseAddr + uint64(i)) {
			break
		}

		c.memory.Access(baseAddr+uint64(i), true, word)
	}

	c.traceTransfer(baseAddr, size, CacheToMemory)

	return true
}

func (c *Comp) fill(block *tagging.Block, addr uint64, tag uint64) {
	size := len(block.Data)
	baseAddr := addr - addr%uint64(size)

	for i := range block.Data {
		if !c.inMemory(baseAddr + uint64(i)) {
			block.Data[i] = 0
			continue
		}

		block.Data[i] = c.memory.Access(baseAddr+uint64(i), false, 0)
	}

	block.IsValid = true
	block.IsDirty = false
	block.Tag = tag

	c.traceTransfer(baseAddr, size, MemoryToCache)
}

// inMemory tells if addr is backed by memory. Blocks of a size that is not
// a power of two may hang over the end of memory. Words past the end read
// as zero and are never written back.
func (c *Comp) inMemory(addr uint64) bool {
	return addr < c.memCapacity
}
