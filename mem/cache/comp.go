// Package cache implements a functional set-associative, write-back,
// write-allocate cache with LRU replacement.
package cache

import (
	"github.com/sirupsen/logrus"

	"github.com/sarchlab/cachesim/mem/cache/internal/tagging"
	"github.com/sarchlab/cachesim/memory"
	"github.com/sarchlab/cachesim/sim"
)

// A Comp is a cache placed between a processor and a memory controller.
//
// A Comp processes one access at a time and is not safe for concurrent use.
type Comp struct {
	*sim.HookableBase

	name string

	tags         tagging.TagArray
	victimFinder tagging.VictimFinder
	mapper       tagging.AddressMapper
	memory       memory.Controller
	memCapacity  uint64
	logger       logrus.FieldLogger

	stats Statistics
}

// Name returns the name of the cache.
func (c *Comp) Name() string {
	return c.name
}

// BlockSize returns the number of words in a block.
func (c *Comp) BlockSize() int {
	return c.tags.BlockSize()
}

// NumSets returns the number of sets.
func (c *Comp) NumSets() int {
	return c.tags.NumSets()
}

// BlocksPerSet returns the associativity of the cache.
func (c *Comp) BlocksPerSet() int {
	return c.tags.NumWays()
}

// Access reads or writes the word at addr through the cache. A miss first
// brings the whole block in from memory, evicting the least recently used
// block of the set if there is no free one. When isWrite is set, data is
// stored in the cache and returned. Otherwise the cached word is returned.
func (c *Comp) Access(addr uint64, isWrite bool, data int32) int32 {
	offset := c.mapper.Offset(addr)
	setID := c.mapper.SetIndex(addr)
	tag := c.mapper.Tag(addr)

	record := AccessRecord{
		Address: addr,
		IsWrite: isWrite,
		SetID:   setID,
		Tag:     tag,
	}

	block, hit := c.tags.Lookup(setID, tag)
	record.Hit = hit

	if !hit {
		var outcome missOutcome

		block, outcome = c.handleMiss(addr, setID, tag)
		record.Evicted = outcome.evicted
		record.WroteBack = outcome.wroteBack
	}

	c.tags.Visit(block)

	if isWrite {
		block.Data[offset] = data
		block.IsDirty = true
		c.traceTransfer(addr, 1, ProcessorToCache)
	} else {
		c.traceTransfer(addr, 1, CacheToProcessor)
	}

	record.Data = block.Data[offset]

	c.stats.count(record)
	c.traceAccess(record)

	c.logger.WithFields(logrus.Fields{
		"cache": c.name,
		"addr":  addr,
		"set":   setID,
		"tag":   tag,
		"way":   block.WayID,
		"write": isWrite,
		"hit":   hit,
	}).Debug("cache access")

	return record.Data
}

// Reset invalidates every block and clears the statistics. Dirty data is
// dropped without being written back.
func (c *Comp) Reset() {
	c.tags.Reset()
	c.stats = Statistics{}
}
