package tagging

// A VictimFinder decides which block of a set receives a new cache line.
type VictimFinder interface {
	// FindVictim returns the block to fill. If the returned block is valid,
	// its content has to be evicted first. It returns nil if no block can be
	// used.
	FindVictim(set *Set) *Block
}

// LRUVictimFinder picks a free block if there is one, and the least recently
// used block otherwise.
type LRUVictimFinder struct {
}

// NewLRUVictimFinder returns a newly constructed LRU victim finder.
func NewLRUVictimFinder() *LRUVictimFinder {
	e := new(LRUVictimFinder)
	return e
}

// FindVictim returns the first invalid block in the set. If all the blocks
// are valid, it returns the block with the largest rank. On equal ranks the
// block with the lower way index wins.
func (e *LRUVictimFinder) FindVictim(set *Set) *Block {
	for i := range set.Blocks {
		if !set.Blocks[i].IsValid {
			return &set.Blocks[i]
		}
	}

	var victim *Block

	highestRank := -1
	for i := range set.Blocks {
		if set.Blocks[i].Rank > highestRank {
			highestRank = set.Blocks[i].Rank
			victim = &set.Blocks[i]
		}
	}

	return victim
}
