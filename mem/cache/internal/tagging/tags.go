// Package tagging keeps track of what is stored in each line of a
// set-associative cache.
package tagging

// TagArray holds the blocks of a cache, organized in sets.
type TagArray interface {
	// Lookup returns the valid block in set setID that holds tag.
	Lookup(setID int, tag uint64) (*Block, bool)

	// GetSet returns the set with the given index.
	GetSet(setID int) *Set

	// Visit marks block as the most recently used block of its set.
	Visit(block *Block)

	// Reset invalidates all the blocks.
	Reset()

	NumSets() int
	NumWays() int
	BlockSize() int
}

// NewTagArray allocates all the blocks of a cache at once.
func NewTagArray(numSets, numWays, blockSize int) TagArray {
	t := &tagArrayImpl{
		numSets:   numSets,
		numWays:   numWays,
		blockSize: blockSize,
		blocks:    make([]Block, numSets*numWays),
		data:      make([]int32, numSets*numWays*blockSize),
		sets:      make([]Set, numSets),
	}

	for i := range t.sets {
		t.sets[i].Blocks = t.blocks[i*numWays : (i+1)*numWays]
	}

	for i := range t.blocks {
		block := &t.blocks[i]
		block.SetID = i / numWays
		block.WayID = i % numWays
		block.Data = t.data[i*blockSize : (i+1)*blockSize : (i+1)*blockSize]
	}

	return t
}

// A Block is a cache line together with its bookkeeping information.
//
// Rank is the recency label of the block within its set. Rank 0 is the most
// recently used block. Once all the blocks of a set have been filled, the
// ranks of the set are a permutation of 0..numWays-1.
type Block struct {
	SetID   int
	WayID   int
	Tag     uint64
	IsValid bool
	IsDirty bool
	Rank    int
	Data    []int32
}

// A Set is the list of blocks that a given set index can be stored in.
type Set struct {
	Blocks []Block
}

type tagArrayImpl struct {
	numSets   int
	numWays   int
	blockSize int
	blocks    []Block
	data      []int32
	sets      []Set
}

func (t *tagArrayImpl) NumSets() int {
	return t.numSets
}

func (t *tagArrayImpl) NumWays() int {
	return t.numWays
}

func (t *tagArrayImpl) BlockSize() int {
	return t.blockSize
}

// TotalSize returns the number of words the cache can hold.
func (t *tagArrayImpl) TotalSize() int {
	return t.numSets * t.numWays * t.blockSize
}

func (t *tagArrayImpl) GetSet(setID int) *Set {
	return &t.sets[setID]
}

func (t *tagArrayImpl) Lookup(setID int, tag uint64) (*Block, bool) {
	set := t.GetSet(setID)
	for i := range set.Blocks {
		block := &set.Blocks[i]
		if block.IsValid && block.Tag == tag {
			return block, true
		}
	}

	return nil, false
}

// Visit moves block to the front of the recency order. Every block of the
// set whose rank is not larger than the old rank of block moves back by one.
func (t *tagArrayImpl) Visit(block *Block) {
	set := t.GetSet(block.SetID)
	oldRank := block.Rank

	for i := range set.Blocks {
		if set.Blocks[i].Rank <= oldRank {
			set.Blocks[i].Rank++
		}
	}

	block.Rank = 0
}

func (t *tagArrayImpl) Reset() {
	for i := range t.blocks {
		t.blocks[i].IsValid = false
		t.blocks[i].IsDirty = false
		t.blocks[i].Rank = 0
		t.blocks[i].Tag = 0
	}

	clear(t.data)
}
