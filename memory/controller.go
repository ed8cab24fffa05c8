package memory

// A Controller is the memory interface seen by the cache. One call accesses
// exactly one word. When isWrite is set, data is stored at addr. The return
// value is the word at addr after the access.
//
// Controllers are assumed never to fail or block.
type Controller interface {
	Access(addr uint64, isWrite bool, data int32) int32
}

// A Bounded controller reports how many words of memory it serves.
type Bounded interface {
	Capacity() uint64
}

// An IdealController serves every access immediately from a Storage and
// counts how many times it has been called.
type IdealController struct {
	storage     *Storage
	numAccesses int
	extent      uint64
}

// NewIdealController creates a controller backed by storage.
func NewIdealController(storage *Storage) *IdealController {
	return &IdealController{storage: storage}
}

// Access reads or writes one word. An address that the storage rejects
// means the caller computed an impossible address, so Access panics.
func (c *IdealController) Access(addr uint64, isWrite bool, data int32) int32 {
	c.numAccesses++

	if isWrite {
		if err := c.storage.Write(addr, data); err != nil {
			panic(err)
		}

		c.growExtent(addr)
	}

	value, err := c.storage.Read(addr)
	if err != nil {
		panic(err)
	}

	return value
}

// Capacity returns the number of words in the underlying storage.
func (c *IdealController) Capacity() uint64 {
	return c.storage.Capacity()
}

// NumAccesses returns the number of times Access has been called.
func (c *IdealController) NumAccesses() int {
	return c.numAccesses
}

// Extent returns one past the highest address that holds program data,
// either loaded with Load or written through Access.
func (c *IdealController) Extent() uint64 {
	return c.extent
}

// Load places words at consecutive addresses starting from zero. Loading
// does not count as memory accesses.
func (c *IdealController) Load(words []int32) error {
	for i, w := range words {
		if err := c.storage.Write(uint64(i), w); err != nil {
			return err
		}
	}

	if uint64(len(words)) > c.extent {
		c.extent = uint64(len(words))
	}

	return nil
}

// Peek returns the word at addr without counting an access.
func (c *IdealController) Peek(addr uint64) (int32, error) {
	return c.storage.Read(addr)
}

func (c *IdealController) growExtent(addr uint64) {
	if addr >= c.extent {
		c.extent = addr + 1
	}
}
