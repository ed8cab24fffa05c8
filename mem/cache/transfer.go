package cache

import (
	"fmt"
	"io"

	"github.com/sarchlab/cachesim/sim"
)

// Direction tells where the data of a transfer comes from and goes to.
type Direction int

// The directions a cache can move data in.
const (
	CacheToProcessor Direction = iota
	ProcessorToCache
	MemoryToCache
	CacheToMemory
	CacheToNowhere
	numDirections
)

var directionLabels = [numDirections]string{
	CacheToProcessor: "from the cache to the processor",
	ProcessorToCache: "from the processor to the cache",
	MemoryToCache:    "from the memory to the cache",
	CacheToMemory:    "from the cache to the memory",
	CacheToNowhere:   "from the cache to nowhere",
}

// IsValid returns true if d is one of the defined directions.
func (d Direction) IsValid() bool {
	return d >= 0 && d < numDirections
}

// String returns the label used in the transfer log.
func (d Direction) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionLabels[d]
}

// IsProcessorFacing returns true for the transfers between the cache and the
// processor.
func (d Direction) IsProcessorFacing() bool {
	return d == CacheToProcessor || d == ProcessorToCache
}

// A Transfer is one movement of consecutive words.
type Transfer struct {
	Address   uint64
	Size      int
	Direction Direction
}

// LastAddress returns the address of the last word moved.
func (t Transfer) LastAddress() uint64 {
	return t.Address + uint64(t.Size) - 1
}

// HookPosTransfer marks that the cache moved data. The hook item is a
// Transfer.
var HookPosTransfer = &sim.HookPos{Name: "CacheTransfer"}

// HookPosAccess marks that the cache completed an access. The hook item is
// an AccessRecord.
var HookPosAccess = &sim.HookPos{Name: "CacheAccess"}

// An AccessRecord summarizes one completed access.
type AccessRecord struct {
	Address   uint64
	IsWrite   bool
	Data      int32
	SetID     int
	Tag       uint64
	Hit       bool
	Evicted   bool
	WroteBack bool
}

// A TransferLogger writes one line for each transfer of the cache it is
// attached to. The format of the lines is fixed, as tools compare the log
// byte by byte.
type TransferLogger struct {
	sim.LogHookBase
}

// NewTransferLogger creates a TransferLogger that writes to w.
func NewTransferLogger(w io.Writer) *TransferLogger {
	return &TransferLogger{LogHookBase: sim.NewLogHookBase(w)}
}

// Func writes the line of a transfer. It ignores other hook positions.
func (l *TransferLogger) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosTransfer {
		return
	}

	t := ctx.Item.(Transfer)
	if !t.Direction.IsValid() {
		panic(fmt.Sprintf("unrecognized transfer direction %d", int(t.Direction)))
	}

	l.Printf("$$$ transferring word [%d-%d] %s",
		t.Address, t.LastAddress(), t.Direction)
}
