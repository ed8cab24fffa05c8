// Package trace provides a hook that records the activity of a cache into a
// database.
package trace

import (
	"github.com/rs/xid"

	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/mem/cache"
	"github.com/sarchlab/cachesim/sim"
)

// Table names used by the DBTracer.
const (
	TransferTable = "cache_transfers"
	AccessTable   = "cache_accesses"
)

// transferEntry is a row of the transfer table.
type transferEntry struct {
	ID        string
	Location  string
	AccessSeq uint64
	Direction string
	StartAddr uint64
	EndAddr   uint64
	Size      int
}

// accessEntry is a row of the access table.
type accessEntry struct {
	ID        string
	Location  string
	AccessSeq uint64
	Address   uint64
	IsWrite   bool
	Data      int32
	SetID     int
	Tag       uint64
	Hit       bool
	Evicted   bool
	WroteBack bool
}

// A DBTracer is a hook that records every transfer and every access of the
// caches it is attached to. Transfers carry the sequence number of the
// access they belong to.
type DBTracer struct {
	dataRecorder datarecording.DataRecorder
	accessSeq    uint64
}

// NewDBTracer creates a DBTracer and the tables it writes to.
func NewDBTracer(dataRecorder datarecording.DataRecorder) *DBTracer {
	t := &DBTracer{
		dataRecorder: dataRecorder,
	}

	t.dataRecorder.CreateTable(TransferTable, transferEntry{})
	t.dataRecorder.CreateTable(AccessTable, accessEntry{})

	return t
}

// Func records the transfer or the access carried by ctx.
func (t *DBTracer) Func(ctx sim.HookCtx) {
	switch ctx.Pos {
	case cache.HookPosTransfer:
		t.recordTransfer(ctx)
	case cache.HookPosAccess:
		t.recordAccess(ctx)
	}
}

func (t *DBTracer) recordTransfer(ctx sim.HookCtx) {
	transfer := ctx.Item.(cache.Transfer)

	entry := transferEntry{
		ID:        xid.New().String(),
		Location:  locationOf(ctx.Domain),
		AccessSeq: t.accessSeq,
		Direction: transfer.Direction.String(),
		StartAddr: transfer.Address,
		EndAddr:   transfer.LastAddress(),
		Size:      transfer.Size,
	}

	t.dataRecorder.InsertData(TransferTable, entry)
}

func (t *DBTracer) recordAccess(ctx sim.HookCtx) {
	record := ctx.Item.(cache.AccessRecord)

	entry := accessEntry{
		ID:        xid.New().String(),
		Location:  locationOf(ctx.Domain),
		AccessSeq: t.accessSeq,
		Address:   record.Address,
		IsWrite:   record.IsWrite,
		Data:      record.Data,
		SetID:     record.SetID,
		Tag:       record.Tag,
		Hit:       record.Hit,
		Evicted:   record.Evicted,
		WroteBack: record.WroteBack,
	}

	t.dataRecorder.InsertData(AccessTable, entry)

	t.accessSeq++
}

func locationOf(domain sim.Hookable) string {
	named, ok := domain.(interface{ Name() string })
	if !ok {
		return ""
	}

	return named.Name()
}
