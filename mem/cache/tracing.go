package cache

import (
	"github.com/sarchlab/cachesim/sim"
)

func (c *Comp) traceTransfer(addr uint64, size int, dir Direction) {
	ctx := sim.HookCtx{
		Domain: c,
		Pos:    HookPosTransfer,
		Item: Transfer{
			Address:   addr,
			Size:      size,
			Direction: dir,
		},
	}

	c.InvokeHook(ctx)
}

func (c *Comp) traceAccess(record AccessRecord) {
	ctx := sim.HookCtx{
		Domain: c,
		Pos:    HookPosAccess,
		Item:   record,
	}

	c.InvokeHook(ctx)
}
