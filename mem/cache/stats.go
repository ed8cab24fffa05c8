package cache

import "io"

// Statistics holds the counters of a cache.
type Statistics struct {
	Reads      uint64
	Writes     uint64
	Hits       uint64
	Misses     uint64
	Evictions  uint64
	WriteBacks uint64
}

func (s *Statistics) count(record AccessRecord) {
	if record.IsWrite {
		s.Writes++
	} else {
		s.Reads++
	}

	if record.Hit {
		s.Hits++
	} else {
		s.Misses++
	}

	if record.Evicted {
		s.Evictions++
	}

	if record.WroteBack {
		s.WriteBacks++
	}
}

// Stats returns the statistics collected so far.
func (c *Comp) Stats() Statistics {
	return c.stats
}

// PrintStats is called at the end of a run. It reports nothing for now, so
// that the log of a run only contains transfers.
func (c *Comp) PrintStats(w io.Writer) {
}
