package sim

import (
	"io"
	"log"
)

// A LogHook is a hook that turns what it observes into text.
type LogHook interface {
	Hook
}

// LogHookBase provides the logger shared by all LogHooks. The logger writes
// bare lines, without prefix or timestamp, so that the output can be
// compared byte by byte.
type LogHookBase struct {
	*log.Logger
}

// NewLogHookBase creates a LogHookBase that writes to w.
func NewLogHookBase(w io.Writer) LogHookBase {
	return LogHookBase{Logger: log.New(w, "", 0)}
}
