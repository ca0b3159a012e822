package orchestration

import (
	"github.com/agbru/dialsim/internal/config"
	"github.com/agbru/dialsim/internal/dial"
)

// GetCountersToRun resolves the --count selection against the factory.
// "all" yields every registered counter in sorted order; otherwise counters
// are returned in the order they were named. Unknown names are skipped, as
// they have already been rejected by config validation.
func GetCountersToRun(cfg config.AppConfig, factory dial.CounterFactory) []dial.Counter {
	names := cfg.Counters(factory.List())
	counters := make([]dial.Counter, 0, len(names))
	for _, name := range names {
		if c, err := factory.Get(name); err == nil {
			counters = append(counters, c)
		}
	}
	return counters
}
