package dial

import (
	"fmt"
	"sort"
	"sync"
)

// CounterFactory resolves counters by name.
type CounterFactory interface {
	// Get returns the counter registered under name.
	Get(name string) (Counter, error)
	// List returns the registered names in sorted order.
	List() []string
	// GetAll returns every registered counter keyed by name.
	GetAll() map[string]Counter
}

// DefaultFactory is a thread-safe CounterFactory backed by a map.
type DefaultFactory struct {
	mu       sync.RWMutex
	counters map[string]Counter
}

// NewDefaultFactory returns a factory with the landings, crossings and
// stepwise counters registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{counters: make(map[string]Counter)}
	for _, c := range []Counter{LandingCounter{}, CrossingCounter{}, StepwiseCounter{}} {
		// Names are distinct; Register cannot fail here.
		_ = f.Register(c)
	}
	return f
}

// Register adds c under c.Name(). Registering a name twice is an error.
func (f *DefaultFactory) Register(c Counter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.counters[c.Name()]; ok {
		return fmt.Errorf("counter %q already registered", c.Name())
	}
	f.counters[c.Name()] = c
	return nil
}

// Get implements CounterFactory.
func (f *DefaultFactory) Get(name string) (Counter, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.counters[name]
	if !ok {
		return nil, fmt.Errorf("unknown counter %q", name)
	}
	return c, nil
}

// List implements CounterFactory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.counters))
	for name := range f.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll implements CounterFactory.
func (f *DefaultFactory) GetAll() map[string]Counter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	all := make(map[string]Counter, len(f.counters))
	for name, c := range f.counters {
		all[name] = c
	}
	return all
}
