package component

import (
	"slices"
	"sync"
)

// Emitter is the append-only record of emitted events of one mounted instance.
// Safe for concurrent use
type Emitter struct {
	mu      sync.Mutex
	order   []string
	calls   map[string][][]any
	watches map[string][]func(args []any)
	closed  bool
}

func newEmitter() *Emitter {
	return &Emitter{calls: map[string][][]any{}, watches: map[string][]func([]any){}}
}

// record appends args under name, then notifies watchers outside the lock
func (e *Emitter) record(name string, args []any) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	if _, seen := e.calls[name]; !seen {
		e.order = append(e.order, name)
	}
	e.calls[name] = append(e.calls[name], slices.Clone(args))
	watches := slices.Clone(e.watches[name])
	e.mu.Unlock()

	for _, fn := range watches {
		fn(slices.Clone(args))
	}
	return true
}

func (e *Emitter) watch(name string, fn func(args []any)) {
	e.mu.Lock()
	e.watches[name] = append(e.watches[name], fn)
	e.mu.Unlock()
}

// Calls returns a copy of the argument lists emitted under name, nil if never emitted
func (e *Emitter) Calls(name string) [][]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	calls, ok := e.calls[name]
	if !ok {
		return nil
	}
	out := make([][]any, len(calls))
	for i, c := range calls {
		out[i] = slices.Clone(c)
	}
	return out
}

// Names returns event names in first-emission order
func (e *Emitter) Names() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.order)
}

// discard drops the record and stops accepting emissions
func (e *Emitter) discard() {
	e.mu.Lock()
	e.closed = true
	e.order = nil
	e.calls = map[string][][]any{}
	e.watches = map[string][]func([]any){}
	e.mu.Unlock()
}
