package component

import (
	"sync/atomic"

	perr "stubdemo/internal/platform/errors"
	"stubdemo/internal/platform/logger"

	"github.com/google/uuid"
)

// Component renders a node tree and binds its listeners through ctx
type Component interface {
	Name() string
	Render(ctx *Context) *Node
}

// MountOption tunes Mount
type MountOption func(*mountCfg)

type mountCfg struct {
	watches map[string][]func(args []any)
}

// OnEmit subscribes a parent-style listener to event; fn gets a copy of the args
func OnEmit(event string, fn func(args []any)) MountOption {
	return func(c *mountCfg) {
		c.watches[event] = append(c.watches[event], fn)
	}
}

// Wrapper is a mounted component instance
type Wrapper struct {
	id      string
	comp    Component
	root    *Node
	emitter *Emitter
	log     *logger.Logger
	live    atomic.Bool
}

// Mount renders c into a fresh instance with an empty emitted record
func Mount(c Component, opts ...MountOption) *Wrapper {
	cfg := mountCfg{watches: map[string][]func([]any){}}
	for _, o := range opts {
		o(&cfg)
	}

	id := uuid.NewString()
	log := logger.Named("component").With().Str("name", c.Name()).Str("instance", id).Logger()
	em := newEmitter()
	for ev, fns := range cfg.watches {
		for _, fn := range fns {
			em.watch(ev, fn)
		}
	}

	ctx := &Context{id: id, name: c.Name(), emitter: em, log: &log}
	root := c.Render(ctx)
	if root == nil {
		root = El("template", nil)
	}

	w := &Wrapper{id: id, comp: c, root: root, emitter: em, log: &log}
	w.live.Store(true)
	log.Trace().Msg("mounted")
	return w
}

// ID returns the instance id
func (w *Wrapper) ID() string { return w.id }

// Component returns the mounted component
func (w *Wrapper) Component() Component { return w.comp }

// HTML renders the current tree
func (w *Wrapper) HTML() string { return w.root.String() }

// Root wraps the root node
func (w *Wrapper) Root() *NodeWrapper { return &NodeWrapper{w: w, n: w.root} }

// Find returns the first node matching selector in document order.
// A miss yields a wrapper whose Exists is false and whose actions fail
func (w *Wrapper) Find(selector string) *NodeWrapper {
	sel, err := parseSelector(selector)
	if err != nil {
		return &NodeWrapper{w: w, selector: selector, err: err}
	}
	var hit *Node
	w.root.walk(func(n *Node) bool {
		if sel.matches(n) {
			hit = n
			return false
		}
		return true
	})
	if hit == nil {
		return &NodeWrapper{w: w, selector: selector, err: perr.NotFoundf("no node matches %q", selector)}
	}
	return &NodeWrapper{w: w, n: hit, selector: selector}
}

// FindAll returns every node matching selector in document order
func (w *Wrapper) FindAll(selector string) ([]*NodeWrapper, error) {
	sel, err := parseSelector(selector)
	if err != nil {
		return nil, err
	}
	var out []*NodeWrapper
	w.root.walk(func(n *Node) bool {
		if sel.matches(n) {
			out = append(out, &NodeWrapper{w: w, n: n, selector: selector})
		}
		return true
	})
	return out, nil
}

// Trigger dispatches event on the root node
func (w *Wrapper) Trigger(event string) error { return w.Root().Trigger(event) }

// Emitted returns the argument lists recorded for name, nil when never emitted
func (w *Wrapper) Emitted(name string) [][]any { return w.emitter.Calls(name) }

// EmittedNames returns every emitted event name in first-emission order
func (w *Wrapper) EmittedNames() []string { return w.emitter.Names() }

// Mounted reports whether Unmount has not been called yet
func (w *Wrapper) Mounted() bool { return w.live.Load() }

// Unmount discards the instance and its emitted record
func (w *Wrapper) Unmount() {
	if w.live.CompareAndSwap(true, false) {
		w.emitter.discard()
		w.log.Trace().Msg("unmounted")
	}
}

func (w *Wrapper) checkLive() error {
	if !w.live.Load() {
		return perr.Newf(perr.ErrorCodeConflict, "component %s is unmounted", w.comp.Name())
	}
	return nil
}

// NodeWrapper drives one node of a mounted instance
type NodeWrapper struct {
	w        *Wrapper
	n        *Node
	selector string
	err      error
}

// Exists reports whether the lookup found a node
func (nw *NodeWrapper) Exists() bool { return nw.n != nil }

// Err returns the lookup error, nil when the node exists
func (nw *NodeWrapper) Err() error { return nw.err }

// Node returns the underlying node, nil on a miss
func (nw *NodeWrapper) Node() *Node { return nw.n }

// Attr returns an attribute, "" when unset or missing
func (nw *NodeWrapper) Attr(name string) string {
	if nw.n == nil {
		return ""
	}
	v, _ := nw.n.Attr(name)
	return v
}

// Value returns the current value of an editable node
func (nw *NodeWrapper) Value() string {
	if nw.n == nil {
		return ""
	}
	return nw.n.Value
}

// SetValue sets the value of an input, textarea or select and dispatches "input"
func (nw *NodeWrapper) SetValue(v string) error {
	if err := nw.ready(); err != nil {
		return err
	}
	if !nw.n.Editable() {
		return perr.Newf(perr.ErrorCodeInvalidArgument, "SetValue on <%s> (%s): not an input", nw.n.Tag, nw.selector)
	}
	nw.n.Value = v
	nw.dispatch("input")
	if nw.n.Tag == "select" {
		nw.dispatch("change")
	}
	return nil
}

// Trigger dispatches event on this node; it bubbles to the root
func (nw *NodeWrapper) Trigger(event string) error {
	if err := nw.ready(); err != nil {
		return err
	}
	if event == "" {
		return perr.Newf(perr.ErrorCodeInvalidArgument, "empty event type")
	}
	nw.dispatch(event)
	return nil
}

func (nw *NodeWrapper) ready() error {
	if nw.err != nil {
		return nw.err
	}
	return nw.w.checkLive()
}

func (nw *NodeWrapper) dispatch(event string) {
	called := nw.n.dispatch(Event{Type: event, Target: nw.n})
	nw.w.log.Trace().Str("event", event).Str("target", nw.n.Tag).Int("listeners", called).Msg("dispatched")
}
