package component

import (
	"stubdemo/internal/platform/logger"
)

// Context is handed to Render; it binds listeners and emits on behalf of one instance
type Context struct {
	id      string
	name    string
	emitter *Emitter
	log     *logger.Logger
}

// ID returns the instance id
func (c *Context) ID() string { return c.id }

// Emit records event with args, in call order, and notifies parent listeners
func (c *Context) Emit(event string, args ...any) {
	if !c.emitter.record(event, args) {
		c.log.Warn().Str("event", event).Msg("emit after unmount dropped")
		return
	}
	c.log.Trace().Str("event", event).Int("args", len(args)).Msg("emitted")
}

// On binds fn to event on n. Listeners run synchronously in bind order
func (c *Context) On(n *Node, event string, fn Listener) {
	n.on(event, fn)
}
