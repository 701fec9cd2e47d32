// Package loginform is the LoginForm component: one text input inside a form.
// Each submit emits formSubmitted with the current input value
package loginform

import (
	"sync"

	"stubdemo/internal/platform/component"
)

// EventSubmitted is emitted once per submit with a Submission as its only argument
const EventSubmitted = "formSubmitted"

// Submission is the payload of EventSubmitted
type Submission struct {
	Name string `json:"name"`
}

// State is the form lifecycle
type State string

const (
	StateIdle      State = "idle"
	StateEditing   State = "editing"
	StateSubmitted State = "submitted"
)

// Form is the LoginForm component
type Form struct {
	mu    sync.Mutex
	name  string
	state State
}

// New returns an idle form with an empty field
func New() *Form { return &Form{state: StateIdle} }

// Name implements component.Component
func (f *Form) Name() string { return "LoginForm" }

// Render builds <form><input type="text" name="name"></form> and binds input and submit
func (f *Form) Render(ctx *component.Context) *component.Node {
	input := component.El("input", component.Attrs{"type": "text", "name": "name"})
	form := component.El("form", nil, input)

	ctx.On(input, "input", func(ev component.Event) {
		f.mu.Lock()
		f.name = ev.Target.Value
		f.state = StateEditing
		f.mu.Unlock()
	})
	ctx.On(form, "submit", func(component.Event) {
		f.mu.Lock()
		f.state = StateSubmitted
		sub := Submission{Name: f.name}
		f.mu.Unlock()

		ctx.Emit(EventSubmitted, sub)

		f.mu.Lock()
		f.state = StateIdle
		f.mu.Unlock()
	})
	return form
}

// State reports the lifecycle state
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Value is the most recently entered input value; submit does not clear it
func (f *Form) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name
}
