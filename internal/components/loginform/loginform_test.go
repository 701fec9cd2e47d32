package loginform

import (
	"testing"
	"testing/quick"

	"stubdemo/internal/platform/component"

	"github.com/stretchr/testify/require"
)

func TestLoginForm_EmitsSubmissionWithInputValue(t *testing.T) {
	t.Parallel()

	w := component.Mount(New())
	input := w.Find(`input[type="text"]`)
	require.True(t, input.Exists())

	require.NoError(t, input.SetValue("John Doe"))
	require.NoError(t, w.Trigger("submit"))

	emitted := w.Emitted(EventSubmitted)
	require.Len(t, emitted, 1)
	require.Equal(t, Submission{Name: "John Doe"}, emitted[0][0])
}

func TestLoginForm_SubmitWithoutInput(t *testing.T) {
	t.Parallel()

	w := component.Mount(New())
	require.NoError(t, w.Trigger("submit"))

	emitted := w.Emitted(EventSubmitted)
	require.Len(t, emitted, 1)
	require.Len(t, emitted[0], 1)
	require.Equal(t, Submission{Name: ""}, emitted[0][0])
}

func TestLoginForm_Markup(t *testing.T) {
	t.Parallel()

	w := component.Mount(New())
	require.Equal(t, `<form><input name="name" type="text"></input></form>`, w.HTML())
	require.True(t, w.Find(`form`).Exists())
	require.True(t, w.Find(`input[name="name"]`).Exists())
	require.Equal(t, "LoginForm", w.Component().Name())
}

func TestLoginForm_StateAndRepeatedSubmits(t *testing.T) {
	t.Parallel()

	f := New()
	w := component.Mount(f)
	require.Equal(t, StateIdle, f.State())

	input := w.Find("input")
	require.NoError(t, input.SetValue("a"))
	require.Equal(t, StateEditing, f.State())

	require.NoError(t, w.Trigger("submit"))
	require.Equal(t, StateIdle, f.State())
	require.Equal(t, "a", f.Value(), "submit does not reset the field")

	require.NoError(t, w.Trigger("submit"))
	require.NoError(t, input.SetValue("b"))
	require.NoError(t, w.Find("form").Trigger("submit"))

	emitted := w.Emitted(EventSubmitted)
	require.Equal(t, [][]any{
		{Submission{Name: "a"}},
		{Submission{Name: "a"}},
		{Submission{Name: "b"}},
	}, emitted)
	require.Equal(t, []string{EventSubmitted}, w.EmittedNames())
}

func TestLoginForm_StateIsSubmittedWhileEmitting(t *testing.T) {
	t.Parallel()

	f := New()
	var seen []State
	w := component.Mount(f, component.OnEmit(EventSubmitted, func([]any) {
		seen = append(seen, f.State())
	}))
	require.NoError(t, w.Trigger("submit"))
	require.Equal(t, []State{StateSubmitted}, seen)
	require.Equal(t, StateIdle, f.State())
}

func TestLoginForm_InputBubblingDoesNotSubmit(t *testing.T) {
	t.Parallel()

	w := component.Mount(New())
	require.NoError(t, w.Find("input").SetValue("x"))
	require.NoError(t, w.Find("input").Trigger("keydown"))
	require.Nil(t, w.Emitted(EventSubmitted))
}

func TestLoginForm_FreshMountHasEmptyRecord(t *testing.T) {
	t.Parallel()

	a := component.Mount(New())
	require.NoError(t, a.Trigger("submit"))

	b := component.Mount(New())
	require.Nil(t, b.Emitted(EventSubmitted))
	require.Len(t, a.Emitted(EventSubmitted), 1)

	a.Unmount()
	require.Nil(t, a.Emitted(EventSubmitted))
}

func TestLoginForm_PayloadEqualsLastInput(t *testing.T) {
	t.Parallel()

	prop := func(values []string) bool {
		w := component.Mount(New())
		defer w.Unmount()
		input := w.Find(`input[type="text"]`)

		want := ""
		for _, v := range values {
			if input.SetValue(v) != nil {
				return false
			}
			want = v
		}
		if w.Trigger("submit") != nil {
			return false
		}
		got := w.Emitted(EventSubmitted)
		return len(got) == 1 && len(got[0]) == 1 && got[0][0] == Submission{Name: want}
	}
	require.NoError(t, quick.Check(prop, &quick.Config{MaxCount: 200}))
}
