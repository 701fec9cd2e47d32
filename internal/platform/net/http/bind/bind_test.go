package bind

import (
	"encoding/json"
	"strings"
	"testing"

	perr "stubdemo/internal/platform/errors"
	kit "stubdemo/internal/platform/testkit"
)

type submission struct {
	Name string `json:"name" validate:"required,min=2"`
}

func TestDecode_Struct(t *testing.T) {
	got, err := Decode[submission](strings.NewReader(`{"name":"John Doe"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "John Doe" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecode_StructValidation(t *testing.T) {
	_, err := Decode[submission](strings.NewReader(`{"name":"J"}`))
	if perr.CodeOf(err) != perr.ErrorCodeValidation {
		t.Fatalf("expected validation code, got %v (%v)", perr.CodeOf(err), err)
	}
	e, _ := perr.As(err)
	if e.Field() != "name" {
		t.Fatalf("expected json tag name as field, got %q", e.Field())
	}
	kit.MustContain(t, err.Error(), "at least 2")
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		opts []JSONOptions
	}{
		{name: "empty", body: ""},
		{name: "malformed", body: `{`},
		{name: "unknown field", body: `{"name":"ok","x":1}`},
		{name: "trailing", body: `{"name":"ok"} {}`},
		{name: "too large", body: `{"name":"` + strings.Repeat("a", 64) + `"}`, opts: []JSONOptions{{MaxBytes: 16}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode[submission](strings.NewReader(tc.body), tc.opts...)
			if perr.CodeOf(err) != perr.ErrorCodeJSON {
				t.Fatalf("expected JSON code, got %v (%v)", perr.CodeOf(err), err)
			}
		})
	}
}

func TestDecode_AllowEmptyBody(t *testing.T) {
	got, err := Decode[map[string]any](strings.NewReader(""), JSONOptions{AllowEmptyBody: true})
	if err != nil || got != nil {
		t.Fatalf("expected nil map and no error, got %v %v", got, err)
	}
}

func TestDecode_MapSkipsStructValidation(t *testing.T) {
	got, err := Decode[map[string]any](strings.NewReader(`{"name":"x","extra":true}`), JSONOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["name"] != "x" || got["extra"] != true {
		t.Fatalf("got %#v", got)
	}
}

func TestDecode_TrailingSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	_, err := Decode[submission](strings.NewReader(`{"name":"ok"}`))
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("expected trailing data error, got %v", err)
	}
}

func TestParseRules(t *testing.T) {
	rules, err := ParseRules([]string{"name=required", "name=min=2", " email = email "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rules["name"] != "required,min=2" {
		t.Fatalf("name rule = %q", rules["name"])
	}
	if rules["email"] != "email" {
		t.Fatalf("email rule = %q", rules["email"])
	}

	for _, bad := range []string{"name", "=required", "name="} {
		if _, err := ParseRules([]string{bad}); perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
			t.Fatalf("ParseRules(%q) expected invalid argument, got %v", bad, err)
		}
	}

	_, err = ParseRules([]string{"name=definitely_not_a_tag"})
	if perr.CodeOf(err) != perr.ErrorCodeInvalidArgument {
		t.Fatalf("unknown validator tag should fail at parse time, got %v", err)
	}
	kit.MustContain(t, err.Error(), "name")
}

func TestValidateMap(t *testing.T) {
	rules := map[string]string{"name": "required", "email": "omitempty,email"}

	if err := ValidateMap(map[string]any{"name": "John Doe"}, rules); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}

	err := ValidateMap(map[string]any{"email": "nope"}, rules)
	e, ok := perr.As(err)
	if !ok || e.Code() != perr.ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	// sorted order: email is checked before name
	if e.Field() != "email" {
		t.Fatalf("expected email to fail first, got %q", e.Field())
	}

	err = ValidateMap(map[string]any{}, map[string]string{"name": "required"})
	kit.MustContain(t, err.Error(), "name")
	kit.MustContain(t, err.Error(), "required")
}

func TestValidateMap_NoRules(t *testing.T) {
	if err := ValidateMap(nil, nil); err != nil {
		t.Fatalf("no rules should accept anything, got %v", err)
	}
}

func TestFieldAndMessage_ForeignErrors(t *testing.T) {
	if f, m := fieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should give empty pair")
	}
	_, m := fieldAndMessage(perr.JSONErrf("boom"))
	if m != "boom" {
		t.Fatalf("foreign message = %q", m)
	}
}
