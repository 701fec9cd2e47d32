// Package bind provides JSON decode and validation helpers for handlers
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"sync"

	perr "stubdemo/internal/platform/errors"
	"stubdemo/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// JSONOptions controls decoding behavior
type JSONOptions struct {
	MaxBytes        int64 // 0 means unlimited
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// DefaultJSONOptions is 1MB, unknown fields rejected, empty body rejected
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// Decode reads one JSON value into T and validates struct tags when T is a struct.
// Failures come back as perr JSON or Validation errors
func Decode[T any](r io.Reader, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}

	buf := make([]byte, 1)
	n, _ := io.ReadFull(r, buf)
	if n == 0 {
		if o.AllowEmptyBody {
			return zero, nil
		}
		return zero, perr.JSONErrf("empty body")
	}
	var reader io.Reader = io.MultiReader(bytes.NewReader(buf[:n]), r)
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if rt := reflect.TypeOf(dst); rt == nil || rt.Kind() != reflect.Struct {
		return dst, nil
	}
	if err := Get().Validator.Struct(dst); err != nil {
		return zero, toValidationErr(err)
	}
	return dst, nil
}

// ValidateMap runs validator rules (field -> tag string) against a decoded JSON object.
// Fields are checked in sorted order so the reported field is stable
func ValidateMap(data map[string]any, rules map[string]string) error {
	if len(rules) == 0 {
		return nil
	}
	fields := make([]string, 0, len(rules))
	for f := range rules {
		fields = append(fields, f)
	}
	slices.Sort(fields)

	v := Get().Validator
	for _, f := range fields {
		if err := v.Var(data[f], rules[f]); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				msg := strings.TrimSpace(verrs[0].Translate(Get().Translator))
				return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s %s", f, msg), f)
			}
			logger.Get().Error().Err(err).Str("field", f).Str("rule", rules[f]).Msg("validator rejected rule")
			return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s has an invalid rule", f), f)
		}
	}
	return nil
}

// ParseRules turns "field=tag" items into a rule map. Tags may contain '=' (e.g. "min=2")
func ParseRules(items []string) (map[string]string, error) {
	out := make(map[string]string, len(items))
	for _, it := range items {
		field, tag, ok := strings.Cut(it, "=")
		field, tag = strings.TrimSpace(field), strings.TrimSpace(tag)
		if !ok || field == "" || tag == "" {
			return nil, perr.Newf(perr.ErrorCodeInvalidArgument, "rule %q must look like field=tag", it)
		}
		if prev, dup := out[field]; dup {
			tag = prev + "," + tag
		}
		out[field] = tag
	}
	for field, tag := range out {
		if err := checkTag(tag); err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "rule for %q", field)
		}
	}
	return out, nil
}

// checkTag dry-runs tag so unknown validators fail at config time instead of per request
func checkTag(tag string) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("%v", v)
		}
	}()
	_ = Get().Validator.Var(nil, tag)
	return nil
}

// fieldAndMessage returns the first field and translated message of a validation error
func fieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		return "", inv.Error()
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

func toValidationErr(err error) error {
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := fieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
