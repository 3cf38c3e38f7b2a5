// Package validation decodes and validates request bodies.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"sort"
	"strings"
	"sync"

	apperrors "travel-api/internal/pkg/errors"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// Error carries per-field failures. It matches errors.ErrInvalidInput, or
// errors.ErrUnknownField when a body names a field that cannot be set.
type Error struct {
	Message string
	Fields  map[string]string
	kind    error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.kind }

// Struct runs the validate tags of v.
func Struct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(err, "failed to validate request")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		fields[fieldPath(fe)] = rule
	}
	return &Error{Message: "validation failed", Fields: fields, kind: apperrors.ErrInvalidInput}
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// DecodeJSON decodes the request body into dst and validates it. Fields
// that dst does not declare are ignored.
func DecodeJSON(r *http.Request, dst interface{}) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.Invalid("request body must be a JSON object")
	}
	return Struct(dst)
}

// DecodeUpdate decodes a partial update into dst, rejecting any field that is
// not one of dst's json fields and any body that sets nothing. Null values
// count as unset.
func DecodeUpdate(r *http.Request, dst interface{}) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apperrors.Invalid("request body must be a JSON object")
	}

	allowed := allowedFields(reflect.TypeOf(dst))
	unknown := make(map[string]string)
	for key := range raw {
		if !allowed[key] {
			unknown[key] = "unknown"
		}
	}
	if len(unknown) > 0 {
		return &Error{
			Message: "request contains fields that cannot be updated: " + strings.Join(sortedKeys(unknown), ", "),
			Fields:  unknown,
			kind:    apperrors.ErrUnknownField,
		}
	}

	for key, value := range raw {
		if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			delete(raw, key)
		}
	}
	if len(raw) == 0 {
		return apperrors.Invalid("request body contains no fields to update")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.Invalid("request body has a field of the wrong type")
	}
	return Struct(dst)
}

func readBody(r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, apperrors.Invalid("request body is required")
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, apperrors.Invalid("failed to read request body")
	}
	if len(body) > maxBodyBytes {
		return nil, apperrors.Invalid(fmt.Sprintf("request body exceeds %d bytes", maxBodyBytes))
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, apperrors.Invalid("request body is required")
	}
	return body, nil
}

var allowCache sync.Map

// allowedFields returns the json names a client may send for type t.
func allowedFields(t reflect.Type) map[string]bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := allowCache.Load(t); ok {
		return cached.(map[string]bool)
	}

	fields := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fields[name] = true
	}
	allowCache.Store(t, fields)
	return fields
}

// AllowedFields lists the updatable json fields of v, sorted.
func AllowedFields(v interface{}) []string {
	return sortedKeys(allowedFields(reflect.TypeOf(v)))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
