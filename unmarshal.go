// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package loam

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// Unmarshal decodes the defined parameters into v, a struct pointer whose
// fields are matched by "param" tags or, failing that, field names. Values
// stay strings in the store and are coerced per field: numbers through the
// usual grammars, booleans through the same permissive word set GetBool
// uses, time.Duration through time.ParseDuration, and any field type
// implementing encoding.TextUnmarshaler through itself.
//
// After decoding, "validate" tags are enforced, so required fields can be
// declared in the struct instead of a Require call.
func (s *Store) Unmarshal(v any) error {
	if s.entries == nil {
		return ErrNotLoaded
	}

	input := make(map[string]any, len(s.entries))
	for k, val := range s.entries {
		input[k] = val
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "param",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook: composeDecodeHooks(
			textUnmarshalerHookFunc(),
			boolWordsHookFunc(),
			timeDurationHookFunc(),
		),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return err
	}
	return validateStruct(v)
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return structValidator.Struct(v)
}

var errInvalidDecodeCondition = errors.New("invalid decode condition")

// CoercionError occurs when a parameter value cannot be coerced into the
// type of the struct field it is decoded into.
type CoercionError struct {
	From string
	To   string

	Cause error
}

// Error implements the error interface.
func (e CoercionError) Error() string {
	return fmt.Sprintf("failed to coerce value from %s to %s: %s", e.From, e.To, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e CoercionError) Unwrap() error {
	return e.Cause
}

func composeDecodeHooks(hooks ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFuncValue {
	return func(f, t reflect.Value) (any, error) {
		for _, h := range hooks {
			v, err := mapstructure.DecodeHookExec(h, f, t)
			if err == nil {
				return v, nil
			}
			if errors.Is(err, errInvalidDecodeCondition) {
				continue
			}
			return nil, CoercionError{
				From:  f.Type().String(),
				To:    t.Type().String(),
				Cause: err,
			}
		}
		return f.Interface(), nil
	}
}

func textUnmarshalerHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String {
			return nil, errInvalidDecodeCondition
		}
		result := reflect.New(t).Interface()
		u, ok := result.(encoding.TextUnmarshaler)
		if !ok {
			return nil, errInvalidDecodeCondition
		}
		err := u.UnmarshalText([]byte(data.(string)))
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}

func boolWordsHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Bool {
			return nil, errInvalidDecodeCondition
		}
		_, negative := negatives[strings.ToLower(data.(string))]
		return !negative, nil
	}
}

func timeDurationHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(time.Duration(0)) {
			return nil, errInvalidDecodeCondition
		}
		return time.ParseDuration(data.(string))
	}
}
