package types

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"strconv"
)

// PayloadKind tags the variant held by a Payload.
type PayloadKind int

const (
	PayloadEmpty PayloadKind = iota
	PayloadText
	PayloadFields
	PayloadError
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadText:
		return "text"
	case PayloadFields:
		return "fields"
	case PayloadError:
		return "error"
	default:
		return "empty"
	}
}

// ErrorInfo is the error-like variant of a payload: a message and the stack it was raised from.
type ErrorInfo struct {
	Message string
	Stack   string
}

// Payload is the raw input of a log call. Only the member selected by Kind is meaningful.
type Payload struct {
	Kind   PayloadKind
	Text   interface{}
	Fields map[string]interface{}
	Error  ErrorInfo
}

// EmptyPayload returns a payload with no content.
func EmptyPayload() Payload {
	return Payload{Kind: PayloadEmpty}
}

// Text wraps a scalar value that will be carried as the event message.
func Text(v interface{}) Payload {
	return Payload{Kind: PayloadText, Text: v}
}

// Fields wraps a field map.
func Fields(m map[string]interface{}) Payload {
	if m == nil {
		return EmptyPayload()
	}
	return Payload{Kind: PayloadFields, Fields: m}
}

// ErrorPayload converts err into the error variant. A nil error, including a nil
// pointer held in the interface, yields an empty payload.
func ErrorPayload(err error) Payload {
	if isNil(err) {
		return EmptyPayload()
	}
	return Payload{Kind: PayloadError, Error: ErrorInfo{Message: err.Error(), Stack: stackOf(err)}}
}

// IsError reports whether p is the error variant.
func (p Payload) IsError() bool {
	return p.Kind == PayloadError
}

// PayloadFromArgs classifies the variadic arguments of a log call.
//
// No arguments, or a single nil, is empty. A single argument is classified by type.
// Several arguments become an array-like field map keyed "0", "1", ... unless the
// first one is an error, in which case the error wins.
func PayloadFromArgs(args ...interface{}) Payload {
	switch len(args) {
	case 0:
		return EmptyPayload()
	case 1:
		return payloadFromValue(args[0])
	}

	if p, ok := errorPayloadFromValue(args[0]); ok {
		return p
	}

	aggregate := make(map[string]interface{}, len(args))
	for i, arg := range args {
		aggregate[strconv.Itoa(i)] = arg
	}
	return Payload{Kind: PayloadFields, Fields: aggregate}
}

func payloadFromValue(v interface{}) Payload {
	if isNil(v) {
		return EmptyPayload()
	}
	if p, ok := errorPayloadFromValue(v); ok {
		return p
	}
	switch value := v.(type) {
	case Payload:
		return value
	case map[string]interface{}:
		return Fields(value)
	case map[string]string:
		m := make(map[string]interface{}, len(value))
		for k, s := range value {
			m[k] = s
		}
		return Fields(m)
	}
	if m, ok := stringKeyedMap(v); ok {
		return Fields(m)
	}
	return Text(v)
}

// stringKeyedMap copies any map whose key kind is string, named map types
// included, into a field map.
func stringKeyedMap(v interface{}) (map[string]interface{}, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	m := make(map[string]interface{}, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		m[iter.Key().String()] = iter.Value().Interface()
	}
	return m, true
}

// isNil reports whether v is nil or a nil pointer, map, slice, func, chan or
// interface stored in an interface.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func errorPayloadFromValue(v interface{}) (Payload, bool) {
	switch value := v.(type) {
	case ErrorInfo:
		return Payload{Kind: PayloadError, Error: value}, true
	case *ErrorInfo:
		if value == nil {
			return Payload{}, false
		}
		return Payload{Kind: PayloadError, Error: *value}, true
	case error:
		if isNil(value) {
			return Payload{}, false
		}
		return ErrorPayload(value), true
	}
	return Payload{}, false
}

func stackOf(err error) string {
	var stacker interface{ Stack() string }
	if errors.As(err, &stacker) {
		return stacker.Stack()
	}
	if _, ok := err.(fmt.Formatter); ok {
		return fmt.Sprintf("%+v", err)
	}
	return string(debug.Stack())
}
