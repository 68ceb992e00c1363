package webhook

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

// MaxPayloadBytes is the largest body GitHub sends for a delivery.
const MaxPayloadBytes int64 = 25 << 20

// ErrInvalidPayload is returned when a body is empty, not JSON, or not a
// non-empty JSON object.
var ErrInvalidPayload = errors.New("invalid payload")

// Payload is a read-only view over a webhook body. Lookups never fail: an
// absent key, a null, or a value of the wrong type reads as "not present".
type Payload struct {
	root jsoniter.Any
}

// ParsePayload validates body and wraps it for lookups.
func ParsePayload(body []byte) (Payload, error) {
	if len(body) == 0 || !jsoniter.Valid(body) {
		return Payload{}, ErrInvalidPayload
	}

	root := jsoniter.Get(body)
	if root.ValueType() != jsoniter.ObjectValue || root.Size() == 0 {
		return Payload{}, ErrInvalidPayload
	}

	return Payload{root: root}, nil
}

// String returns the string at path. Non-strings and empty strings are
// reported as absent.
func (p Payload) String(path ...interface{}) (string, bool) {
	v := p.get(path...)
	if v == nil || v.ValueType() != jsoniter.StringValue {
		return "", false
	}
	s := v.ToString()
	return s, s != ""
}

// StringOr returns the string at path or def when absent.
func (p Payload) StringOr(def string, path ...interface{}) string {
	if s, ok := p.String(path...); ok {
		return s
	}
	return def
}

// Identifier returns a string or number at path in its textual form.
// Integers keep their exact digits.
func (p Payload) Identifier(path ...interface{}) (string, bool) {
	v := p.get(path...)
	if v == nil {
		return "", false
	}
	switch v.ValueType() {
	case jsoniter.StringValue, jsoniter.NumberValue:
		s := v.ToString()
		return s, s != ""
	}
	return "", false
}

// True reports whether path holds the JSON literal true. Strings such as
// "true" and numbers such as 1 do not count.
func (p Payload) True(path ...interface{}) bool {
	v := p.get(path...)
	return v != nil && v.ValueType() == jsoniter.BoolValue && v.ToBool()
}

func (p Payload) get(path ...interface{}) jsoniter.Any {
	if p.root == nil {
		return nil
	}
	v := p.root.Get(path...)
	if v.LastError() != nil {
		return nil
	}
	return v
}
