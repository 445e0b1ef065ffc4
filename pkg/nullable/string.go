// Package nullable decodes JSON fields that distinguish absent, null and set.
package nullable

import (
	"bytes"
	"encoding/json"
)

// String records whether a JSON field was present and, if so, its value.
// A present null leaves Value nil.
type String struct {
	Set   bool
	Value *string
}

// Of returns a present String holding v.
func Of(v string) String {
	return String{Set: true, Value: &v}
}

// Null returns a present String holding null.
func Null() String {
	return String{Set: true}
}

// UnmarshalJSON marks the field present and decodes its value.
func (s *String) UnmarshalJSON(data []byte) error {
	s.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		s.Value = nil
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	s.Value = &v
	return nil
}

// MarshalJSON writes the value or null.
func (s String) MarshalJSON() ([]byte, error) {
	if s.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*s.Value)
}

// ApplyTo copies a present value onto dst. An absent field leaves dst alone.
func (s String) ApplyTo(dst **string) {
	if !s.Set {
		return
	}
	if s.Value == nil {
		*dst = nil
		return
	}
	v := *s.Value
	*dst = &v
}

// Validatable exposes the value to struct validation; absent and null yield nil.
func (s String) Validatable() any {
	if s.Value == nil {
		return nil
	}
	return *s.Value
}
