package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys used by the weather CLI.
const (
	KeyToken    = "token"
	KeyLanguage = "language"
	KeyCities   = "cities"
)

var errBadShape = errors.New("value must be a string or an array of strings")

// Value is a preference value: either a single string or an ordered list of strings.
type Value struct {
	str    string
	list   []string
	isList bool
}

// Document is the whole preference file.
type Document map[string]Value

// String builds a string value.
func String(s string) Value {
	return Value{str: s}
}

// List builds a list value. The items are copied.
func List(items ...string) Value {
	cp := make([]string, len(items))
	copy(cp, items)
	return Value{list: cp, isList: true}
}

// IsList reports whether v holds a list.
func (v Value) IsList() bool {
	return v.isList
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.isList {
		return "", false
	}
	return v.str, true
}

// AsList returns a copy of the list held by v.
func (v Value) AsList() ([]string, bool) {
	if !v.isList {
		return nil, false
	}
	cp := make([]string, len(v.list))
	copy(cp, v.list)
	return cp, true
}

func (v Value) clone() Value {
	if v.isList {
		return List(v.list...)
	}
	return v
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.isList {
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	}
	return json.Marshal(v.str)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errBadShape
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case '[':
		var raw []json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		items := make([]string, 0, len(raw))
		for i, item := range raw {
			item = bytes.TrimSpace(item)
			if len(item) == 0 || item[0] != '"' {
				return fmt.Errorf("element %d: %w", i, errBadShape)
			}
			var s string
			if err := json.Unmarshal(item, &s); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			items = append(items, s)
		}
		*v = Value{list: items, isList: true}
		return nil
	default:
		return errBadShape
	}
}
