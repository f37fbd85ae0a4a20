package dbent

import (
	"encoding/json"
	"fmt"
)

// JSON forms are chosen so every state round-trips to exactly the variant
// and payload that produced it:
//
//	Key          -> the value's own JSON, or null when unset
//	Entity       -> {"key": K} | {"data": T} | null
//	EntityLabel  -> {"key": K, "label": L} | {"data": T} | null
//	Many         -> {"data": [T...]} | {"notFetched": true} | null
//
// A by-key state with an unset key encodes as {"key": null}, which stays
// distinct from the bare null of the empty state.

// MarshalJSON encodes the Key transparently as its value, or null when unset.
func (k Key[K]) MarshalJSON() ([]byte, error) {
	if !k.set {
		return []byte("null"), nil
	}
	return json.Marshal(k.value)
}

// UnmarshalJSON decodes null as the unset state and anything else as the
// underlying value.
func (k *Key[K]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		k.Clear()
		return nil
	}
	var v K
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	k.Set(v)
	return nil
}

// MarshalJSON encodes the Entity by its active state.
func (e Entity[K, T]) MarshalJSON() ([]byte, error) {
	switch e.state {
	case stateKey:
		return json.Marshal(struct {
			Key Key[K] `json:"key"`
		}{e.key})
	case stateData:
		return json.Marshal(struct {
			Data T `json:"data"`
		}{e.data})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON reconstructs exactly the state that was encoded.
func (e *Entity[K, T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		e.SetEmpty()
		return nil
	}
	fields, err := stateFields(data)
	if err != nil {
		return err
	}
	if raw, ok := fields["data"]; ok {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		e.SetData(record)
		return nil
	}
	if raw, ok := fields["key"]; ok {
		var key Key[K]
		if err := json.Unmarshal(raw, &key); err != nil {
			return err
		}
		e.SetKey(key)
		return nil
	}
	return fmt.Errorf("dbent: cannot decode %q into an Entity state", data)
}

// MarshalJSON encodes the EntityLabel by its active state.
func (e EntityLabel[K, T, L]) MarshalJSON() ([]byte, error) {
	switch e.state {
	case stateKey:
		return json.Marshal(struct {
			Key   Key[K] `json:"key"`
			Label L      `json:"label"`
		}{e.key, e.label})
	case stateData:
		return json.Marshal(struct {
			Data T `json:"data"`
		}{e.data})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON reconstructs exactly the state that was encoded.
func (e *EntityLabel[K, T, L]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		e.SetEmpty()
		return nil
	}
	fields, err := stateFields(data)
	if err != nil {
		return err
	}
	if raw, ok := fields["data"]; ok {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return err
		}
		e.SetData(record)
		return nil
	}
	rawKey, ok := fields["key"]
	if !ok {
		return fmt.Errorf("dbent: cannot decode %q into an EntityLabel state", data)
	}
	var key Key[K]
	if err := json.Unmarshal(rawKey, &key); err != nil {
		return err
	}
	var label L
	if rawLabel, ok := fields["label"]; ok {
		if err := json.Unmarshal(rawLabel, &label); err != nil {
			return err
		}
	}
	e.SetKeyLabel(key, label)
	return nil
}

// MarshalJSON encodes the Many by its active state.
func (m Many[T]) MarshalJSON() ([]byte, error) {
	switch m.state {
	case manyLoaded:
		items := m.items
		if items == nil {
			items = []T{}
		}
		return json.Marshal(struct {
			Data []T `json:"data"`
		}{items})
	case manyNotFetched:
		return []byte(`{"notFetched":true}`), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON reconstructs exactly the state that was encoded.
func (m *Many[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		m.SetEmpty()
		return nil
	}
	fields, err := stateFields(data)
	if err != nil {
		return err
	}
	if raw, ok := fields["data"]; ok {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		m.SetData(items)
		return nil
	}
	if _, ok := fields["notFetched"]; ok {
		m.SetNotFetched()
		return nil
	}
	return fmt.Errorf("dbent: cannot decode %q into a Many state", data)
}

// stateFields splits a union's JSON object into raw fields, keeping null
// payloads (such as an unset key) observable as present fields.
func stateFields(data []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
