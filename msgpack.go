package dbent

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// The msgpack wire forms mirror the JSON ones: a Key is transparent (value
// or nil), and each union encodes as nil or a one-entry map keyed by the
// active state ("key", "data", "notFetched"; EntityLabel's by-key state is a
// two-entry map adding "label"). Decoding reconstructs the exact variant.

// EncodeMsgpack implements msgpack.CustomEncoder.
func (k Key[K]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if !k.set {
		return enc.EncodeNil()
	}
	return enc.Encode(k.value)
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (k *Key[K]) DecodeMsgpack(dec *msgpack.Decoder) error {
	code, err := dec.PeekCode()
	if err != nil {
		return err
	}
	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return err
		}
		k.Clear()
		return nil
	}
	var v K
	if err := dec.Decode(&v); err != nil {
		return err
	}
	k.Set(v)
	return nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (e Entity[K, T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch e.state {
	case stateKey:
		if err := encodeStateHeader(enc, 1, "key"); err != nil {
			return err
		}
		return e.key.EncodeMsgpack(enc)
	case stateData:
		if err := encodeStateHeader(enc, 1, "data"); err != nil {
			return err
		}
		return enc.Encode(e.data)
	default:
		return enc.EncodeNil()
	}
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (e *Entity[K, T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	empty, state, err := decodeStateHeader(dec)
	if err != nil {
		return err
	}
	if empty {
		e.SetEmpty()
		return nil
	}
	switch state {
	case "key":
		var key Key[K]
		if err := dec.Decode(&key); err != nil {
			return err
		}
		e.SetKey(key)
		return nil
	case "data":
		var record T
		if err := dec.Decode(&record); err != nil {
			return err
		}
		e.SetData(record)
		return nil
	default:
		return fmt.Errorf("dbent: unknown Entity state %q", state)
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (e EntityLabel[K, T, L]) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch e.state {
	case stateKey:
		if err := encodeStateHeader(enc, 2, "key"); err != nil {
			return err
		}
		if err := e.key.EncodeMsgpack(enc); err != nil {
			return err
		}
		if err := enc.EncodeString("label"); err != nil {
			return err
		}
		return enc.Encode(e.label)
	case stateData:
		if err := encodeStateHeader(enc, 1, "data"); err != nil {
			return err
		}
		return enc.Encode(e.data)
	default:
		return enc.EncodeNil()
	}
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (e *EntityLabel[K, T, L]) DecodeMsgpack(dec *msgpack.Decoder) error {
	empty, state, err := decodeStateHeader(dec)
	if err != nil {
		return err
	}
	if empty {
		e.SetEmpty()
		return nil
	}
	switch state {
	case "key":
		var key Key[K]
		if err := dec.Decode(&key); err != nil {
			return err
		}
		name, err := dec.DecodeString()
		if err != nil {
			return err
		}
		if name != "label" {
			return fmt.Errorf("dbent: unknown EntityLabel field %q", name)
		}
		var label L
		if err := dec.Decode(&label); err != nil {
			return err
		}
		e.SetKeyLabel(key, label)
		return nil
	case "data":
		var record T
		if err := dec.Decode(&record); err != nil {
			return err
		}
		e.SetData(record)
		return nil
	default:
		return fmt.Errorf("dbent: unknown EntityLabel state %q", state)
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (m Many[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	switch m.state {
	case manyLoaded:
		if err := encodeStateHeader(enc, 1, "data"); err != nil {
			return err
		}
		items := m.items
		if items == nil {
			items = []T{}
		}
		return enc.Encode(items)
	case manyNotFetched:
		if err := encodeStateHeader(enc, 1, "notFetched"); err != nil {
			return err
		}
		return enc.EncodeBool(true)
	default:
		return enc.EncodeNil()
	}
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (m *Many[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	empty, state, err := decodeStateHeader(dec)
	if err != nil {
		return err
	}
	if empty {
		m.SetEmpty()
		return nil
	}
	switch state {
	case "data":
		var items []T
		if err := dec.Decode(&items); err != nil {
			return err
		}
		m.SetData(items)
		return nil
	case "notFetched":
		if err := dec.Skip(); err != nil {
			return err
		}
		m.SetNotFetched()
		return nil
	default:
		return fmt.Errorf("dbent: unknown Many state %q", state)
	}
}

func encodeStateHeader(enc *msgpack.Encoder, size int, state string) error {
	if err := enc.EncodeMapLen(size); err != nil {
		return err
	}
	return enc.EncodeString(state)
}

// decodeStateHeader consumes a union header: nil for the empty state, or a
// map length plus the first field name naming the active state.
func decodeStateHeader(dec *msgpack.Decoder) (empty bool, state string, err error) {
	code, err := dec.PeekCode()
	if err != nil {
		return false, "", err
	}
	if code == msgpcode.Nil {
		if err := dec.DecodeNil(); err != nil {
			return false, "", err
		}
		return true, "", nil
	}
	if _, err := dec.DecodeMapLen(); err != nil {
		return false, "", err
	}
	state, err = dec.DecodeString()
	if err != nil {
		return false, "", err
	}
	return false, state, nil
}
