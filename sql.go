package dbent

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
	"time"
)

// Value implements driver.Valuer: an unset Key maps to the storage engine's
// NULL, a set one to its value's column representation. Key types that
// implement driver.Valuer themselves (uuid.UUID, for instance) are used
// as-is; otherwise the value is normalized to one of the kinds the
// database/sql driver contract accepts.
func (k Key[K]) Value() (driver.Value, error) {
	if !k.set {
		return nil, nil
	}
	if v, ok := any(k.value).(driver.Valuer); ok {
		return v.Value()
	}
	if t, ok := any(k.value).(time.Time); ok {
		return t, nil
	}
	rv := reflect.ValueOf(k.value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(rv.Uint()), nil
	case reflect.Uint64:
		u := rv.Uint()
		if u > 1<<63-1 {
			return nil, fmt.Errorf("dbent: key value %d overflows int64", u)
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.String:
		return rv.String(), nil
	}
	return nil, fmt.Errorf("dbent: cannot map %T to a driver value", k.value)
}

// Scan implements sql.Scanner: NULL maps to the unset state, anything else
// is converted into K. Key types implementing sql.Scanner themselves handle
// their own conversion; otherwise the standard column kinds (int64, float64,
// bool, string, []byte, time.Time) convert through assignability rules.
func (k *Key[K]) Scan(src any) error {
	if src == nil {
		k.Clear()
		return nil
	}
	var v K
	if sc, ok := any(&v).(sql.Scanner); ok {
		if err := sc.Scan(src); err != nil {
			return err
		}
		k.Set(v)
		return nil
	}
	dst := reflect.ValueOf(&v).Elem()
	rv := reflect.ValueOf(src)
	switch {
	case rv.Type().AssignableTo(dst.Type()):
		dst.Set(rv)
	case dst.Kind() == reflect.Bool && rv.Kind() == reflect.Int64:
		// integer-backed boolean columns, as sqlite stores them
		dst.SetBool(rv.Int() != 0)
	case dst.Kind() == reflect.String:
		switch s := src.(type) {
		case string:
			dst.SetString(s)
		case []byte:
			dst.SetString(string(s))
		default:
			return fmt.Errorf("dbent: cannot scan %T into Key[%T]", src, v)
		}
	case rv.Kind() == reflect.String || rv.Kind() == reflect.Slice:
		// text columns never convert to numeric keys implicitly
		return fmt.Errorf("dbent: cannot scan %T into Key[%T]", src, v)
	case rv.Type().ConvertibleTo(dst.Type()):
		dst.Set(rv.Convert(dst.Type()))
	default:
		return fmt.Errorf("dbent: cannot scan %T into Key[%T]", src, v)
	}
	k.Set(v)
	return nil
}
