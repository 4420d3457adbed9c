package kansuji

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The JSON value must be a string holding a kansuji, or null.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (k *Kansuji) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var s string
	err := json.Unmarshal(text, &s)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Kansuji{}, err)
	}
	*k, err = Parse(s)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Kansuji{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the canonical kansuji as a JSON string.
// See also method [Kansuji.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (k Kansuji) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 50)
	text = append(text, '"')
	text = k.appendKansuji(text)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (k *Kansuji) UnmarshalText(text []byte) error {
	var err error
	*k, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Kansuji{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Kansuji.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (k Kansuji) AppendText(text []byte) ([]byte, error) {
	return k.appendKansuji(text), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Kansuji.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (k Kansuji) MarshalText() ([]byte, error) {
	return k.appendKansuji(nil), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (k *Kansuji) UnmarshalBinary(data []byte) error {
	var err error
	*k, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Kansuji{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary appends the canonical kansuji encoded as UTF-8.
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (k Kansuji) AppendBinary(data []byte) ([]byte, error) {
	return k.appendKansuji(data), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary returns the canonical kansuji encoded as UTF-8.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (k Kansuji) MarshalBinary() ([]byte, error) {
	return k.appendKansuji(nil), nil
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// The BSON value must be a string holding a kansuji, or null.
// See also constructor [Parse].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (k *Kansuji) UnmarshalBSONValue(typ byte, data []byte) error {
	// constants are from https://bsonspec.org/spec.html
	var err error
	switch typ {
	case 2:
		*k, err = parseBSONString(data)
	case 10:
		// null, do nothing
	default:
		err = fmt.Errorf("BSON type %d is not supported", typ)
	}
	if err != nil {
		err = fmt.Errorf("converting from BSON type %d to %T: %w", typ, Kansuji{}, err)
	}
	return err
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// MarshalBSONValue always returns a BSON string.
// See also method [Kansuji.String].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (k Kansuji) MarshalBSONValue() (typ byte, data []byte, err error) {
	return 2, k.bsonString(), nil
}

// parseBSONString parses a BSON string to a value.
// The byte order of the input data must be little-endian.
func parseBSONString(data []byte) (Kansuji, error) {
	if len(data) < 4 {
		return Kansuji{}, fmt.Errorf("invalid data length %v", len(data))
	}
	u := uint32(data[0])
	u |= uint32(data[1]) << 8
	u |= uint32(data[2]) << 16
	u |= uint32(data[3]) << 24
	l := int(int32(u)) //nolint:gosec
	if l < 1 || len(data) < l+4 {
		return Kansuji{}, fmt.Errorf("invalid string length %v", l)
	}
	if data[l+4-1] != 0 {
		return Kansuji{}, fmt.Errorf("invalid null terminator %v", data[l+4-1])
	}
	s := string(data[4 : l+4-1])
	return Parse(s)
}

// bsonString returns the BSON string representation of the value.
// The byte order of the result is little-endian.
func (k Kansuji) bsonString() []byte {
	data := make([]byte, 4, 4+48+1)
	data = k.appendKansuji(data)
	data = append(data, 0)
	l := len(data) - 4
	data[0] = byte(l)
	data[1] = byte(l >> 8)
	data[2] = byte(l >> 16)
	data[3] = byte(l >> 24)
	return data
}

// Scan implements the [sql.Scanner] interface.
// See also constructor [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (k *Kansuji) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*k, err = Parse(value)
	case []byte:
		*k, err = Parse(string(value))
	case int64:
		if value < 0 {
			err = fmt.Errorf("negative value %v: %w", value, ErrOutOfRange)
			break
		}
		*k = NewFromUint64(uint64(value))
	case float64:
		*k, err = NewFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Kansuji{}, NullKansuji{}, Kansuji{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Kansuji{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Value always returns the canonical kansuji string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (k Kansuji) Value() (driver.Value, error) {
	return k.String(), nil
}

// NullKansuji represents a value that can be null.
// Its zero value is null.
// NullKansuji is not thread-safe.
type NullKansuji struct {
	Kansuji Kansuji
	Valid   bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Kansuji.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullKansuji) Scan(value any) error {
	if value == nil {
		n.Kansuji = Kansuji{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Kansuji.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Kansuji.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullKansuji) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Kansuji.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Kansuji.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullKansuji) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Kansuji = Kansuji{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Kansuji.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Kansuji.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullKansuji) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Kansuji.MarshalJSON()
}

// UnmarshalBSONValue implements the [v2/bson.ValueUnmarshaler] interface.
// See also method [Kansuji.UnmarshalBSONValue].
//
// [v2/bson.ValueUnmarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueUnmarshaler
func (n *NullKansuji) UnmarshalBSONValue(typ byte, data []byte) error {
	if typ == 10 {
		n.Kansuji = Kansuji{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Kansuji.UnmarshalBSONValue(typ, data)
}

// MarshalBSONValue implements the [v2/bson.ValueMarshaler] interface.
// See also method [Kansuji.MarshalBSONValue].
//
// [v2/bson.ValueMarshaler]: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2/bson#ValueMarshaler
func (n NullKansuji) MarshalBSONValue() (typ byte, data []byte, err error) {
	if !n.Valid {
		return 10, nil, nil
	}
	return n.Kansuji.MarshalBSONValue()
}
