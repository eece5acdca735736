package num

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

func (u U128) MarshalText() ([]byte, error) {
	return AppendU128(nil, u, 10, true), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := ParseU128(string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalJSON encodes u as a quoted decimal string. Most JSON decoders read
// numbers as float64, which cannot hold every U128.
func (u U128) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 41)
	out = append(out, '"')
	out = AppendU128(out, u, 10, true)
	return append(out, '"'), nil
}

// UnmarshalJSON accepts a quoted or bare decimal. A JSON null leaves u
// unchanged.
func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: u128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := ParseU128(string(bts), 10)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary encodes u as the same 16 little-endian bytes as Bytes.
func (u U128) MarshalBinary() ([]byte, error) {
	b := u.Bytes()
	return b[:], nil
}

func (u *U128) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return fmt.Errorf("num: u128 binary data must be 16 bytes, found %d", len(data))
	}
	var b [16]byte
	copy(b[:], data)
	*u = U128FromBytes(b)
	return nil
}

// Value implements driver.Valuer. U128 is stored as a decimal string, which
// suits a NUMERIC(39, 0) column; no SQL integer type is wide enough.
func (u U128) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts a decimal string or []byte, or a
// non-negative int64.
func (u *U128) Scan(src interface{}) error {
	switch src := src.(type) {
	case string:
		return u.UnmarshalText([]byte(src))
	case []byte:
		return u.UnmarshalText(src)
	case int64:
		if src < 0 {
			return &NumError{Func: "Scan", Input: strconv.FormatInt(src, 10), Err: ErrInvalidArgument}
		}
		*u = U128From64(uint64(src))
		return nil
	case nil:
		return fmt.Errorf("num: cannot scan NULL into U128")
	default:
		return fmt.Errorf("num: cannot scan %T into U128", src)
	}
}
