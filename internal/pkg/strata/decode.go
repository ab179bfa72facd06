package strata

import (
	"encoding/binary"
	"fmt"
)

// DecodeError reports canonical bytes that cannot be decoded back to a value.
// Offset points at the byte where decoding failed.
type DecodeError struct {
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("strata: cannot decode at offset %d: %s", e.Offset, e.Reason)
}

// Decode parses canonical bytes back into a value. The input must be exactly
// one canonical encoding: unknown tags, truncated input, trailing bytes and
// map keys that are not strictly ascending are all rejected.
func Decode(data []byte) (Value, error) {
	d := decoder{buf: data}
	v, err := d.value()
	if err != nil {
		return Value{}, err
	}
	if d.off != len(d.buf) {
		return Value{}, &DecodeError{Offset: d.off, Reason: "trailing bytes after value"}
	}
	return v, nil
}

type decoder struct {
	buf []byte
	off int
}

func (d *decoder) fail(reason string) error {
	return &DecodeError{Offset: d.off, Reason: reason}
}

func (d *decoder) value() (Value, error) {
	if d.off >= len(d.buf) {
		return Value{}, d.fail("unexpected end of input")
	}

	tag := d.buf[d.off]
	d.off++

	switch tag {
	case tagNull:
		return Null(), nil

	case tagInt:
		if d.off+8 > len(d.buf) {
			return Value{}, d.fail("truncated int")
		}
		n := int64(binary.BigEndian.Uint64(d.buf[d.off : d.off+8]))
		d.off += 8
		return Int(n), nil

	case tagString:
		s, err := d.str()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil

	case tagList:
		count, err := d.length()
		if err != nil {
			return Value{}, err
		}
		items := make([]Value, 0, min(count, 1024))
		for range count {
			item, itemErr := d.value()
			if itemErr != nil {
				return Value{}, itemErr
			}
			items = append(items, item)
		}
		return List(items...), nil

	case tagMap:
		count, err := d.length()
		if err != nil {
			return Value{}, err
		}
		entries := make([]MapEntry, 0, min(count, 1024))
		prev := ""
		for i := range count {
			keyOff := d.off
			key, keyErr := d.str()
			if keyErr != nil {
				return Value{}, keyErr
			}
			if i > 0 && key <= prev {
				return Value{}, &DecodeError{Offset: keyOff, Reason: fmt.Sprintf("map key %q out of canonical order", key)}
			}
			prev = key

			val, valErr := d.value()
			if valErr != nil {
				return Value{}, valErr
			}
			entries = append(entries, Entry(key, val))
		}
		return Map(entries...), nil

	default:
		return Value{}, &DecodeError{Offset: d.off - 1, Reason: fmt.Sprintf("unknown tag 0x%02x", tag)}
	}
}

func (d *decoder) length() (int, error) {
	if d.off+4 > len(d.buf) {
		return 0, d.fail("truncated length prefix")
	}
	n := binary.BigEndian.Uint32(d.buf[d.off : d.off+4])
	d.off += 4
	return int(n), nil
}

func (d *decoder) str() (string, error) {
	n, err := d.length()
	if err != nil {
		return "", err
	}
	if d.off+n > len(d.buf) {
		return "", d.fail("truncated string")
	}
	s := string(d.buf[d.off : d.off+n])
	d.off += n
	return s, nil
}
