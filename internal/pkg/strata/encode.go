package strata

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Canonical encoding, one tag byte per node:
//
//	0x00 null
//	0x01 int     8-byte big-endian two's complement
//	0x02 string  uint32 big-endian byte length, then UTF-8 bytes
//	0x03 list    uint32 big-endian element count, then elements
//	0x04 map     uint32 big-endian entry count, then (key string, value) pairs
//	             in strictly ascending key order
const (
	tagNull   byte = 0x00
	tagInt    byte = 0x01
	tagString byte = 0x02
	tagList   byte = 0x03
	tagMap    byte = 0x04
)

// EncodeError reports a value that cannot be canonically encoded.
// It is distinct from storage errors so callers can tell "could not encode"
// apart from "could not persist".
type EncodeError struct {
	Reason string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("strata: cannot encode: %s", e.Reason)
}

// Encode serializes a value to its canonical bytes. Structurally equal values
// always produce byte-identical encodings. Returns *EncodeError for values
// outside the closed sum (the zero Value included).
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteByte(tagNull)
		return nil

	case KindInt:
		buf.WriteByte(tagInt)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(v.num))
		buf.Write(b[:])
		return nil

	case KindString:
		buf.WriteByte(tagString)
		if err := writeLen(buf, len(v.str)); err != nil {
			return err
		}
		buf.WriteString(v.str)
		return nil

	case KindList:
		buf.WriteByte(tagList)
		if err := writeLen(buf, len(v.list)); err != nil {
			return err
		}
		for _, item := range v.list {
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		return nil

	case KindMap:
		buf.WriteByte(tagMap)
		if err := writeLen(buf, len(v.keys)); err != nil {
			return err
		}
		for i, key := range v.keys {
			if err := writeLen(buf, len(key)); err != nil {
				return err
			}
			buf.WriteString(key)
			if err := encodeValue(buf, v.vals[i]); err != nil {
				return err
			}
		}
		return nil

	default:
		return &EncodeError{Reason: fmt.Sprintf("unsupported value kind %q", v.kind)}
	}
}

func writeLen(buf *bytes.Buffer, n int) error {
	if n < 0 || n > math.MaxUint32 {
		return &EncodeError{Reason: fmt.Sprintf("length %d does not fit uint32", n)}
	}
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(n))
	buf.Write(b[:])
	return nil
}
