package migration

import "fmt"

// Protobuf wire types used by the migration payload.
const (
	wireVarint  = 0
	wireFixed64 = 1
	wireBytes   = 2
	wireFixed32 = 5
)

// maxVarintLen is the longest encoding of a 64-bit value.
const maxVarintLen = 10

// appendUvarint appends v in base-128 little-endian form, the
// continuation bit in the MSB of each byte.
func appendUvarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// readUvarint decodes a varint from the front of b and reports how many
// bytes it consumed.
func readUvarint(b []byte) (uint64, int, error) {
	var v uint64
	var shift uint
	for i, c := range b {
		if i >= maxVarintLen {
			return 0, 0, fmt.Errorf("%w: no terminator within %d bytes", ErrVarintOverflow, maxVarintLen)
		}
		v |= uint64(c&0x7f) << shift
		if c < 0x80 {
			return v, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("%w: %d bytes remain", ErrTruncatedVarint, len(b))
}

// appendBytes appends v with a varint length prefix.
func appendBytes(b, v []byte) []byte {
	b = appendUvarint(b, uint64(len(v)))
	return append(b, v...)
}

// readBytes decodes a length-delimited byte run from the front of b.
// The returned slice aliases b; callers copy if they retain it.
func readBytes(b []byte) ([]byte, int, error) {
	n, used, err := readUvarint(b)
	if err != nil {
		return nil, 0, err
	}
	if n > uint64(len(b)-used) {
		return nil, 0, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedMessage, n, len(b)-used)
	}
	return b[used : used+int(n)], used + int(n), nil
}

// appendKey appends the (field_number << 3 | wire_type) key varint.
func appendKey(b []byte, field, wtype int) []byte {
	return appendUvarint(b, uint64(field)<<3|uint64(wtype))
}
