package migration

import "errors"

var (
	// ErrTruncatedVarint indicates the stream ended before a varint's
	// terminating byte was seen.
	ErrTruncatedVarint = errors.New("migration: truncated varint")

	// ErrVarintOverflow indicates a varint longer than the 10 bytes a
	// 64-bit value can occupy.
	ErrVarintOverflow = errors.New("migration: varint overflows 64 bits")

	// ErrTruncatedMessage indicates a length-delimited field whose
	// declared length exceeds the remaining bytes.
	ErrTruncatedMessage = errors.New("migration: truncated message")

	// ErrMalformedPayload indicates a payload that violates the wire
	// format: a wire type that does not match the field, an unknown wire
	// type, or undecodable embedded data.
	ErrMalformedPayload = errors.New("migration: malformed payload")

	// ErrMissingData indicates a migration URI without a data parameter.
	ErrMissingData = errors.New("migration: missing data parameter")

	// ErrUnsupportedPeriod indicates a TOTP record whose period the
	// migration wire format cannot carry.
	ErrUnsupportedPeriod = errors.New("migration: non-default period cannot be represented")
)
