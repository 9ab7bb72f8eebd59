package migration

import (
	"fmt"

	"github.com/jhahn/go-otpauth/pkg/otpauth"
)

// DefaultVersion is the payload version this package writes. Decoded
// payloads keep whatever version they carried.
const DefaultVersion = 2

// Field numbers of the outer MigrationPayload message.
const (
	fieldOtpParameters = 1
	fieldVersion       = 2
	fieldBatchSize     = 3
	fieldBatchIndex    = 4
	fieldBatchID       = 5
)

// Field numbers of the embedded OtpParameters message.
const (
	fieldSecret    = 1
	fieldName      = 2
	fieldIssuer    = 3
	fieldAlgorithm = 4
	fieldDigits    = 5
	fieldType      = 6
	fieldCounter   = 7
)

// Enum values on the wire. Zero means unspecified in all three enums.
const (
	wireAlgorithmSHA1   = 1
	wireAlgorithmSHA256 = 2
	wireAlgorithmSHA512 = 3
	wireAlgorithmMD5    = 4

	wireDigitsSix   = 1
	wireDigitsEight = 2

	wireTypeHOTP = 1
	wireTypeTOTP = 2
)

// Batch is one migration payload message: an ordered slice of credential
// records plus the framing that lets a consumer reassemble a multi-image
// export. BatchSize is the number of chunks in the full export, BatchIndex
// this chunk's 0-based position, and BatchID an opaque identifier shared
// by all chunks of one export.
type Batch struct {
	Params     []otpauth.Params
	Version    int
	BatchSize  int
	BatchIndex int
	BatchID    int
}

// Unmarshal decodes the migration payload wire form into a Batch. Records
// come back in wire order with defaults filled (the wire format has no
// period field, so every TOTP record gets the default period). Unknown
// field numbers are skipped per their wire type for forward compatibility;
// anything else that deviates from the expected layout is an error.
func Unmarshal(data []byte) (*Batch, error) {
	b := &Batch{}
	for off := 0; off < len(data); {
		key, n, err := readUvarint(data[off:])
		if err != nil {
			return nil, err
		}
		off += n
		field, wtype := int(key>>3), int(key&7)

		switch field {
		case fieldOtpParameters:
			if wtype != wireBytes {
				return nil, fmt.Errorf("%w: otp_parameters has wire type %d", ErrMalformedPayload, wtype)
			}
			body, n, err := readBytes(data[off:])
			if err != nil {
				return nil, err
			}
			off += n
			p, err := unmarshalParams(body)
			if err != nil {
				return nil, err
			}
			b.Params = append(b.Params, p)
		case fieldVersion, fieldBatchSize, fieldBatchIndex, fieldBatchID:
			if wtype != wireVarint {
				return nil, fmt.Errorf("%w: field %d has wire type %d", ErrMalformedPayload, field, wtype)
			}
			v, n, err := readUvarint(data[off:])
			if err != nil {
				return nil, err
			}
			off += n
			switch field {
			case fieldVersion:
				b.Version = int(v)
			case fieldBatchSize:
				b.BatchSize = int(v)
			case fieldBatchIndex:
				b.BatchIndex = int(v)
			case fieldBatchID:
				b.BatchID = int(v)
			}
		default:
			n, err := skipField(data[off:], wtype)
			if err != nil {
				return nil, err
			}
			off += n
		}
	}
	return b, nil
}

// unmarshalParams decodes one embedded OtpParameters message.
func unmarshalParams(body []byte) (otpauth.Params, error) {
	var p otpauth.Params
	for off := 0; off < len(body); {
		key, n, err := readUvarint(body[off:])
		if err != nil {
			return otpauth.Params{}, err
		}
		off += n
		field, wtype := int(key>>3), int(key&7)

		switch field {
		case fieldSecret, fieldName, fieldIssuer:
			if wtype != wireBytes {
				return otpauth.Params{}, fmt.Errorf("%w: record field %d has wire type %d", ErrMalformedPayload, field, wtype)
			}
			v, n, err := readBytes(body[off:])
			if err != nil {
				return otpauth.Params{}, err
			}
			off += n
			switch field {
			case fieldSecret:
				p.Secret = append([]byte(nil), v...)
			case fieldName:
				p.Label = string(v)
			case fieldIssuer:
				p.Issuer = string(v)
			}
		case fieldAlgorithm, fieldDigits, fieldType, fieldCounter:
			if wtype != wireVarint {
				return otpauth.Params{}, fmt.Errorf("%w: record field %d has wire type %d", ErrMalformedPayload, field, wtype)
			}
			v, n, err := readUvarint(body[off:])
			if err != nil {
				return otpauth.Params{}, err
			}
			off += n
			switch field {
			case fieldAlgorithm:
				p.Algorithm = algorithmFromWire(v)
			case fieldDigits:
				p.Digits = digitsFromWire(v)
			case fieldType:
				if p.Type, err = typeFromWire(v); err != nil {
					return otpauth.Params{}, err
				}
			case fieldCounter:
				p.Counter = v
			}
		default:
			n, err := skipField(body[off:], wtype)
			if err != nil {
				return otpauth.Params{}, err
			}
			off += n
		}
	}

	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return otpauth.Params{}, err
	}
	return p, nil
}

// skipField consumes an unknown field's value per its wire type.
func skipField(b []byte, wtype int) (int, error) {
	switch wtype {
	case wireVarint:
		_, n, err := readUvarint(b)
		return n, err
	case wireBytes:
		_, n, err := readBytes(b)
		return n, err
	case wireFixed64:
		if len(b) < 8 {
			return 0, fmt.Errorf("%w: need 8 bytes, have %d", ErrTruncatedMessage, len(b))
		}
		return 8, nil
	case wireFixed32:
		if len(b) < 4 {
			return 0, fmt.Errorf("%w: need 4 bytes, have %d", ErrTruncatedMessage, len(b))
		}
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: unknown wire type %d", ErrMalformedPayload, wtype)
	}
}

// Marshal encodes the batch in migration payload wire form, interoperable
// byte-for-byte with the vendor's export/import feature. Records are
// validated first; a TOTP record with a non-default period is rejected
// rather than silently flattened to 30 seconds, since the wire format
// cannot carry it. Zero-valued scalars are omitted per protobuf's
// default-omission rule, except the counter of an HOTP record, which is
// always written.
func (b *Batch) Marshal() ([]byte, error) {
	var out []byte
	for _, p := range b.Params {
		p = p.WithDefaults()
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if p.Type == otpauth.TypeTOTP && p.Period != otpauth.DefaultPeriod {
			return nil, fmt.Errorf("%w: %d seconds", ErrUnsupportedPeriod, p.Period)
		}
		out = appendKey(out, fieldOtpParameters, wireBytes)
		out = appendBytes(out, marshalParams(p))
	}
	for _, f := range []struct {
		field int
		value int
	}{
		{fieldVersion, b.Version},
		{fieldBatchSize, b.BatchSize},
		{fieldBatchIndex, b.BatchIndex},
		{fieldBatchID, b.BatchID},
	} {
		if f.value != 0 {
			out = appendKey(out, f.field, wireVarint)
			out = appendUvarint(out, uint64(f.value))
		}
	}
	return out, nil
}

// marshalParams encodes one record; p has already been defaulted and
// validated.
func marshalParams(p otpauth.Params) []byte {
	var out []byte
	out = appendKey(out, fieldSecret, wireBytes)
	out = appendBytes(out, p.Secret)
	if p.Label != "" {
		out = appendKey(out, fieldName, wireBytes)
		out = appendBytes(out, []byte(p.Label))
	}
	if p.Issuer != "" {
		out = appendKey(out, fieldIssuer, wireBytes)
		out = appendBytes(out, []byte(p.Issuer))
	}
	out = appendKey(out, fieldAlgorithm, wireVarint)
	out = appendUvarint(out, algorithmToWire(p.Algorithm))
	out = appendKey(out, fieldDigits, wireVarint)
	out = appendUvarint(out, digitsToWire(p.Digits))
	out = appendKey(out, fieldType, wireVarint)
	out = appendUvarint(out, typeToWire(p.Type))
	if p.Type == otpauth.TypeHOTP || p.Counter != 0 {
		out = appendKey(out, fieldCounter, wireVarint)
		out = appendUvarint(out, p.Counter)
	}
	return out
}

// algorithmFromWire maps a wire enum value to an Algorithm. Unspecified
// and unknown values fall back to SHA1, matching the vendor's importer.
func algorithmFromWire(v uint64) otpauth.Algorithm {
	switch v {
	case wireAlgorithmSHA256:
		return otpauth.AlgorithmSHA256
	case wireAlgorithmSHA512:
		return otpauth.AlgorithmSHA512
	case wireAlgorithmMD5:
		return otpauth.AlgorithmMD5
	default:
		return otpauth.AlgorithmSHA1
	}
}

func algorithmToWire(a otpauth.Algorithm) uint64 {
	switch a {
	case otpauth.AlgorithmSHA256:
		return wireAlgorithmSHA256
	case otpauth.AlgorithmSHA512:
		return wireAlgorithmSHA512
	case otpauth.AlgorithmMD5:
		return wireAlgorithmMD5
	default:
		return wireAlgorithmSHA1
	}
}

// digitsFromWire maps a wire enum value to a digit count, defaulting
// unspecified and unknown values to 6.
func digitsFromWire(v uint64) uint {
	if v == wireDigitsEight {
		return 8
	}
	return 6
}

func digitsToWire(digits uint) uint64 {
	if digits == 8 {
		return wireDigitsEight
	}
	return wireDigitsSix
}

// typeFromWire maps a wire enum value to a Type. Unlike algorithm and
// digits there is no safe default: a record of unspecified type is
// unusable, so it is an error.
func typeFromWire(v uint64) (otpauth.Type, error) {
	switch v {
	case wireTypeHOTP:
		return otpauth.TypeHOTP, nil
	case wireTypeTOTP:
		return otpauth.TypeTOTP, nil
	default:
		return "", fmt.Errorf("%w: migration type %d", otpauth.ErrUnknownType, v)
	}
}

func typeToWire(t otpauth.Type) uint64 {
	if t == otpauth.TypeHOTP {
		return wireTypeHOTP
	}
	return wireTypeTOTP
}
