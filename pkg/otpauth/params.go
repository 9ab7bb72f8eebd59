package otpauth

import (
	"fmt"
	"strings"
)

// Type represents the OTP credential type.
type Type string

const (
	// TypeTOTP represents Time-based OTP (RFC 6238).
	TypeTOTP Type = "totp"
	// TypeHOTP represents Counter-based OTP (RFC 4226).
	TypeHOTP Type = "hotp"
)

// Algorithm represents the HMAC hash algorithm of an OTP credential.
type Algorithm string

const (
	// AlgorithmSHA1 uses SHA1 (the default for authenticator apps).
	AlgorithmSHA1 Algorithm = "SHA1"
	// AlgorithmSHA256 uses SHA256.
	AlgorithmSHA256 Algorithm = "SHA256"
	// AlgorithmSHA512 uses SHA512.
	AlgorithmSHA512 Algorithm = "SHA512"
	// AlgorithmMD5 uses MD5. Accepted for compatibility with the
	// migration wire format; most authenticator apps reject it.
	AlgorithmMD5 Algorithm = "MD5"
)

// Default values applied to absent fields by both codecs.
const (
	DefaultAlgorithm = AlgorithmSHA1
	DefaultDigits    = 6
	DefaultPeriod    = 30
)

// Params is the canonical, codec-agnostic form of one OTP credential.
//
// The secret is always held as raw bytes; base32 and base64 text forms
// exist only at the codec boundary. Params is a value type: codecs return
// freshly constructed values and never mutate one after construction.
type Params struct {
	// Secret is the raw shared HMAC key (required, non-empty).
	Secret []byte
	// Label is the display name, conventionally "Issuer:account".
	Label string
	// Issuer is the issuing organization name. May be empty.
	Issuer string
	// Algorithm is the HMAC hash algorithm. Zero value means SHA1.
	Algorithm Algorithm
	// Digits is the OTP code length, 6 or 8. Zero value means 6.
	Digits uint
	// Type is the credential type (TOTP or HOTP).
	Type Type
	// Counter is the HOTP counter value. Ignored for TOTP.
	Counter uint64
	// Period is the TOTP time step in seconds. Zero value means 30.
	// The migration wire format does not carry it.
	Period uint
}

// WithDefaults returns a copy of p with absent fields filled in: SHA1,
// 6 digits, and a 30 second period. Both codecs fill defaults before
// returning a record, so parsed records are always fully specified.
func (p Params) WithDefaults() Params {
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = DefaultPeriod
	}
	return p
}

// Validate checks the structural rules shared by both wire formats:
// a non-empty secret, a known type, a known algorithm, and 6 or 8 digits.
// Zero-valued algorithm, digits, and period fields are accepted as their
// defaults. Both codecs run records through Validate before returning
// them, so a record accepted by one codec is representable by the other.
func (p Params) Validate() error {
	if len(p.Secret) == 0 {
		return fmt.Errorf("%w: secret must not be empty", ErrMissingSecret)
	}
	if p.Type != TypeTOTP && p.Type != TypeHOTP {
		return fmt.Errorf("%w: %q", ErrUnknownType, string(p.Type))
	}
	switch p.Algorithm {
	case "", AlgorithmSHA1, AlgorithmSHA256, AlgorithmSHA512, AlgorithmMD5:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(p.Algorithm))
	}
	if p.Digits != 0 && p.Digits != 6 && p.Digits != 8 {
		return fmt.Errorf("%w: %d", ErrUnsupportedDigits, p.Digits)
	}
	return nil
}

// ParseAlgorithm matches text case-insensitively against the four
// supported algorithm names.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(s) {
	case "SHA1":
		return AlgorithmSHA1, nil
	case "SHA256":
		return AlgorithmSHA256, nil
	case "SHA512":
		return AlgorithmSHA512, nil
	case "MD5":
		return AlgorithmMD5, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// ParseType matches text case-insensitively against totp and hotp.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "totp":
		return TypeTOTP, nil
	case "hotp":
		return TypeHOTP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}
