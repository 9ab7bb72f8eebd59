package otpauth

import (
	"encoding/base32"
	"fmt"
	"strings"
)

// DecodeSecret decodes an RFC 4648 base32 secret as found in otpauth URIs.
// Matching is case-insensitive, and missing or excess "=" padding is
// normalized before decoding: authenticator apps disagree on whether the
// secret parameter is padded.
func DecodeSecret(text string) ([]byte, error) {
	s := strings.ToUpper(strings.TrimRight(text, "="))
	if rem := len(s) % 8; rem != 0 {
		s += strings.Repeat("=", 8-rem)
	}
	raw, err := base32.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSecretEncoding, err)
	}
	return raw, nil
}

// EncodeSecret encodes a raw secret as canonical upper-case padded base32.
func EncodeSecret(secret []byte) string {
	return base32.StdEncoding.EncodeToString(secret)
}
