package otpauth

import "errors"

var (
	// ErrInvalidSecretEncoding indicates the secret is not valid base32 text.
	ErrInvalidSecretEncoding = errors.New("otpauth: invalid base32 secret encoding")

	// ErrUnsupportedScheme indicates the URI scheme is not otpauth.
	ErrUnsupportedScheme = errors.New("otpauth: unsupported URI scheme")

	// ErrUnknownType indicates the OTP type is neither totp nor hotp.
	ErrUnknownType = errors.New("otpauth: unknown OTP type")

	// ErrMissingSecret indicates the URI has no secret parameter, or the
	// record has an empty secret.
	ErrMissingSecret = errors.New("otpauth: missing secret")

	// ErrUnknownAlgorithm indicates the algorithm is not SHA1, SHA256,
	// SHA512, or MD5.
	ErrUnknownAlgorithm = errors.New("otpauth: unknown algorithm")

	// ErrUnsupportedDigits indicates a digit count other than 6 or 8.
	ErrUnsupportedDigits = errors.New("otpauth: unsupported digit count")

	// ErrMissingCounter indicates an HOTP URI without a counter parameter.
	ErrMissingCounter = errors.New("otpauth: missing counter")

	// ErrInvalidCounter indicates a counter parameter that is not an
	// unsigned integer.
	ErrInvalidCounter = errors.New("otpauth: invalid counter")

	// ErrInvalidPeriod indicates a period parameter that is not a positive
	// integer.
	ErrInvalidPeriod = errors.New("otpauth: invalid period")
)
