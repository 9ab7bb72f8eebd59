package otpauth

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Scheme is the URI scheme for single-credential provisioning URIs.
const Scheme = "otpauth"

// ParseURI parses a standard otpauth:// provisioning URI into a Params
// record. Absent algorithm, digits, and period parameters are filled with
// their defaults, so the returned record is fully specified.
//
// The URI host selects the credential type, the path is the label, and
// the query carries the remaining fields:
//
//	otpauth://totp/Example:alice?secret=JBSWY3DPEHPK3PXP&issuer=Example
//
// When the label follows the "Issuer:account" convention and the query
// has no issuer parameter, the label prefix is used as the issuer. An
// explicit issuer parameter always wins.
func ParseURI(raw string) (Params, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrUnsupportedScheme, err)
	}
	if u.Scheme != Scheme {
		return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	typ, err := ParseType(u.Host)
	if err != nil {
		return Params{}, err
	}

	q := u.Query()
	p := Params{
		Type:  typ,
		Label: strings.Trim(u.Path, "/"),
	}

	secret := q.Get("secret")
	if secret == "" {
		return Params{}, fmt.Errorf("%w: no secret parameter", ErrMissingSecret)
	}
	if p.Secret, err = DecodeSecret(secret); err != nil {
		return Params{}, err
	}

	if q.Has("issuer") {
		p.Issuer = q.Get("issuer")
	} else if i := strings.Index(p.Label, ":"); i >= 0 {
		p.Issuer = p.Label[:i]
	}

	if v := q.Get("algorithm"); v != "" {
		if p.Algorithm, err = ParseAlgorithm(v); err != nil {
			return Params{}, err
		}
	}

	if v := q.Get("digits"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil || (n != 6 && n != 8) {
			return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedDigits, v)
		}
		p.Digits = uint(n)
	}

	switch typ {
	case TypeHOTP:
		if !q.Has("counter") {
			return Params{}, fmt.Errorf("%w: counter is required for hotp", ErrMissingCounter)
		}
		if p.Counter, err = strconv.ParseUint(q.Get("counter"), 10, 64); err != nil {
			return Params{}, fmt.Errorf("%w: %q", ErrInvalidCounter, q.Get("counter"))
		}
	case TypeTOTP:
		if v := q.Get("period"); v != "" {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil || n == 0 {
				return Params{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, v)
			}
			p.Period = uint(n)
		}
	}

	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// URI builds the otpauth:// provisioning URI for p. The secret is always
// emitted as padded base32; issuer only when non-empty; counter for HOTP;
// period for TOTP only when it differs from the default. The label and
// query values are percent-encoded per URI component rules.
func (p Params) URI() (string, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return "", err
	}

	v := url.Values{}
	v.Set("secret", EncodeSecret(p.Secret))
	if p.Issuer != "" {
		v.Set("issuer", p.Issuer)
	}
	v.Set("algorithm", string(p.Algorithm))
	v.Set("digits", strconv.FormatUint(uint64(p.Digits), 10))
	switch p.Type {
	case TypeHOTP:
		v.Set("counter", strconv.FormatUint(p.Counter, 10))
	case TypeTOTP:
		if p.Period != DefaultPeriod {
			v.Set("period", strconv.FormatUint(uint64(p.Period), 10))
		}
	}

	return fmt.Sprintf("%s://%s/%s?%s", Scheme, p.Type, url.PathEscape(p.Label), v.Encode()), nil
}
