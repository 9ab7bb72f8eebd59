package migration

import (
	"encoding/base64"
	"fmt"
	"net/url"

	"github.com/jhahn/go-otpauth/pkg/otpauth"
)

// Scheme is the URI scheme for batch migration URIs.
const Scheme = "otpauth-migration"

// ParseURI unwraps an otpauth-migration://offline?data=... URI and
// decodes the payload it embeds. The data parameter is percent-decoded by
// URI parsing and then standard-base64 decoded.
func ParseURI(raw string) (*Batch, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", otpauth.ErrUnsupportedScheme, err)
	}
	if u.Scheme != Scheme {
		return nil, fmt.Errorf("%w: %q", otpauth.ErrUnsupportedScheme, u.Scheme)
	}
	q := u.Query()
	if !q.Has("data") {
		return nil, ErrMissingData
	}
	data, err := base64.StdEncoding.DecodeString(q.Get("data"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 data: %v", ErrMalformedPayload, err)
	}
	return Unmarshal(data)
}

// URI encodes the batch and wraps it as a migration URI: the serialized
// payload is standard-base64 encoded (with padding) and percent-encoded
// into the data query parameter.
func (b *Batch) URI() (string, error) {
	raw, err := b.Marshal()
	if err != nil {
		return "", err
	}
	v := url.Values{}
	v.Set("data", base64.StdEncoding.EncodeToString(raw))
	return fmt.Sprintf("%s://offline?%s", Scheme, v.Encode()), nil
}
