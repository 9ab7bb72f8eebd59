// Package transfer is the text boundary between the URI codecs and the
// image layer: it maps a raw scanned string to credential records by
// sniffing the URI scheme, and maps records back to a QR-encodable
// string. Scheme dispatch is a closed two-way switch between otpauth and
// otpauth-migration; anything else is rejected.
package transfer

import (
	"fmt"
	"strings"

	"github.com/jhahn/go-otpauth/pkg/migration"
	"github.com/jhahn/go-otpauth/pkg/otpauth"
)

// Payload is the result of decoding one scanned text: the credential
// records it carried, in wire order, plus the migration batch framing
// when the text was a migration URI.
type Payload struct {
	Params []otpauth.Params
	// Batch is non-nil when the decoded text was a migration URI; its
	// Params field and the Params field above are the same records.
	Batch *migration.Batch
}

// Decode parses raw as either an otpauth or an otpauth-migration URI,
// selected by its scheme.
func Decode(raw string) (*Payload, error) {
	switch scheme(raw) {
	case otpauth.Scheme:
		p, err := otpauth.ParseURI(raw)
		if err != nil {
			return nil, err
		}
		return &Payload{Params: []otpauth.Params{p}}, nil
	case migration.Scheme:
		b, err := migration.ParseURI(raw)
		if err != nil {
			return nil, err
		}
		return &Payload{Params: b.Params, Batch: b}, nil
	default:
		return nil, fmt.Errorf("%w: %q", otpauth.ErrUnsupportedScheme, scheme(raw))
	}
}

// Encode is the inverse of Decode: a payload carrying batch framing or
// more than one record becomes a migration URI, a single bare record
// becomes an otpauth URI.
func Encode(p *Payload) (string, error) {
	switch {
	case p.Batch != nil:
		return p.Batch.URI()
	case len(p.Params) == 1:
		return p.Params[0].URI()
	case len(p.Params) > 1:
		b := &migration.Batch{
			Params:    p.Params,
			Version:   migration.DefaultVersion,
			BatchSize: 1,
		}
		return b.URI()
	default:
		return "", fmt.Errorf("transfer: empty payload")
	}
}

// scheme returns the part of raw before "://", lower-cased, without
// paying for a full URI parse on non-URI input.
func scheme(raw string) string {
	i := strings.Index(raw, "://")
	if i < 0 {
		return ""
	}
	return strings.ToLower(raw[:i])
}
