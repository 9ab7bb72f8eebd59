// Package otpauth parses and builds otpauth:// provisioning URIs, the de
// facto standard for exchanging OTP credentials with authenticator apps.
//
// The canonical form of a credential is the Params value type: the raw
// secret bytes plus label, issuer, algorithm, digits, type, counter, and
// period. Base32 text exists only at the URI boundary.
//
// # Parsing
//
//	p, err := otpauth.ParseURI("otpauth://totp/Example:alice?secret=JBSWY3DPEHPK3PXP&issuer=Example")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p.Issuer, p.Digits) // "Example 6" (defaults filled)
//
// # Building
//
//	uri, err := otpauth.Params{
//	    Secret: secret,
//	    Label:  "Example:alice",
//	    Issuer: "Example",
//	    Type:   otpauth.TypeTOTP,
//	}.URI()
//
// Both directions run the shared Validate rules, so a record accepted
// here is also representable in the migration wire format handled by
// package migration (modulo the period field, which that format lacks).
//
// # Errors
//
// All failures wrap one of the package sentinel errors (ErrMissingSecret,
// ErrUnknownAlgorithm, ...) and can be classified with errors.Is. Parsing
// never silently corrects malformed input; the only tolerated variance is
// base32 secret padding, which apps disagree on.
//
// This package performs no OTP code computation; it only transcodes
// credential records.
package otpauth
