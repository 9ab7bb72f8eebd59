// Package migration encodes and decodes the Google Authenticator batch
// migration format: a protobuf-compatible payload, base64-embedded in an
// otpauth-migration://offline?data=... URI, carrying many OTP credential
// records in one QR code.
//
// The wire codec is hand-rolled over varint primitives rather than
// generated protobuf code, with explicit field-number constants, so the
// package has no message-framework dependency and its output is
// reproducible: zero-valued fields are omitted per an explicit per-field
// rule, not reflection.
//
//	batch, err := migration.ParseURI(scannedText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range batch.Params {
//	    fmt.Println(p.Label)
//	}
//
// Exports larger than one QR code's practical capacity are split with
// Split, which stamps each chunk with the shared batch ID and its index.
//
// The wire format has no period field. Decoded TOTP records therefore
// carry the default period, and records with a non-default period are
// rejected on encode instead of being silently flattened.
package migration
