//go:build integration

package transfer_test

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jhahn/go-otpauth/pkg/migration"
	"github.com/jhahn/go-otpauth/pkg/otpauth"
	"github.com/jhahn/go-otpauth/pkg/qr"
	"github.com/jhahn/go-otpauth/pkg/transfer"
)

// TestIntegration_SingleCredential_EndToEnd tests the full pipeline:
// record → URI → QR PNG → scanned text → record.
func TestIntegration_SingleCredential_EndToEnd(t *testing.T) {
	orig := otpauth.Params{
		Secret:    []byte("integration-secret--"),
		Label:     "Example:alice@example.com",
		Issuer:    "Example",
		Algorithm: otpauth.AlgorithmSHA256,
		Digits:    8,
		Type:      otpauth.TypeTOTP,
		Period:    60,
	}

	uri, err := orig.URI()
	if err != nil {
		t.Fatalf("URI failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cred.png")
	if err := qr.EncodeFile(path, uri, 384); err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}

	texts, err := qr.DecodeFile(path)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if len(texts) != 1 {
		t.Fatalf("decoded %d texts, want 1", len(texts))
	}

	payload, err := transfer.Decode(texts[0])
	if err != nil {
		t.Fatalf("transfer.Decode failed: %v", err)
	}
	got := payload.Params[0]
	if !bytes.Equal(got.Secret, orig.Secret) || got.Label != orig.Label ||
		got.Issuer != orig.Issuer || got.Algorithm != orig.Algorithm ||
		got.Digits != orig.Digits || got.Period != orig.Period {
		t.Errorf("round trip changed record: %+v, want %+v", got, orig)
	}
}

// TestIntegration_MigrationExport_EndToEnd tests a multi-chunk export:
// records are split, each chunk rendered as a QR code, and scanning the
// chunks in index order reassembles the original sequence.
func TestIntegration_MigrationExport_EndToEnd(t *testing.T) {
	var records []otpauth.Params
	for i := 0; i < 5; i++ {
		records = append(records, otpauth.Params{
			Secret: []byte(fmt.Sprintf("integration-secret-%d", i)),
			Label:  fmt.Sprintf("Example:user%d", i),
			Issuer: "Example",
			Type:   otpauth.TypeTOTP,
		})
	}

	batches, err := migration.Split(records, 2, 4242)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(batches) != 3 {
		t.Fatalf("got %d batches, want 3", len(batches))
	}

	dir := t.TempDir()
	var reassembled []otpauth.Params
	for _, b := range batches {
		uri, err := b.URI()
		if err != nil {
			t.Fatalf("batch %d: URI failed: %v", b.BatchIndex, err)
		}
		path := filepath.Join(dir, fmt.Sprintf("batch%d.png", b.BatchIndex))
		if err := qr.EncodeFile(path, uri, 512); err != nil {
			t.Fatalf("batch %d: EncodeFile failed: %v", b.BatchIndex, err)
		}

		texts, err := qr.DecodeFile(path)
		if err != nil {
			t.Fatalf("batch %d: DecodeFile failed: %v", b.BatchIndex, err)
		}
		payload, err := transfer.Decode(texts[0])
		if err != nil {
			t.Fatalf("batch %d: transfer.Decode failed: %v", b.BatchIndex, err)
		}
		if payload.Batch == nil {
			t.Fatalf("batch %d: no batch framing decoded", b.BatchIndex)
		}
		if payload.Batch.BatchID != 4242 || payload.Batch.BatchSize != 3 {
			t.Errorf("batch %d: framing = %+v", b.BatchIndex, payload.Batch)
		}
		reassembled = append(reassembled, payload.Params...)
	}

	if len(reassembled) != len(records) {
		t.Fatalf("reassembled %d records, want %d", len(reassembled), len(records))
	}
	for i := range records {
		if reassembled[i].Label != records[i].Label ||
			!bytes.Equal(reassembled[i].Secret, records[i].Secret) {
			t.Errorf("record %d: %+v, want %+v", i, reassembled[i], records[i])
		}
	}
}
