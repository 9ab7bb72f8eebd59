package otpauth

import (
	"bytes"
	"errors"
	"testing"
)

// TestDecodeSecret tests base32 decoding tolerance and failure modes
func TestDecodeSecret(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []byte
		wantErr error
	}{
		{
			name: "canonical padded",
			text: "JBSWY3DPEHPK3PXP",
			want: []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x21, 0xde, 0xad, 0xbe, 0xef},
		},
		{
			name: "lower case",
			text: "jbswy3dpehpk3pxp",
			want: []byte{0x48, 0x65, 0x6c, 0x6c, 0x6f, 0x21, 0xde, 0xad, 0xbe, 0xef},
		},
		{
			name: "missing padding",
			text: "MZXW6",
			want: []byte("foo"),
		},
		{
			name: "excess padding",
			text: "MZXW6===========",
			want: []byte("foo"),
		},
		{
			name:    "invalid characters",
			text:    "MZXW1", // '1' is outside the base32 alphabet
			wantErr: ErrInvalidSecretEncoding,
		},
		{
			name:    "punctuation",
			text:    "MZXW6!",
			wantErr: ErrInvalidSecretEncoding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSecret(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecodeSecret(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSecret(%q) unexpected error: %v", tt.text, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("DecodeSecret(%q) = %x, want %x", tt.text, got, tt.want)
			}
		})
	}
}

// TestSecretRoundTrip tests decode(encode(b)) == b across edge lengths
func TestSecretRoundTrip(t *testing.T) {
	for _, n := range []int{1, 5, 8, 20} {
		raw := make([]byte, n)
		for i := range raw {
			raw[i] = byte(i*37 + 11)
		}
		text := EncodeSecret(raw)
		got, err := DecodeSecret(text)
		if err != nil {
			t.Fatalf("len %d: DecodeSecret(%q) failed: %v", n, text, err)
		}
		if !bytes.Equal(got, raw) {
			t.Errorf("len %d: round trip = %x, want %x", n, got, raw)
		}
	}
}

// TestEncodeSecret tests canonical padded upper-case output
func TestEncodeSecret(t *testing.T) {
	if got, want := EncodeSecret([]byte("foo")), "MZXW6==="; got != want {
		t.Errorf("EncodeSecret = %q, want %q", got, want)
	}
}
