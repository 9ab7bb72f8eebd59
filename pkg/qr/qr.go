// Package qr is the image boundary of the credential codecs: it extracts
// the embedded texts from a QR code image and renders a text back into
// one. Nothing in this package interprets the texts; that is the job of
// package transfer.
package qr

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/boombuler/barcode"
	qrenc "github.com/boombuler/barcode/qr"
	"github.com/makiuchi-d/gozxing"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"
)

// ErrNotFound indicates an image with no readable QR code.
var ErrNotFound = errors.New("qr: no QR code found in image")

// DefaultSize is the pixel size used when a caller passes size <= 0.
const DefaultSize = 256

// DecodeImage returns the text of every QR code in img, in detection
// order. An image can carry several codes; authenticator screenshots
// often do.
func DecodeImage(img image.Image) ([]string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("qr: binarize image: %w", err)
	}
	results, err := multiqr.NewQRCodeMultiReader().DecodeMultiple(bmp, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.GetText())
	}
	if len(texts) == 0 {
		return nil, ErrNotFound
	}
	return texts, nil
}

// DecodeFile reads a PNG, JPEG, or GIF image from path and decodes the
// QR codes it contains.
func DecodeFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("qr: open %s: %w", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("qr: decode image %s: %w", path, err)
	}
	return DecodeImage(img)
}

// Encode renders text as a QR code image of size x size pixels with
// medium error correction.
func Encode(text string, size int) (image.Image, error) {
	if size <= 0 {
		size = DefaultSize
	}
	code, err := qrenc.Encode(text, qrenc.M, qrenc.Auto)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	scaled, err := barcode.Scale(code, size, size)
	if err != nil {
		return nil, fmt.Errorf("qr: scale to %dx%d: %w", size, size, err)
	}
	return scaled, nil
}

// EncodeFile renders text as a QR code and writes it to path as PNG.
func EncodeFile(path, text string, size int) error {
	img, err := Encode(text, size)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("qr: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("qr: write %s: %w", path, err)
	}
	return f.Close()
}
