package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/jhahn/go-otpauth/pkg/otpauth"
	"github.com/jhahn/go-otpauth/pkg/qr"
	"github.com/jhahn/go-otpauth/pkg/transfer"
)

func scanCommand() cli.Command {
	return cli.Command{
		Name:      "scan",
		Usage:     "read OTP credentials from QR code images",
		ArgsUsage: "IMAGE [IMAGE...]",
		Description: `Decodes every QR code in the given images and prints the OTP
credentials they carry. Both single otpauth:// codes and
otpauth-migration:// batch exports are understood; migration batches are
expanded into their individual credentials. QR codes that are not OTP
payloads are skipped. Secrets are masked unless --reveal is given.`,
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "reveal",
				Usage: "print secrets and URIs instead of masking them",
			},
		},
		Action: scanAction,
	}
}

func scanAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.NewExitError("usage: otpauth scan IMAGE [IMAGE...]", 1)
	}

	// One unreadable image must not abort the rest.
	var all []otpauth.Params
	for _, path := range c.Args() {
		params, err := scanImage(path)
		if err != nil {
			log.Printf("%s: %v", path, err)
			continue
		}
		all = append(all, params...)
	}
	if len(all) == 0 {
		return cli.NewExitError("no OTP credential QR codes detected", 1)
	}

	fmt.Fprintf(os.Stderr, "detected %d credential(s)\n", len(all))
	for _, p := range all {
		printParams(p, c.Bool("reveal"))
	}
	return nil
}

// scanImage decodes every QR code in one image and collects the OTP
// credentials. Codes with a foreign scheme (WiFi QR codes, plain URLs)
// are skipped rather than treated as errors.
func scanImage(path string) ([]otpauth.Params, error) {
	texts, err := qr.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	var out []otpauth.Params
	for _, text := range texts {
		payload, err := transfer.Decode(text)
		if err != nil {
			if errors.Is(err, otpauth.ErrUnsupportedScheme) {
				continue
			}
			return nil, err
		}
		out = append(out, payload.Params...)
	}
	return out, nil
}

func printParams(p otpauth.Params, reveal bool) {
	secret := strings.Repeat("*", 20)
	uri := strings.Repeat("*", 30)
	if reveal {
		secret = otpauth.EncodeSecret(p.Secret)
		if s, err := p.URI(); err == nil {
			uri = s
		}
	}

	fmt.Println(strings.Repeat("=", 32))
	fmt.Printf("%12s: %s\n", "type", p.Type)
	fmt.Printf("%12s: %s\n", "label", p.Label)
	if p.Issuer != "" {
		fmt.Printf("%12s: %s\n", "issuer", p.Issuer)
	}
	fmt.Printf("%12s: %s\n", "secret", secret)
	fmt.Printf("%12s: %s%s\n", "algorithm", p.Algorithm, algorithmNote(p.Algorithm))
	fmt.Printf("%12s: %d\n", "digits", p.Digits)
	switch p.Type {
	case otpauth.TypeHOTP:
		fmt.Printf("%12s: %d\n", "counter", p.Counter)
	case otpauth.TypeTOTP:
		fmt.Printf("%12s: %d\n", "period", p.Period)
	}
	fmt.Printf("%12s: %s\n", "uri", uri)
}

func algorithmNote(a otpauth.Algorithm) string {
	if a == otpauth.DefaultAlgorithm {
		return ""
	}
	return " (not supported by most authenticator apps)"
}
