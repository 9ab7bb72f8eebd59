package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/jhahn/go-otpauth/pkg/otpauth"
	"github.com/jhahn/go-otpauth/pkg/qr"
)

func buildCommand() cli.Command {
	return cli.Command{
		Name:  "build",
		Usage: "build an otpauth provisioning URI from parameters",
		Description: `Builds an otpauth:// URI from the given parameters, prints it, and
optionally renders it as a QR code PNG for enrolling the credential in an
authenticator app.`,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "type",
				Usage: "credential type, totp or hotp",
				Value: "totp",
			},
			cli.StringFlag{
				Name:  "secret",
				Usage: "base32-encoded shared secret (required)",
			},
			cli.StringFlag{
				Name:  "label",
				Usage: "credential label, conventionally Issuer:account",
			},
			cli.StringFlag{
				Name:  "issuer",
				Usage: "issuing organization name",
			},
			cli.StringFlag{
				Name:  "algorithm",
				Usage: "HMAC algorithm: SHA1, SHA256, SHA512, or MD5",
				Value: "SHA1",
			},
			cli.UintFlag{
				Name:  "digits",
				Usage: "OTP code length, 6 or 8",
				Value: otpauth.DefaultDigits,
			},
			cli.Uint64Flag{
				Name:  "counter",
				Usage: "initial counter (hotp only)",
			},
			cli.UintFlag{
				Name:  "period",
				Usage: "time step in seconds (totp only)",
				Value: otpauth.DefaultPeriod,
			},
			cli.StringFlag{
				Name:  "out",
				Usage: "write a QR code PNG to `FILE`",
			},
			cli.IntFlag{
				Name:  "size",
				Usage: "QR code PNG size in pixels",
				Value: qr.DefaultSize,
			},
		},
		Action: buildAction,
	}
}

func buildAction(c *cli.Context) error {
	typ, err := otpauth.ParseType(c.String("type"))
	if err != nil {
		return err
	}
	alg, err := otpauth.ParseAlgorithm(c.String("algorithm"))
	if err != nil {
		return err
	}
	secret, err := otpauth.DecodeSecret(c.String("secret"))
	if err != nil {
		return err
	}

	p := otpauth.Params{
		Secret:    secret,
		Label:     c.String("label"),
		Issuer:    c.String("issuer"),
		Algorithm: alg,
		Digits:    c.Uint("digits"),
		Type:      typ,
		Counter:   c.Uint64("counter"),
		Period:    c.Uint("period"),
	}
	uri, err := p.URI()
	if err != nil {
		return err
	}

	fmt.Println(uri)
	if out := c.String("out"); out != "" {
		return qr.EncodeFile(out, uri, c.Int("size"))
	}
	return nil
}
