package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/jhahn/go-otpauth/pkg/migration"
	"github.com/jhahn/go-otpauth/pkg/otpauth"
	"github.com/jhahn/go-otpauth/pkg/qr"
)

func exportCommand() cli.Command {
	return cli.Command{
		Name:      "export",
		Usage:     "re-export credentials as otpauth-migration QR codes",
		ArgsUsage: "IMAGE|URI [IMAGE|URI...]",
		Description: `Collects credentials from QR code images and otpauth URIs, then
re-encodes them as one or more otpauth-migration batches in input order.
Each batch URI is printed, and with --out a QR code PNG is written per
batch, ready to import into an authenticator app.`,
		Flags: []cli.Flag{
			cli.IntFlag{
				Name:  "max-per-batch",
				Usage: "maximum credentials per migration batch",
				Value: 10,
			},
			cli.IntFlag{
				Name:  "batch-id",
				Usage: "identifier shared by all batches (random when unset)",
			},
			cli.StringFlag{
				Name:  "out",
				Usage: "write one QR code PNG per batch into `DIR`",
			},
			cli.IntFlag{
				Name:  "size",
				Usage: "QR code PNG size in pixels",
				Value: qr.DefaultSize,
			},
		},
		Action: exportAction,
	}
}

func exportAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.NewExitError("usage: otpauth export IMAGE|URI [IMAGE|URI...]", 1)
	}

	var all []otpauth.Params
	for _, arg := range c.Args() {
		if strings.Contains(arg, "://") {
			p, err := otpauth.ParseURI(arg)
			if err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			all = append(all, p)
			continue
		}
		params, err := scanImage(arg)
		if err != nil {
			log.Printf("%s: %v", arg, err)
			continue
		}
		all = append(all, params...)
	}
	if len(all) == 0 {
		return cli.NewExitError("no credentials to export", 1)
	}

	batchID := c.Int("batch-id")
	if batchID == 0 {
		var err error
		if batchID, err = migration.NewBatchID(); err != nil {
			return err
		}
	}

	batches, err := migration.Split(all, c.Int("max-per-batch"), batchID)
	if err != nil {
		return err
	}
	for _, b := range batches {
		uri, err := b.URI()
		if err != nil {
			return err
		}
		fmt.Println(uri)
		if dir := c.String("out"); dir != "" {
			name := filepath.Join(dir, fmt.Sprintf("otpauth-migration-%d-of-%d.png", b.BatchIndex+1, b.BatchSize))
			if err := qr.EncodeFile(name, uri, c.Int("size")); err != nil {
				return err
			}
			log.Printf("wrote %s", name)
		}
	}
	return nil
}
