package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/jhahn/go-otpauth/pkg/transfer"
)

func decodeCommand() cli.Command {
	return cli.Command{
		Name:      "decode",
		Usage:     "decode otpauth or otpauth-migration URIs from text",
		ArgsUsage: "[URI...]",
		Description: `Decodes URIs given as arguments, or one per line on stdin when no
arguments are given. Useful when the QR code has already been scanned by
another tool.`,
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "reveal",
				Usage: "print secrets and URIs instead of masking them",
			},
		},
		Action: decodeAction,
	}
}

func decodeAction(c *cli.Context) error {
	uris := c.Args()
	if len(uris) == 0 {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				uris = append(uris, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	if len(uris) == 0 {
		return cli.NewExitError("usage: otpauth decode [URI...]", 1)
	}

	for _, uri := range uris {
		payload, err := transfer.Decode(uri)
		if err != nil {
			return err
		}
		if b := payload.Batch; b != nil {
			fmt.Fprintf(os.Stderr, "migration batch %d/%d (id %d, version %d): %d credential(s)\n",
				b.BatchIndex+1, b.BatchSize, b.BatchID, b.Version, len(b.Params))
		}
		for _, p := range payload.Params {
			printParams(p, c.Bool("reveal"))
		}
	}
	return nil
}
