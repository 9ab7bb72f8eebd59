// Program otpauth inspects and converts OTP credential QR codes: it
// scans images for otpauth:// and otpauth-migration:// payloads, builds
// provisioning URIs from flags, and re-exports credentials as migration
// batches.
package main

import (
	"log"
	"os"

	"github.com/urfave/cli"
)

var version = "dev"

func main() {
	log.SetFlags(0)
	log.SetPrefix("otpauth: ")

	app := cli.NewApp()
	app.Name = "otpauth"
	app.Usage = "inspect and convert OTP credential QR codes"
	app.Version = version
	app.Commands = []cli.Command{
		scanCommand(),
		decodeCommand(),
		buildCommand(),
		exportCommand(),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
