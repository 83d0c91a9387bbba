// Command kyberctl is a thin file-based driver around the kyber package's
// key generation, encapsulation, and decapsulation operations. It exists to
// exercise the core library from the command line; it is not a secure key
// management tool and does no permission or passphrase handling of its own.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/pkg/errors"
)

var log zerolog.Logger

func main() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "kyberctl",
		Usage: "generate Kyber key pairs and encapsulate/decapsulate shared secrets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "loglevel",
				Value: "info",
				Usage: "logging level {debug, info, warn, error}",
			},
			&cli.StringFlag{
				Name:  "paramset",
				Value: "kyber768",
				Usage: "named parameter set {kyber512, kyber768, kyber1024}",
			},
		},
		Before: func(c *cli.Context) error {
			lvl, err := zerolog.ParseLevel(c.String("loglevel"))
			if err != nil {
				return errors.Wrap(err, "kyberctl: parse loglevel")
			}
			log = log.Level(lvl)
			return nil
		},
		Commands: []*cli.Command{
			keygenCommand,
			encapsulateCommand,
			decapsulateCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("kyberctl failed")
		os.Exit(1)
	}
}
