package main

import (
	"encoding/hex"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pkg/errors"

	kyber "github.com/tscobarr/kyber-go"
)

var decapsulateCommand = &cli.Command{
	Name:      "decapsulate",
	Usage:     "recover the shared secret for a cipher text",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "dk-in",
			Usage:    "path to the decapsulation key",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "ct-in",
			Usage:    "path to the cipher text",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		params, err := kyber.ParameterSetByName(c.String("paramset"))
		if err != nil {
			return errors.Wrap(err, "kyberctl decapsulate")
		}

		dk, err := os.ReadFile(c.String("dk-in"))
		if err != nil {
			return errors.Wrap(err, "kyberctl decapsulate: read decapsulation key")
		}
		ct, err := os.ReadFile(c.String("ct-in"))
		if err != nil {
			return errors.Wrap(err, "kyberctl decapsulate: read cipher text")
		}

		sharedSecret, err := kyber.KEMDecapsulate(params, dk, ct)
		if err != nil {
			return errors.Wrap(err, "kyberctl decapsulate")
		}

		log.Info().
			Str("paramset", params.Name()).
			Str("shared_secret", hex.EncodeToString(sharedSecret)).
			Msg("decapsulated shared secret")
		return nil
	},
}
