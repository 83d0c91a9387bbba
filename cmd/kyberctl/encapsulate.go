package main

import (
	"encoding/hex"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pkg/errors"

	kyber "github.com/tscobarr/kyber-go"
)

var encapsulateCommand = &cli.Command{
	Name:      "encapsulate",
	Usage:     "encapsulate a shared secret under an encapsulation key",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "ek-in",
			Usage:    "path to the peer's encapsulation key",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "ct-out",
			Usage:    "path to write the cipher text",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		params, err := kyber.ParameterSetByName(c.String("paramset"))
		if err != nil {
			return errors.Wrap(err, "kyberctl encapsulate")
		}

		ek, err := os.ReadFile(c.String("ek-in"))
		if err != nil {
			return errors.Wrap(err, "kyberctl encapsulate: read encapsulation key")
		}

		ct, sharedSecret, err := kyber.KEMEncapsulate(params, ek, kyber.DefaultSource)
		if err != nil {
			return errors.Wrap(err, "kyberctl encapsulate")
		}

		if err := os.WriteFile(c.String("ct-out"), ct, 0o600); err != nil {
			return errors.Wrap(err, "kyberctl encapsulate: write cipher text")
		}

		log.Info().
			Str("paramset", params.Name()).
			Str("ct", c.String("ct-out")).
			Str("shared_secret", hex.EncodeToString(sharedSecret)).
			Msg("encapsulated shared secret")
		return nil
	},
}
