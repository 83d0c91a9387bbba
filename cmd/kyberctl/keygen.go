package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pkg/errors"

	kyber "github.com/tscobarr/kyber-go"
)

var keygenCommand = &cli.Command{
	Name:      "keygen",
	Usage:     "generate a Kyber key pair",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "ek-out",
			Usage:    "path to write the encapsulation key",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "dk-out",
			Usage:    "path to write the decapsulation key",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		params, err := kyber.ParameterSetByName(c.String("paramset"))
		if err != nil {
			return errors.Wrap(err, "kyberctl keygen")
		}

		ek, dk, err := kyber.KEMKeyGen(params, kyber.DefaultSource)
		if err != nil {
			return errors.Wrap(err, "kyberctl keygen")
		}

		if err := os.WriteFile(c.String("ek-out"), ek, 0o600); err != nil {
			return errors.Wrap(err, "kyberctl keygen: write encapsulation key")
		}
		if err := os.WriteFile(c.String("dk-out"), dk, 0o600); err != nil {
			return errors.Wrap(err, "kyberctl keygen: write decapsulation key")
		}

		log.Info().
			Str("paramset", params.Name()).
			Str("ek", c.String("ek-out")).
			Str("dk", c.String("dk-out")).
			Msg("generated key pair")
		return nil
	},
}
