// Package main provides the gauth command line tool for TOTP enrollment secrets.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/gauth/cmd/gauth/commands"
	"github.com/dmitrymomot/gauth/core/config"
	"github.com/dmitrymomot/gauth/core/logger"
)

// Config holds environment defaults for the CLI.
type Config struct {
	Issuer    string `env:"GAUTH_ISSUER"`
	QRSize    int    `env:"GAUTH_QR_SIZE" envDefault:"256"`
	LogLevel  string `env:"GAUTH_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"GAUTH_LOG_FORMAT" envDefault:"text"`
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	logOpts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithAttr(logger.Component("gauth")),
	}
	if cfg.LogFormat == "json" {
		logOpts = append(logOpts, logger.WithJSONFormatter())
	}
	log := logger.New(logOpts...)

	issuerFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:    "issuer",
			Aliases: []string{"i"},
			Value:   cfg.Issuer,
			Usage:   "Service name shown in the authenticator app (default from GAUTH_ISSUER)",
		}
	}
	accountFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:     "account",
			Aliases:  []string{"a"},
			Required: true,
			Usage:    "Account name of the enrolled user",
		}
	}
	secretFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:     "secret",
			Aliases:  []string{"s"},
			Required: true,
			Usage:    "Shared secret key",
		}
	}

	cmd := &cli.Command{
		Name:    "gauth",
		Usage:   "Google Authenticator enrollment secrets",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "uri",
				Usage: "Print the provisioning URI",
				Flags: []cli.Flag{issuerFlag(), accountFlag(), secretFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunURI(os.Stdout, cmd.String("issuer"), cmd.String("account"), cmd.String("secret"))
				},
			},
			{
				Name:  "label",
				Usage: "Print the issuer:account label",
				Flags: []cli.Flag{issuerFlag(), accountFlag(), secretFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunLabel(os.Stdout, cmd.String("issuer"), cmd.String("account"), cmd.String("secret"))
				},
			},
			{
				Name:  "generate",
				Usage: "Generate a new secret key and print its provisioning URI",
				Flags: []cli.Flag{issuerFlag(), accountFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerate(os.Stdout, log, cmd.String("issuer"), cmd.String("account"))
				},
			},
			{
				Name:  "qr",
				Usage: "Write the provisioning URI as a PNG QR code",
				Flags: []cli.Flag{
					issuerFlag(),
					accountFlag(),
					secretFlag(),
					&cli.IntFlag{
						Name:  "size",
						Value: cfg.QRSize,
						Usage: "Image width and height in pixels",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Value:   "-",
						Usage:   "Output file, or - for stdout",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunQR(
						os.Stdout,
						log,
						commands.QROptions{
							Issuer:      cmd.String("issuer"),
							AccountName: cmd.String("account"),
							SecretKey:   cmd.String("secret"),
							Size:        cmd.Int("size"),
							Out:         cmd.String("out"),
						},
					)
				},
			},
			{
				Name:      "inspect",
				Usage:     "Parse a provisioning URI and print its fields",
				ArgsUsage: "<uri>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunInspect(os.Stdout, cmd.Args().First())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Error("command failed", logger.Error(err))
		os.Exit(1)
	}
}
