// Package commands implements the gauth subcommands. Each command writes its
// result to the given writer so it can be exercised without a terminal.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/gauth/core/logger"
	"github.com/dmitrymomot/gauth/pkg/qrcode"
	"github.com/dmitrymomot/gauth/pkg/totp"
)

// stdoutPath selects the command writer instead of a file.
const stdoutPath = "-"

// RunURI prints the provisioning URI for the given enrollment secret.
func RunURI(w io.Writer, issuer, accountName, secretKey string) error {
	s, err := totp.New(issuer, accountName, secretKey)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s.URI())
	return err
}

// RunLabel prints the issuer:account label.
func RunLabel(w io.Writer, issuer, accountName, secretKey string) error {
	s, err := totp.New(issuer, accountName, secretKey)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s.Label())
	return err
}

// RunGenerate creates a new secret key and prints the key and its provisioning URI.
func RunGenerate(w io.Writer, log *slog.Logger, issuer, accountName string) error {
	s, err := totp.Generate(issuer, accountName)
	if err != nil {
		return err
	}
	log.Info("secret generated", logger.Secret(s), logger.Action("generate"))

	_, err = fmt.Fprintf(w, "secret: %s\nuri: %s\n", s.SecretKey(), s.URI())
	return err
}

// QROptions configures RunQR.
type QROptions struct {
	Issuer      string
	AccountName string
	SecretKey   string
	Size        int
	// Out is a file path, or "-" to write to the command writer.
	Out string
}

// RunQR renders the provisioning URI as a PNG QR code.
func RunQR(w io.Writer, log *slog.Logger, opts QROptions) error {
	s, err := totp.New(opts.Issuer, opts.AccountName, opts.SecretKey)
	if err != nil {
		return err
	}

	png, err := qrcode.Generate(s.URI(), opts.Size)
	if err != nil {
		return err
	}

	if opts.Out == "" || opts.Out == stdoutPath {
		_, err = w.Write(png)
		return err
	}

	// QR holds the shared secret; keep it private to the owner.
	if err := os.WriteFile(opts.Out, png, 0o600); err != nil {
		return fmt.Errorf("write qr code: %w", err)
	}
	log.Info("qr code written",
		logger.Secret(s),
		slog.String("path", opts.Out),
		slog.Int("bytes", len(png)),
	)
	return nil
}

// RunInspect parses a provisioning URI and prints its fields.
func RunInspect(w io.Writer, uri string) error {
	s, err := totp.Parse(uri)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "issuer: %s\naccount: %s\nsecret: %s\nlabel: %s\n",
		s.Issuer(), s.AccountName(), s.SecretKey(), s.Label())
	return err
}
