package commands_test

import (
	"bytes"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gauth/cmd/gauth/commands"
	"github.com/dmitrymomot/gauth/pkg/totp"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunURI(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, commands.RunURI(&buf, "Issuer1", "AccountName1", "SecretKey1"))
	assert.Equal(t, "otpauth://totp/Issuer1:AccountName1?secret=SecretKey1&issuer=Issuer1\n", buf.String())

	err := commands.RunURI(&buf, "Invalid:Issuer1", "AccountName1", "SecretKey1")
	assert.ErrorIs(t, err, totp.ErrInvalidArgument)
}

func TestRunLabel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, commands.RunLabel(&buf, "Issuer1", "AccountName1", "SecretKey1"))
	assert.Equal(t, "Issuer1:AccountName1\n", buf.String())

	err := commands.RunLabel(&buf, "", "AccountName1", "SecretKey1")
	assert.ErrorIs(t, err, totp.ErrInvalidIssuer)
}

func TestRunGenerate(t *testing.T) {
	t.Parallel()

	var out, logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	require.NoError(t, commands.RunGenerate(&out, log, "Issuer1", "AccountName1"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	secret := strings.TrimPrefix(lines[0], "secret: ")
	uri := strings.TrimPrefix(lines[1], "uri: ")

	parsed, err := totp.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, secret, parsed.SecretKey())
	assert.NotContains(t, logs.String(), secret)
}

func TestRunQR(t *testing.T) {
	t.Parallel()

	t.Run("writes to writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := commands.RunQR(&buf, discardLogger(), commands.QROptions{
			Issuer: "Issuer1", AccountName: "AccountName1", SecretKey: "SecretKey1", Size: 128, Out: "-",
		})
		require.NoError(t, err)
		img, err := png.Decode(&buf)
		require.NoError(t, err)
		assert.Equal(t, 128, img.Bounds().Dx())
	})

	t.Run("writes to file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "enroll.png")
		err := commands.RunQR(io.Discard, discardLogger(), commands.QROptions{
			Issuer: "Issuer1", AccountName: "AccountName1", SecretKey: "SecretKey1", Out: path,
		})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(data))
		assert.NoError(t, err)
	})

	t.Run("rejects invalid secret", func(t *testing.T) {
		t.Parallel()
		err := commands.RunQR(io.Discard, discardLogger(), commands.QROptions{
			Issuer: "Issuer1", AccountName: "Invalid:AccountName1", SecretKey: "SecretKey1",
		})
		assert.ErrorIs(t, err, totp.ErrInvalidAccountName)
	})
}

func TestRunInspect(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, commands.RunInspect(&buf, "otpauth://totp/Issuer1:AccountName1?secret=SecretKey1&issuer=Issuer1"))
	assert.Equal(t, "issuer: Issuer1\naccount: AccountName1\nsecret: SecretKey1\nlabel: Issuer1:AccountName1\n", buf.String())

	err := commands.RunInspect(&buf, "https://example.com")
	assert.ErrorIs(t, err, totp.ErrInvalidURI)
}
