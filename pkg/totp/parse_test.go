package totp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gauth/pkg/totp"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("round trips URI", func(t *testing.T) {
		t.Parallel()
		inputs := append([]secretInput{{"My App", "john doe@example.com", "JBSWY3DPEHPK3PXP"}}, validInputs...)
		for _, in := range inputs {
			want := totp.MustNew(in.issuer, in.accountName, in.secretKey)

			got, err := totp.Parse(want.URI())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("falls back to label issuer", func(t *testing.T) {
		t.Parallel()
		got, err := totp.Parse("otpauth://totp/Issuer1:AccountName1?secret=SecretKey1")
		require.NoError(t, err)
		assert.Equal(t, "Issuer1", got.Issuer())
		assert.Equal(t, "AccountName1", got.AccountName())
		assert.Equal(t, "SecretKey1", got.SecretKey())
	})

	tests := []struct {
		name    string
		uri     string
		wantErr error
	}{
		{"wrong scheme", "https://totp/Issuer1:AccountName1?secret=S&issuer=Issuer1", totp.ErrInvalidURI},
		{"hotp type", "otpauth://hotp/Issuer1:AccountName1?secret=S&issuer=Issuer1", totp.ErrInvalidURI},
		{"label without issuer", "otpauth://totp/AccountName1?secret=S&issuer=Issuer1", totp.ErrInvalidURI},
		{"issuer mismatch", "otpauth://totp/Issuer1:AccountName1?secret=S&issuer=Other", totp.ErrInvalidURI},
		{"missing secret", "otpauth://totp/Issuer1:AccountName1?issuer=Issuer1", totp.ErrInvalidSecretKey},
		{"account with separator", "otpauth://totp/Issuer1:Account:Name?secret=S&issuer=Issuer1", totp.ErrInvalidAccountName},
		{"empty account", "otpauth://totp/Issuer1:?secret=S&issuer=Issuer1", totp.ErrInvalidAccountName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := totp.Parse(tt.uri)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, totp.ErrInvalidArgument)
		})
	}
}
