package totp

import (
	"fmt"

	pqtotp "github.com/pquerna/otp/totp"
)

// Generate creates an AuthenticationSecret with a fresh random base32 secret key.
// Issuer and account name are validated before any randomness is consumed.
func Generate(issuer, accountName string) (AuthenticationSecret, error) {
	if err := validateLabelPart(issuer); err != nil {
		return AuthenticationSecret{}, invalid(ErrInvalidIssuer, err)
	}
	if err := validateLabelPart(accountName); err != nil {
		return AuthenticationSecret{}, invalid(ErrInvalidAccountName, err)
	}

	key, err := pqtotp.Generate(pqtotp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
	})
	if err != nil {
		return AuthenticationSecret{}, fmt.Errorf("%w: %w", ErrGenerateSecret, err)
	}

	return New(issuer, accountName, key.Secret())
}
