package totp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pquerna/otp"
)

// Parse reads a provisioning URI back into an AuthenticationSecret.
// When both the label prefix and the issuer query parameter are present they must match.
func Parse(uri string) (AuthenticationSecret, error) {
	if !strings.HasPrefix(strings.TrimSpace(uri), BaseURL) {
		return AuthenticationSecret{}, invalid(ErrInvalidURI, fmt.Errorf("must start with %q", BaseURL))
	}

	key, err := otp.NewKeyFromURL(uri)
	if err != nil {
		return AuthenticationSecret{}, invalid(ErrInvalidURI, err)
	}

	u, err := url.Parse(key.URL())
	if err != nil {
		return AuthenticationSecret{}, invalid(ErrInvalidURI, err)
	}

	label := strings.TrimPrefix(u.Path, "/")
	prefix, _, ok := strings.Cut(label, labelSeparator)
	if !ok {
		return AuthenticationSecret{}, invalid(ErrInvalidURI, errors.New("label must be issuer:account"))
	}
	if prefix != key.Issuer() {
		return AuthenticationSecret{}, invalid(ErrInvalidURI, errors.New("issuer parameter does not match label"))
	}

	return New(key.Issuer(), key.AccountName(), key.Secret())
}
