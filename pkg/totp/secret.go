package totp

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// BaseURL is the prefix of every provisioning URI produced by AuthenticationSecret.URI.
const BaseURL = "otpauth://totp/"

// labelSeparator joins issuer and account name in a label. It is reserved and
// therefore rejected inside either part.
const labelSeparator = ":"

// AuthenticationSecret is an immutable TOTP enrollment secret.
// The zero value is not valid; construct it with New, Generate or Parse.
type AuthenticationSecret struct {
	issuer      string
	accountName string
	secretKey   string
}

// New validates the inputs and returns an AuthenticationSecret holding them verbatim.
// Every validation error wraps ErrInvalidArgument.
func New(issuer, accountName, secretKey string) (AuthenticationSecret, error) {
	if err := validateLabelPart(issuer); err != nil {
		return AuthenticationSecret{}, invalid(ErrInvalidIssuer, err)
	}
	if err := validateLabelPart(accountName); err != nil {
		return AuthenticationSecret{}, invalid(ErrInvalidAccountName, err)
	}
	if secretKey == "" {
		return AuthenticationSecret{}, invalid(ErrInvalidSecretKey, errors.New("must not be empty"))
	}

	return AuthenticationSecret{
		issuer:      issuer,
		accountName: accountName,
		secretKey:   secretKey,
	}, nil
}

// MustNew is like New but panics if the inputs are invalid.
func MustNew(issuer, accountName, secretKey string) AuthenticationSecret {
	s, err := New(issuer, accountName, secretKey)
	if err != nil {
		panic(err)
	}
	return s
}

// Issuer returns the name of the service requesting enrollment.
func (s AuthenticationSecret) Issuer() string { return s.issuer }

// AccountName returns the enrolled user identifier.
func (s AuthenticationSecret) AccountName() string { return s.accountName }

// SecretKey returns the shared secret.
func (s AuthenticationSecret) SecretKey() string { return s.secretKey }

// Label returns "issuer:accountName", the display string used by authenticator apps.
func (s AuthenticationSecret) Label() string {
	return s.issuer + labelSeparator + s.accountName
}

// URI returns the provisioning URI for QR code enrollment:
//
//	otpauth://totp/<label>?secret=<secret>&issuer=<issuer>
//
// The issuer parameter always comes last.
func (s AuthenticationSecret) URI() string {
	var b strings.Builder
	b.Grow(len(BaseURL) + len(s.issuer)*2 + len(s.accountName) + len(s.secretKey) + 24)
	b.WriteString(BaseURL)
	b.WriteString(url.PathEscape(s.Label()))
	b.WriteString("?secret=")
	b.WriteString(url.QueryEscape(s.secretKey))
	b.WriteString("&issuer=")
	b.WriteString(url.QueryEscape(s.issuer))
	return b.String()
}

// IsZero reports whether s is the zero value, which New never returns on success.
func (s AuthenticationSecret) IsZero() bool {
	return s == AuthenticationSecret{}
}

// String returns the label. The secret key is never included.
func (s AuthenticationSecret) String() string {
	return s.Label()
}

// LogValue implements slog.LogValuer with the secret key redacted.
func (s AuthenticationSecret) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("issuer", s.issuer),
		slog.String("account_name", s.accountName),
		slog.String("secret", "[REDACTED]"),
	)
}

func validateLabelPart(v string) error {
	if v == "" {
		return errors.New("must not be empty")
	}
	if strings.Contains(v, labelSeparator) {
		return fmt.Errorf("must not contain %q", labelSeparator)
	}
	return nil
}

func invalid(kind, cause error) error {
	return fmt.Errorf("%w: %w: %w", ErrInvalidArgument, kind, cause)
}
