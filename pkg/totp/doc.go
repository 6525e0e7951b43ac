// Package totp provides an immutable Google Authenticator enrollment secret with
// label and provisioning URI derivation.
//
// An AuthenticationSecret bundles the issuer, the account name and the shared
// secret key. It is validated once at construction and never changes afterwards,
// so a value can be shared between goroutines freely.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/gauth/pkg/totp"
//
//	secret, err := totp.New("MyApp", "user@example.com", "JBSWY3DPEHPK3PXP")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Println(secret.Label()) // MyApp:user@example.com
//	fmt.Println(secret.URI())   // otpauth://totp/MyApp:user@example.com?secret=JBSWY3DPEHPK3PXP&issuer=MyApp
//
// # Validation
//
// Issuer and account name must be non-empty and must not contain ":", which
// separates them in the label. The secret key must be non-empty; its format is
// not checked. All validation errors wrap ErrInvalidArgument:
//
//	_, err := totp.New("Invalid:Issuer", "user", "secret")
//	errors.Is(err, totp.ErrInvalidArgument) // true
//	errors.Is(err, totp.ErrInvalidIssuer)   // true
//
// # Generating Secrets
//
// Generate creates a new random base32 secret key for enrollment:
//
//	secret, err := totp.Generate("MyApp", "user@example.com")
//
// # Parsing URIs
//
// Parse reads a provisioning URI back, for example one scanned from a QR code:
//
//	secret, err := totp.Parse("otpauth://totp/MyApp:user?secret=JBSWY3DPEHPK3PXP&issuer=MyApp")
//
// # Logging
//
// AuthenticationSecret implements slog.LogValuer and fmt.Stringer without
// exposing the secret key, so it can be passed to loggers directly.
package totp
