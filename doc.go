// Package gauth is a toolkit for Google Authenticator style TOTP enrollment.
//
// # Package Organization
//
//	github.com/dmitrymomot/gauth/pkg/totp        - Immutable enrollment secret with label and provisioning URI
//	github.com/dmitrymomot/gauth/pkg/qrcode      - PNG QR code rendering for provisioning URIs
//	github.com/dmitrymomot/gauth/core/config     - Type-safe environment variable loading
//	github.com/dmitrymomot/gauth/core/logger     - slog construction and attribute helpers
//	github.com/dmitrymomot/gauth/cmd/gauth       - Command line tool
//
// # Quick Start
//
//	secret, err := totp.New("MyApp", "user@example.com", "JBSWY3DPEHPK3PXP")
//	if err != nil {
//		return err
//	}
//
//	png, err := qrcode.Generate(secret.URI(), qrcode.DefaultSize)
//
// For detailed documentation on any package, use go doc:
//
//	go doc github.com/dmitrymomot/gauth/pkg/totp
package gauth
