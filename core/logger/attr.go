package logger

import (
	"log/slog"

	"github.com/dmitrymomot/gauth/pkg/totp"
)

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the emitting part of the application.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action names the operation being performed.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// ============================================================================
// Enrollment
// ============================================================================

// Issuer creates an attribute for the enrollment issuer.
func Issuer(issuer string) slog.Attr {
	if issuer == "" {
		return slog.Attr{}
	}
	return slog.String("issuer", issuer)
}

// AccountName creates an attribute for the enrolled account.
func AccountName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("account_name", name)
}

// Secret logs an enrollment secret under the key "secret" with the key material redacted.
func Secret(s totp.AuthenticationSecret) slog.Attr {
	if s.IsZero() {
		return slog.Attr{}
	}
	return slog.Any("secret", s)
}
