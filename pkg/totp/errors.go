package totp

import "errors"

// Package-level error definitions for enrollment secret operations.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidIssuer      = errors.New("invalid issuer")
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrInvalidSecretKey   = errors.New("invalid secret key")
	ErrInvalidURI         = errors.New("invalid provisioning uri")
	ErrGenerateSecret     = errors.New("failed to generate secret key")
)
