package qrcode

import "errors"

var (
	ErrEmptyContent     = errors.New("qrcode: content must not be empty")
	ErrGenerationFailed = errors.New("qrcode: generation failed")
)
