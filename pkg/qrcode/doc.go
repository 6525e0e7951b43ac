// Package qrcode renders provisioning URIs as PNG QR codes for authenticator enrollment.
//
// Codes use medium error correction, which recovers from roughly 15% damage and
// keeps typical otpauth:// URIs well inside the capacity of a small symbol.
//
// # Usage
//
// Raw PNG bytes:
//
//	secret := totp.MustNew("MyApp", "user@example.com", "JBSWY3DPEHPK3PXP")
//
//	png, err := qrcode.Generate(secret.URI(), 256)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = os.WriteFile("enroll.png", png, 0o600)
//
// Data URI for direct HTML embedding:
//
//	dataURI, err := qrcode.GenerateBase64Image(secret.URI(), qrcode.DefaultSize)
//	fmt.Printf(`<img src="%s" alt="Scan with your authenticator app">`, dataURI)
//
// A size of zero or less selects DefaultSize.
package qrcode
