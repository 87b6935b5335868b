// Package png renders otpauth:// URIs as QR code images, so a phone camera
// can import a credential instead of the operator retyping the secret.
package png

import "github.com/skip2/go-qrcode"

// Qr encodes content as a 300x300 PNG with medium error recovery.
func Qr(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, 300)
}

// WriteFile renders content as a QR code PNG at path, replacing any existing
// file.
func WriteFile(path, content string) error {
	return qrcode.WriteFile(content, qrcode.Medium, 300, path)
}
