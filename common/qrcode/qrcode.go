package qrcode

import (
	"encoding/base64"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// GenerateQRCodeBase64 generates a QR code as a PNG data URI
// ("data:image/png;base64,..."), usable directly in an HTML <img> tag.
func GenerateQRCodeBase64(text string, size int) (string, error) {
	pngBytes, err := GenerateQRCodePngBytes(text, size)
	if err != nil {
		return "", err
	}

	base64Str := base64.StdEncoding.EncodeToString(pngBytes)
	return fmt.Sprintf("data:image/png;base64,%s", base64Str), nil
}

// GenerateQRCodePngBytes generates a QR code as PNG bytes with Medium error
// correction (15% recovery).
func GenerateQRCodePngBytes(text string, size int) ([]byte, error) {
	qr, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	pngBytes, err := qr.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR to PNG: %w", err)
	}

	return pngBytes, nil
}

// GenerateResetLinkQRBase64 generates the QR code embedded in password-reset
// emails. The QR carries the full reset link; the raw token inside it is the
// same single-use secret the link carries, so the email is the only place it
// ever appears.
//
// Standard size for email rendering is 220px.
func GenerateResetLinkQRBase64(resetLink string, size int) (string, error) {
	return GenerateQRCodeBase64(resetLink, size)
}
