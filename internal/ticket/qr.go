package ticket

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// qrDataURI encodes content as a small PNG QR code and returns it as a
// base64 data URI suitable for an <img> src attribute.
func qrDataURI(content string) (string, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, 100)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
