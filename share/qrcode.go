// Package share produces the scannable encoding behind the shareable-link
// dialog. Encoding is local; no network is involved.
package share

import (
	qrcode "github.com/skip2/go-qrcode"

	"github.com/flipbooklib/flipbook/util"
	"github.com/pkg/errors"
)

// Size matches the dialog's rendered code, in pixels.
const Size = 200

// QRCodePNG encodes targetURL as a PNG image.
func QRCodePNG(targetURL string) ([]byte, error) {
	if targetURL == "" {
		return nil, errors.New("empty share URL")
	}
	png, err := qrcode.Encode(targetURL, qrcode.Medium, Size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode QR code")
	}
	return png, nil
}

// DownloadFilename names the downloaded code after the book title, the way
// the dialog's download action does.
func DownloadFilename(title string) string {
	return util.FilenameFromTitle("qr-"+title, ".png")
}
