package storage

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
)

// ValidateImage decodes just enough of data to confirm it is a supported
// image (png, jpeg, gif or webp). Non-images never reach the bucket.
func ValidateImage(data []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return nil
	}
	if _, err := webp.DecodeConfig(bytes.NewReader(data)); err == nil {
		return nil
	}
	return errors.New("unsupported file type: not an image")
}
