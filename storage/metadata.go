package storage

import (
	"bytes"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/atelierhq/design-portal/models"
)

// ProbeImage decodes the header of an uploaded binary and returns its format
// and pixel dimensions. Anything that is not a recognized image format is a
// validation error, not an upload failure.
func ProbeImage(buf []byte) (format string, width, height int, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(buf))
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: unsupported image format", models.ErrInvalidInput)
	}
	return format, cfg.Width, cfg.Height, nil
}
