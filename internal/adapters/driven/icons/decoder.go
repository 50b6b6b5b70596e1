// Package icons decodes favicon blobs into displayable images using
// the standard library image decoders. Decoding is best-effort: the
// caller drops the icon on any failure and the result falls back to
// the host's default glyph.
package icons

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Favicon formats found in the wild.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/custodia-labs/foxfind/internal/core/ports/driven"
)

// Ensure Decoder implements the interface.
var _ driven.IconDecoder = (*Decoder)(nil)

// Decoder decodes favicon bytes with the registered image formats.
type Decoder struct{}

// NewDecoder creates a new icon decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode attempts a single decode pass over the blob. SVG and ICO
// blobs are not decodable here and come back as errors, like any
// other unsupported or truncated data.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, errors.New("empty icon data")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding icon: %w", err)
	}
	return img, nil
}
