package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const (
	// MaxPayloadBytes bounds uploaded image size.
	MaxPayloadBytes = 10 << 20

	// DefaultTargetSize matches the input resolution of the ViT-B/32 image
	// encoder.
	DefaultTargetSize = 224
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ValidateFilename rejects files whose extension is not a supported image
// format.
func ValidateFilename(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return fmt.Errorf("invalid file type: %s has no extension", name)
	}
	if !allowedExtensions[ext] {
		return fmt.Errorf("invalid file type %s, allowed types: png, jpg, jpeg", ext)
	}
	return nil
}

// Preparer decodes, validates, and resizes raw image payloads into the
// square RGBA payload the embedding provider expects.
type Preparer struct {
	targetSize int
}

func NewPreparer(targetSize int) *Preparer {
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}
	return &Preparer{targetSize: targetSize}
}

// Prepare decodes data, scales it to the target resolution, and re-encodes
// it as PNG. An oversized or undecodable payload is an error.
func (p *Preparer) Prepare(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	if len(data) > MaxPayloadBytes {
		return nil, fmt.Errorf(
			"image payload of %d bytes exceeds maximum of %d", len(data), MaxPayloadBytes,
		)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, p.targetSize, p.targetSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
