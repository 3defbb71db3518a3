package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"
)

const (
	AvatarSize    = 256
	avatarQuality = 85
	// maxAvatarBytes bounds how much of an upload is read before decoding.
	maxAvatarBytes = 10 << 20
	// Decoders allocate the full frame from the header alone, so the declared
	// geometry is checked before any pixel data is read.
	maxAvatarSide   = 8192
	maxAvatarPixels = 40 << 20
)

var ErrUnsupportedImage = errors.New("unsupported image")

// NormalizeAvatar decodes r and returns a JPEG that fits inside AvatarSize x AvatarSize.
// Aspect ratio is preserved; smaller images are re-encoded without upscaling.
func NormalizeAvatar(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(io.LimitReader(r, maxAvatarBytes))
	if err != nil {
		return nil, fmt.Errorf("read avatar: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if err := checkDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	thumb := resize.Thumbnail(AvatarSize, AvatarSize, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("encode avatar: %w", err)
	}
	return buf.Bytes(), nil
}

func checkDimensions(w, h int) error {
	if w <= 0 || h <= 0 || w > maxAvatarSide || h > maxAvatarSide || w*h > maxAvatarPixels {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d or %d pixels", ErrUnsupportedImage, w, h, maxAvatarSide, maxAvatarSide, maxAvatarPixels)
	}
	return nil
}
