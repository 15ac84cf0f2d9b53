package gateway

// ImageCodec decodes uploads and produces the canonical encoding
type ImageCodec interface {
	// Normalize decodes any supported format and re-encodes it as PNG.
	// Undecodable input yields ErrInvalidImage.
	Normalize(data []byte) ([]byte, error)

	// Fit downscales the image so its longest side is at most maxDim, keeping the aspect ratio.
	// Images already within bounds are returned unchanged.
	Fit(data []byte, maxDim int) ([]byte, error)

	// Thumbnail returns a PNG bounded by size x size
	Thumbnail(data []byte, size int) ([]byte, error)
}
