package gateway

import (
	"context"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
)

// TransformRequest is one call to the AI Transform Gateway
type TransformRequest struct {
	Image       []byte      // Normalized PNG bytes
	Mode        entity.Mode // Requested operation
	Tier        entity.Tier // Resolution hint
	Instruction string      // Full natural-language instruction sent with the image
}

// ImageTransformer is the AI Transform Gateway
type ImageTransformer interface {
	// Transform returns the transformed image bytes.
	// Any failure, including a response without an image, is reported as an error;
	// callers do not distinguish gateway sub-errors.
	Transform(ctx context.Context, req TransformRequest) ([]byte, error)
}
