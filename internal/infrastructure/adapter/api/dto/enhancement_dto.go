package dto

import (
	"time"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
)

// ImagePathPrefix is where stored images are served by the proxy endpoint
const ImagePathPrefix = "/api/image/"

// EnhanceForm holds the multipart fields of POST /api/enhance; the image is the "file" part
type EnhanceForm struct {
	UserID     string `form:"user_id" validate:"required,max=255"`
	Mode       string `form:"mode" validate:"omitempty,max=32"`
	Resolution string `form:"resolution" validate:"omitempty,oneof=standard hd"`
}

// CustomEditForm holds the multipart fields of POST /api/custom-edit
type CustomEditForm struct {
	UserID          string `form:"user_id" validate:"required,max=255"`
	EditDescription string `form:"edit_description" validate:"required"`
	Resolution      string `form:"resolution" validate:"omitempty,oneof=standard hd"`
}

// HistoryQuery is the pagination of GET /api/enhancements/:userId
type HistoryQuery struct {
	Limit  int `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `form:"offset" validate:"omitempty,min=0"`
}

// EnhancementResponse is returned by the enhance and custom edit endpoints
type EnhancementResponse struct {
	EnhancementID    string  `json:"enhancement_id"`
	EnhancedURL      string  `json:"enhanced_url"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	Resolution       string  `json:"resolution"`
	Mode             string  `json:"mode"`
	Watermark        bool    `json:"watermark"`
	ProcessingTime   float64 `json:"processing_time"`
	RemainingCredits int     `json:"remaining_credits"`
	RemainingToday   int     `json:"remaining_today"`
}

// EnhancementItem is one entry of the enhancement history
type EnhancementItem struct {
	ID             string    `json:"id"`
	OriginalURL    string    `json:"original_url"`
	EnhancedURL    string    `json:"enhanced_url"`
	ThumbnailURL   string    `json:"thumbnail_url"`
	Resolution     string    `json:"resolution"`
	Mode           string    `json:"mode"`
	Instruction    string    `json:"instruction,omitempty"`
	ProcessingTime float64   `json:"processing_time"`
	Watermark      bool      `json:"watermark"`
	CreatedAt      time.Time `json:"created_at"`
}

// EnhancementListResponse is one page of the enhancement history
type EnhancementListResponse struct {
	Enhancements []EnhancementItem `json:"enhancements"`
	Total        int64             `json:"total"`
	Limit        int               `json:"limit"`
	Offset       int               `json:"offset"`
}

// ImageURL returns the proxy path of a stored image
func ImageURL(key string) string {
	return ImagePathPrefix + key
}

// ThumbnailURL returns the proxy path of the thumbnail of a stored image
func ThumbnailURL(key string) string {
	return ImageURL(key) + "?thumbnail=true"
}

// NewEnhancementResponse maps a pipeline result; an unsigned result falls back to the proxy path
func NewEnhancementResponse(result *usecase.EnhanceResult) EnhancementResponse {
	enhancedURL := result.EnhancedURL
	if enhancedURL == "" {
		enhancedURL = ImageURL(result.EnhancedKey)
	}
	return EnhancementResponse{
		EnhancementID:    result.EnhancementID,
		EnhancedURL:      enhancedURL,
		ThumbnailURL:     ThumbnailURL(result.EnhancedKey),
		Resolution:       string(result.Tier),
		Mode:             string(result.Mode),
		Watermark:        result.Watermark,
		ProcessingTime:   result.ProcessingTime,
		RemainingCredits: result.RemainingCredits,
		RemainingToday:   result.RemainingToday,
	}
}

// NewEnhancementListResponse maps a history page
func NewEnhancementListResponse(page *entity.EnhancementPage) EnhancementListResponse {
	items := make([]EnhancementItem, 0, len(page.Items))
	for _, e := range page.Items {
		items = append(items, EnhancementItem{
			ID:             e.ID,
			OriginalURL:    ImageURL(e.OriginalKey),
			EnhancedURL:    ImageURL(e.EnhancedKey),
			ThumbnailURL:   ThumbnailURL(e.EnhancedKey),
			Resolution:     string(e.Tier),
			Mode:           string(e.Mode),
			Instruction:    e.Instruction,
			ProcessingTime: e.ProcessingTime,
			Watermark:      e.Watermark,
			CreatedAt:      e.CreatedAt,
		})
	}
	return EnhancementListResponse{
		Enhancements: items,
		Total:        page.Total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}
}
