package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	domainerr "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// uploadField is the multipart part carrying the image
const uploadField = "file"

// EnhancementHandler handles image enhancement HTTP requests
type EnhancementHandler struct {
	enhancer       usecase.EnhancementUseCase
	validate       *validator.Validate
	logger         coreport.Logger
	maxUploadBytes int64
}

// NewEnhancementHandler creates a new enhancement handler instance.
// Uploads are read up to maxUploadBytes+1 so that oversize files are rejected by the pipeline.
func NewEnhancementHandler(
	enhancer usecase.EnhancementUseCase,
	validate *validator.Validate,
	logger coreport.Logger,
	maxUploadBytes int64,
) *EnhancementHandler {
	return &EnhancementHandler{
		enhancer:       enhancer,
		validate:       validate,
		logger:         logger.With(map[string]any{"handler": "enhancement"}),
		maxUploadBytes: maxUploadBytes,
	}
}

// Enhance handles the POST /api/enhance endpoint
func (h *EnhancementHandler) Enhance(c *gin.Context) {
	var form dto.EnhanceForm
	if err := c.ShouldBind(&form); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}

	image, err := h.readUpload(c)
	if err != nil {
		respondError(c, h.logger, "Failed to read upload", err)
		return
	}

	result, err := h.enhancer.Enhance(c.Request.Context(), usecase.EnhanceRequest{
		UserID:     form.UserID,
		Mode:       form.Mode,
		Resolution: form.Resolution,
		Image:      image,
	})
	if err != nil {
		respondError(c, h.logger, "Enhancement failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEnhancementResponse(result))
}

// CustomEdit handles the POST /api/custom-edit endpoint
func (h *EnhancementHandler) CustomEdit(c *gin.Context) {
	var form dto.CustomEditForm
	if err := c.ShouldBind(&form); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}

	image, err := h.readUpload(c)
	if err != nil {
		respondError(c, h.logger, "Failed to read upload", err)
		return
	}

	result, err := h.enhancer.CustomEdit(c.Request.Context(), usecase.CustomEditRequest{
		UserID:      form.UserID,
		Instruction: form.EditDescription,
		Resolution:  form.Resolution,
		Image:       image,
	})
	if err != nil {
		respondError(c, h.logger, "Custom edit failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEnhancementResponse(result))
}

// GetImage handles the GET /api/image/*key endpoint
func (h *EnhancementHandler) GetImage(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	thumbnail := false
	if raw := c.Query("thumbnail"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			respondInvalid(c, h.logger, fmt.Errorf("thumbnail must be a boolean: %q", raw))
			return
		}
		thumbnail = parsed
	}

	data, err := h.enhancer.Image(c.Request.Context(), key, thumbnail)
	if err != nil {
		respondError(c, h.logger, "Failed to load image", err)
		return
	}

	c.Header("Cache-Control", "private, max-age=3600")
	c.Data(http.StatusOK, "image/png", data)
}

// ListEnhancements handles the GET /api/enhancements/:userId endpoint
func (h *EnhancementHandler) ListEnhancements(c *gin.Context) {
	var query dto.HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}
	if err := h.validate.Struct(&query); err != nil {
		respondInvalid(c, h.logger, err)
		return
	}

	page, err := h.enhancer.History(c.Request.Context(), c.Param("userId"), query.Limit, query.Offset)
	if err != nil {
		respondError(c, h.logger, "Failed to list enhancements", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewEnhancementListResponse(page))
}

// readUpload reads the uploaded image, stopping one byte past the upload limit
func (h *EnhancementHandler) readUpload(c *gin.Context) ([]byte, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, fmt.Errorf("%w: missing %q part", domainerr.ErrInvalidImage, uploadField)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerr.ErrInvalidImage, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainerr.ErrInvalidImage, err)
	}
	return data, nil
}
