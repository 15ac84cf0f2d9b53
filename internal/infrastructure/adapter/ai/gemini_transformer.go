package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/gateway"
)

const (
	gatewayName = "transform"

	// DefaultModel is the Gemini image model used when none is configured
	DefaultModel = "gemini-2.5-flash-image-preview"
	// DefaultTimeout bounds a single model call
	DefaultTimeout = 120 * time.Second

	inputMIMEType = "image/png"
)

var (
	// ErrNotConfigured is returned by every call when no API key was provided
	ErrNotConfigured = errors.New("gemini client not initialized")
	// ErrNoImage is returned when the model answers without inline image data
	ErrNoImage = errors.New("no image data received from gemini")
)

// Config holds the Gemini connection settings
type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

// contentGenerator is the subset of *genai.Models the transformer calls
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiTransformer implements gateway.ImageTransformer on the Gemini API
type GeminiTransformer struct {
	models       contentGenerator
	model        string
	timeout      core.Duration
	timeProvider core.TimeProvider
	metrics      core.Metrics
	logger       core.Logger
}

// NewGeminiTransformer creates the transformer. Without an API key the
// service still starts and every transform fails with ErrNotConfigured.
func NewGeminiTransformer(
	ctx context.Context,
	cfg Config,
	timeProvider core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) (*GeminiTransformer, error) {
	var models contentGenerator
	if cfg.APIKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		models = client.Models
	} else {
		logger.Warn("No AI API key configured, enhancement requests will fail", nil)
	}

	return newGeminiTransformer(models, cfg, timeProvider, metrics, logger), nil
}

func newGeminiTransformer(
	models contentGenerator,
	cfg Config,
	timeProvider core.TimeProvider,
	metrics core.Metrics,
	logger core.Logger,
) *GeminiTransformer {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &GeminiTransformer{
		models:       models,
		model:        cfg.Model,
		timeout:      core.Duration(cfg.Timeout),
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger.With(map[string]any{"component": "gemini", "model": cfg.Model}),
	}
}

var _ gateway.ImageTransformer = (*GeminiTransformer)(nil)

// Transform sends the instruction and the image and returns the first inline image of the answer
func (g *GeminiTransformer) Transform(ctx context.Context, req gateway.TransformRequest) (_ []byte, err error) {
	start := g.timeProvider.Now()
	defer func() {
		outcome := core.OutcomeSuccess
		if err != nil {
			outcome = core.OutcomeFailure
		}
		g.metrics.ObserveGatewayCall(gatewayName, string(req.Mode), outcome, g.timeProvider.Since(start).Seconds())
	}()

	if g.models == nil {
		return nil, ErrNotConfigured
	}

	ctx, cancel := g.timeProvider.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(req.Instruction),
			genai.NewPartFromBytes(req.Image, inputMIMEType),
		}, genai.RoleUser),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		g.logger.Error("Gemini request failed", map[string]any{
			"mode":  req.Mode,
			"tier":  req.Tier,
			"error": err.Error(),
		})
		return nil, fmt.Errorf("gemini enhancement failed: %w", err)
	}

	data := firstInlineImage(resp)
	if data == nil {
		g.logger.Warn("Gemini response carried no image", map[string]any{"mode": req.Mode, "tier": req.Tier})
		return nil, ErrNoImage
	}

	g.logger.Debug("Gemini transform finished", map[string]any{
		"mode":         req.Mode,
		"tier":         req.Tier,
		"input_bytes":  len(req.Image),
		"output_bytes": len(data),
	})
	return data, nil
}

func firstInlineImage(resp *genai.GenerateContentResponse) []byte {
	if resp == nil {
		return nil
	}
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return part.InlineData.Data
			}
		}
	}
	return nil
}
