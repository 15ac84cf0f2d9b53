package enhancement

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/prompt"
)

// Defaults of the request pipeline
const (
	DefaultStandardSize   = 1024
	DefaultHDSize         = 2048
	DefaultThumbnailSize  = 200
	DefaultMaxUploadBytes = 20 << 20
	DefaultHistoryLimit   = 20
	MaxHistoryLimit       = 100
)

// Options tunes image sizes and upload bounds
type Options struct {
	TargetSizes    map[entity.Tier]int // Longest side of the transform input per tier
	ThumbnailSize  int
	MaxUploadBytes int64
}

// DefaultOptions returns the sizes the mobile clients expect
func DefaultOptions() Options {
	return Options{
		TargetSizes: map[entity.Tier]int{
			entity.TierStandard: DefaultStandardSize,
			entity.TierHD:       DefaultHDSize,
		},
		ThumbnailSize:  DefaultThumbnailSize,
		MaxUploadBytes: DefaultMaxUploadBytes,
	}
}

// Dependencies are the collaborators of the Orchestrator
type Dependencies struct {
	Ledger          usecase.LedgerUseCase
	Reconciler      usecase.ReconciliationUseCase
	Analytics       usecase.AnalyticsUseCase
	Transformer     gateway.ImageTransformer
	Store           gateway.BlobStore
	Codec           gateway.ImageCodec
	EnhancementRepo persistence.EnhancementRepository
	TimeProvider    coreport.TimeProvider
	IDGenerator     coreport.IDGenerator
	Metrics         coreport.Metrics
	Logger          coreport.Logger
}

// Orchestrator runs one enhancement request end to end and owns its compensation
type Orchestrator struct {
	Dependencies
	options Options
}

var _ usecase.EnhancementUseCase = (*Orchestrator)(nil)

// NewOrchestrator creates a new Orchestrator
func NewOrchestrator(deps Dependencies, options Options) *Orchestrator {
	defaults := DefaultOptions()
	if options.TargetSizes == nil {
		options.TargetSizes = defaults.TargetSizes
	}
	if options.ThumbnailSize <= 0 {
		options.ThumbnailSize = defaults.ThumbnailSize
	}
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = defaults.MaxUploadBytes
	}
	return &Orchestrator{Dependencies: deps, options: options}
}

// job is one validated request flowing through the pipeline
type job struct {
	userID      string
	tier        entity.Tier
	mode        entity.Mode
	instruction string // Sent to the gateway
	custom      string // Recorded with the enhancement for custom edits
	image       []byte
}

// Enhance processes a catalog mode request
func (o *Orchestrator) Enhance(ctx context.Context, req usecase.EnhanceRequest) (*usecase.EnhanceResult, error) {
	mode, err := entity.ParseMode(req.Mode)
	if err != nil {
		return nil, err
	}
	instruction, err := prompt.ForMode(mode)
	if err != nil {
		return nil, err
	}

	return o.process(ctx, req.UserID, req.Resolution, req.Image, mode, instruction, "")
}

// CustomEdit processes a free-text edit
func (o *Orchestrator) CustomEdit(ctx context.Context, req usecase.CustomEditRequest) (*usecase.EnhanceResult, error) {
	instruction, err := prompt.ValidateInstruction(req.Instruction)
	if err != nil {
		return nil, err
	}

	return o.process(ctx, req.UserID, req.Resolution, req.Image, entity.ModeCustomEdit, instruction, instruction)
}

func (o *Orchestrator) process(
	ctx context.Context,
	userID, resolution string,
	image []byte,
	mode entity.Mode,
	instruction, custom string,
) (*usecase.EnhanceResult, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	tier, err := entity.ParseTier(resolution)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, fmt.Errorf("%w: empty upload", errs.ErrInvalidImage)
	}
	if int64(len(image)) > o.options.MaxUploadBytes {
		return nil, fmt.Errorf("%w: upload exceeds %d bytes", errs.ErrInvalidImage, o.options.MaxUploadBytes)
	}

	return o.run(ctx, job{
		userID:      userID,
		tier:        tier,
		mode:        mode,
		instruction: instruction,
		custom:      custom,
		image:       image,
	})
}

// run executes admit, normalize, transform, charge, store, record and respond.
// Only failures after the charge are compensated.
func (o *Orchestrator) run(ctx context.Context, j job) (result *usecase.EnhanceResult, err error) {
	start := o.TimeProvider.Now()
	log := o.Logger.With(map[string]any{
		"userId": j.userID,
		"tier":   j.tier.String(),
		"mode":   j.mode.String(),
	})

	defer func() {
		o.Metrics.ObserveEnhancement(j.mode.String(), outcomeOf(err), o.TimeProvider.Since(start).Seconds())
	}()

	// 1. Admit
	if _, err := o.Ledger.Admit(ctx, j.userID, j.tier); err != nil {
		return nil, err
	}

	// 2. Normalize
	original, err := o.Codec.Normalize(j.image)
	if err != nil {
		log.Info("Rejected undecodable upload", map[string]any{"bytes": len(j.image)})
		return nil, err
	}
	input, err := o.Codec.Fit(original, o.options.TargetSizes[j.tier])
	if err != nil {
		return nil, err
	}

	// 3. Transform
	transformStart := o.TimeProvider.Now()
	output, err := o.Transformer.Transform(ctx, gateway.TransformRequest{
		Image:       input,
		Mode:        j.mode,
		Tier:        j.tier,
		Instruction: j.instruction,
	})
	if err != nil {
		transformErr := errs.NewTransformError(j.mode.String(), j.tier.String(), err)
		log.Error("Image transform failed", errs.LogFields(transformErr))
		return nil, transformErr
	}
	enhanced, err := o.Codec.Normalize(output)
	if err != nil {
		transformErr := errs.NewTransformError(j.mode.String(), j.tier.String(),
			fmt.Errorf("%w: %v", errs.ErrUnusableOutput, err))
		log.Error("Image transform returned unusable output", errs.LogFields(transformErr))
		return nil, transformErr
	}
	log.Debug("Image transformed", map[string]any{
		"seconds":     o.TimeProvider.Since(transformStart).Seconds(),
		"inputBytes":  len(input),
		"outputBytes": len(enhanced),
	})

	// 4. Charge
	charge, user, err := o.Ledger.Charge(ctx, j.userID, j.tier)
	if err != nil {
		return nil, err
	}

	// 5. Persist blobs
	originalKey, err := o.put(ctx, original, entity.CategoryOriginal)
	if err != nil {
		return nil, o.compensate(ctx, log, charge, j.mode, err)
	}
	enhancedKey, err := o.put(ctx, enhanced, entity.CategoryEnhanced)
	if err != nil {
		return nil, o.compensate(ctx, log, charge, j.mode, err)
	}

	// 6. Record, watermark evaluated after the charge
	snapshot := o.Ledger.Snapshot(user)
	watermark := o.Ledger.RequestWatermarked(user, charge)
	record := &entity.Enhancement{
		ID:             o.IDGenerator.NewID(),
		UserID:         j.userID,
		OriginalKey:    originalKey,
		EnhancedKey:    enhancedKey,
		Tier:           j.tier,
		Mode:           j.mode,
		Instruction:    j.custom,
		ProcessingTime: o.TimeProvider.Since(start).Seconds(),
		Watermark:      watermark,
		CreatedAt:      o.TimeProvider.Now(),
	}
	if err := o.EnhancementRepo.Create(ctx, record); err != nil {
		log.Error("Failed to record enhancement", map[string]any{"error": err.Error()})
		return nil, o.compensate(ctx, log, charge, j.mode, err)
	}

	o.trackCompleted(ctx, log, record)

	// 7. Respond
	url, urlErr := o.Store.URL(ctx, enhancedKey)
	if urlErr != nil {
		log.Warn("Falling back to proxy URL", map[string]any{"key": enhancedKey, "error": urlErr.Error()})
		url = ""
	}

	remaining := snapshot.ForTier(j.tier)
	log.Info("Enhancement completed", map[string]any{
		"enhancementId":  record.ID,
		"processingTime": record.ProcessingTime,
		"watermark":      record.Watermark,
		"source":         string(charge.Source),
	})

	return &usecase.EnhanceResult{
		EnhancementID:    record.ID,
		EnhancedKey:      enhancedKey,
		EnhancedURL:      url,
		Tier:             j.tier,
		Mode:             j.mode,
		Watermark:        record.Watermark,
		ProcessingTime:   record.ProcessingTime,
		RemainingCredits: remaining.Credits,
		RemainingToday:   remaining.RemainingToday,
	}, nil
}

// put stores one blob and guarantees the result satisfies ErrStorageFailed
func (o *Orchestrator) put(ctx context.Context, data []byte, category string) (string, error) {
	key, err := o.Store.Put(ctx, data, category)
	if err != nil {
		if !errors.Is(err, errs.ErrStorageFailed) {
			err = errs.NewStorageError("put", category, "", err)
		}
		return "", err
	}
	return key, nil
}

// compensate refunds a charge after a failed step. A failed refund is joined to
// the cause and queued for reconciliation.
func (o *Orchestrator) compensate(
	ctx context.Context,
	log coreport.Logger,
	charge *entity.Charge,
	mode entity.Mode,
	cause error,
) error {
	// The refund must run even when the client has gone away
	refundCtx := context.WithoutCancel(ctx)

	if _, err := o.Ledger.Refund(refundCtx, charge); err != nil {
		refundErr := errs.NewRefundError(charge.UserID, charge.Tier.String(), cause.Error(), err)
		log.Error("Compensating refund failed", errs.LogFields(refundErr))

		if _, recErr := o.Reconciler.Record(refundCtx, charge, mode, cause.Error(), err); recErr != nil {
			log.Error("Failed to queue refund reconciliation", map[string]any{
				"error":       recErr.Error(),
				"refundError": err.Error(),
			})
		}
		return errors.Join(cause, refundErr)
	}

	log.Warn("Charge refunded after failed request", map[string]any{
		"cause":  cause.Error(),
		"source": string(charge.Source),
	})
	return cause
}

// trackCompleted records the analytics event; failures never fail the request
func (o *Orchestrator) trackCompleted(ctx context.Context, log coreport.Logger, record *entity.Enhancement) {
	if o.Analytics == nil {
		return
	}

	_, err := o.Analytics.Track(ctx, usecase.TrackRequest{
		UserID:    record.UserID,
		EventType: entity.EventEnhancementCompleted,
		EventData: map[string]any{
			"enhancement_id":  record.ID,
			"mode":            record.Mode.String(),
			"resolution":      record.Tier.String(),
			"processing_time": record.ProcessingTime,
			"watermark":       record.Watermark,
		},
	})
	if err != nil {
		log.Warn("Failed to record analytics event", map[string]any{
			"enhancementId": record.ID,
			"error":         err.Error(),
		})
	}
}

// Image reads a stored image, optionally as a thumbnail
func (o *Orchestrator) Image(ctx context.Context, key string, thumbnail bool) ([]byte, error) {
	if key == "" {
		return nil, errs.ErrImageNotFound
	}

	data, err := o.Store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !thumbnail {
		return data, nil
	}

	thumb, err := o.Codec.Thumbnail(data, o.options.ThumbnailSize)
	if err != nil {
		return nil, errs.NewStorageError("thumbnail", "", key, fmt.Errorf("stored image is unreadable: %v", err))
	}
	return thumb, nil
}

// History returns a page of the user's enhancements
func (o *Orchestrator) History(ctx context.Context, userID string, limit, offset int) (*entity.EnhancementPage, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)
	offset = max(offset, 0)

	return o.EnhancementRepo.ListByUser(ctx, userID, limit, offset)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return coreport.OutcomeSuccess
	case errs.IsInsufficientCreditsError(err), errs.IsValidationError(err):
		return coreport.OutcomeDenied
	default:
		return coreport.OutcomeFailure
	}
}
