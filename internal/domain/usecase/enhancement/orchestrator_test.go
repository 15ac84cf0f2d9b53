package enhancement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	gatewayport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/gateway"
	persistenceport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	usecaseport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/usecase/ledger"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/core"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/gateway"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/usecase"
)

var fixedTime = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

var (
	uploadBytes   = []byte("raw-upload")
	pngBytes      = []byte("normalized-png")
	fittedBytes   = []byte("fitted-png")
	modelBytes    = []byte("model-output")
	enhancedBytes = []byte("enhanced-png")
)

// memoryUsers keeps users in memory and applies mutations atomically
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemoryUsers(users ...*entity.User) *memoryUsers {
	m := &memoryUsers{users: map[string]*entity.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memoryUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (m *memoryUsers) GetOrCreate(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		u = &entity.User{ID: id, DailyResetAt: fixedTime}
		m.users[id] = u
	}
	c := *u
	return &c, nil
}

func (m *memoryUsers) Mutate(_ context.Context, id string, mutation persistenceport.UserMutation) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		u = &entity.User{ID: id, DailyResetAt: fixedTime}
	}
	working := *u
	if err := mutation(&working); err != nil {
		return nil, err
	}
	m.users[id] = &working
	c := working
	return &c, nil
}

func (m *memoryUsers) get(id string) entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.users[id]
}

type pipeline struct {
	users           *memoryUsers
	transformer     *gateway.MockImageTransformer
	store           *gateway.MockBlobStore
	codec           *gateway.MockImageCodec
	enhancementRepo *persistence.MockEnhancementRepository
	reconciler      *usecase.MockReconciliationUseCase
	analytics       *usecase.MockAnalyticsUseCase
	orchestrator    *Orchestrator
}

func newPipeline(t *testing.T, users ...*entity.User) *pipeline {
	p := &pipeline{
		users:           newMemoryUsers(users...),
		transformer:     gateway.NewMockImageTransformer(t),
		store:           gateway.NewMockBlobStore(t),
		codec:           gateway.NewMockImageCodec(t),
		enhancementRepo: persistence.NewMockEnhancementRepository(t),
		reconciler:      usecase.NewMockReconciliationUseCase(t),
		analytics:       usecase.NewMockAnalyticsUseCase(t),
	}

	timeProvider := core.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Duration(1500 * time.Millisecond)).Maybe()

	idGenerator := core.NewMockIDGenerator(t)
	idGenerator.EXPECT().NewID().Return("enh-1").Maybe()

	logger := core.NewMockLogger(t)
	logger.EXPECT().With(mock.Anything).Return(logger).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(level, mock.Anything, mock.Anything).Maybe()
	}

	metrics := core.NewMockMetrics(t)
	metrics.On("ObserveAdmission", mock.Anything, mock.Anything).Maybe()
	metrics.On("ObserveCharge", mock.Anything, mock.Anything).Maybe()
	metrics.On("ObserveRefund", mock.Anything, mock.Anything).Maybe()
	metrics.On("ObserveEnhancement", mock.Anything, mock.Anything, mock.Anything).Maybe()

	locker := persistence.NewMockUserLocker(t)
	locker.EXPECT().Lock(mock.Anything, mock.Anything).Return(func() {}, nil).Maybe()

	ledgerService := ledger.NewService(
		ledger.NewRules(ledger.DefaultCatalog()),
		p.users,
		persistence.NewMockPurchaseRepository(t),
		persistence.NewMockUnitOfWork(t),
		locker,
		idGenerator,
		timeProvider,
		metrics,
		logger,
	)

	p.orchestrator = NewOrchestrator(Dependencies{
		Ledger:          ledgerService,
		Reconciler:      p.reconciler,
		Analytics:       p.analytics,
		Transformer:     p.transformer,
		Store:           p.store,
		Codec:           p.codec,
		EnhancementRepo: p.enhancementRepo,
		TimeProvider:    timeProvider,
		IDGenerator:     idGenerator,
		Metrics:         metrics,
		Logger:          logger,
	}, DefaultOptions())
	return p
}

// expectImagePipeline wires decode, fit, transform and output normalization
func (p *pipeline) expectImagePipeline(tier entity.Tier, size int) {
	p.codec.EXPECT().Normalize(uploadBytes).Return(pngBytes, nil).Once()
	p.codec.EXPECT().Fit(pngBytes, size).Return(fittedBytes, nil).Once()
	p.transformer.EXPECT().Transform(mock.Anything, mock.MatchedBy(func(req gatewayport.TransformRequest) bool {
		return string(req.Image) == string(fittedBytes) && req.Tier == tier && req.Instruction != ""
	})).Return(modelBytes, nil).Once()
	p.codec.EXPECT().Normalize(modelBytes).Return(enhancedBytes, nil).Once()
}

func (p *pipeline) expectStored() {
	p.store.EXPECT().Put(mock.Anything, pngBytes, entity.CategoryOriginal).Return("original/a.png", nil).Once()
	p.store.EXPECT().Put(mock.Anything, enhancedBytes, entity.CategoryEnhanced).Return("enhanced/b.png", nil).Once()
}

func TestOrchestrator_Enhance(t *testing.T) {
	ctx := context.Background()

	t.Run("new request with sufficient balance succeeds", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 3, DailyResetAt: fixedTime})
		p.expectImagePipeline(entity.TierStandard, DefaultStandardSize)
		p.expectStored()
		p.enhancementRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.Enhancement) bool {
			return e.ID == "enh-1" && e.UserID == "u1" &&
				e.OriginalKey == "original/a.png" && e.EnhancedKey == "enhanced/b.png" &&
				e.Mode == entity.ModeEnhance && e.Tier == entity.TierStandard && !e.Watermark
		})).Return(nil).Once()
		p.analytics.EXPECT().Track(mock.Anything, mock.MatchedBy(func(r usecaseport.TrackRequest) bool {
			return r.EventType == entity.EventEnhancementCompleted && r.UserID == "u1"
		})).Return(&entity.AnalyticsEvent{}, nil).Once()
		p.store.EXPECT().URL(mock.Anything, "enhanced/b.png").Return("https://cdn.example/enhanced/b.png", nil).Once()

		result, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{
			UserID:     "u1",
			Mode:       "enhance",
			Resolution: "standard",
			Image:      uploadBytes,
		})

		require.NoError(t, err)
		assert.Equal(t, "enh-1", result.EnhancementID)
		assert.False(t, result.Watermark)
		assert.Greater(t, result.ProcessingTime, 0.0)
		assert.Equal(t, 2, result.RemainingCredits)
		assert.Equal(t, "https://cdn.example/enhanced/b.png", result.EnhancedURL)
		assert.Equal(t, 2, p.users.get("u1").StandardCredits)
	})

	t.Run("last credit yields a clean result", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", HDCredits: 1, DailyResetAt: fixedTime})
		p.expectImagePipeline(entity.TierHD, DefaultHDSize)
		p.expectStored()
		p.enhancementRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		p.analytics.EXPECT().Track(mock.Anything, mock.Anything).Return(&entity.AnalyticsEvent{}, nil).Once()
		p.store.EXPECT().URL(mock.Anything, mock.Anything).Return("", nil).Once()

		result, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{
			UserID: "u1", Mode: "colorize", Resolution: "hd", Image: uploadBytes,
		})

		require.NoError(t, err)
		assert.False(t, result.Watermark)
		assert.Zero(t, result.RemainingCredits)
		assert.Empty(t, result.EnhancedURL)
	})

	t.Run("user without credits is rejected before any gateway call", func(t *testing.T) {
		p := newPipeline(t)

		result, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{
			UserID: "u2", Mode: "enhance", Resolution: "standard", Image: uploadBytes,
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		p.codec.AssertNotCalled(t, "Normalize", mock.Anything)
		p.transformer.AssertNotCalled(t, "Transform", mock.Anything, mock.Anything)
		p.enhancementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("undecodable image is rejected without cost", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 1, DailyResetAt: fixedTime})
		p.codec.EXPECT().Normalize(uploadBytes).Return(nil, errs.ErrInvalidImage).Once()

		_, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Image: uploadBytes})

		assert.ErrorIs(t, err, errs.ErrInvalidImage)
		assert.Equal(t, 1, p.users.get("u1").StandardCredits)
	})

	t.Run("transform failure charges nothing", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 1, DailyResetAt: fixedTime})
		p.codec.EXPECT().Normalize(uploadBytes).Return(pngBytes, nil).Once()
		p.codec.EXPECT().Fit(pngBytes, DefaultStandardSize).Return(fittedBytes, nil).Once()
		p.transformer.EXPECT().Transform(mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded")).Once()

		_, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Mode: "de-scratch", Image: uploadBytes})

		assert.ErrorIs(t, err, errs.ErrTransformFailed)
		assert.ErrorContains(t, err, "quota exceeded")
		assert.Equal(t, 1, p.users.get("u1").StandardCredits)
		p.store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unusable model output is a transform error", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 1, DailyResetAt: fixedTime})
		p.codec.EXPECT().Normalize(uploadBytes).Return(pngBytes, nil).Once()
		p.codec.EXPECT().Fit(pngBytes, DefaultStandardSize).Return(fittedBytes, nil).Once()
		p.transformer.EXPECT().Transform(mock.Anything, mock.Anything).Return(modelBytes, nil).Once()
		p.codec.EXPECT().Normalize(modelBytes).Return(nil, errs.ErrInvalidImage).Once()

		_, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Image: uploadBytes})

		assert.ErrorIs(t, err, errs.ErrTransformFailed)
		assert.ErrorIs(t, err, errs.ErrUnusableOutput)
		assert.False(t, errs.IsValidationError(err))
		assert.Equal(t, errs.CodeTransformFailed, errs.ErrorCode(err))
		assert.Equal(t, coreport.OutcomeFailure, outcomeOf(err))
		assert.Equal(t, 1, p.users.get("u1").StandardCredits)
	})

	t.Run("failed enhanced upload refunds the purchased credit", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 2, DailyResetAt: fixedTime})
		p.expectImagePipeline(entity.TierStandard, DefaultStandardSize)
		p.store.EXPECT().Put(mock.Anything, pngBytes, entity.CategoryOriginal).Return("original/a.png", nil).Once()
		p.store.EXPECT().Put(mock.Anything, enhancedBytes, entity.CategoryEnhanced).Return("", errors.New("bucket unavailable")).Once()

		_, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Image: uploadBytes})

		assert.ErrorIs(t, err, errs.ErrStorageFailed)
		assert.False(t, errs.IsRefundFailedError(err))
		assert.Equal(t, 2, p.users.get("u1").StandardCredits)
		p.enhancementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("failed upload restores the daily allowance of a subscriber", func(t *testing.T) {
		expires := fixedTime.Add(48 * time.Hour)
		p := newPipeline(t, &entity.User{
			ID: "u1", SubscriptionType: "standard_monthly", SubscriptionExpires: &expires,
			DailyStandardUsed: 3, DailyResetAt: fixedTime,
		})
		p.expectImagePipeline(entity.TierStandard, DefaultStandardSize)
		p.store.EXPECT().Put(mock.Anything, pngBytes, entity.CategoryOriginal).Return("", errs.ErrIntegrityMismatch).Once()

		_, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Image: uploadBytes})

		assert.ErrorIs(t, err, errs.ErrStorageFailed)
		assert.ErrorIs(t, err, errs.ErrIntegrityMismatch)
		assert.Equal(t, 3, p.users.get("u1").DailyStandardUsed)
	})

	t.Run("failed record refunds the charge", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 1, DailyResetAt: fixedTime})
		p.expectImagePipeline(entity.TierStandard, DefaultStandardSize)
		p.expectStored()
		p.enhancementRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		_, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Image: uploadBytes})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		assert.Equal(t, 1, p.users.get("u1").StandardCredits)
	})

	t.Run("analytics failure does not fail the request", func(t *testing.T) {
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 1, DailyResetAt: fixedTime})
		p.expectImagePipeline(entity.TierStandard, DefaultStandardSize)
		p.expectStored()
		p.enhancementRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
		p.analytics.EXPECT().Track(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()
		p.store.EXPECT().URL(mock.Anything, mock.Anything).Return("", errors.New("presign failed")).Once()

		result, err := p.orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Image: uploadBytes})

		require.NoError(t, err)
		assert.Equal(t, "enh-1", result.EnhancementID)
		assert.Empty(t, result.EnhancedURL)
	})

	t.Run("input validation", func(t *testing.T) {
		p := newPipeline(t)
		tests := []struct {
			name string
			req  usecaseport.EnhanceRequest
			want error
		}{
			{"unknown mode", usecaseport.EnhanceRequest{UserID: "u1", Mode: "cartoonify", Image: uploadBytes}, errs.ErrInvalidMode},
			{"custom edit through enhance", usecaseport.EnhanceRequest{UserID: "u1", Mode: "custom-edit", Image: uploadBytes}, errs.ErrInvalidMode},
			{"unknown resolution", usecaseport.EnhanceRequest{UserID: "u1", Resolution: "4k", Image: uploadBytes}, errs.ErrInvalidTier},
			{"blank user", usecaseport.EnhanceRequest{UserID: "", Image: uploadBytes}, errs.ErrInvalidUserID},
			{"empty upload", usecaseport.EnhanceRequest{UserID: "u1"}, errs.ErrInvalidImage},
			{"oversize upload", usecaseport.EnhanceRequest{UserID: "u1", Image: make([]byte, DefaultMaxUploadBytes+1)}, errs.ErrInvalidImage},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := p.orchestrator.Enhance(ctx, tt.req)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestOrchestrator_RefundFailure(t *testing.T) {
	ctx := context.Background()
	charge := &entity.Charge{UserID: "u1", Tier: entity.TierStandard, Source: entity.SourcePurchased}
	user := &entity.User{ID: "u1"}

	ledgerMock := usecase.NewMockLedgerUseCase(t)
	reconciler := usecase.NewMockReconciliationUseCase(t)
	store := gateway.NewMockBlobStore(t)
	codec := gateway.NewMockImageCodec(t)
	transformer := gateway.NewMockImageTransformer(t)

	timeProvider := core.NewMockTimeProvider(t)
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Duration(time.Second)).Maybe()
	logger := core.NewMockLogger(t)
	logger.EXPECT().With(mock.Anything).Return(logger).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error("Compensating refund failed", mock.Anything).Once()
	metrics := core.NewMockMetrics(t)
	metrics.EXPECT().ObserveEnhancement("enhance", "failure", mock.Anything).Once()

	ledgerMock.EXPECT().Admit(ctx, "u1", entity.TierStandard).Return(user, nil).Once()
	codec.EXPECT().Normalize(mock.Anything).Return(pngBytes, nil).Twice()
	codec.EXPECT().Fit(pngBytes, DefaultStandardSize).Return(fittedBytes, nil).Once()
	transformer.EXPECT().Transform(ctx, mock.Anything).Return(modelBytes, nil).Once()
	ledgerMock.EXPECT().Charge(ctx, "u1", entity.TierStandard).Return(charge, user, nil).Once()
	store.EXPECT().Put(ctx, mock.Anything, entity.CategoryOriginal).Return("", errors.New("timeout")).Once()
	ledgerMock.EXPECT().Refund(mock.Anything, charge).Return(nil, errs.ErrDatabaseConnection).Once()
	reconciler.EXPECT().Record(mock.Anything, charge, entity.ModeEnhance, mock.Anything, errs.ErrDatabaseConnection).
		Return(&entity.RefundReconciliation{ID: "rec-1"}, nil).Once()

	orchestrator := NewOrchestrator(Dependencies{
		Ledger:       ledgerMock,
		Reconciler:   reconciler,
		Transformer:  transformer,
		Store:        store,
		Codec:        codec,
		TimeProvider: timeProvider,
		Metrics:      metrics,
		Logger:       logger,
	}, Options{})

	_, err := orchestrator.Enhance(ctx, usecaseport.EnhanceRequest{UserID: "u1", Image: uploadBytes})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrStorageFailed)
	assert.ErrorIs(t, err, errs.ErrRefundFailed)
	assert.Equal(t, errs.CodeRefundFailed, errs.ErrorCode(err))
}

func TestOrchestrator_CustomEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("instruction bounds", func(t *testing.T) {
		p := newPipeline(t)

		_, err := p.orchestrator.CustomEdit(ctx, usecaseport.CustomEditRequest{UserID: "u1", Instruction: "ab", Image: uploadBytes})
		assert.ErrorIs(t, err, errs.ErrInvalidInstruction)

		_, err = p.orchestrator.CustomEdit(ctx, usecaseport.CustomEditRequest{UserID: "u1", Instruction: strings.Repeat("a", 501), Image: uploadBytes})
		assert.ErrorIs(t, err, errs.ErrInvalidInstruction)

		p.transformer.AssertNotCalled(t, "Transform", mock.Anything, mock.Anything)
	})

	t.Run("500 characters are accepted and sent verbatim", func(t *testing.T) {
		instruction := strings.Repeat("a", 500)
		p := newPipeline(t, &entity.User{ID: "u1", StandardCredits: 1, DailyResetAt: fixedTime})
		p.codec.EXPECT().Normalize(uploadBytes).Return(pngBytes, nil).Once()
		p.codec.EXPECT().Fit(pngBytes, DefaultStandardSize).Return(fittedBytes, nil).Once()
		p.transformer.EXPECT().Transform(mock.Anything, mock.MatchedBy(func(req gatewayport.TransformRequest) bool {
			return req.Mode == entity.ModeCustomEdit && req.Instruction == instruction
		})).Return(modelBytes, nil).Once()
		p.codec.EXPECT().Normalize(modelBytes).Return(enhancedBytes, nil).Once()
		p.expectStored()
		p.enhancementRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(e *entity.Enhancement) bool {
			return e.Mode == entity.ModeCustomEdit && e.Instruction == instruction
		})).Return(nil).Once()
		p.analytics.EXPECT().Track(mock.Anything, mock.Anything).Return(&entity.AnalyticsEvent{}, nil).Once()
		p.store.EXPECT().URL(mock.Anything, mock.Anything).Return("", nil).Once()

		result, err := p.orchestrator.CustomEdit(ctx, usecaseport.CustomEditRequest{
			UserID: "u1", Instruction: instruction, Image: uploadBytes,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.ModeCustomEdit, result.Mode)
	})
}

func TestOrchestrator_ImageAndHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("thumbnail never touches the ledger", func(t *testing.T) {
		p := newPipeline(t)
		p.store.EXPECT().Get(ctx, "enhanced/b.png").Return(enhancedBytes, nil).Once()
		p.codec.EXPECT().Thumbnail(enhancedBytes, DefaultThumbnailSize).Return([]byte("thumb"), nil).Once()

		data, err := p.orchestrator.Image(ctx, "enhanced/b.png", true)

		require.NoError(t, err)
		assert.Equal(t, []byte("thumb"), data)
		assert.Empty(t, p.users.users)
	})

	t.Run("corrupt stored image is a storage error", func(t *testing.T) {
		p := newPipeline(t)
		p.store.EXPECT().Get(ctx, "enhanced/b.png").Return([]byte("garbage"), nil).Once()
		p.codec.EXPECT().Thumbnail([]byte("garbage"), DefaultThumbnailSize).
			Return(nil, fmt.Errorf("%w: unknown format", errs.ErrInvalidImage)).Once()

		_, err := p.orchestrator.Image(ctx, "enhanced/b.png", true)

		assert.ErrorIs(t, err, errs.ErrStorageFailed)
		assert.False(t, errs.IsValidationError(err))
		assert.Equal(t, errs.CodeStorageFailed, errs.ErrorCode(err))
	})

	t.Run("full image", func(t *testing.T) {
		p := newPipeline(t)
		p.store.EXPECT().Get(ctx, "original/a.png").Return(pngBytes, nil).Once()

		data, err := p.orchestrator.Image(ctx, "original/a.png", false)

		require.NoError(t, err)
		assert.Equal(t, pngBytes, data)
	})

	t.Run("missing image", func(t *testing.T) {
		p := newPipeline(t)
		p.store.EXPECT().Get(ctx, "nope").Return(nil, errs.ErrImageNotFound).Once()

		_, err := p.orchestrator.Image(ctx, "nope", false)

		assert.ErrorIs(t, err, errs.ErrImageNotFound)
	})

	t.Run("history limits are clamped", func(t *testing.T) {
		p := newPipeline(t)
		page := &entity.EnhancementPage{Limit: MaxHistoryLimit}
		p.enhancementRepo.EXPECT().ListByUser(ctx, "u1", MaxHistoryLimit, 0).Return(page, nil).Once()
		p.enhancementRepo.EXPECT().ListByUser(ctx, "u1", DefaultHistoryLimit, 40).Return(page, nil).Once()

		_, err := p.orchestrator.History(ctx, "u1", 1000, -5)
		require.NoError(t, err)
		_, err = p.orchestrator.History(ctx, "u1", 0, 40)
		require.NoError(t, err)
	})
}
