package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/core"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/usecase"
)

func newTestReconciler(t *testing.T) (*Reconciler, *usecase.MockLedgerUseCase, *persistence.MockReconciliationRepository, *core.MockMetrics) {
	ledger := usecase.NewMockLedgerUseCase(t)
	repo := persistence.NewMockReconciliationRepository(t)
	idGenerator := core.NewMockIDGenerator(t)
	timeProvider := core.NewMockTimeProvider(t)
	metrics := core.NewMockMetrics(t)
	logger := core.NewMockLogger(t)

	idGenerator.EXPECT().NewID().Return("rec-1").Maybe()
	timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(level, mock.Anything, mock.Anything).Maybe()
	}

	reconciler := NewReconciler(ledger, repo, idGenerator, timeProvider, metrics, logger).
		WithBatchSize(10).
		WithMaxAttempts(3)
	return reconciler, ledger, repo, metrics
}

func TestReconciler_Record(t *testing.T) {
	ctx := context.Background()
	charge := &entity.Charge{UserID: "device-1", Tier: entity.TierHD, Source: entity.SourcePurchased}

	t.Run("persists a pending row", func(t *testing.T) {
		reconciler, _, repo, _ := newTestReconciler(t)
		repo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.RefundReconciliation) bool {
			return r.ID == "rec-1" &&
				r.UserID == "device-1" &&
				r.Tier == entity.TierHD &&
				r.Source == entity.SourcePurchased &&
				r.Mode == entity.ModeColorize &&
				r.Status == entity.ReconciliationPending &&
				r.LastError == "connection reset"
		})).Return(nil).Once()

		rec, err := reconciler.Record(ctx, charge, entity.ModeColorize, "storage failed", errors.New("connection reset"))

		require.NoError(t, err)
		assert.Equal(t, fixedTime, rec.CreatedAt)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		reconciler, _, repo, _ := newTestReconciler(t)
		repo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDatabaseConnection).Once()

		_, err := reconciler.Record(ctx, charge, entity.ModeEnhance, "storage failed", nil)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestReconciler_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("successful refund resolves the row", func(t *testing.T) {
		reconciler, ledger, repo, metrics := newTestReconciler(t)
		rec := &entity.RefundReconciliation{ID: "rec-1", UserID: "device-1", Tier: entity.TierStandard,
			Source: entity.SourceDaily, Status: entity.ReconciliationPending}

		repo.EXPECT().ListPending(ctx, 10).Return([]*entity.RefundReconciliation{rec}, nil).Once()
		ledger.EXPECT().Refund(ctx, mock.MatchedBy(func(c *entity.Charge) bool {
			return c.UserID == "device-1" && c.Tier == entity.TierStandard && c.Source == entity.SourceDaily
		})).Return(&entity.User{ID: "device-1"}, nil).Once()
		repo.EXPECT().Update(ctx, rec).Return(nil).Once()
		repo.EXPECT().CountPending(ctx).Return(int64(0), nil).Once()
		metrics.EXPECT().SetPendingReconciliations(0).Once()

		result, err := reconciler.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Resolved)
		assert.Equal(t, entity.ReconciliationResolved, rec.Status)
		assert.NotNil(t, rec.ResolvedAt)
	})

	t.Run("failed retries are counted and abandoned at the limit", func(t *testing.T) {
		reconciler, ledger, repo, metrics := newTestReconciler(t)
		retrying := &entity.RefundReconciliation{ID: "rec-1", UserID: "device-1", Tier: entity.TierStandard,
			Status: entity.ReconciliationPending}
		exhausted := &entity.RefundReconciliation{ID: "rec-2", UserID: "device-2", Tier: entity.TierHD,
			Status: entity.ReconciliationPending, Attempts: 2}

		repo.EXPECT().ListPending(ctx, 10).Return([]*entity.RefundReconciliation{retrying, exhausted}, nil).Once()
		ledger.EXPECT().Refund(ctx, mock.Anything).Return(nil, errs.ErrUserLocked).Twice()
		repo.EXPECT().Update(ctx, mock.Anything).Return(nil).Twice()
		repo.EXPECT().CountPending(ctx).Return(int64(1), nil).Once()
		metrics.EXPECT().SetPendingReconciliations(1).Once()

		result, err := reconciler.Sweep(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 1, result.Abandoned)
		assert.Equal(t, int64(1), result.Pending)
		assert.Equal(t, entity.ReconciliationPending, retrying.Status)
		assert.Equal(t, 1, retrying.Attempts)
		assert.Equal(t, entity.ReconciliationAbandoned, exhausted.Status)
		assert.Equal(t, errs.ErrUserLocked.Error(), exhausted.LastError)
	})

	t.Run("update failure stops the sweep", func(t *testing.T) {
		reconciler, ledger, repo, _ := newTestReconciler(t)
		first := &entity.RefundReconciliation{ID: "rec-1", UserID: "device-1", Tier: entity.TierStandard}
		second := &entity.RefundReconciliation{ID: "rec-2", UserID: "device-2", Tier: entity.TierStandard}

		repo.EXPECT().ListPending(ctx, 10).Return([]*entity.RefundReconciliation{first, second}, nil).Once()
		ledger.EXPECT().Refund(ctx, mock.Anything).Return(&entity.User{}, nil).Once()
		repo.EXPECT().Update(ctx, first).Return(errs.ErrDatabaseConnection).Once()

		_, err := reconciler.Sweep(ctx)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("list failure", func(t *testing.T) {
		reconciler, _, repo, _ := newTestReconciler(t)
		repo.EXPECT().ListPending(ctx, 10).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := reconciler.Sweep(ctx)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}
