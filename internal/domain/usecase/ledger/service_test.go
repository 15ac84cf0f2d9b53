package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	persistenceport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/core"
	"github.com/amirhossein-jamali/photo-restoration/mocks/port/persistence"
)

type serviceFixture struct {
	userRepo     *persistence.MockUserRepository
	purchaseRepo *persistence.MockPurchaseRepository
	uow          *persistence.MockUnitOfWork
	locker       *persistence.MockUserLocker
	idGenerator  *core.MockIDGenerator
	timeProvider *core.MockTimeProvider
	metrics      *core.MockMetrics
	logger       *core.MockLogger
	released     int
	service      *Service
}

func newServiceFixture(t *testing.T) *serviceFixture {
	f := &serviceFixture{
		userRepo:     persistence.NewMockUserRepository(t),
		purchaseRepo: persistence.NewMockPurchaseRepository(t),
		uow:          persistence.NewMockUnitOfWork(t),
		locker:       persistence.NewMockUserLocker(t),
		idGenerator:  core.NewMockIDGenerator(t),
		timeProvider: core.NewMockTimeProvider(t),
		metrics:      core.NewMockMetrics(t),
		logger:       core.NewMockLogger(t),
	}

	f.timeProvider.EXPECT().Now().Return(fixedTime).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		f.logger.On(level, mock.Anything, mock.Anything).Maybe()
	}
	for _, method := range []string{"ObserveAdmission", "ObserveCharge", "ObserveRefund", "ObservePurchase"} {
		f.metrics.On(method, mock.Anything, mock.Anything).Maybe()
	}

	f.service = NewService(
		NewRules(DefaultCatalog()),
		f.userRepo,
		f.purchaseRepo,
		f.uow,
		f.locker,
		f.idGenerator,
		f.timeProvider,
		f.metrics,
		f.logger,
	)
	return f
}

// expectLock grants the per-user lock and counts releases
func (f *serviceFixture) expectLock(userID string) {
	f.locker.EXPECT().Lock(mock.Anything, userID).Return(func() { f.released++ }, nil).Once()
}

// storeMutations applies mutations to stored the way the repository does:
// on a copy that is only kept when the mutation succeeds
func storeMutations(repo *persistence.MockUserRepository, stored *entity.User) {
	repo.EXPECT().Mutate(mock.Anything, stored.ID, mock.Anything).RunAndReturn(
		func(_ context.Context, _ string, mutation persistenceport.UserMutation) (*entity.User, error) {
			working := *stored
			if err := mutation(&working); err != nil {
				return nil, err
			}
			*stored = working
			result := working
			return &result, nil
		})
}

func TestService_Admit(t *testing.T) {
	ctx := context.Background()

	t.Run("new user without credits is rejected", func(t *testing.T) {
		f := newServiceFixture(t)
		f.userRepo.EXPECT().GetOrCreate(ctx, "device-1").Return(freeUser(0, 0), nil).Once()

		user, err := f.service.Admit(ctx, "device-1", entity.TierStandard)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		var detailed *errs.InsufficientCreditsError
		require.ErrorAs(t, err, &detailed)
		assert.Equal(t, "standard", detailed.Tier)
	})

	t.Run("user with hd credits is admitted for hd", func(t *testing.T) {
		f := newServiceFixture(t)
		f.userRepo.EXPECT().GetOrCreate(ctx, "device-1").Return(freeUser(0, 1), nil).Once()

		user, err := f.service.Admit(ctx, "device-1", entity.TierHD)

		require.NoError(t, err)
		assert.Equal(t, 1, user.HDCredits)
	})

	t.Run("subscriber with allowance is admitted", func(t *testing.T) {
		f := newServiceFixture(t)
		f.userRepo.EXPECT().GetOrCreate(ctx, "device-1").Return(subscribedUser("light_monthly", 0, 0), nil).Once()

		_, err := f.service.Admit(ctx, "device-1", entity.TierStandard)

		assert.NoError(t, err)
	})

	t.Run("blank user id", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.Admit(ctx, "  ", entity.TierStandard)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		f.userRepo.AssertNotCalled(t, "GetOrCreate", mock.Anything, mock.Anything)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		f := newServiceFixture(t)
		f.userRepo.EXPECT().GetOrCreate(ctx, "device-1").Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.service.Admit(ctx, "device-1", entity.TierStandard)

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestService_Charge(t *testing.T) {
	ctx := context.Background()

	t.Run("purchased credit is spent under the lock", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := subscribedUser("standard_monthly", 5, 0)
		f.expectLock(stored.ID)
		storeMutations(f.userRepo, stored)

		charge, user, err := f.service.Charge(ctx, stored.ID, entity.TierStandard)

		require.NoError(t, err)
		assert.Equal(t, entity.SourcePurchased, charge.Source)
		assert.Equal(t, entity.TierStandard, charge.Tier)
		assert.Equal(t, fixedTime, charge.ChargedAt)
		assert.Equal(t, 4, user.StandardCredits)
		assert.Equal(t, 4, stored.StandardCredits)
		assert.Zero(t, stored.DailyStandardUsed)
		assert.Equal(t, 1, f.released)
	})

	t.Run("expired window is reset before spending the allowance", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := subscribedUser("standard_monthly", 0, 0)
		stored.DailyStandardUsed = 40
		stored.DailyResetAt = fixedTime.Add(-25 * time.Hour)
		f.expectLock(stored.ID)
		storeMutations(f.userRepo, stored)

		charge, _, err := f.service.Charge(ctx, stored.ID, entity.TierStandard)

		require.NoError(t, err)
		assert.Equal(t, entity.SourceDaily, charge.Source)
		assert.Equal(t, 1, stored.DailyStandardUsed)
		assert.Equal(t, fixedTime, stored.DailyResetAt)
	})

	t.Run("last unit spent concurrently fails without changes", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := freeUser(0, 0)
		f.expectLock(stored.ID)
		storeMutations(f.userRepo, stored)

		charge, user, err := f.service.Charge(ctx, stored.ID, entity.TierStandard)

		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Nil(t, charge)
		assert.Nil(t, user)
		assert.Zero(t, stored.StandardCredits)
		assert.Equal(t, 1, f.released)
	})

	t.Run("lock timeout", func(t *testing.T) {
		f := newServiceFixture(t)
		f.locker.EXPECT().Lock(mock.Anything, "device-1").Return(nil, errs.ErrUserLocked).Once()

		_, _, err := f.service.Charge(ctx, "device-1", entity.TierStandard)

		assert.ErrorIs(t, err, errs.ErrUserLocked)
		f.userRepo.AssertNotCalled(t, "Mutate", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("restores the pool that was charged", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := subscribedUser("standard_monthly", 0, 0)
		stored.DailyStandardUsed = 3
		f.locker.EXPECT().Lock(mock.Anything, stored.ID).Return(func() { f.released++ }, nil).Twice()
		f.userRepo.EXPECT().Mutate(mock.Anything, stored.ID, mock.Anything).RunAndReturn(
			func(_ context.Context, _ string, mutation persistenceport.UserMutation) (*entity.User, error) {
				working := *stored
				if err := mutation(&working); err != nil {
					return nil, err
				}
				*stored = working
				return &working, nil
			}).Twice()

		charge, _, err := f.service.Charge(ctx, stored.ID, entity.TierStandard)
		require.NoError(t, err)
		assert.Equal(t, 4, stored.DailyStandardUsed)

		user, err := f.service.Refund(ctx, charge)

		require.NoError(t, err)
		assert.Equal(t, 3, user.DailyStandardUsed)
		assert.Equal(t, 3, stored.DailyStandardUsed)
		assert.Zero(t, stored.StandardCredits)
		assert.Equal(t, 2, f.released)
	})

	t.Run("store failure is reported", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectLock("device-1")
		f.userRepo.EXPECT().Mutate(mock.Anything, "device-1", mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

		_, err := f.service.Refund(ctx, &entity.Charge{UserID: "device-1", Tier: entity.TierHD, Source: entity.SourcePurchased})

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		f.metrics.AssertCalled(t, "ObserveRefund", "hd", "failure")
	})

	t.Run("nil charge", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.service.Refund(ctx, nil)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestService_ApplyPurchase(t *testing.T) {
	ctx := context.Background()
	txCtx := context.WithValue(ctx, struct{}{}, "tx")

	t.Run("unknown product is rejected before any mutation", func(t *testing.T) {
		f := newServiceFixture(t)

		result, err := f.service.ApplyPurchase(ctx, usecase.PurchaseCommand{UserID: "device-1", ProductID: "gems_9000"})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUnknownProduct)
		f.locker.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("credit pack is applied and recorded in one unit of work", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := freeUser(1, 0)
		f.expectLock(stored.ID)
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetUserRepository(txCtx).Return(f.userRepo).Once()
		storeMutations(f.userRepo, stored)
		f.uow.EXPECT().GetPurchaseRepository(txCtx).Return(f.purchaseRepo).Once()
		f.idGenerator.EXPECT().NewID().Return("purchase-1").Once()
		f.purchaseRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(p *entity.Purchase) bool {
			return p.ID == "purchase-1" && p.ProductID == "standard_credits_25" &&
				p.Status == entity.PurchaseCompleted && p.Platform == "ios"
		})).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		result, err := f.service.ApplyPurchase(ctx, usecase.PurchaseCommand{
			UserID:    stored.ID,
			ProductID: "standard_credits_25",
			Receipt:   map[string]any{"transaction": "abc"},
			Platform:  "ios",
		})

		require.NoError(t, err)
		assert.Equal(t, 26, result.User.StandardCredits)
		assert.Equal(t, 0, result.User.HDCredits)
		assert.Equal(t, "purchase-1", result.Purchase.ID)
		f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
	})

	t.Run("failed purchase row rolls back the balance change", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := freeUser(0, 0)
		f.expectLock(stored.ID)
		f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
		f.uow.EXPECT().GetUserRepository(txCtx).Return(f.userRepo).Once()
		storeMutations(f.userRepo, stored)
		f.uow.EXPECT().GetPurchaseRepository(txCtx).Return(f.purchaseRepo).Once()
		f.idGenerator.EXPECT().NewID().Return("purchase-1").Once()
		f.purchaseRepo.EXPECT().Create(txCtx, mock.Anything).Return(errs.ErrConstraintViolation).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.ApplyPurchase(ctx, usecase.PurchaseCommand{UserID: stored.ID, ProductID: "premium_monthly"})

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("begin failure", func(t *testing.T) {
		f := newServiceFixture(t)
		f.expectLock("device-1")
		f.uow.EXPECT().Begin(ctx).Return(nil, errors.New("connection refused")).Once()

		_, err := f.service.ApplyPurchase(ctx, usecase.PurchaseCommand{UserID: "device-1", ProductID: "hd_credits_5"})

		assert.ErrorContains(t, err, "connection refused")
		assert.Equal(t, 1, f.released)
	})
}

func TestService_EntitlementsAndRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("entitlements of a new user", func(t *testing.T) {
		f := newServiceFixture(t)
		f.userRepo.EXPECT().GetOrCreate(ctx, "device-1").Return(freeUser(0, 0), nil).Once()

		snapshot, err := f.service.Entitlements(ctx, "device-1")

		require.NoError(t, err)
		assert.True(t, snapshot.Watermarked)
		assert.False(t, snapshot.HasAnyCredits())
	})

	t.Run("restore returns balances and purchases", func(t *testing.T) {
		f := newServiceFixture(t)
		purchases := []*entity.Purchase{{ID: "p2", ProductID: "hd_credits_5"}, {ID: "p1", ProductID: "credits_10"}}
		f.userRepo.EXPECT().GetOrCreate(ctx, "device-1").Return(freeUser(10, 5), nil).Once()
		f.purchaseRepo.EXPECT().ListByUser(ctx, "device-1").Return(purchases, nil).Once()

		restoration, err := f.service.RestorePurchases(ctx, "device-1")

		require.NoError(t, err)
		assert.Equal(t, 10, restoration.User.StandardCredits)
		assert.Equal(t, 5, restoration.Entitlements.ForTier(entity.TierHD).Credits)
		assert.Len(t, restoration.Purchases, 2)
	})
}
