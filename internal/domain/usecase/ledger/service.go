package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/photo-restoration/internal/domain/entity"
	errs "github.com/amirhossein-jamali/photo-restoration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/photo-restoration/internal/domain/port/core"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/photo-restoration/internal/domain/port/usecase"
)

// Service is the persistence-backed Entitlement Ledger
type Service struct {
	rules        *Rules
	userRepo     persistence.UserRepository
	purchaseRepo persistence.PurchaseRepository
	uow          persistence.UnitOfWork
	locker       persistence.UserLocker
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	metrics      coreport.Metrics
	logger       coreport.Logger
}

var _ usecase.LedgerUseCase = (*Service)(nil)

// NewService creates a new ledger service
func NewService(
	rules *Rules,
	userRepo persistence.UserRepository,
	purchaseRepo persistence.PurchaseRepository,
	uow persistence.UnitOfWork,
	locker persistence.UserLocker,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	metrics coreport.Metrics,
	logger coreport.Logger,
) *Service {
	return &Service{
		rules:        rules,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		uow:          uow,
		locker:       locker,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		metrics:      metrics,
		logger:       logger,
	}
}

// Admit checks eligibility without spending anything
func (s *Service) Admit(ctx context.Context, userID string, tier entity.Tier) (*entity.User, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load user for admission", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	now := s.timeProvider.Now()
	if !s.rules.HasCredits(user, tier, now) {
		s.metrics.ObserveAdmission(tier.String(), coreport.OutcomeDenied)
		s.logger.Info("User has no credits available", map[string]any{
			"userId": userID,
			"tier":   tier.String(),
		})
		return nil, errs.NewInsufficientCreditsError(userID, tier.String(),
			user.Credits(tier), s.rules.RemainingDailyAllowance(user, tier, now))
	}

	s.metrics.ObserveAdmission(tier.String(), coreport.OutcomeSuccess)
	return user, nil
}

// Charge resets an expired window, re-checks eligibility and deducts one unit
func (s *Service) Charge(ctx context.Context, userID string, tier entity.Tier) (*entity.Charge, *entity.User, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, nil, err
	}

	release, err := s.locker.Lock(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	defer release()

	now := s.timeProvider.Now()
	var source entity.ChargeSource

	user, err := s.userRepo.Mutate(ctx, userID, func(user *entity.User) error {
		s.rules.ResetDailyUsageIfExpired(user, now)
		if !s.rules.HasCredits(user, tier, now) {
			return errs.NewInsufficientCreditsError(userID, tier.String(),
				user.Credits(tier), s.rules.RemainingDailyAllowance(user, tier, now))
		}
		drawn, err := s.rules.Deduct(user, tier, now)
		if err != nil {
			return err
		}
		source = drawn
		return nil
	})
	if err != nil {
		if errs.IsInsufficientCreditsError(err) {
			s.metrics.ObserveAdmission(tier.String(), coreport.OutcomeDenied)
			s.logger.Warn("Credits spent concurrently before charge", map[string]any{
				"userId": userID,
				"tier":   tier.String(),
			})
		} else {
			s.logger.Error("Failed to charge user", map[string]any{
				"userId": userID,
				"tier":   tier.String(),
				"error":  err.Error(),
			})
		}
		return nil, nil, err
	}

	s.metrics.ObserveCharge(tier.String(), string(source))
	s.logger.Debug("User charged", map[string]any{
		"userId":           userID,
		"tier":             tier.String(),
		"source":           string(source),
		"remainingCredits": user.Credits(tier),
	})

	return &entity.Charge{UserID: userID, Tier: tier, Source: source, ChargedAt: now}, user, nil
}

// Refund undoes a charge
func (s *Service) Refund(ctx context.Context, charge *entity.Charge) (*entity.User, error) {
	if charge == nil {
		return nil, errs.ErrInvalidRequest
	}

	release, err := s.locker.Lock(ctx, charge.UserID)
	if err != nil {
		s.metrics.ObserveRefund(charge.Tier.String(), coreport.OutcomeFailure)
		return nil, err
	}
	defer release()

	now := s.timeProvider.Now()
	user, err := s.userRepo.Mutate(ctx, charge.UserID, func(user *entity.User) error {
		s.rules.ResetDailyUsageIfExpired(user, now)
		s.rules.Refund(user, charge.Tier, charge.Source, now)
		return nil
	})
	if err != nil {
		s.metrics.ObserveRefund(charge.Tier.String(), coreport.OutcomeFailure)
		return nil, err
	}

	s.metrics.ObserveRefund(charge.Tier.String(), coreport.OutcomeSuccess)
	s.logger.Info("Charge refunded", map[string]any{
		"userId": charge.UserID,
		"tier":   charge.Tier.String(),
		"source": string(charge.Source),
	})
	return user, nil
}

// Entitlements returns the display snapshot of a user
func (s *Service) Entitlements(ctx context.Context, userID string) (*entity.Entitlements, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	snapshot := s.Snapshot(user)
	return &snapshot, nil
}

// Snapshot evaluates the entitlements of a loaded user now
func (s *Service) Snapshot(user *entity.User) entity.Entitlements {
	return s.rules.Entitlements(user, s.timeProvider.Now())
}

// RequestWatermarked decides the watermark of a request from its post-charge user
func (s *Service) RequestWatermarked(user *entity.User, charge *entity.Charge) bool {
	return s.rules.RequestWatermarked(user, charge, s.timeProvider.Now())
}

// ApplyPurchase applies a product and records the purchase atomically
func (s *Service) ApplyPurchase(ctx context.Context, cmd usecase.PurchaseCommand) (result *usecase.PurchaseResult, err error) {
	if err := entity.ValidateUserID(cmd.UserID); err != nil {
		return nil, err
	}

	product, err := s.rules.Catalog().Product(cmd.ProductID)
	if err != nil {
		s.metrics.ObservePurchase("unknown", coreport.OutcomeDenied)
		s.logger.Warn("Purchase of unknown product rejected", map[string]any{
			"userId":    cmd.UserID,
			"productId": cmd.ProductID,
		})
		return nil, err
	}

	release, err := s.locker.Lock(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	defer release()

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin purchase transaction: %w", err)
	}

	// Roll back on any error or panic
	defer func() {
		if r := recover(); r != nil {
			_ = s.uow.Rollback(txCtx)
			panic(r)
		}
		if err != nil {
			if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
				err = errors.Join(err, rbErr)
			}
			s.metrics.ObservePurchase(string(product.Kind), coreport.OutcomeFailure)
		}
	}()

	now := s.timeProvider.Now()
	user, err := s.uow.GetUserRepository(txCtx).Mutate(txCtx, cmd.UserID, func(user *entity.User) error {
		s.rules.ResetDailyUsageIfExpired(user, now)
		return s.rules.ApplyPurchaseEffect(user, product, now)
	})
	if err != nil {
		return nil, err
	}

	purchase := &entity.Purchase{
		ID:        s.idGenerator.NewID(),
		UserID:    cmd.UserID,
		Receipt:   cmd.Receipt,
		ProductID: product.ID,
		Platform:  cmd.Platform,
		Status:    entity.PurchaseCompleted,
		CreatedAt: now,
	}
	if err = s.uow.GetPurchaseRepository(txCtx).Create(txCtx, purchase); err != nil {
		return nil, err
	}

	if err = s.uow.Commit(txCtx); err != nil {
		return nil, fmt.Errorf("failed to commit purchase: %w", err)
	}

	s.metrics.ObservePurchase(string(product.Kind), coreport.OutcomeSuccess)
	s.logger.Info("Purchase applied", map[string]any{
		"userId":          cmd.UserID,
		"productId":       product.ID,
		"purchaseId":      purchase.ID,
		"standardCredits": user.StandardCredits,
		"hdCredits":       user.HDCredits,
	})

	return &usecase.PurchaseResult{Purchase: purchase, User: user}, nil
}

// RestorePurchases returns balances and purchase history
func (s *Service) RestorePurchases(ctx context.Context, userID string) (*usecase.Restoration, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.Restoration{
		User:         user,
		Entitlements: s.Snapshot(user),
		Purchases:    purchases,
	}, nil
}
