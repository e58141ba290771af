package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/payment"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/mappers"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/constants"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/db"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
	logger logger.Interface
}

func NewPaymentRepository(db *gorm.DB, logger logger.Interface) payment.Repository {
	return &PaymentRepositoryImpl{
		db:     db,
		mapper: mappers.NewPaymentMapper(),
		logger: logger,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, paymentEntity *payment.Payment) error {
	model, err := r.mapper.ToModel(paymentEntity)
	if err != nil {
		r.logger.Errorw("failed to map payment entity to model", "error", err)
		return fmt.Errorf("failed to map payment entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment in database", "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err := paymentEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set payment ID: %w", err)
	}

	return nil
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, id uint) (*payment.Payment, error) {
	var model models.PaymentModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepositoryImpl) GetBySubscriptionID(ctx context.Context, subscriptionID uint) ([]*payment.Payment, error) {
	var modelList []*models.PaymentModel

	if err := r.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("payment_date ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get payments by subscription ID", "subscription_id", subscriptionID, "error", err)
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *PaymentRepositoryImpl) SumBySubscriptionID(ctx context.Context, subscriptionID uint) (int64, error) {
	var sum *int64

	if err := r.db.WithContext(ctx).Table(constants.TablePayments).
		Scopes(db.NotDeleted()).
		Where("subscription_id = ?", subscriptionID).
		Select("SUM(amount_cents)").
		Scan(&sum).Error; err != nil {
		r.logger.Errorw("failed to sum payments", "subscription_id", subscriptionID, "error", err)
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}

	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
