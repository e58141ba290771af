package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/membership/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/mappers"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/db"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(db *gorm.DB, logger logger.Interface) membership.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, subscriptionEntity *membership.Subscription) error {
	model, err := r.mapper.ToModel(subscriptionEntity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := subscriptionEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByIDForUpdate acquires a row lock on the subscription. The caller must
// run inside a transaction for the lock to mean anything.
func (r *SubscriptionRepositoryImpl) GetByIDForUpdate(ctx context.Context, id uint) (*membership.Subscription, error) {
	var model models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to lock subscription", "id", id, "error", err)
		return nil, fmt.Errorf("failed to lock subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetByClientID(ctx context.Context, clientID uint) ([]*membership.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get subscriptions by client ID", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// Update persists the aggregate with an optimistic version check: the write
// only lands when the stored row still carries the version the aggregate was
// loaded with. Domain mutators bump the version exactly once, so the expected
// stored version is the entity's version minus one. A concurrent writer that
// got there first leaves zero rows affected and the caller gets
// membership.ErrSubscriptionModified.
func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, subscriptionEntity *membership.Subscription) error {
	model, err := r.mapper.ToModel(subscriptionEntity)
	if err != nil {
		r.logger.Errorw("failed to map subscription entity to model", "error", err)
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SubscriptionModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Select("*").Omit("id", "created_at", "deleted_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription in database", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warnw("subscription version conflict", "id", model.ID, "expected_version", model.Version-1)
		return membership.ErrSubscriptionModified
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.SubscriptionModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete subscription", "id", id, "error", err)
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepositoryImpl) FindExpired(ctx context.Context, before time.Time) ([]*membership.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).
		Where("status = ? AND end_date < ?", string(vo.StatusActive), before).
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to find expired subscriptions", "error", err)
		return nil, fmt.Errorf("failed to find expired subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SubscriptionRepositoryImpl) FindCurrentByClientID(ctx context.Context, clientID uint, date time.Time) ([]*membership.Subscription, error) {
	var modelList []*models.SubscriptionModel

	if err := r.db.WithContext(ctx).
		Where("client_id = ? AND status = ? AND start_date <= ? AND end_date >= ?",
			clientID, string(vo.StatusActive), date, date).
		Order("end_date DESC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to find current subscriptions", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to find current subscriptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *SubscriptionRepositoryImpl) List(ctx context.Context, filter membership.SubscriptionFilter) ([]*membership.Subscription, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SubscriptionModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.PlanID != nil {
		query = query.Where("plan_id = ?", *filter.PlanID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	var modelList []*models.SubscriptionModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map subscriptions: %w", err)
	}

	return entities, total, nil
}

func (r *SubscriptionRepositoryImpl) CountByPlanID(ctx context.Context, planID uint) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("plan_id = ?", planID).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions by plan", "plan_id", planID, "error", err)
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count, nil
}

func (r *SubscriptionRepositoryImpl) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("status = ?", status).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count subscriptions by status", "status", status, "error", err)
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count, nil
}
