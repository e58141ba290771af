package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/mappers"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(db *gorm.DB, logger logger.Interface) membership.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, planEntity *membership.Plan) error {
	model, err := r.mapper.ToModel(planEntity)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := planEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetByName(ctx context.Context, name string) (*membership.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, planEntity *membership.Plan) error {
	model, err := r.mapper.ToModel(planEntity)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update plan in database", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update plan: %w", err)
	}

	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.PlanModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete plan", "id", id, "error", err)
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

func (r *PlanRepositoryImpl) GetAllActive(ctx context.Context) ([]*membership.Plan, error) {
	var modelList []*models.PlanModel

	if err := r.db.WithContext(ctx).
		Where("status = ?", string(membership.PlanStatusActive)).
		Order("price_cents ASC").
		Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get active plans", "error", err)
		return nil, fmt.Errorf("failed to get active plans: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, filter membership.PlanFilter) ([]*membership.Plan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PlanModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	var modelList []*models.PlanModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map plans: %w", err)
	}

	return entities, total, nil
}

func (r *PlanRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.PlanModel{}).Where("name = ?", name).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check plan name", "error", err)
		return false, fmt.Errorf("failed to check plan name: %w", err)
	}

	return count > 0, nil
}
