package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/mappers"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type ClientRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
	logger logger.Interface
}

func NewClientRepository(db *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepositoryImpl{
		db:     db,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, clientEntity *client.Client) error {
	model, err := r.mapper.ToModel(clientEntity)
	if err != nil {
		r.logger.Errorw("failed to map client entity to model", "error", err)
		return fmt.Errorf("failed to map client entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create client in database", "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := clientEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set client ID: %w", err)
	}

	return nil
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) GetByPhone(ctx context.Context, phone string) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by phone", "phone", phone, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) GetByFingerprintID(ctx context.Context, fingerprintID string) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).Where("fingerprint_id = ?", fingerprintID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by fingerprint ID", "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, clientEntity *client.Client) error {
	model, err := r.mapper.ToModel(clientEntity)
	if err != nil {
		r.logger.Errorw("failed to map client entity to model", "error", err)
		return fmt.Errorf("failed to map client entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		r.logger.Errorw("failed to update client in database", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update client: %w", err)
	}

	return nil
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.ClientModel{}, id).Error; err != nil {
		r.logger.Errorw("failed to delete client", "id", id, "error", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

func (r *ClientRepositoryImpl) List(ctx context.Context, filter client.Filter) ([]*client.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("full_name LIKE ? OR phone LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count clients", "error", err)
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	var modelList []*models.ClientModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("created_at DESC").Offset(offset).Limit(filter.PageSize).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map clients: %w", err)
	}

	return entities, total, nil
}

func (r *ClientRepositoryImpl) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check client phone", "error", err)
		return false, fmt.Errorf("failed to check phone: %w", err)
	}

	return count > 0, nil
}
