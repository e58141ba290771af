package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/mappers"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type AttendanceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AttendanceMapper
	logger logger.Interface
}

func NewAttendanceRepository(db *gorm.DB, logger logger.Interface) attendance.Repository {
	return &AttendanceRepositoryImpl{
		db:     db,
		mapper: mappers.NewAttendanceMapper(),
		logger: logger,
	}
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, record *attendance.Attendance) error {
	model, err := r.mapper.ToModel(record)
	if err != nil {
		r.logger.Errorw("failed to map attendance entity to model", "error", err)
		return fmt.Errorf("failed to map attendance entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create attendance in database", "error", err)
		return fmt.Errorf("failed to create attendance: %w", err)
	}

	record.SetID(model.ID)
	return nil
}

func (r *AttendanceRepositoryImpl) GetByID(ctx context.Context, id uint) (*attendance.Attendance, error) {
	var model models.AttendanceModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get attendance by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AttendanceRepositoryImpl) GetByExternalEventID(ctx context.Context, externalEventID string) (*attendance.Attendance, error) {
	var model models.AttendanceModel

	if err := r.db.WithContext(ctx).Where("external_event_id = ?", externalEventID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get attendance by external event ID", "external_event_id", externalEventID, "error", err)
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AttendanceRepositoryImpl) ListByClientID(ctx context.Context, clientID uint, page, pageSize int) ([]*attendance.Attendance, int64, error) {
	return r.List(ctx, attendance.Filter{ClientID: &clientID, Page: page, PageSize: pageSize})
}

func (r *AttendanceRepositoryImpl) List(ctx context.Context, filter attendance.Filter) ([]*attendance.Attendance, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AttendanceModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.DateFrom != nil {
		query = query.Where("date >= ?", biztime.DateOf(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		query = query.Where("date <= ?", biztime.DateOf(*filter.DateTo))
	}
	if filter.Granted != nil {
		if *filter.Granted {
			query = query.Where("access_result = ?", vo.AccessGranted.String())
		} else {
			query = query.Where("access_result <> ?", vo.AccessGranted.String())
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count attendance", "error", err)
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	var modelList []*models.AttendanceModel
	offset := (filter.Page - 1) * filter.PageSize
	if err := query.Order("check_in_time DESC").Offset(offset).Limit(filter.PageSize).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list attendance", "error", err)
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map attendance: %w", err)
	}

	return entities, total, nil
}

func (r *AttendanceRepositoryImpl) CountGrantedOnDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.AttendanceModel{}).
		Where("date = ? AND access_result = ?", biztime.DateOf(date), vo.AccessGranted.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count granted attendance", "error", err)
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	return count, nil
}

func (r *AttendanceRepositoryImpl) HasGrantedOnDate(ctx context.Context, clientID uint, date time.Time) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&models.AttendanceModel{}).
		Where("client_id = ? AND date = ? AND access_result = ?", clientID, biztime.DateOf(date), vo.AccessGranted.String()).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check attendance", "client_id", clientID, "error", err)
		return false, fmt.Errorf("failed to check attendance: %w", err)
	}

	return count > 0, nil
}
