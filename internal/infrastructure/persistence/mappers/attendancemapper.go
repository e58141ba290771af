package mappers

import (
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/mapper"
)

type AttendanceMapper interface {
	ToEntity(model *models.AttendanceModel) (*attendance.Attendance, error)
	ToModel(entity *attendance.Attendance) (*models.AttendanceModel, error)
	ToEntities(models []*models.AttendanceModel) ([]*attendance.Attendance, error)
}

type AttendanceMapperImpl struct{}

func NewAttendanceMapper() AttendanceMapper {
	return &AttendanceMapperImpl{}
}

func (m *AttendanceMapperImpl) ToEntity(model *models.AttendanceModel) (*attendance.Attendance, error) {
	if model == nil {
		return nil, nil
	}

	result, err := vo.NewAccessResult(model.AccessResult)
	if err != nil {
		return nil, fmt.Errorf("failed to parse access result: %w", err)
	}

	entity := attendance.ReconstructAttendance(
		model.ID,
		model.ClientID,
		model.SubscriptionID,
		model.Date,
		model.CheckInTime,
		result,
		model.DenialReason,
		model.DeviceToken,
		model.RequestID,
		model.ExternalEventID,
		model.CreatedAt,
	)

	return entity, nil
}

func (m *AttendanceMapperImpl) ToModel(entity *attendance.Attendance) (*models.AttendanceModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AttendanceModel{
		ID:              entity.ID(),
		ClientID:        entity.ClientID(),
		SubscriptionID:  entity.SubscriptionID(),
		Date:            entity.Date(),
		CheckInTime:     entity.CheckInTime(),
		AccessResult:    entity.AccessResult().String(),
		DenialReason:    entity.DenialReason(),
		DeviceToken:     entity.DeviceToken(),
		RequestID:       entity.RequestID(),
		ExternalEventID: entity.ExternalEventID(),
		CreatedAt:       entity.CreatedAt(),
	}, nil
}

func (m *AttendanceMapperImpl) ToEntities(modelList []*models.AttendanceModel) ([]*attendance.Attendance, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AttendanceModel) uint { return model.ID })
}
