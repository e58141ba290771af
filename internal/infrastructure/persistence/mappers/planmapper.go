package mappers

import (
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/mapper"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*membership.Plan, error)
	ToModel(entity *membership.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*membership.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*membership.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := membership.ReconstructPlan(
		model.ID,
		model.Name,
		model.Description,
		model.PriceCents,
		model.Currency,
		model.DurationMonths,
		model.Status,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *membership.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:             entity.ID(),
		Name:           entity.Name(),
		Description:    entity.Description(),
		PriceCents:     entity.PriceCents(),
		Currency:       entity.Currency(),
		DurationMonths: entity.DurationMonths(),
		Status:         string(entity.Status()),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(modelList []*models.PlanModel) ([]*membership.Plan, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PlanModel) uint { return model.ID })
}
