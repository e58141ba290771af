package mappers

import (
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/mapper"
)

type ClientMapper interface {
	ToEntity(model *models.ClientModel) (*client.Client, error)
	ToModel(entity *client.Client) (*models.ClientModel, error)
	ToEntities(models []*models.ClientModel) ([]*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToEntity(model *models.ClientModel) (*client.Client, error) {
	if model == nil {
		return nil, nil
	}

	var gender *client.Gender
	if model.Gender != nil && *model.Gender != "" {
		g := client.Gender(*model.Gender)
		if !g.IsValid() {
			return nil, fmt.Errorf("invalid gender: %s", *model.Gender)
		}
		gender = &g
	}

	entity, err := client.ReconstructClient(
		model.ID,
		model.FullName,
		model.Phone,
		model.Email,
		gender,
		model.BirthDate,
		model.FingerprintID,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct client entity: %w", err)
	}

	return entity, nil
}

func (m *ClientMapperImpl) ToModel(entity *client.Client) (*models.ClientModel, error) {
	if entity == nil {
		return nil, nil
	}

	var gender *string
	if g := entity.Gender(); g != nil {
		s := string(*g)
		gender = &s
	}

	return &models.ClientModel{
		ID:            entity.ID(),
		FullName:      entity.FullName(),
		Phone:         entity.Phone(),
		Email:         entity.Email(),
		Gender:        gender,
		BirthDate:     entity.BirthDate(),
		FingerprintID: entity.FingerprintID(),
		Version:       entity.Version(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *ClientMapperImpl) ToEntities(modelList []*models.ClientModel) ([]*client.Client, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ClientModel) uint { return model.ID })
}
