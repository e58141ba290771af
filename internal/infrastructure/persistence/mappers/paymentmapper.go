package mappers

import (
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/payment"
	vo "github.com/Bassir-Elhoussein/gymapp/internal/domain/payment/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/infrastructure/persistence/models"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/mapper"
)

type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) (*payment.Payment, error)
	ToModel(entity *payment.Payment) (*models.PaymentModel, error)
	ToEntities(models []*models.PaymentModel) ([]*payment.Payment, error)
}

type PaymentMapperImpl struct{}

func NewPaymentMapper() PaymentMapper {
	return &PaymentMapperImpl{}
}

func (m *PaymentMapperImpl) ToEntity(model *models.PaymentModel) (*payment.Payment, error) {
	if model == nil {
		return nil, nil
	}

	method, err := vo.NewPaymentMethod(model.Method)
	if err != nil {
		return nil, fmt.Errorf("failed to parse payment method: %w", err)
	}

	entity, err := payment.ReconstructPayment(
		model.ID,
		model.SubscriptionID,
		vo.NewMoney(model.AmountCents, model.Currency),
		method,
		model.Notes,
		model.ProcessedByID,
		model.PaymentDate,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct payment entity: %w", err)
	}

	return entity, nil
}

func (m *PaymentMapperImpl) ToModel(entity *payment.Payment) (*models.PaymentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PaymentModel{
		ID:             entity.ID(),
		SubscriptionID: entity.SubscriptionID(),
		AmountCents:    entity.Amount().AmountInCents(),
		Currency:       entity.Amount().Currency(),
		Method:         entity.Method().String(),
		Notes:          entity.Notes(),
		ProcessedByID:  entity.ProcessedByID(),
		PaymentDate:    entity.PaymentDate(),
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *PaymentMapperImpl) ToEntities(modelList []*models.PaymentModel) ([]*payment.Payment, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PaymentModel) uint { return model.ID })
}
