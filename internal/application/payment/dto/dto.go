package dto

import (
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/payment"
)

type PaymentDTO struct {
	ID             uint      `json:"id"`
	SubscriptionID uint      `json:"subscription_id"`
	AmountCents    int64     `json:"amount_cents"`
	Currency       string    `json:"currency"`
	Method         string    `json:"method"`
	Notes          *string   `json:"notes,omitempty"`
	ProcessedByID  *uint     `json:"processed_by_id,omitempty"`
	PaymentDate    time.Time `json:"payment_date"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToPaymentDTO(p *payment.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}

	return &PaymentDTO{
		ID:             p.ID(),
		SubscriptionID: p.SubscriptionID(),
		AmountCents:    p.Amount().AmountInCents(),
		Currency:       p.Amount().Currency(),
		Method:         string(p.Method()),
		Notes:          p.Notes(),
		ProcessedByID:  p.ProcessedByID(),
		PaymentDate:    p.PaymentDate(),
		CreatedAt:      p.CreatedAt(),
	}
}

func ToPaymentDTOs(payments []*payment.Payment) []*PaymentDTO {
	dtos := make([]*PaymentDTO, 0, len(payments))
	for _, p := range payments {
		if d := ToPaymentDTO(p); d != nil {
			dtos = append(dtos, d)
		}
	}
	return dtos
}
