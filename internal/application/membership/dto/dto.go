package dto

import (
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
)

type PlanDTO struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	PriceCents     int64     `json:"price_cents"`
	Currency       string    `json:"currency"`
	DurationMonths int       `json:"duration_months"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type SubscriptionDTO struct {
	ID                    uint      `json:"id"`
	ClientID              uint      `json:"client_id"`
	PlanID                uint      `json:"plan_id"`
	Status                string    `json:"status"`
	StartDate             time.Time `json:"start_date"`
	EndDate               time.Time `json:"end_date"`
	TotalPriceCents       int64     `json:"total_price_cents"`
	AmountPaidCents       int64     `json:"amount_paid_cents"`
	RemainingBalanceCents int64     `json:"remaining_balance_cents"`
	Currency              string    `json:"currency"`
	FullyPaid             bool      `json:"fully_paid"`
	PaymentPercentage     float64   `json:"payment_percentage"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func ToPlanDTO(p *membership.Plan) *PlanDTO {
	if p == nil {
		return nil
	}

	return &PlanDTO{
		ID:             p.ID(),
		Name:           p.Name(),
		Description:    p.Description(),
		PriceCents:     p.PriceCents(),
		Currency:       p.Currency(),
		DurationMonths: p.DurationMonths(),
		Status:         string(p.Status()),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*membership.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		if d := ToPlanDTO(p); d != nil {
			dtos = append(dtos, d)
		}
	}
	return dtos
}

func ToSubscriptionDTO(s *membership.Subscription) *SubscriptionDTO {
	if s == nil {
		return nil
	}

	return &SubscriptionDTO{
		ID:                    s.ID(),
		ClientID:              s.ClientID(),
		PlanID:                s.PlanID(),
		Status:                s.Status().String(),
		StartDate:             s.StartDate(),
		EndDate:               s.EndDate(),
		TotalPriceCents:       s.TotalPriceCents(),
		AmountPaidCents:       s.AmountPaidCents(),
		RemainingBalanceCents: s.RemainingBalanceCents(),
		Currency:              s.Currency(),
		FullyPaid:             s.IsFullyPaid(),
		PaymentPercentage:     s.PaymentPercentage(),
		CreatedAt:             s.CreatedAt(),
		UpdatedAt:             s.UpdatedAt(),
	}
}

func ToSubscriptionDTOs(subs []*membership.Subscription) []*SubscriptionDTO {
	dtos := make([]*SubscriptionDTO, 0, len(subs))
	for _, s := range subs {
		if d := ToSubscriptionDTO(s); d != nil {
			dtos = append(dtos, d)
		}
	}
	return dtos
}
