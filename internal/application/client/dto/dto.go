package dto

import (
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
)

type ClientDTO struct {
	ID                  uint       `json:"id"`
	FullName            string     `json:"full_name"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email,omitempty"`
	Gender              *string    `json:"gender,omitempty"`
	BirthDate           *time.Time `json:"birth_date,omitempty"`
	FingerprintEnrolled bool       `json:"fingerprint_enrolled"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func ToClientDTO(c *client.Client) *ClientDTO {
	if c == nil {
		return nil
	}

	dto := &ClientDTO{
		ID:                  c.ID(),
		FullName:            c.FullName(),
		Phone:               c.Phone(),
		Email:               c.Email(),
		BirthDate:           c.BirthDate(),
		FingerprintEnrolled: c.FingerprintID() != nil,
		CreatedAt:           c.CreatedAt(),
		UpdatedAt:           c.UpdatedAt(),
	}

	if g := c.Gender(); g != nil {
		s := string(*g)
		dto.Gender = &s
	}

	return dto
}

func ToClientDTOs(clients []*client.Client) []*ClientDTO {
	dtos := make([]*ClientDTO, 0, len(clients))
	for _, c := range clients {
		if d := ToClientDTO(c); d != nil {
			dtos = append(dtos, d)
		}
	}
	return dtos
}
