package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type RegisterClientCommand struct {
	FullName  string
	Phone     string
	Email     string
	Gender    string
	BirthDate *time.Time
}

type RegisterClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewRegisterClientUseCase(clientRepo client.Repository, logger logger.Interface) *RegisterClientUseCase {
	return &RegisterClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *RegisterClientUseCase) Execute(ctx context.Context, cmd RegisterClientCommand) (*client.Client, error) {
	exists, err := uc.clientRepo.ExistsByPhone(ctx, cmd.Phone)
	if err != nil {
		uc.logger.Errorw("failed to check phone uniqueness", "error", err, "phone", cmd.Phone)
		return nil, fmt.Errorf("failed to check phone: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError("a client with this phone already exists")
	}

	var gender *client.Gender
	if cmd.Gender != "" {
		g := client.Gender(cmd.Gender)
		if !g.IsValid() {
			return nil, apperrors.NewValidationError("invalid gender", cmd.Gender)
		}
		gender = &g
	}

	newClient, err := client.NewClient(cmd.FullName, cmd.Phone, cmd.Email, gender, cmd.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.clientRepo.Create(ctx, newClient); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError("a client with this phone already exists")
		}
		uc.logger.Errorw("failed to create client", "error", err)
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	uc.logger.Infow("client registered", "client_id", newClient.ID(), "phone", newClient.Phone())

	return newClient, nil
}
