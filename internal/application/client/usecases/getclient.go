package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, clientID uint) (*client.Client, error) {
	found, err := uc.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if found == nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	return found, nil
}
