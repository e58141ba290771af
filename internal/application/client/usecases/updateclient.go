package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type UpdateClientCommand struct {
	ClientID uint
	FullName string
	Phone    string
	Email    string

	// FingerprintToken enrolls the opaque device token when non-nil and
	// non-empty; a non-nil empty string clears the enrollment.
	FingerprintToken *string
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*client.Client, error) {
	existing, err := uc.clientRepo.GetByID(ctx, cmd.ClientID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "error", err, "client_id", cmd.ClientID)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if existing == nil {
		return nil, apperrors.NewNotFoundError("client not found")
	}

	if cmd.Phone != existing.Phone() {
		taken, err := uc.clientRepo.ExistsByPhone(ctx, cmd.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to check phone: %w", err)
		}
		if taken {
			return nil, apperrors.NewConflictError("a client with this phone already exists")
		}
	}

	if err := existing.UpdateContact(cmd.FullName, cmd.Phone, cmd.Email); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if cmd.FingerprintToken != nil {
		if *cmd.FingerprintToken == "" {
			existing.ClearFingerprint()
		} else if err := existing.EnrollFingerprint(*cmd.FingerprintToken); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.clientRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update client", "error", err, "client_id", cmd.ClientID)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	uc.logger.Infow("client updated", "client_id", existing.ID())

	return existing, nil
}
