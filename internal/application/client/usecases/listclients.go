package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type ListClientsQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListClientsResult struct {
	Clients []*client.Client
	Total   int64
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) (*ListClientsResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	clients, total, err := uc.clientRepo.List(ctx, client.Filter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &ListClientsResult{Clients: clients, Total: total}, nil
}
