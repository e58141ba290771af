package handlers

import (
	"context"

	"github.com/Bassir-Elhoussein/gymapp/internal/application/client/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
)

// Use case interfaces for ClientHandler

type registerClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterClientCommand) (*client.Client, error)
}

type getClientUseCase interface {
	Execute(ctx context.Context, clientID uint) (*client.Client, error)
}

type updateClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateClientCommand) (*client.Client, error)
}

type listClientsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClientsQuery) (*usecases.ListClientsResult, error)
}
