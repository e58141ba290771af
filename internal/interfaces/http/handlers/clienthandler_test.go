package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/application/client/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/client"
	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/handlers/testutil"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
)

type mockRegisterClientUC struct {
	result *client.Client
	err    error
}

func (m *mockRegisterClientUC) Execute(ctx context.Context, cmd usecases.RegisterClientCommand) (*client.Client, error) {
	return m.result, m.err
}

type mockGetClientUC struct {
	result *client.Client
	err    error
}

func (m *mockGetClientUC) Execute(ctx context.Context, clientID uint) (*client.Client, error) {
	return m.result, m.err
}

type mockUpdateClientUC struct {
	result *client.Client
	err    error
}

func (m *mockUpdateClientUC) Execute(ctx context.Context, cmd usecases.UpdateClientCommand) (*client.Client, error) {
	return m.result, m.err
}

type mockListClientsUC struct {
	result *usecases.ListClientsResult
	err    error
}

func (m *mockListClientsUC) Execute(ctx context.Context, query usecases.ListClientsQuery) (*usecases.ListClientsResult, error) {
	return m.result, m.err
}

func createTestClient() *client.Client {
	now := time.Now().UTC()
	c, _ := client.ReconstructClient(1, "Amina Berrada", "+212600000001", "amina@example.com", nil, nil, nil, 1, now, now)
	return c
}

func newTestClientHandler(
	registerUC registerClientUseCase,
	getUC getClientUseCase,
	updateUC updateClientUseCase,
	listUC listClientsUseCase,
) *ClientHandler {
	return NewClientHandler(registerUC, getUC, updateUC, listUC, testutil.NewMockLogger())
}

func TestClientHandler_RegisterClient_Success(t *testing.T) {
	mockUC := &mockRegisterClientUC{result: createTestClient()}
	handler := newTestClientHandler(mockUC, nil, nil, nil)

	reqBody := RegisterClientRequest{
		FullName: "Amina Berrada",
		Phone:    "+212600000001",
		Email:    "amina@example.com",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/clients", reqBody)

	handler.RegisterClient(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestClientHandler_RegisterClient_MissingPhone(t *testing.T) {
	handler := newTestClientHandler(nil, nil, nil, nil)

	reqBody := map[string]string{"full_name": "Amina Berrada"}
	c, w := testutil.NewTestContext(http.MethodPost, "/clients", reqBody)

	handler.RegisterClient(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestClientHandler_RegisterClient_DuplicatePhone(t *testing.T) {
	mockUC := &mockRegisterClientUC{err: errors.NewConflictError("client with this phone already exists")}
	handler := newTestClientHandler(mockUC, nil, nil, nil)

	reqBody := RegisterClientRequest{
		FullName: "Amina Berrada",
		Phone:    "+212600000001",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/clients", reqBody)

	handler.RegisterClient(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestClientHandler_GetClient_Success(t *testing.T) {
	mockUC := &mockGetClientUC{result: createTestClient()}
	handler := newTestClientHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/clients/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.GetClient(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClientHandler_GetClient_InvalidID(t *testing.T) {
	handler := newTestClientHandler(nil, nil, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/clients/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetClient(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_GetClient_NotFound(t *testing.T) {
	mockUC := &mockGetClientUC{err: errors.NewNotFoundError("client not found")}
	handler := newTestClientHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/clients/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetClient(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientHandler_ListClients_Success(t *testing.T) {
	mockUC := &mockListClientsUC{result: &usecases.ListClientsResult{
		Clients: []*client.Client{createTestClient()},
		Total:   1,
	}}
	handler := newTestClientHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/clients", nil)

	handler.ListClients(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}
