package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bassir-Elhoussein/gymapp/internal/application/membership/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/domain/membership"
	"github.com/Bassir-Elhoussein/gymapp/internal/interfaces/http/handlers/testutil"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
)

type mockCreatePlanUC struct {
	result *membership.Plan
	err    error
}

func (m *mockCreatePlanUC) Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*membership.Plan, error) {
	return m.result, m.err
}

type mockUpdatePlanUC struct {
	result *membership.Plan
	err    error
}

func (m *mockUpdatePlanUC) Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*membership.Plan, error) {
	return m.result, m.err
}

type mockGetPlanUC struct {
	result *membership.Plan
	err    error
}

func (m *mockGetPlanUC) Execute(ctx context.Context, planID uint) (*membership.Plan, error) {
	return m.result, m.err
}

type mockListPlansUC struct {
	result *usecases.ListPlansResult
	err    error
}

func (m *mockListPlansUC) Execute(ctx context.Context, query usecases.ListPlansQuery) (*usecases.ListPlansResult, error) {
	return m.result, m.err
}

func createTestPlan() *membership.Plan {
	now := time.Now().UTC()
	p, _ := membership.ReconstructPlan(1, "Monthly", "Standard monthly access", 30000, "MAD", 1, "active", 1, now, now)
	return p
}

func newTestPlanHandler(
	createUC createPlanUseCase,
	updateUC updatePlanUseCase,
	getUC getPlanUseCase,
	listUC listPlansUseCase,
) *PlanHandler {
	return NewPlanHandler(createUC, updateUC, getUC, listUC, testutil.NewMockLogger())
}

func TestPlanHandler_CreatePlan_Success(t *testing.T) {
	mockUC := &mockCreatePlanUC{result: createTestPlan()}
	handler := newTestPlanHandler(mockUC, nil, nil, nil)

	reqBody := CreatePlanRequest{Name: "Monthly", PriceCents: 30000, DurationMonths: 1}
	c, w := testutil.NewTestContext(http.MethodPost, "/plans", reqBody)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestPlanHandler_CreatePlan_ZeroDuration(t *testing.T) {
	handler := newTestPlanHandler(nil, nil, nil, nil)

	reqBody := map[string]interface{}{"name": "Monthly", "price_cents": 30000, "duration_months": 0}
	c, w := testutil.NewTestContext(http.MethodPost, "/plans", reqBody)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlanHandler_CreatePlan_DuplicateName(t *testing.T) {
	mockUC := &mockCreatePlanUC{err: errors.NewConflictError("plan with this name already exists")}
	handler := newTestPlanHandler(mockUC, nil, nil, nil)

	reqBody := CreatePlanRequest{Name: "Monthly", PriceCents: 30000, DurationMonths: 1}
	c, w := testutil.NewTestContext(http.MethodPost, "/plans", reqBody)

	handler.CreatePlan(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPlanHandler_GetPlan_NotFound(t *testing.T) {
	mockUC := &mockGetPlanUC{err: errors.NewNotFoundError("plan not found")}
	handler := newTestPlanHandler(nil, nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/plans/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlanHandler_UpdatePlan_Deactivate(t *testing.T) {
	mockUC := &mockUpdatePlanUC{result: createTestPlan()}
	handler := newTestPlanHandler(nil, mockUC, nil, nil)

	active := false
	reqBody := UpdatePlanRequest{Name: "Monthly", PriceCents: 30000, DurationMonths: 1, Active: &active}
	c, w := testutil.NewTestContext(http.MethodPut, "/plans/1", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdatePlan(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPlanHandler_ListPlans_Success(t *testing.T) {
	mockUC := &mockListPlansUC{result: &usecases.ListPlansResult{
		Plans: []*membership.Plan{createTestPlan()},
		Total: 1,
	}}
	handler := newTestPlanHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/plans", nil)

	handler.ListPlans(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
