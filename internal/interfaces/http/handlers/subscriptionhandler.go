package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	memberdto "github.com/Bassir-Elhoussein/gymapp/internal/application/membership/dto"
	"github.com/Bassir-Elhoussein/gymapp/internal/application/membership/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC createSubscriptionUseCase
	getSubscriptionUC    getSubscriptionUseCase
	listSubscriptionsUC  listSubscriptionsUseCase
	updateStatusUC       updateSubscriptionStatusUseCase
	renewSubscriptionUC  renewSubscriptionUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC createSubscriptionUseCase,
	getSubscriptionUC getSubscriptionUseCase,
	listSubscriptionsUC listSubscriptionsUseCase,
	updateStatusUC updateSubscriptionStatusUseCase,
	renewSubscriptionUC renewSubscriptionUseCase,
	log logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC: createSubscriptionUC,
		getSubscriptionUC:    getSubscriptionUC,
		listSubscriptionsUC:  listSubscriptionsUC,
		updateStatusUC:       updateStatusUC,
		renewSubscriptionUC:  renewSubscriptionUC,
		logger:               log,
	}
}

type CreateSubscriptionRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
	PlanID   uint `json:"plan_id" binding:"required"`
	// StartDate is the business date the subscription begins, formatted as
	// 2006-01-02. Empty means today.
	StartDate string `json:"start_date"`
}

type UpdateSubscriptionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active suspended cancelled expired"`
}

type RenewSubscriptionRequest struct {
	// PlanID switches the renewal to a different plan. Zero keeps the
	// current plan.
	PlanID uint `json:"plan_id"`
}

// RenewSubscriptionResponse pairs the closed-out subscription with its
// replacement.
type RenewSubscriptionResponse struct {
	Old *memberdto.SubscriptionDTO `json:"old"`
	New *memberdto.SubscriptionDTO `json:"new"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateSubscriptionCommand{
		ClientID: req.ClientID,
		PlanID:   req.PlanID,
	}

	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid start_date format, expected YYYY-MM-DD"))
			return
		}
		cmd.StartDate = startDate
	}

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, memberdto.ToSubscriptionDTO(result), "Subscription created successfully")
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getSubscriptionUC.Execute(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, memberdto.ToSubscriptionDTO(result))
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListSubscriptionsQuery{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || clientID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid client_id parameter")
			return
		}
		id := uint(clientID)
		query.ClientID = &id
	}

	if raw := c.Query("plan_id"); raw != "" {
		planID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || planID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid plan_id parameter")
			return
		}
		id := uint(planID)
		query.PlanID = &id
	}

	result, err := h.listSubscriptionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, memberdto.ToSubscriptionDTOs(result.Subscriptions), result.Total, page, pageSize)
}

func (h *SubscriptionHandler) UpdateSubscriptionStatus(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubscriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update subscription status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateSubscriptionStatusCommand{
		SubscriptionID: subscriptionID,
		Status:         req.Status,
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription status updated successfully", memberdto.ToSubscriptionDTO(result))
}

func (h *SubscriptionHandler) RenewSubscription(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Body is optional; renewing without one keeps the current plan.
	var req RenewSubscriptionRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for renew subscription", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	cmd := usecases.RenewSubscriptionCommand{
		SubscriptionID: subscriptionID,
		PlanID:         req.PlanID,
	}

	result, err := h.renewSubscriptionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := RenewSubscriptionResponse{
		Old: memberdto.ToSubscriptionDTO(result.Old),
		New: memberdto.ToSubscriptionDTO(result.New),
	}

	utils.CreatedResponse(c, resp, "Subscription renewed successfully")
}
