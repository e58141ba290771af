package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	memberdto "github.com/Bassir-Elhoussein/gymapp/internal/application/membership/dto"
	"github.com/Bassir-Elhoussein/gymapp/internal/application/membership/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC createPlanUseCase
	updatePlanUC updatePlanUseCase
	getPlanUC    getPlanUseCase
	listPlansUC  listPlansUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC createPlanUseCase,
	updatePlanUC updatePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	log logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		logger:       log,
	}
}

type CreatePlanRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	PriceCents     int64  `json:"price_cents" binding:"min=0"`
	Currency       string `json:"currency" binding:"omitempty,len=3"`
	DurationMonths int    `json:"duration_months" binding:"required,min=1"`
}

type UpdatePlanRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	PriceCents     int64  `json:"price_cents" binding:"min=0"`
	DurationMonths int    `json:"duration_months" binding:"required,min=1"`
	Active         *bool  `json:"active"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreatePlanCommand{
		Name:           req.Name,
		Description:    req.Description,
		PriceCents:     req.PriceCents,
		Currency:       req.Currency,
		DurationMonths: req.DurationMonths,
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, memberdto.ToPlanDTO(result), "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan",
			"plan_id", planID,
			"error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdatePlanCommand{
		PlanID:         planID,
		Name:           req.Name,
		Description:    req.Description,
		PriceCents:     req.PriceCents,
		DurationMonths: req.DurationMonths,
		Active:         req.Active,
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", memberdto.ToPlanDTO(result))
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getPlanUC.Execute(c.Request.Context(), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, memberdto.ToPlanDTO(result))
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	activeOnly := true
	if raw := c.Query("active_only"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid active_only parameter")
			return
		}
		activeOnly = parsed
	}

	query := usecases.ListPlansQuery{
		ActiveOnly: activeOnly,
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, memberdto.ToPlanDTOs(result.Plans), result.Total, page, pageSize)
}
