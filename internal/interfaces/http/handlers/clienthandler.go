package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	clientdto "github.com/Bassir-Elhoussein/gymapp/internal/application/client/dto"
	"github.com/Bassir-Elhoussein/gymapp/internal/application/client/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/utils"
)

type ClientHandler struct {
	registerClientUC registerClientUseCase
	getClientUC      getClientUseCase
	updateClientUC   updateClientUseCase
	listClientsUC    listClientsUseCase
	logger           logger.Interface
}

func NewClientHandler(
	registerClientUC registerClientUseCase,
	getClientUC getClientUseCase,
	updateClientUC updateClientUseCase,
	listClientsUC listClientsUseCase,
	log logger.Interface,
) *ClientHandler {
	return &ClientHandler{
		registerClientUC: registerClientUC,
		getClientUC:      getClientUC,
		updateClientUC:   updateClientUC,
		listClientsUC:    listClientsUC,
		logger:           log,
	}
}

type RegisterClientRequest struct {
	FullName  string     `json:"full_name" binding:"required"`
	Phone     string     `json:"phone" binding:"required"`
	Email     string     `json:"email"`
	Gender    string     `json:"gender" binding:"omitempty,oneof=male female other"`
	BirthDate *time.Time `json:"birth_date"`
}

type UpdateClientRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`

	// FingerprintToken enrolls the device token when non-empty; an explicit
	// empty string clears the enrollment. Omitted leaves it unchanged.
	FingerprintToken *string `json:"fingerprint_token"`
}

func (h *ClientHandler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.RegisterClientCommand{
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
	}

	result, err := h.registerClientUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, clientdto.ToClientDTO(result), "Client registered successfully")
}

func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getClientUC.Execute(c.Request.Context(), clientID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, clientdto.ToClientDTO(result))
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update client",
			"client_id", clientID,
			"error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateClientCommand{
		ClientID:         clientID,
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		FingerprintToken: req.FingerprintToken,
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", clientdto.ToClientDTO(result))
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListClientsQuery{
		Search:   c.Query("search"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listClientsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, clientdto.ToClientDTOs(result.Clients), result.Total, page, pageSize)
}
