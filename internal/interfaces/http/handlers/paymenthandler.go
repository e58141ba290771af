package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	memberdto "github.com/Bassir-Elhoussein/gymapp/internal/application/membership/dto"
	paydto "github.com/Bassir-Elhoussein/gymapp/internal/application/payment/dto"
	"github.com/Bassir-Elhoussein/gymapp/internal/application/payment/usecases"
	paymentvo "github.com/Bassir-Elhoussein/gymapp/internal/domain/payment/valueobjects"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/utils"
)

type PaymentHandler struct {
	recordPaymentUC recordPaymentUseCase
	listPaymentsUC  listSubscriptionPaymentsUseCase
	logger          logger.Interface
}

func NewPaymentHandler(
	recordPaymentUC recordPaymentUseCase,
	listPaymentsUC listSubscriptionPaymentsUseCase,
	log logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		recordPaymentUC: recordPaymentUC,
		listPaymentsUC:  listPaymentsUC,
		logger:          log,
	}
}

// RecordPaymentRequest records money against a subscription. Method defaults
// to cash when omitted, matching front-desk usage.
type RecordPaymentRequest struct {
	AmountCents   int64   `json:"amount_cents" binding:"required"`
	Method        string  `json:"method" binding:"omitempty,oneof=cash cheque card bank_transfer"`
	Notes         *string `json:"notes"`
	ProcessedByID *uint   `json:"processed_by_id"`
}

// RecordPaymentResponse returns the recorded payment and the subscription's
// updated balance.
type RecordPaymentResponse struct {
	Payment      *paydto.PaymentDTO         `json:"payment"`
	Subscription *memberdto.SubscriptionDTO `json:"subscription"`
}

// PaymentHistoryResponse is a subscription's payment ledger with derived
// balance figures. RemainingCents is negative when the client has credit.
type PaymentHistoryResponse struct {
	Payments        []*paydto.PaymentDTO `json:"payments"`
	TotalPaidCents  int64                `json:"total_paid_cents"`
	RemainingCents  int64                `json:"remaining_cents"`
	TotalPriceCents int64                `json:"total_price_cents"`
}

func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record payment",
			"subscription_id", subscriptionID,
			"error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	method := req.Method
	if method == "" {
		method = string(paymentvo.DefaultPaymentMethod)
	}

	cmd := usecases.RecordPaymentCommand{
		SubscriptionID: subscriptionID,
		AmountCents:    req.AmountCents,
		Method:         method,
		Notes:          req.Notes,
		ProcessedByID:  req.ProcessedByID,
	}

	result, err := h.recordPaymentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := RecordPaymentResponse{
		Payment:      paydto.ToPaymentDTO(result.Payment),
		Subscription: memberdto.ToSubscriptionDTO(result.Subscription),
	}

	utils.CreatedResponse(c, resp, "Payment recorded successfully")
}

func (h *PaymentHandler) ListSubscriptionPayments(c *gin.Context) {
	subscriptionID, err := utils.ParseUintParam(c, "id", "subscription")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPaymentsUC.Execute(c.Request.Context(), subscriptionID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := PaymentHistoryResponse{
		Payments:        paydto.ToPaymentDTOs(result.Payments),
		TotalPaidCents:  result.TotalPaidCents,
		RemainingCents:  result.RemainingCents,
		TotalPriceCents: result.TotalPriceCents,
	}

	utils.OKResponse(c, resp)
}
