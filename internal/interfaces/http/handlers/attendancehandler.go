package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	attdto "github.com/Bassir-Elhoussein/gymapp/internal/application/attendance/dto"
	"github.com/Bassir-Elhoussein/gymapp/internal/application/attendance/usecases"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/utils"
)

type AttendanceHandler struct {
	checkInUC        checkInUseCase
	evaluateAccessUC evaluateAccessUseCase
	listAttendanceUC listAttendanceUseCase
	todaySummaryUC   todaySummaryUseCase
	logger           logger.Interface
}

func NewAttendanceHandler(
	checkInUC checkInUseCase,
	evaluateAccessUC evaluateAccessUseCase,
	listAttendanceUC listAttendanceUseCase,
	todaySummaryUC todaySummaryUseCase,
	log logger.Interface,
) *AttendanceHandler {
	return &AttendanceHandler{
		checkInUC:        checkInUC,
		evaluateAccessUC: evaluateAccessUC,
		listAttendanceUC: listAttendanceUC,
		todaySummaryUC:   todaySummaryUC,
		logger:           log,
	}
}

type CheckInRequest struct {
	// ClientID identifies the client directly (front-desk path). Zero means
	// resolve by FingerprintToken.
	ClientID         uint    `json:"client_id"`
	FingerprintToken string  `json:"fingerprint_token"`
	DeviceToken      *string `json:"device_token"`
	ExternalEventID  *string `json:"external_event_id"`
}

// CheckInResponse reports the access decision alongside the recorded
// attendance row.
type CheckInResponse struct {
	Result          string                `json:"result"`
	Reason          string                `json:"reason,omitempty"`
	Attendance      *attdto.AttendanceDTO `json:"attendance"`
	Replayed        bool                  `json:"replayed"`
	FirstVisitOfDay bool                  `json:"first_visit_of_day"`
}

// TodaySummaryResponse reports granted entries for the current business day.
type TodaySummaryResponse struct {
	Date         string `json:"date"`
	GrantedCount int64  `json:"granted_count"`
}

// AccessDecisionResponse is the read-only evaluation for a client on a
// business date.
type AccessDecisionResponse struct {
	Result         string `json:"result"`
	Reason         string `json:"reason,omitempty"`
	ClientID       uint   `json:"client_id"`
	SubscriptionID *uint  `json:"subscription_id,omitempty"`
	Date           string `json:"date"`
}

func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for check-in", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CheckInCommand{
		ClientID:         req.ClientID,
		FingerprintToken: req.FingerprintToken,
		DeviceToken:      req.DeviceToken,
		ExternalEventID:  req.ExternalEventID,
	}

	result, err := h.checkInUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := CheckInResponse{
		Result:          result.Attendance.AccessResult().String(),
		Attendance:      attdto.ToAttendanceDTO(result.Attendance),
		Replayed:        result.Replayed,
		FirstVisitOfDay: result.FirstVisitOfDay,
	}
	// Replayed events carry no fresh decision; the stored row already has
	// the outcome.
	if result.Decision != nil {
		resp.Reason = result.Decision.Reason
	} else if reason := result.Attendance.DenialReason(); reason != nil {
		resp.Reason = *reason
	}

	utils.OKResponse(c, resp)
}

func (h *AttendanceHandler) EvaluateAccess(c *gin.Context) {
	clientID, err := utils.ParseUintParam(c, "client_id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Optional date query evaluates the membership as of another business
	// day, e.g. checking whether it covers an upcoming visit.
	onDate := biztime.Today()
	if raw := c.Query("date"); raw != "" {
		onDate, err = parseBusinessDate(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	decision, err := h.evaluateAccessUC.ExecuteOn(c.Request.Context(), clientID, onDate)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := AccessDecisionResponse{
		Result:   decision.Result.String(),
		Reason:   decision.Reason,
		ClientID: clientID,
		Date:     onDate.Format("2006-01-02"),
	}
	if decision.Subscription != nil {
		id := decision.Subscription.ID()
		resp.SubscriptionID = &id
	}

	utils.OKResponse(c, resp)
}

func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	query := usecases.ListAttendanceQuery{
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

	if raw := c.Query("date_from"); raw != "" {
		from, err := parseBusinessDate(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.DateFrom = &from
	}

	if raw := c.Query("date_to"); raw != "" {
		to, err := parseBusinessDate(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		query.DateTo = &to
	}

	if raw := c.Query("granted"); raw != "" {
		granted, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid granted parameter")
			return
		}
		query.Granted = &granted
	}

	result, err := h.listAttendanceUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, attdto.ToAttendanceDTOs(result.Records), result.Total, page, pageSize)
}

func (h *AttendanceHandler) TodaySummary(c *gin.Context) {
	result, err := h.todaySummaryUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := TodaySummaryResponse{
		Date:         result.Date.Format("2006-01-02"),
		GrantedCount: result.GrantedCount,
	}

	utils.OKResponse(c, resp)
}

func parseBusinessDate(raw string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date format, expected YYYY-MM-DD")
	}
	// Rebuild the date in the business timezone. time.Parse yields midnight
	// UTC, and converting that instant would land on the previous day in
	// timezones west of UTC.
	return biztime.Date(parsed.Year(), parsed.Month(), parsed.Day()), nil
}
