package usecases

import (
	"context"
	"fmt"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	apperrors "github.com/Bassir-Elhoussein/gymapp/internal/shared/errors"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type CheckInCommand struct {
	// ClientID identifies the client directly (front-desk path). Zero means
	// resolve by FingerprintToken instead.
	ClientID uint
	// FingerprintToken is the opaque token sent by the fingerprint device.
	FingerprintToken string
	DeviceToken      *string
	// ExternalEventID deduplicates retried device deliveries. Two check-ins
	// with the same event ID yield one attendance record.
	ExternalEventID *string
}

type CheckInResult struct {
	Attendance *attendance.Attendance
	Decision   *AccessDecision
	// Replayed is true when the external event ID matched an existing record
	// and no new attendance row was written.
	Replayed bool
	// FirstVisitOfDay is true when this is the first granted entry for the
	// client on the current business day.
	FirstVisitOfDay bool
}

// CheckInUseCase evaluates access and records the attempt, granted or denied.
// Every distinct attempt appends a record; a client can check in any number
// of times per day.
type CheckInUseCase struct {
	attendanceRepo attendance.Repository
	evaluateAccess *EvaluateAccessUseCase
	logger         logger.Interface
}

func NewCheckInUseCase(
	attendanceRepo attendance.Repository,
	evaluateAccess *EvaluateAccessUseCase,
	logger logger.Interface,
) *CheckInUseCase {
	return &CheckInUseCase{
		attendanceRepo: attendanceRepo,
		evaluateAccess: evaluateAccess,
		logger:         logger,
	}
}

func (uc *CheckInUseCase) Execute(ctx context.Context, cmd CheckInCommand) (*CheckInResult, error) {
	if cmd.ExternalEventID != nil && *cmd.ExternalEventID != "" {
		existing, err := uc.attendanceRepo.GetByExternalEventID(ctx, *cmd.ExternalEventID)
		if err != nil {
			uc.logger.Errorw("failed to check external event ID", "error", err, "external_event_id", *cmd.ExternalEventID)
			return nil, fmt.Errorf("failed to check external event: %w", err)
		}
		if existing != nil {
			uc.logger.Debugw("replayed check-in event", "external_event_id", *cmd.ExternalEventID, "attendance_id", existing.ID())
			return &CheckInResult{Attendance: existing, Replayed: true}, nil
		}
	}

	clientID := cmd.ClientID
	if clientID == 0 {
		if cmd.FingerprintToken == "" {
			return nil, apperrors.NewBadRequestError("client ID or fingerprint token is required")
		}
		matched, err := uc.evaluateAccess.clientRepo.GetByFingerprintID(ctx, cmd.FingerprintToken)
		if err != nil {
			uc.logger.Errorw("failed to resolve fingerprint", "error", err)
			return nil, fmt.Errorf("failed to resolve fingerprint: %w", err)
		}
		if matched == nil {
			return nil, apperrors.NewNotFoundError("no client enrolled for this fingerprint")
		}
		clientID = matched.ID()
	}

	decision, err := uc.evaluateAccess.Execute(ctx, clientID)
	if err != nil {
		return nil, err
	}

	var subscriptionID *uint
	if decision.Subscription != nil {
		id := decision.Subscription.ID()
		subscriptionID = &id
	}
	var denialReason *string
	if !decision.IsGranted() {
		reason := decision.Reason
		denialReason = &reason
	}

	firstVisit := false
	if decision.IsGranted() {
		visited, err := uc.attendanceRepo.HasGrantedOnDate(ctx, clientID, biztime.Today())
		if err != nil {
			uc.logger.Errorw("failed to check prior visits", "error", err, "client_id", clientID)
			return nil, fmt.Errorf("failed to check prior visits: %w", err)
		}
		firstVisit = !visited
	}

	record, err := attendance.NewAttendance(
		clientID,
		subscriptionID,
		biztime.NowUTC(),
		decision.Result,
		denialReason,
		cmd.DeviceToken,
		cmd.ExternalEventID,
	)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.attendanceRepo.Create(ctx, record); err != nil {
		uc.logger.Errorw("failed to record attendance", "error", err, "client_id", clientID)
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}

	uc.logger.Infow("check-in recorded",
		"attendance_id", record.ID(),
		"client_id", clientID,
		"result", decision.Result.String(),
		"reason", decision.Reason,
	)

	return &CheckInResult{Attendance: record, Decision: decision, FirstVisitOfDay: firstVisit}, nil
}
