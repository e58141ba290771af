package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/biztime"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type TodaySummaryResult struct {
	// Date is the current business day.
	Date         time.Time
	GrantedCount int64
}

// TodaySummaryUseCase reports how many entries were granted on the current
// business day. Every granted row counts, so a client who comes back the
// same day is counted again.
type TodaySummaryUseCase struct {
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewTodaySummaryUseCase(attendanceRepo attendance.Repository, logger logger.Interface) *TodaySummaryUseCase {
	return &TodaySummaryUseCase{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *TodaySummaryUseCase) Execute(ctx context.Context) (*TodaySummaryResult, error) {
	today := biztime.Today()

	count, err := uc.attendanceRepo.CountGrantedOnDate(ctx, today)
	if err != nil {
		uc.logger.Errorw("failed to count granted entries", "error", err, "date", today)
		return nil, fmt.Errorf("failed to count granted entries: %w", err)
	}

	return &TodaySummaryResult{Date: today, GrantedCount: count}, nil
}
