package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/domain/attendance"
	"github.com/Bassir-Elhoussein/gymapp/internal/shared/logger"
)

type ListAttendanceQuery struct {
	ClientID *uint
	DateFrom *time.Time
	DateTo   *time.Time
	Granted  *bool
	Page     int
	PageSize int
}

type ListAttendanceResult struct {
	Records []*attendance.Attendance
	Total   int64
}

type ListAttendanceUseCase struct {
	attendanceRepo attendance.Repository
	logger         logger.Interface
}

func NewListAttendanceUseCase(attendanceRepo attendance.Repository, logger logger.Interface) *ListAttendanceUseCase {
	return &ListAttendanceUseCase{
		attendanceRepo: attendanceRepo,
		logger:         logger,
	}
}

func (uc *ListAttendanceUseCase) Execute(ctx context.Context, query ListAttendanceQuery) (*ListAttendanceResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	records, total, err := uc.attendanceRepo.List(ctx, attendance.Filter{
		ClientID: query.ClientID,
		DateFrom: query.DateFrom,
		DateTo:   query.DateTo,
		Granted:  query.Granted,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list attendance", "error", err)
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return &ListAttendanceResult{Records: records, Total: total}, nil
}
