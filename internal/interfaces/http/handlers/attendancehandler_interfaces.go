package handlers

import (
	"context"
	"time"

	"github.com/Bassir-Elhoussein/gymapp/internal/application/attendance/usecases"
)

// Use case interfaces for AttendanceHandler

type checkInUseCase interface {
	Execute(ctx context.Context, cmd usecases.CheckInCommand) (*usecases.CheckInResult, error)
}

type evaluateAccessUseCase interface {
	ExecuteOn(ctx context.Context, clientID uint, onDate time.Time) (*usecases.AccessDecision, error)
}

type listAttendanceUseCase interface {
	Execute(ctx context.Context, query usecases.ListAttendanceQuery) (*usecases.ListAttendanceResult, error)
}

type todaySummaryUseCase interface {
	Execute(ctx context.Context) (*usecases.TodaySummaryResult, error)
}
