package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrInvalidAccessResult = errors.New("invalid access result")
)
