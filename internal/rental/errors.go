package rental

import "errors"

// 领域错误（可恢复）。传输层负责映射为 gRPC code，core 不吞错。
var (
	ErrDateRangeInvalid   = errors.New("end date before start date")
	ErrBookingConflict    = errors.New("vehicle already booked for overlapping dates")
	ErrNotFound           = errors.New("record not found")
	ErrInvalidTransition  = errors.New("invalid rental status transition")
	ErrInvalidInput       = errors.New("invalid input")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
