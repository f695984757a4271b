package rental

import (
	"fmt"
	"time"
)

// AllowTransition 定义租约状态机的允许流转关系。
// PENDING 允许直接到 COMPLETED：运营侧可以跳过显式取车步骤直接结单。
var AllowTransition = map[Status][]Status{
	StatusPending: {StatusActive, StatusCompleted, StatusCancelled},
	StatusActive:  {StatusCompleted, StatusCancelled},
	// 终态：不允许从 COMPLETED / CANCELLED 再流转
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
// 注意：from == to 不放行，对终态重复操作必须报错。
func CanTransition(from, to Status) bool {
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition 对租约应用状态变更，并维护关键时间字段。
func ApplyTransition(r *Rental, to Status, now time.Time) error {
	if r == nil {
		return fmt.Errorf("rental is nil")
	}
	from := r.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	r.Status = to

	switch to {
	case StatusActive:
		if r.StartedAt == nil {
			t := now
			r.StartedAt = &t
		}
	case StatusCompleted:
		if r.CompletedAt == nil {
			t := now
			r.CompletedAt = &t
		}
	case StatusCancelled:
		if r.CancelledAt == nil {
			t := now
			r.CancelledAt = &t
		}
	}
	return nil
}
