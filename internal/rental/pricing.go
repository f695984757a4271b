package rental

import (
	"fmt"
	"time"
)

// RentalDays 含首尾的天数：同日取还算 1 天。
func RentalDays(startDate, endDate time.Time) int64 {
	return EpochDays(endDate) - EpochDays(startDate) + 1
}

// Price 按日租金（分）和含首尾天数计算总价（分）。
// 金额用整数分，不存在小数舍入问题。
func Price(dailyPriceCents int64, startDate, endDate time.Time) (int64, error) {
	if dailyPriceCents <= 0 {
		return 0, fmt.Errorf("%w: daily price must be positive, got %d", ErrInvalidInput, dailyPriceCents)
	}
	days := RentalDays(startDate, endDate)
	if days <= 0 {
		return 0, fmt.Errorf("%w: rental days must be positive, got %d", ErrInvalidInput, days)
	}
	return dailyPriceCents * days, nil
}
