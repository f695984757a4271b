package rental

import (
	"errors"
	"testing"
)

func TestPriceInclusiveDays(t *testing.T) {
	// 同日取还算 1 天
	got, err := Price(5000, d("2024-01-01"), d("2024-01-01"))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if got != 5000 {
		t.Fatalf("expected 5000, got %d", got)
	}

	// 1 号到 3 号是 3 天
	got, err = Price(5000, d("2024-01-01"), d("2024-01-03"))
	if err != nil {
		t.Fatalf("Price: %v", err)
	}
	if got != 15000 {
		t.Fatalf("expected 15000, got %d", got)
	}
}

func TestPriceInvalidInput(t *testing.T) {
	if _, err := Price(0, d("2024-01-01"), d("2024-01-03")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero rate, got %v", err)
	}
	if _, err := Price(-100, d("2024-01-01"), d("2024-01-03")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative rate, got %v", err)
	}
	// 天数非正（结束早于开始）
	if _, err := Price(5000, d("2024-01-03"), d("2024-01-01")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for non-positive days, got %v", err)
	}
}

func TestRentalDaysAcrossMonths(t *testing.T) {
	if got := RentalDays(d("2024-01-31"), d("2024-02-02")); got != 3 {
		t.Fatalf("expected 3 days across month boundary, got %d", got)
	}
	// 闰日
	if got := RentalDays(d("2024-02-28"), d("2024-03-01")); got != 3 {
		t.Fatalf("expected 3 days across leap day, got %d", got)
	}
}
