package rental

import (
	"testing"
	"time"
)

func d(s string) time.Time {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	// 部分重叠
	if !Overlaps(d("2024-01-01"), d("2024-01-05"), d("2024-01-03"), d("2024-01-10")) {
		t.Fatalf("expected partial overlap")
	}
	// 包含
	if !Overlaps(d("2024-01-01"), d("2024-01-10"), d("2024-01-03"), d("2024-01-05")) {
		t.Fatalf("expected containment overlap")
	}
	// 同一天首尾相接也算冲突（整天粒度）
	if !Overlaps(d("2024-01-01"), d("2024-01-05"), d("2024-01-05"), d("2024-01-10")) {
		t.Fatalf("expected touching days to conflict")
	}
	// 相邻但不相接：不冲突
	if Overlaps(d("2024-01-01"), d("2024-01-05"), d("2024-01-06"), d("2024-01-10")) {
		t.Fatalf("expected adjacent ranges not to conflict")
	}
}

func TestOverlapsSymmetry(t *testing.T) {
	cases := [][4]string{
		{"2024-01-01", "2024-01-05", "2024-01-05", "2024-01-10"},
		{"2024-01-01", "2024-01-05", "2024-01-06", "2024-01-10"},
		{"2024-01-01", "2024-01-10", "2024-01-03", "2024-01-05"},
		{"2024-03-01", "2024-03-03", "2024-03-04", "2024-03-05"},
	}
	for _, c := range cases {
		a := Overlaps(d(c[0]), d(c[1]), d(c[2]), d(c[3]))
		b := Overlaps(d(c[2]), d(c[3]), d(c[0]), d(c[1]))
		if a != b {
			t.Fatalf("symmetry violated for %v: %v vs %v", c, a, b)
		}
	}
}

func TestOverlapsIgnoresTimeComponent(t *testing.T) {
	late := time.Date(2024, 1, 5, 23, 30, 0, 0, time.UTC)
	if !Overlaps(d("2024-01-01"), late, d("2024-01-05"), d("2024-01-10")) {
		t.Fatalf("expected overlap regardless of time-of-day")
	}
}
