package fleet

import (
	"fmt"
	"time"
)

// Vehicle 是 vehicles 表的 GORM 模型。
// Available 是派生值：当且仅当车上没有 PENDING/ACTIVE 租约时为 true，
// 只允许租约引擎（rental.Service）修改，这里只做存取。
type Vehicle struct {
	ID              string    `gorm:"primaryKey;size:36"`
	Brand           string    `gorm:"size:64;not null"`
	Model           string    `gorm:"size:64;not null"`
	PlateNumber     string    `gorm:"uniqueIndex;size:32;not null"`
	Year            int       `gorm:"not null"`
	CategoryID      string    `gorm:"index;size:36"`
	DailyPriceCents int64     `gorm:"not null"` // 日租金（分）
	Available       bool      `gorm:"not null;default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (v Vehicle) FullName() string {
	return fmt.Sprintf("%s %s (%d)", v.Brand, v.Model, v.Year)
}

// Category 车辆类别（economy / suv / luxury 等）。
type Category struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"uniqueIndex;size:64;not null"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
