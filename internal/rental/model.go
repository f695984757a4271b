package rental

import "time"

// Status 租约状态枚举（持久化为字符串）。
type Status string

const (
	StatusPending   Status = "PENDING"   // 已预订，待取车
	StatusActive    Status = "ACTIVE"    // 租用中（已取车）
	StatusCompleted Status = "COMPLETED" // 已归还完成
	StatusCancelled Status = "CANCELLED" // 已取消（客户/运营）
)

// IsTerminal 终态不允许再流转。
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Rental 租约 GORM 模型。
// 日期为“含首尾”的自然日（无时间部分），统一存 UTC 零点。
type Rental struct {
	ID string `gorm:"primaryKey;size:36"`

	// 业务关联
	VehicleID string `gorm:"index;size:36;not null"`          // 租用车辆
	UserID    string `gorm:"index;size:36;not null"`          // 下单用户
	Status    Status `gorm:"type:varchar(16);index;not null"` // 当前状态

	// 客户联系信息（下单时快照，允许与账号信息不同）
	CustomerName  string `gorm:"size:128"`
	CustomerEmail string `gorm:"size:128"`

	// 租期（含首尾日）
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`

	// 金额信息（单位：分）；下单时按当时日租金定价，后续不随车辆调价变动
	TotalPriceCents int64  `gorm:"not null;default:0"`
	Currency        string `gorm:"size:8;not null;default:'USD'"`

	// 时间信息
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
	StartedAt   *time.Time // 取车时间
	CompletedAt *time.Time // 归还时间
	CancelledAt *time.Time // 取消时间
}

// DateOnly 把时间截断到自然日（UTC），租期字段入库前统一走这里。
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EpochDays 自 1970-01-01 起的天数，用于含首尾的天数计算。
func EpochDays(t time.Time) int64 {
	return DateOnly(t).Unix() / 86400
}
