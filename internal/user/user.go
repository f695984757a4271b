package user

import (
	"strings"
	"time"
)

// 角色等级（原型里的 CUSTOMER < STAFF < MANAGER < ADMIN 层级）。
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

var roleRank = map[string]int{
	RoleCustomer: 0,
	RoleStaff:    1,
	RoleManager:  2,
	RoleAdmin:    3,
}

// RoleAtLeast 判断 got 角色集里是否有达到 required 等级的角色。
// 未知角色视为无权限。
func RoleAtLeast(got []string, required string) bool {
	want, ok := roleRank[strings.ToLower(strings.TrimSpace(required))]
	if !ok {
		return false
	}
	for _, r := range got {
		if rank, ok := roleRank[strings.ToLower(strings.TrimSpace(r))]; ok && rank >= want {
			return true
		}
	}
	return false
}

// User 是 users 表的 GORM 模型。
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `gorm:"size:128;not null"`
	PasswordSalt string    `gorm:"size:64;not null"`
	FullName     string    `gorm:"size:128"`
	Phone        string    `gorm:"size:32"`
	Email        string    `gorm:"size:128"`
	Roles        string    `gorm:"size:256;not null"` // 逗号分隔，例如 "customer,staff"
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (u User) RolesSlice() []string {
	if strings.TrimSpace(u.Roles) == "" {
		return nil
	}
	parts := strings.Split(u.Roles, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func RolesJoin(roles []string) string {
	if len(roles) == 0 {
		return ""
	}
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		out = append(out, r)
	}
	return strings.Join(out, ",")
}
