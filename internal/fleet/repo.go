package fleet

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) Upsert(ctx context.Context, v *Vehicle) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(v).Error
}

func (r *Repo) FindByID(ctx context.Context, id string) (*Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var v Vehicle
	if err := db.Where("id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return &v, nil
}

// List 支持按 category / 仅可租 过滤 + 分页。
func (r *Repo) List(ctx context.Context, categoryID string, onlyAvailable bool, offset, limit int) ([]Vehicle, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	q := db.Model(&Vehicle{})
	if categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var vehicles []Vehicle
	if err := q.Order("created_at desc").Offset(offset).Limit(limit).Find(&vehicles).Error; err != nil {
		return nil, 0, err
	}
	return vehicles, total, nil
}

// Search 按品牌/型号/车牌模糊匹配（原型里客服按任意字段找车）。
func (r *Repo) Search(ctx context.Context, term string, limit int) ([]Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	pattern := "%" + term + "%"
	var vehicles []Vehicle
	err := db.Where("brand LIKE ? OR model LIKE ? OR plate_number LIKE ?", pattern, pattern, pattern).
		Order("brand, model").Limit(limit).Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *Repo) UpsertCategory(ctx context.Context, c *Category) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(c).Error
}

func (r *Repo) ListCategories(ctx context.Context) ([]Category, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var cats []Category
	if err := db.Order("name").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}
