package fleet

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// 可租车辆列表缓存：fleet:vehicles:available -> JSON []Vehicle
	keyAvailableVehicles = "fleet:vehicles:available"
)

// TTL 偏短：租约引擎翻转 available 标志不经过本包，靠过期兜底。
var TTLAvailableList = time.Minute

// NewRedis 创建 Redis 客户端。
func NewRedis(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// CachedRepo 在 Repo 外包一层只读缓存（read-through）。
// Redis 不可用时静默回退 MySQL；缓存永远不是第二事实源。
type CachedRepo struct {
	*Repo
	rdb *redis.Client
}

func NewCachedRepo(repo *Repo, rdb *redis.Client) *CachedRepo {
	return &CachedRepo{Repo: repo, rdb: rdb}
}

// ListAvailable 返回当前可租车辆（给商品列表页用，允许短暂过期）。
func (c *CachedRepo) ListAvailable(ctx context.Context) ([]Vehicle, error) {
	if c.rdb != nil {
		if raw, err := c.rdb.Get(ctx, keyAvailableVehicles).Bytes(); err == nil {
			var cached []Vehicle
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
			// 缓存内容坏了就删掉重建
			_ = c.rdb.Del(ctx, keyAvailableVehicles).Err()
		}
	}

	vehicles, _, err := c.Repo.List(ctx, "", true, 0, 200)
	if err != nil {
		return nil, err
	}

	if c.rdb != nil {
		if raw, err := json.Marshal(vehicles); err == nil {
			_ = c.rdb.Set(ctx, keyAvailableVehicles, raw, TTLAvailableList).Err()
		}
	}
	return vehicles, nil
}

// Upsert 写穿：车辆信息变更后让列表缓存失效。
func (c *CachedRepo) Upsert(ctx context.Context, v *Vehicle) error {
	if err := c.Repo.Upsert(ctx, v); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *CachedRepo) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, keyAvailableVehicles).Err()
}
