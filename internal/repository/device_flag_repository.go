package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DeviceFlagRepository 设备级的"已提交"标记，纯参考性质的元数据：
// 跨会话存活、仅用于重复提交提示，从不阻止第二次提交。
type DeviceFlagRepository struct {
	RDB *redis.Client
	TTL time.Duration // 0 表示不过期
}

func NewDeviceFlagRepository(rdb *redis.Client, ttl time.Duration) *DeviceFlagRepository {
	return &DeviceFlagRepository{RDB: rdb, TTL: ttl}
}

func flagKey(deviceID, group string) string {
	return fmt.Sprintf("submitted:%s:%s", deviceID, group)
}

func (r *DeviceFlagRepository) MarkSubmitted(ctx context.Context, deviceID, group string) error {
	return r.RDB.Set(ctx, flagKey(deviceID, group), "1", r.TTL).Err()
}

func (r *DeviceFlagRepository) HasSubmitted(ctx context.Context, deviceID, group string) (bool, error) {
	n, err := r.RDB.Exists(ctx, flagKey(deviceID, group)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
