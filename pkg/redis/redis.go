package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"internship-web/backend/config"
)

// Client Redis 客户端封装
// 当前仅用于缓存关联显示名（学生姓名、实习标题），不可用时服务直接查库
type Client struct {
	rdb    *goredis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return newClient(rdb, cfg.NameCacheTTL, logger), nil
}

func newClient(rdb *goredis.Client, ttl time.Duration, logger *zap.Logger) *Client {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Client{rdb: rdb, ttl: ttl, logger: logger}
}

// ── 显示名缓存 ──

const namePrefix = "name:"

func nameKey(kind, id string) string {
	return namePrefix + kind + ":" + id
}

// GetName 读取缓存的显示名；未命中时 ok=false 且 err=nil
func (c *Client) GetName(ctx context.Context, kind, id string) (name string, ok bool, err error) {
	name, err = c.rdb.Get(ctx, nameKey(kind, id)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

// SetName 写入显示名，TTL 取配置 redis.name_cache_ttl
func (c *Client) SetName(ctx context.Context, kind, id, name string) error {
	return c.rdb.Set(ctx, nameKey(kind, id), name, c.ttl).Err()
}

// DeleteName 在源记录更新或删除后使缓存失效
func (c *Client) DeleteName(ctx context.Context, kind, id string) error {
	return c.rdb.Del(ctx, nameKey(kind, id)).Err()
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
