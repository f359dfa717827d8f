package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"internship-web/backend/internal/repository"
	pkgerrors "internship-web/backend/pkg/errors"
)

// UnknownName 关联记录无法解析时对外输出的占位名
const UnknownName = "Unknown"

// 缓存键的种类
const (
	nameKindStudent    = "student"
	nameKindInternship = "internship"
)

// NameCache 显示名缓存，由 pkg/redis.Client 实现
type NameCache interface {
	GetName(ctx context.Context, kind, id string) (string, bool, error)
	SetName(ctx context.Context, kind, id, name string) error
	DeleteName(ctx context.Context, kind, id string) error
}

// nameResolver 读取时关联学生姓名与实习标题
// 解析结果为 nil 表示引用已失效（记录被删除或从未存在）
type nameResolver struct {
	repo   *repository.Repository
	cache  NameCache // 可为 nil
	logger *zap.Logger
}

func newNameResolver(repo *repository.Repository, cache NameCache, logger *zap.Logger) *nameResolver {
	return &nameResolver{repo: repo, cache: cache, logger: logger}
}

// lookup 返回单次列表查询内使用的解析器，同一 id 只查询一次
func (r *nameResolver) lookup() *nameLookup {
	return &nameLookup{r: r, memo: make(map[string]*string)}
}

// invalidate 源记录更新或删除后清除缓存；缓存故障只记录日志
func (r *nameResolver) invalidate(ctx context.Context, kind, id string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.DeleteName(ctx, kind, id); err != nil {
		r.logger.Warn("清除显示名缓存失败", zap.String("kind", kind), zap.String("id", id), zap.Error(err))
	}
}

func (r *nameResolver) resolve(ctx context.Context, kind, id string) (*string, error) {
	if r.cache != nil {
		name, ok, err := r.cache.GetName(ctx, kind, id)
		if err != nil {
			r.logger.Warn("读取显示名缓存失败", zap.String("kind", kind), zap.Error(err))
		} else if ok {
			return &name, nil
		}
	}

	name, err := r.fetch(ctx, kind, id)
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetName(ctx, kind, id, name); err != nil {
			r.logger.Warn("写入显示名缓存失败", zap.String("kind", kind), zap.Error(err))
		}
	}
	return &name, nil
}

func (r *nameResolver) fetch(ctx context.Context, kind, id string) (string, error) {
	switch kind {
	case nameKindStudent:
		u, err := r.repo.User.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return u.FullName, nil
	case nameKindInternship:
		p, err := r.repo.Internship.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return p.Title, nil
	}
	return "", pkgerrors.ErrNotFound
}

// nameLookup 单次请求内的解析记忆表
type nameLookup struct {
	r    *nameResolver
	memo map[string]*string
}

func (l *nameLookup) get(ctx context.Context, kind, id string) (*string, error) {
	key := kind + ":" + id
	if v, ok := l.memo[key]; ok {
		return v, nil
	}
	v, err := l.r.resolve(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	l.memo[key] = v
	return v, nil
}

// StudentName 学生姓名；引用失效时返回 nil
func (l *nameLookup) StudentName(ctx context.Context, id string) (*string, error) {
	return l.get(ctx, nameKindStudent, id)
}

// InternshipTitle 实习标题；引用失效时返回 nil
func (l *nameLookup) InternshipTitle(ctx context.Context, id string) (*string, error) {
	return l.get(ctx, nameKindInternship, id)
}

// displayName 把未解析的引用渲染为 "Unknown"
func displayName(name *string) string {
	if name == nil {
		return UnknownName
	}
	return *name
}

// displayNameField 同 displayName，用于按角色才出现的字段
func displayNameField(name *string) *string {
	s := displayName(name)
	return &s
}
