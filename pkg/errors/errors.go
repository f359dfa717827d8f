package errors

import "errors"

// 存储层通用错误，各后端实现需将驱动自身的错误翻译为以下哨兵错误

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("记录不存在")

// ErrDuplicate 违反唯一约束（用户名重复、重复申请等）
var ErrDuplicate = errors.New("记录已存在")
