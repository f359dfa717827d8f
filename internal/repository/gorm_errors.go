package repository

import (
	"errors"

	"gorm.io/gorm"

	pkgerrors "internship-web/backend/pkg/errors"
)

// translateGormError 将 GORM 错误翻译为存储层通用错误
// 需要以 gorm.Config{TranslateError: true} 打开连接才能识别唯一约束冲突
func translateGormError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return pkgerrors.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return pkgerrors.ErrDuplicate
	default:
		return err
	}
}

// applyRecordFilter 将 RecordFilter 转为 WHERE 条件
func applyRecordFilter(db *gorm.DB, f RecordFilter) *gorm.DB {
	if f.StudentID != "" {
		db = db.Where("student_id = ?", f.StudentID)
	}
	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	return db
}
