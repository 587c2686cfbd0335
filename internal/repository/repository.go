package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db *gorm.DB

	Semester   SemesterRepository
	Teacher    TeacherRepository
	Student    StudentRepository
	Class      ClassRepository
	Enrollment EnrollmentRepository
	Assignment AssignmentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:         db,
		Semester:   NewSemesterRepo(db),
		Teacher:    NewTeacherRepo(db),
		Student:    NewStudentRepo(db),
		Class:      NewClassRepo(db),
		Enrollment: NewEnrollmentRepo(db),
		Assignment: NewAssignmentRepo(db),
	}
}

// BeginTx 开启事务，返回事务句柄
func (r *Repository) BeginTx(ctx context.Context) (*gorm.DB, error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// WithTx 返回绑定到指定事务的 Repository 副本
// 同步管线在一个事务内完成全部 upsert，任一失败整体回滚
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
