package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jung915st/tc-api-example/internal/model"
)

// EnrollmentRepository 编班数据访问接口
type EnrollmentRepository interface {
	// Upsert 以自然键 (semester_id, class_id, student_id) 插入或仅更新座号
	// 同班同学期座号重复会触发 UNIQUE 约束错误，由调用方中止事务
	Upsert(ctx context.Context, enrollment *model.Enrollment) error
	// CountBySemester 统计某学期编班笔数（幂等性校验用）
	CountBySemester(ctx context.Context, semesterID uint) (int64, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Upsert(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "semester_id"}, {Name: "class_id"}, {Name: "student_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"seat_no"}),
		}).
		Create(enrollment).Error
}

func (r *enrollmentRepo) CountBySemester(ctx context.Context, semesterID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("semester_id = ?", semesterID).
		Count(&count).Error
	return count, err
}
