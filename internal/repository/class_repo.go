package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jung915st/tc-api-example/internal/model"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	// EnsureClass 以自然键 (semester_id, grade, class_seq) 插入，冲突时忽略
	// 同一学期内班名视为不可变；无论新插入或已存在均回填 class.ID
	EnsureClass(ctx context.Context, class *model.Class) error
	// AddTeacher 登记班级导师关联（集合语义，重复忽略）
	AddTeacher(ctx context.Context, classID, teacherID uint) error
	// ListBySemester 按年级、班序列出某学期全部班级
	ListBySemester(ctx context.Context, semesterID uint) ([]model.Class, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) EnsureClass(ctx context.Context, class *model.Class) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "semester_id"}, {Name: "grade"}, {Name: "class_seq"}},
			DoNothing: true,
		}).
		Create(class).Error
	if err != nil {
		return err
	}

	var row model.Class
	if err := r.db.WithContext(ctx).
		Where("semester_id = ? AND grade = ? AND class_seq = ?",
			class.SemesterID, class.Grade, class.ClassSeq).
		First(&row).Error; err != nil {
		return err
	}
	class.ID = row.ID
	class.ClassName = row.ClassName // 冲突忽略时保留库中原班名

	return nil
}

func (r *classRepo) AddTeacher(ctx context.Context, classID, teacherID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.ClassTeacher{ClassID: classID, TeacherID: teacherID}).Error
}

func (r *classRepo) ListBySemester(ctx context.Context, semesterID uint) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.WithContext(ctx).
		Where("semester_id = ?", semesterID).
		Order("grade ASC, class_seq ASC").
		Find(&classes).Error
	return classes, err
}
