package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jung915st/tc-api-example/internal/model"
)

// AssignmentRow 任课视角的教师行（teaching_assignments ⋈ teachers）
type AssignmentRow struct {
	TeacherID uint
	UID       int
	UID2      string
	Name      string
	Office    *string
	Title     *string
	Grade     int
	ClassSeq  int
	Subject   string
	Hours     int
}

// AssignmentRepository 任教科目数据访问接口
type AssignmentRepository interface {
	// Upsert 以自然键 (teacher_id, semester_id, grade, class_seq, subject) 插入或更新时数
	Upsert(ctx context.Context, assignment *model.TeachingAssignment) error
	// ListBySemester 列出某学期全部任课条目
	ListBySemester(ctx context.Context, semesterID uint) ([]AssignmentRow, error)
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Upsert(ctx context.Context, assignment *model.TeachingAssignment) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "teacher_id"}, {Name: "semester_id"},
				{Name: "grade"}, {Name: "class_seq"}, {Name: "subject"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"hours"}),
		}).
		Create(assignment).Error
}

func (r *assignmentRepo) ListBySemester(ctx context.Context, semesterID uint) ([]AssignmentRow, error) {
	var rows []AssignmentRow
	err := r.db.WithContext(ctx).
		Table("teaching_assignments").
		Select(`teaching_assignments.teacher_id, teachers.uid, teachers.uid2, teachers.name,
			teachers.office, teachers.title,
			teaching_assignments.grade, teaching_assignments.class_seq,
			teaching_assignments.subject, teaching_assignments.hours`).
		Joins("JOIN teachers ON teachers.id = teaching_assignments.teacher_id").
		Where("teaching_assignments.semester_id = ?", semesterID).
		Order("teaching_assignments.teacher_id ASC, teaching_assignments.grade ASC, teaching_assignments.class_seq ASC, teaching_assignments.subject ASC").
		Scan(&rows).Error
	return rows, err
}
