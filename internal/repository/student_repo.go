package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jung915st/tc-api-example/internal/model"
)

// EnrolledRow 编班视角的学生行（students ⋈ enrollments ⋈ classes）
type EnrolledRow struct {
	StudentNo string  `json:"student_no"`
	Name      string  `json:"name"`
	Gender    string  `json:"gender"`
	Grade     int     `json:"grade"`
	ClassName string  `json:"class_name"`
	ClassSeq  int     `json:"class_seq"`
	SeatNo    int     `json:"seat_no"`
}

// StudentRepository 学生数据访问接口
type StudentRepository interface {
	// Upsert 以自然键 student_no 插入或更新，回填 student.ID
	Upsert(ctx context.Context, student *model.Student) error
	// ListEnrolled 列出某学期的编班学生，可按年级/班序过滤
	ListEnrolled(ctx context.Context, semesterID uint, grade, classSeq *int) ([]EnrolledRow, error)
}

type studentRepo struct {
	db *gorm.DB
}

// NewStudentRepo 创建 StudentRepository 实例
func NewStudentRepo(db *gorm.DB) StudentRepository {
	return &studentRepo{db: db}
}

func (r *studentRepo) Upsert(ctx context.Context, student *model.Student) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "student_no"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "eng_name", "gender", "id_hash", "uid", "uid2",
			}),
		}).
		Create(student).Error
	if err != nil {
		return err
	}

	var row model.Student
	if err := r.db.WithContext(ctx).
		Where("student_no = ?", student.StudentNo).
		First(&row).Error; err != nil {
		return err
	}
	student.ID = row.ID

	return nil
}

func (r *studentRepo) ListEnrolled(ctx context.Context, semesterID uint, grade, classSeq *int) ([]EnrolledRow, error) {
	q := r.db.WithContext(ctx).
		Table("students").
		Select(`students.student_no, students.name, students.gender,
			classes.grade, classes.class_name, classes.class_seq,
			enrollments.seat_no`).
		Joins("JOIN enrollments ON enrollments.student_id = students.id").
		Joins("JOIN classes ON classes.id = enrollments.class_id").
		Where("enrollments.semester_id = ?", semesterID)

	if grade != nil {
		q = q.Where("classes.grade = ?", *grade)
	}
	if classSeq != nil {
		q = q.Where("classes.class_seq = ?", *classSeq)
	}

	var rows []EnrolledRow
	err := q.Order("classes.grade ASC, classes.class_seq ASC, enrollments.seat_no ASC").
		Scan(&rows).Error
	return rows, err
}
