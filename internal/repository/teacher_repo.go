package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jung915st/tc-api-example/internal/model"
)

// HomeroomRow 导师视角的班级关联行（teachers ⋈ class_teachers ⋈ classes）
type HomeroomRow struct {
	TeacherID uint
	UID       int
	UID2      string
	Name      string
	IDHash    *string
	Office    *string
	Title     *string
	Grade     int
	ClassSeq  int
}

// TeacherRepository 教师数据访问接口
type TeacherRepository interface {
	// Upsert 以自然键 (uid, uid2) 插入或更新姓名与身分证编码，回填 teacher.ID
	// 导师来源不触碰 office/title
	Upsert(ctx context.Context, teacher *model.Teacher) error
	// UpsertRoster 名册来源的 upsert，额外落 office/title
	UpsertRoster(ctx context.Context, teacher *model.Teacher) error
	// ListHomeroom 列出某学期全部导师及其班级
	ListHomeroom(ctx context.Context, semesterID uint) ([]HomeroomRow, error)
	// ListRosterMembers 列出名册成员（office/title 非 NULL 即曾出现在名册）
	ListRosterMembers(ctx context.Context) ([]model.Teacher, error)
}

type teacherRepo struct {
	db *gorm.DB
}

// NewTeacherRepo 创建 TeacherRepository 实例
func NewTeacherRepo(db *gorm.DB) TeacherRepository {
	return &teacherRepo{db: db}
}

func (r *teacherRepo) Upsert(ctx context.Context, teacher *model.Teacher) error {
	return r.upsert(ctx, teacher, []string{"name", "id_hash"})
}

func (r *teacherRepo) UpsertRoster(ctx context.Context, teacher *model.Teacher) error {
	return r.upsert(ctx, teacher, []string{"name", "id_hash", "office", "title"})
}

func (r *teacherRepo) upsert(ctx context.Context, teacher *model.Teacher, updates []string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}, {Name: "uid2"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(teacher).Error
	if err != nil {
		return err
	}

	var row model.Teacher
	if err := r.db.WithContext(ctx).
		Where("uid = ? AND uid2 = ?", teacher.UID, teacher.UID2).
		First(&row).Error; err != nil {
		return err
	}
	teacher.ID = row.ID

	return nil
}

func (r *teacherRepo) ListHomeroom(ctx context.Context, semesterID uint) ([]HomeroomRow, error) {
	var rows []HomeroomRow
	err := r.db.WithContext(ctx).
		Table("teachers").
		Select(`teachers.id AS teacher_id, teachers.uid, teachers.uid2, teachers.name,
			teachers.id_hash, teachers.office, teachers.title,
			classes.grade, classes.class_seq`).
		Joins("JOIN class_teachers ON class_teachers.teacher_id = teachers.id").
		Joins("JOIN classes ON classes.id = class_teachers.class_id").
		Where("classes.semester_id = ?", semesterID).
		Order("classes.grade ASC, classes.class_seq ASC, teachers.id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *teacherRepo) ListRosterMembers(ctx context.Context) ([]model.Teacher, error) {
	var teachers []model.Teacher
	err := r.db.WithContext(ctx).
		Where("office IS NOT NULL OR title IS NOT NULL").
		Order("id ASC").
		Find(&teachers).Error
	return teachers, err
}
