package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jung915st/tc-api-example/internal/model"
)

// SemesterRepository 学期数据访问接口
type SemesterRepository interface {
	// Upsert 以自然键 (year, term) 插入或整笔更新，回填 semester.ID
	Upsert(ctx context.Context, semester *model.Semester) error
	// GetLatest 取 (year, term) 最大的学期，即最近一次同步的学期
	GetLatest(ctx context.Context) (*model.Semester, error)
	GetByYearTerm(ctx context.Context, year, term int) (*model.Semester, error)
}

type semesterRepo struct {
	db *gorm.DB
}

// NewSemesterRepo 创建 SemesterRepository 实例
func NewSemesterRepo(db *gorm.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

func (r *semesterRepo) Upsert(ctx context.Context, semester *model.Semester) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "year"}, {Name: "term"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"start_date", "end_date", "open_date", "close_date", "updated_at",
			}),
		}).
		Create(semester).Error
	if err != nil {
		return err
	}

	// 冲突走更新分支时 gorm 不回填主键，按自然键补查
	var row model.Semester
	if err := r.db.WithContext(ctx).
		Where("year = ? AND term = ?", semester.Year, semester.Term).
		First(&row).Error; err != nil {
		return err
	}
	semester.ID = row.ID

	return nil
}

func (r *semesterRepo) GetLatest(ctx context.Context) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Order("year DESC, term DESC").
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}

func (r *semesterRepo) GetByYearTerm(ctx context.Context, year, term int) (*model.Semester, error) {
	var semester model.Semester
	err := r.db.WithContext(ctx).
		Where("year = ? AND term = ?", year, term).
		First(&semester).Error
	if err != nil {
		return nil, err
	}
	return &semester, nil
}
