package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jung915st/tc-api-example/internal/dto"
	"github.com/jung915st/tc-api-example/internal/repository"
)

// StudentService 学生查询业务接口
type StudentService interface {
	// List 列出最近同步学期的编班学生，grade / classSeq 为可选过滤条件
	List(ctx context.Context, grade, classSeq *int) ([]dto.StudentRow, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) List(ctx context.Context, grade, classSeq *int) ([]dto.StudentRow, error) {
	semester, err := s.repo.Semester.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSynced
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}

	rows, err := s.repo.Student.ListEnrolled(ctx, semester.ID, grade, classSeq)
	if err != nil {
		s.logger.Error("查询编班学生失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StudentRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.StudentRow{
			StudentNo: row.StudentNo,
			Name:      row.Name,
			Gender:    row.Gender,
			Grade:     row.Grade,
			ClassName: row.ClassName,
			ClassSeq:  row.ClassSeq,
			SeatNo:    row.SeatNo,
		})
	}

	return result, nil
}
