package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jung915st/tc-api-example/internal/dto"
	"github.com/jung915st/tc-api-example/internal/repository"
)

// ClassService 班级查询业务接口
type ClassService interface {
	// Overview 返回最近同步学期的年级清单与各年级班级列表
	Overview(ctx context.Context) (*dto.ClassesResponse, error)
}

type classService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, logger *zap.Logger) ClassService {
	return &classService{repo: repo, logger: logger}
}

func (s *classService) Overview(ctx context.Context) (*dto.ClassesResponse, error) {
	semester, err := s.repo.Semester.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSynced
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}

	classes, err := s.repo.Class.ListBySemester(ctx, semester.ID)
	if err != nil {
		s.logger.Error("查询班级失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.ClassesResponse{
		Grades:  make([]int, 0),
		Classes: make(map[int][]dto.ClassBrief),
	}
	for _, c := range classes {
		if _, ok := resp.Classes[c.Grade]; !ok {
			resp.Grades = append(resp.Grades, c.Grade)
		}
		resp.Classes[c.Grade] = append(resp.Classes[c.Grade], dto.ClassBrief{
			ClassSeq:  c.ClassSeq,
			ClassName: c.ClassName,
		})
	}

	return resp, nil
}
