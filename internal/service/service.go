package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/internal/repository"
	"github.com/jung915st/tc-api-example/internal/snapshot"
	"github.com/jung915st/tc-api-example/internal/upstream"
)

// ErrNotSynced 关系库中尚无任何学期资料，需先执行同步
var ErrNotSynced = errors.New("請先同步資料")

// SchoolAPI 校务 API 客户端抽象（*upstream.Client 的可测试切面）
type SchoolAPI interface {
	SemesterSnapshot(ctx context.Context) (*upstream.Snapshot, error)
	SemesterScores(ctx context.Context, year, term, grade, classNo int) ([]upstream.ScoreEntry, error)
}

// Service 所有 Service 的聚合入口
type Service struct {
	Sync    SyncService
	Student StudentService
	Class   ClassService
	Teacher TeacherService
	Score   ScoreService
	Export  ExportService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	api SchoolAPI,
	snapshots *snapshot.Store,
	logger *zap.Logger,
) *Service {
	score := NewScoreService(api, logger)
	return &Service{
		Sync:    NewSyncService(repo, api, snapshots, logger),
		Student: NewStudentService(repo, logger),
		Class:   NewClassService(repo, logger),
		Teacher: NewTeacherService(repo, logger),
		Score:   score,
		Export:  NewExportService(repo, score, logger),
	}
}
