package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/internal/dto"
	"github.com/jung915st/tc-api-example/internal/model"
	"github.com/jung915st/tc-api-example/internal/repository"
	"github.com/jung915st/tc-api-example/internal/snapshot"
	"github.com/jung915st/tc-api-example/internal/upstream"
)

// StorageError 同步落库失败（约束冲突或 I/O 错误），整个事务已回滚
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("資料落庫失敗: %v", e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// SyncResult 一次同步的摘要
type SyncResult struct {
	SemesterID uint
	Year       int
	Term       int
	Classes    int
}

// SyncService 校务资料同步业务接口
type SyncService interface {
	// SyncSchool 拉取学期快照，写入审计快照文件，并在单一事务内落库
	// 任一笔记录失败时整体回滚，库中保持同步前的状态
	SyncSchool(ctx context.Context) (*SyncResult, error)
	// Status 返回同步状态（是否同步过、最近同步时间）
	Status() *dto.SyncStatusResponse
}

type syncService struct {
	repo      *repository.Repository
	api       SchoolAPI
	snapshots *snapshot.Store
	logger    *zap.Logger
}

// NewSyncService 创建 SyncService 实例
func NewSyncService(repo *repository.Repository, api SchoolAPI, snapshots *snapshot.Store, logger *zap.Logger) SyncService {
	return &syncService{repo: repo, api: api, snapshots: snapshots, logger: logger}
}

func (s *syncService) SyncSchool(ctx context.Context) (*SyncResult, error) {
	snap, err := s.api.SemesterSnapshot(ctx)
	if err != nil {
		s.logger.Error("拉取学期快照失败", zap.Error(err))
		return nil, err
	}

	// 审计留存：原始快照落档，但查询一律走关系库
	if err := s.snapshots.Save(snap); err != nil {
		s.logger.Error("写入审计快照失败", zap.Error(err))
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("开启事务失败", zap.Error(err))
		return nil, &StorageError{Err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	result, err := s.importSnapshot(ctx, txRepo, snap)
	if err != nil {
		tx.Rollback()
		s.logger.Error("同步落库失败，事务已回滚", zap.Error(err))
		return nil, &StorageError{Err: err}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("提交事务失败", zap.Error(err))
		return nil, &StorageError{Err: err}
	}

	s.logger.Info("同步完成",
		zap.Int("year", result.Year),
		zap.Int("term", result.Term),
		zap.Int("classes", result.Classes),
	)

	return result, nil
}

// importSnapshot 在事务内把快照逐笔 upsert 进关系库
// 快照内的出现顺序即处理顺序；全部操作按自然键幂等，顺序只影响先暴露哪个错误
func (s *syncService) importSnapshot(ctx context.Context, repo *repository.Repository, snap *upstream.Snapshot) (*SyncResult, error) {
	semester := &model.Semester{
		Year:      snap.Year,
		Term:      snap.Term,
		StartDate: snap.StartDate,
		EndDate:   snap.EndDate,
		OpenDate:  snap.OpenDate,
		CloseDate: snap.CloseDate,
		UpdatedAt: snap.UpdatedAt,
	}
	if err := repo.Semester.Upsert(ctx, semester); err != nil {
		return nil, fmt.Errorf("学期 upsert 失败: %w", err)
	}

	for _, klass := range snap.Classes {
		class := &model.Class{
			SemesterID: semester.ID,
			Grade:      klass.Grade,
			ClassName:  klass.Name,
			ClassSeq:   klass.Seq,
		}
		if err := repo.Class.EnsureClass(ctx, class); err != nil {
			return nil, fmt.Errorf("班级 %d-%d 写入失败: %w", klass.Grade, klass.Seq, err)
		}

		for _, t := range klass.Homeroom {
			teacher := &model.Teacher{
				UID:    t.UID,
				UID2:   t.UID2,
				Name:   t.Name,
				IDHash: t.IDHash,
			}
			if err := repo.Teacher.Upsert(ctx, teacher); err != nil {
				return nil, fmt.Errorf("导师 %s upsert 失败: %w", t.Name, err)
			}
			if err := repo.Class.AddTeacher(ctx, class.ID, teacher.ID); err != nil {
				return nil, fmt.Errorf("导师关联写入失败: %w", err)
			}
		}

		for _, stu := range klass.Students {
			student := &model.Student{
				StudentNo: stu.StudentNo,
				Name:      stu.Name,
				EngName:   stu.EngName,
				Gender:    stu.Gender,
				IDHash:    stu.IDHash,
				UID:       stu.UID,
				UID2:      stu.UID2,
			}
			if err := repo.Student.Upsert(ctx, student); err != nil {
				return nil, fmt.Errorf("学生 %s upsert 失败: %w", stu.StudentNo, err)
			}

			enrollment := &model.Enrollment{
				SemesterID: semester.ID,
				ClassID:    class.ID,
				StudentID:  student.ID,
				SeatNo:     stu.SeatNo,
			}
			if err := repo.Enrollment.Upsert(ctx, enrollment); err != nil {
				return nil, fmt.Errorf("学生 %s 编班写入失败: %w", stu.StudentNo, err)
			}
		}
	}

	// 教职员名册：office/title 统一落非 NULL 值，作为名册成员标记
	for _, staff := range snap.Staff {
		office := staff.Office
		title := staff.Title
		teacher := &model.Teacher{
			UID:    staff.UID,
			UID2:   staff.UID2,
			Name:   staff.Name,
			IDHash: staff.IDHash,
			Office: &office,
			Title:  &title,
		}
		if err := repo.Teacher.UpsertRoster(ctx, teacher); err != nil {
			return nil, fmt.Errorf("教职员 %s upsert 失败: %w", staff.Name, err)
		}

		for _, sub := range staff.Subjects {
			assignment := &model.TeachingAssignment{
				TeacherID:  teacher.ID,
				SemesterID: semester.ID,
				Grade:      sub.Grade,
				ClassSeq:   sub.ClassSeq,
				Subject:    sub.Subject,
				Hours:      sub.Hours,
			}
			if err := repo.Assignment.Upsert(ctx, assignment); err != nil {
				return nil, fmt.Errorf("任教科目 %s/%s 写入失败: %w", staff.Name, sub.Subject, err)
			}
		}
	}

	return &SyncResult{
		SemesterID: semester.ID,
		Year:       semester.Year,
		Term:       semester.Term,
		Classes:    len(snap.Classes),
	}, nil
}

func (s *syncService) Status() *dto.SyncStatusResponse {
	ts, err := s.snapshots.LastSyncedAt()
	if err != nil {
		if !errors.Is(err, snapshot.ErrNotSynced) {
			s.logger.Warn("读取同步状态失败", zap.Error(err))
		}
		return &dto.SyncStatusResponse{Synced: false}
	}
	return &dto.SyncStatusResponse{
		Synced:       true,
		LastSyncedAt: ts.Format("2006-01-02T15:04:05Z07:00"),
	}
}
