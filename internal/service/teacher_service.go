package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jung915st/tc-api-example/internal/dto"
	"github.com/jung915st/tc-api-example/internal/repository"
)

// TeacherService 教师查询业务接口
type TeacherService interface {
	// List 合并导师与教职员名册两个来源，输出最近同步学期的教师记录
	List(ctx context.Context) ([]dto.TeacherRecord, error)
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService 创建 TeacherService 实例
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

// teacherKey / classKey 结构化组合键，避免 "年级-班序" 字符串拼接键的碰撞问题
type teacherKey struct {
	uid  int
	uid2 string
}

type classKey struct {
	grade    int
	classSeq int
}

// mergedTeacher 合并过程中的累积状态
// classOrder 记录班级首次出现顺序，保证输出稳定
type mergedTeacher struct {
	record     dto.TeacherRecord
	classes    map[classKey][]dto.SubjectEntry
	classOrder []classKey
}

func (m *mergedTeacher) ensureClass(k classKey) {
	if _, ok := m.classes[k]; !ok {
		m.classes[k] = []dto.SubjectEntry{}
		m.classOrder = append(m.classOrder, k)
	}
}

func (s *teacherService) List(ctx context.Context) ([]dto.TeacherRecord, error) {
	semester, err := s.repo.Semester.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSynced
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, err
	}

	homerooms, err := s.repo.Teacher.ListHomeroom(ctx, semester.ID)
	if err != nil {
		s.logger.Error("查询导师失败", zap.Error(err))
		return nil, err
	}
	rosterMembers, err := s.repo.Teacher.ListRosterMembers(ctx)
	if err != nil {
		s.logger.Error("查询教职员名册失败", zap.Error(err))
		return nil, err
	}
	assignments, err := s.repo.Assignment.ListBySemester(ctx, semester.ID)
	if err != nil {
		s.logger.Error("查询任教科目失败", zap.Error(err))
		return nil, err
	}

	merged := make(map[teacherKey]*mergedTeacher)
	order := make([]teacherKey, 0)

	ensure := func(k teacherKey, name string) *mergedTeacher {
		if m, ok := merged[k]; ok {
			return m
		}
		m := &mergedTeacher{
			record: dto.TeacherRecord{
				Name: name,
				UID:  k.uid,
				UID2: k.uid2,
			},
			classes: make(map[classKey][]dto.SubjectEntry),
		}
		merged[k] = m
		order = append(order, k)
		return m
	}

	// ① 导师来源：标记 isHomeroom，导师班先占位（科目可能为空）
	for _, row := range homerooms {
		m := ensure(teacherKey{uid: row.UID, uid2: row.UID2}, row.Name)
		m.record.IsHomeroom = true
		m.ensureClass(classKey{grade: row.Grade, classSeq: row.ClassSeq})
	}

	// ② 名册来源：补处室与职称；无任课、无导师班的名册成员也要有输出
	for _, t := range rosterMembers {
		m := ensure(teacherKey{uid: t.UID, uid2: t.UID2}, t.Name)
		if t.Office != nil {
			m.record.Office = *t.Office
		}
		if t.Title != nil {
			m.record.Title = *t.Title
		}
	}

	// ③ 任课来源：按 (年级, 班序) 累加科目
	for _, row := range assignments {
		m := ensure(teacherKey{uid: row.UID, uid2: row.UID2}, row.Name)
		k := classKey{grade: row.Grade, classSeq: row.ClassSeq}
		m.ensureClass(k)
		m.classes[k] = append(m.classes[k], dto.SubjectEntry{
			Subject: row.Subject,
			Hours:   row.Hours,
		})
	}

	result := make([]dto.TeacherRecord, 0, len(order))
	for _, k := range order {
		m := merged[k]
		m.record.Classes = make([]dto.TeacherClass, 0, len(m.classOrder))
		for _, ck := range m.classOrder {
			m.record.Classes = append(m.record.Classes, dto.TeacherClass{
				Grade:    ck.grade,
				ClassSeq: ck.classSeq,
				Subjects: m.classes[ck],
			})
		}
		result = append(result, m.record)
	}

	return result, nil
}
