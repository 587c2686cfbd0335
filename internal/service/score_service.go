package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/internal/dto"
	"github.com/jung915st/tc-api-example/internal/upstream"
)

// ScoreService 学期成绩业务接口
type ScoreService interface {
	// SemesterScores 拉取并归一某班的学期成绩
	SemesterScores(ctx context.Context, year, term, grade, classNo int) (*dto.SemesterScoresResponse, error)
	// Current 依时钟推导当前学年与学期，纯函数、无 I/O
	Current() *dto.CurrentSemesterResponse
}

type scoreService struct {
	api    SchoolAPI
	now    func() time.Time
	logger *zap.Logger
}

// NewScoreService 创建 ScoreService 实例
func NewScoreService(api SchoolAPI, logger *zap.Logger) ScoreService {
	return &scoreService{api: api, now: time.Now, logger: logger}
}

// NewScoreServiceWithClock 创建注入时钟的 ScoreService（测试用）
func NewScoreServiceWithClock(api SchoolAPI, now func() time.Time, logger *zap.Logger) ScoreService {
	return &scoreService{api: api, now: now, logger: logger}
}

func (s *scoreService) SemesterScores(ctx context.Context, year, term, grade, classNo int) (*dto.SemesterScoresResponse, error) {
	entries, err := s.api.SemesterScores(ctx, year, term, grade, classNo)
	if err != nil {
		s.logger.Error("拉取学期成绩失败",
			zap.Int("year", year), zap.Int("term", term),
			zap.Int("grade", grade), zap.Int("class_no", classNo),
			zap.Error(err),
		)
		return nil, err
	}

	students := make([]dto.ScoreStudent, 0, len(entries))
	for _, e := range entries {
		student := dto.ScoreStudent{
			SeatNo:    e.SeatNo,
			StudentNo: e.StudentNo,
			Name:      e.Name,
			Scores:    flattenScores(e.Categories),
		}
		students = append(students, student)
	}

	return &dto.SemesterScoresResponse{Students: students}, nil
}

// flattenScores 把「分类 → 科目 → 分数」两层嵌套摊平成单层科目列表
// 分类与科目按键名排序，保证输出稳定
func flattenScores(categories map[string]map[string]upstream.ScoreValue) []dto.SubjectScore {
	scores := make([]dto.SubjectScore, 0)

	catNames := make([]string, 0, len(categories))
	for name := range categories {
		catNames = append(catNames, name)
	}
	sort.Strings(catNames)

	for _, cat := range catNames {
		subjects := categories[cat]
		subNames := make([]string, 0, len(subjects))
		for name := range subjects {
			subNames = append(subNames, name)
		}
		sort.Strings(subNames)

		for _, sub := range subNames {
			scores = append(scores, dto.SubjectScore{
				Subject: sub,
				Score:   float64(subjects[sub]),
			})
		}
	}

	return scores
}

// Current 当前学期推导
// 民国纪年（公历 − 1911）；8 月起为第 1 学期，2–7 月为第 2 学期，
// 1 月仍属前一学年的第 1 学期
func (s *scoreService) Current() *dto.CurrentSemesterResponse {
	now := s.now()
	year := now.Year() - 1911
	month := int(now.Month())

	term := 1
	switch {
	case month >= 2 && month <= 7:
		term = 2
	case month >= 8:
		term = 1
	default: // 1 月
		year--
	}

	return &dto.CurrentSemesterResponse{Year: year, Semester: term}
}
