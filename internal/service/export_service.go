package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jung915st/tc-api-example/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoScores     = errors.New("該班級無成績資料")
	ErrExportGenerateFail = errors.New("產生匯出檔案失敗")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 成绩表导出为 Excel (.xlsx)，供导师打印留存
//   - 学期行事历导出为 iCalendar (.ics)，含开学日/结业日等学期节点
//   - 均以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ScoreSheet 导出某班学期成绩为 Excel
	ScoreSheet(ctx context.Context, year, term, grade, classNo int) (*bytes.Buffer, string, error)
	// SemesterCalendar 导出最近同步学期的行事历
	SemesterCalendar(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	scores ScoreService
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, scores ScoreService, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, scores: scores, logger: logger}
}

// ScoreSheet 成绩表格式：
//   - 表头：座號 / 學號 / 姓名 + 每科一列（依全班首次出现顺序）
//   - 每个学生一行
func (s *exportService) ScoreSheet(ctx context.Context, year, term, grade, classNo int) (*bytes.Buffer, string, error) {
	resp, err := s.scores.SemesterScores(ctx, year, term, grade, classNo)
	if err != nil {
		return nil, "", err
	}
	if len(resp.Students) == 0 {
		return nil, "", ErrExportNoScores
	}

	// 收集科目列（按首次出现顺序）
	var subjects []string
	subjectSeen := make(map[string]bool)
	for _, stu := range resp.Students {
		for _, sc := range stu.Scores {
			if !subjectSeen[sc.Subject] {
				subjectSeen[sc.Subject] = true
				subjects = append(subjects, sc.Subject)
			}
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "成績表"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 6)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 14)

	// 表头
	f.SetCellValue(sheetName, "A1", "座號")
	f.SetCellValue(sheetName, "B1", "學號")
	f.SetCellValue(sheetName, "C1", "姓名")
	for i, sub := range subjects {
		col, _ := excelize.ColumnNumberToName(4 + i)
		f.SetCellValue(sheetName, fmt.Sprintf("%s1", col), sub)
	}

	// 数据行
	for rowIdx, stu := range resp.Students {
		row := rowIdx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), stu.SeatNo)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), stu.StudentNo)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), stu.Name)

		scoreBySubject := make(map[string]float64, len(stu.Scores))
		for _, sc := range stu.Scores {
			scoreBySubject[sc.Subject] = sc.Score
		}
		for i, sub := range subjects {
			col, _ := excelize.ColumnNumberToName(4 + i)
			if score, ok := scoreBySubject[sub]; ok {
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), score)
			} else {
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), "-")
			}
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("成績表_%d-%d_%d年%d班.xlsx", year, term, grade, classNo)
	return buf, filename, nil
}

// SemesterCalendar 以学期的四个日期节点各生成一个全天事件
func (s *exportService) SemesterCalendar(ctx context.Context) (*bytes.Buffer, string, error) {
	semester, err := s.repo.Semester.GetLatest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotSynced
		}
		s.logger.Error("查询学期失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tc-api//semester-calendar//ZH")

	milestones := []struct {
		date    string
		summary string
	}{
		{semester.StartDate, "學期開始"},
		{semester.OpenDate, "開學日"},
		{semester.CloseDate, "結業日"},
		{semester.EndDate, "學期結束"},
	}

	added := 0
	for i, m := range milestones {
		day, err := time.Parse("2006-01-02", m.date)
		if err != nil {
			// 上游日期字段允许缺漏，跳过无法解析的节点
			continue
		}
		evt := cal.AddEvent(fmt.Sprintf("%d-%d-%d@tc-api", semester.Year, semester.Term, i))
		evt.SetAllDayStartAt(day)
		evt.SetAllDayEndAt(day.AddDate(0, 0, 1))
		evt.SetSummary(fmt.Sprintf("%s（%d 學年第 %d 學期）", m.summary, semester.Year, semester.Term))
		added++
	}

	if added == 0 {
		return nil, "", ErrExportGenerateFail
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("學期行事曆_%d-%d.ics", semester.Year, semester.Term)
	return buf, filename, nil
}
