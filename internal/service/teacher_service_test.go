package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/internal/model"
	"github.com/jung915st/tc-api-example/internal/repository"
)

func TestTeacherListNotSynced(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewTeacherService(repo, zap.NewNop())

	_, err := svc.List(context.Background())
	if !errors.Is(err, ErrNotSynced) {
		t.Errorf("err = %v, 期望 ErrNotSynced", err)
	}
}

func TestTeacherListHomeroomOnly(t *testing.T) {
	repo, mocks := newMockRepos()
	mocks.semester.latest = &model.Semester{ID: 1, Year: 113, Term: 2}
	mocks.teacher.homerooms = []repository.HomeroomRow{
		{TeacherID: 1, UID: 1001, UID2: "T1001", Name: "陳老師", Grade: 7, ClassSeq: 1},
	}

	svc := NewTeacherService(repo, zap.NewNop())
	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("教师数 = %d, 期望 1", len(records))
	}

	r := records[0]
	if !r.IsHomeroom {
		t.Error("导师 IsHomeroom 应为 true")
	}
	if len(r.Classes) != 1 || r.Classes[0].Grade != 7 || r.Classes[0].ClassSeq != 1 {
		t.Fatalf("导师班级 = %+v", r.Classes)
	}
	// 无任课记录的导师班，科目为空列表而非 nil
	if r.Classes[0].Subjects == nil {
		t.Error("导师班无任课时 Subjects 应为空列表")
	}
}

func TestTeacherListMergesSources(t *testing.T) {
	repo, mocks := newMockRepos()
	mocks.semester.latest = &model.Semester{ID: 1, Year: 113, Term: 2}
	mocks.teacher.homerooms = []repository.HomeroomRow{
		{TeacherID: 1, UID: 1001, UID2: "T1001", Name: "陳老師", Grade: 7, ClassSeq: 1},
	}
	mocks.teacher.roster = []model.Teacher{
		{ID: 1, UID: 1001, UID2: "T1001", Name: "陳老師", Office: strPtr("教務處"), Title: strPtr("教師")},
		{ID: 2, UID: 1002, UID2: "T1002", Name: "黃主任", Office: strPtr("學務處"), Title: strPtr("主任")},
	}
	mocks.assignment.listing = []repository.AssignmentRow{
		{TeacherID: 1, UID: 1001, UID2: "T1001", Name: "陳老師", Grade: 7, ClassSeq: 1, Subject: "國文", Hours: 5},
		{TeacherID: 1, UID: 1001, UID2: "T1001", Name: "陳老師", Grade: 8, ClassSeq: 3, Subject: "國文", Hours: 4},
	}

	svc := NewTeacherService(repo, zap.NewNop())
	records, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("教师数 = %d, 期望 2", len(records))
	}

	// 首位：导师 + 名册 + 任课合并为一条记录
	chen := records[0]
	if chen.Name != "陳老師" || !chen.IsHomeroom {
		t.Errorf("合并记录错误: %+v", chen)
	}
	if chen.Office != "教務處" || chen.Title != "教師" {
		t.Errorf("名册字段未合并: office=%q title=%q", chen.Office, chen.Title)
	}
	if len(chen.Classes) != 2 {
		t.Fatalf("班级数 = %d, 期望 2", len(chen.Classes))
	}
	// 导师班先出现，任课科目挂到同一班级条目上
	if chen.Classes[0].Grade != 7 || chen.Classes[0].ClassSeq != 1 {
		t.Errorf("班级[0] = %+v", chen.Classes[0])
	}
	if len(chen.Classes[0].Subjects) != 1 || chen.Classes[0].Subjects[0].Subject != "國文" {
		t.Errorf("班级[0] 科目 = %+v", chen.Classes[0].Subjects)
	}
	if chen.Classes[1].Grade != 8 || chen.Classes[1].ClassSeq != 3 {
		t.Errorf("班级[1] = %+v", chen.Classes[1])
	}

	// 次位：仅名册成员，无班级也要有输出
	huang := records[1]
	if huang.Name != "黃主任" || huang.IsHomeroom {
		t.Errorf("名册成员记录错误: %+v", huang)
	}
	if huang.Office != "學務處" || huang.Title != "主任" {
		t.Errorf("名册字段错误: office=%q title=%q", huang.Office, huang.Title)
	}
	if len(huang.Classes) != 0 {
		t.Errorf("无任课名册成员班级数 = %d, 期望 0", len(huang.Classes))
	}
}

func TestTeacherListQueryFailure(t *testing.T) {
	repo, mocks := newMockRepos()
	mocks.semester.latest = &model.Semester{ID: 1, Year: 113, Term: 2}
	mocks.teacher.homeroomsErr = errors.New("db 连接中断")

	svc := NewTeacherService(repo, zap.NewNop())
	if _, err := svc.List(context.Background()); err == nil {
		t.Error("查询失败应返回错误")
	}
}
