package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/internal/model"
)

func TestClassOverviewNotSynced(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewClassService(repo, zap.NewNop())

	_, err := svc.Overview(context.Background())
	if !errors.Is(err, ErrNotSynced) {
		t.Errorf("err = %v, 期望 ErrNotSynced", err)
	}
}

func TestClassOverview(t *testing.T) {
	repo, mocks := newMockRepos()
	mocks.semester.latest = &model.Semester{ID: 1, Year: 113, Term: 2}
	mocks.class.classes = []model.Class{
		{ID: 1, SemesterID: 1, Grade: 7, ClassName: "七年一班", ClassSeq: 1},
		{ID: 2, SemesterID: 1, Grade: 7, ClassName: "七年二班", ClassSeq: 2},
		{ID: 3, SemesterID: 1, Grade: 8, ClassName: "八年三班", ClassSeq: 3},
	}

	svc := NewClassService(repo, zap.NewNop())
	resp, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview 失败: %v", err)
	}

	if len(resp.Grades) != 2 || resp.Grades[0] != 7 || resp.Grades[1] != 8 {
		t.Errorf("Grades = %v, 期望 [7 8]", resp.Grades)
	}
	if len(resp.Classes[7]) != 2 {
		t.Errorf("七年级班级数 = %d, 期望 2", len(resp.Classes[7]))
	}
	if resp.Classes[7][0].ClassName != "七年一班" || resp.Classes[7][1].ClassSeq != 2 {
		t.Errorf("七年级班级 = %+v", resp.Classes[7])
	}
	if len(resp.Classes[8]) != 1 || resp.Classes[8][0].ClassSeq != 3 {
		t.Errorf("八年级班级 = %+v", resp.Classes[8])
	}
}

func TestClassOverviewEmpty(t *testing.T) {
	repo, mocks := newMockRepos()
	mocks.semester.latest = &model.Semester{ID: 1, Year: 113, Term: 2}

	svc := NewClassService(repo, zap.NewNop())
	resp, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview 失败: %v", err)
	}
	if resp.Grades == nil || len(resp.Grades) != 0 {
		t.Errorf("无班级时 Grades 应为空列表, got %v", resp.Grades)
	}
}
