package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/internal/model"
	"github.com/jung915st/tc-api-example/internal/repository"
)

func intPtr(n int) *int { return &n }

func TestStudentListNotSynced(t *testing.T) {
	repo, _ := newMockRepos()
	svc := NewStudentService(repo, zap.NewNop())

	_, err := svc.List(context.Background(), nil, nil)
	if !errors.Is(err, ErrNotSynced) {
		t.Errorf("err = %v, 期望 ErrNotSynced", err)
	}
}

func TestStudentList(t *testing.T) {
	repo, mocks := newMockRepos()
	mocks.semester.latest = &model.Semester{ID: 1, Year: 113, Term: 2}
	mocks.student.enrolled = []repository.EnrolledRow{
		{StudentNo: "S001", Name: "王小明", Gender: "男", Grade: 7, ClassName: "七年一班", ClassSeq: 1, SeatNo: 1},
		{StudentNo: "S002", Name: "李小華", Gender: "女", Grade: 7, ClassName: "七年一班", ClassSeq: 1, SeatNo: 2},
		{StudentNo: "S101", Name: "張大同", Gender: "男", Grade: 8, ClassName: "八年三班", ClassSeq: 3, SeatNo: 1},
	}

	svc := NewStudentService(repo, zap.NewNop())

	all, err := svc.List(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("无过滤学生数 = %d, 期望 3", len(all))
	}
	if all[0].StudentNo != "S001" || all[0].ClassName != "七年一班" || all[0].SeatNo != 1 {
		t.Errorf("转换错误: %+v", all[0])
	}

	grade8, err := svc.List(context.Background(), intPtr(8), nil)
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(grade8) != 1 || grade8[0].StudentNo != "S101" {
		t.Errorf("年级过滤结果 = %+v", grade8)
	}

	none, err := svc.List(context.Background(), intPtr(7), intPtr(9))
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("无匹配时应返回空列表, got %d 筆", len(none))
	}
	if none == nil {
		t.Error("空结果应为空列表而非 nil")
	}
}

func TestStudentListQueryFailure(t *testing.T) {
	repo, mocks := newMockRepos()
	mocks.semester.latest = &model.Semester{ID: 1, Year: 113, Term: 2}
	mocks.student.listErr = errors.New("db 连接中断")

	svc := NewStudentService(repo, zap.NewNop())
	if _, err := svc.List(context.Background(), nil, nil); err == nil {
		t.Error("查询失败应返回错误")
	}
}
