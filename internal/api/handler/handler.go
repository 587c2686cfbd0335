package handler

import "github.com/jung915st/tc-api-example/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Student *StudentHandler
	Class   *ClassHandler
	Teacher *TeacherHandler
	Score   *ScoreHandler
	Sync    *SyncHandler
	Export  *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Student: NewStudentHandler(svc.Student),
		Class:   NewClassHandler(svc.Class),
		Teacher: NewTeacherHandler(svc.Teacher),
		Score:   NewScoreHandler(svc.Score),
		Sync:    NewSyncHandler(svc.Sync),
		Export:  NewExportHandler(svc.Export),
	}
}
