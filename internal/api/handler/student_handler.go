package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jung915st/tc-api-example/internal/service"
	"github.com/jung915st/tc-api-example/pkg/response"
)

// StudentHandler 学生模块 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List 列出最近同步学期的编班学生
// GET /api/students?grade=7&class_seq=1（两个过滤参数均可选）
func (h *StudentHandler) List(c *gin.Context) {
	grade, err := optionalIntQuery(c, "grade")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	classSeq, err := optionalIntQuery(c, "class_seq")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	students, err := h.studentSvc.List(c.Request.Context(), grade, classSeq)
	if err != nil {
		handleQueryError(c, err)
		return
	}

	response.OK(c, students)
}
