package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jung915st/tc-api-example/internal/service"
	"github.com/jung915st/tc-api-example/pkg/response"
)

// ClassHandler 班级模块 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// Overview 返回年级清单与各年级班级列表
// GET /api/classes
func (h *ClassHandler) Overview(c *gin.Context) {
	overview, err := h.classSvc.Overview(c.Request.Context())
	if err != nil {
		handleQueryError(c, err)
		return
	}

	response.OK(c, overview)
}
