package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jung915st/tc-api-example/internal/dto"
	"github.com/jung915st/tc-api-example/internal/service"
	"github.com/jung915st/tc-api-example/pkg/response"
)

// ScoreHandler 学期成绩模块 HTTP 处理器
type ScoreHandler struct {
	scoreSvc service.ScoreService
}

// NewScoreHandler 创建 ScoreHandler
func NewScoreHandler(scoreSvc service.ScoreService) *ScoreHandler {
	return &ScoreHandler{scoreSvc: scoreSvc}
}

// CurrentSemester 依服务器时钟推导当前学年与学期
// GET /api/scores/current-semester
func (h *ScoreHandler) CurrentSemester(c *gin.Context) {
	response.OK(c, h.scoreSvc.Current())
}

// SemesterScores 查询某班学期成绩
// POST /api/scores/semester {year, semester, grade, class_no}
// 缺漏字段在 400 响应中逐一列出
func (h *ScoreHandler) SemesterScores(c *gin.Context) {
	var req dto.SemesterScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "請求格式錯誤")
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		response.BadRequest(c, "缺少必填欄位: "+strings.Join(missing, ", "))
		return
	}

	scores, err := h.scoreSvc.SemesterScores(c.Request.Context(),
		*req.Year, *req.Semester, *req.Grade, *req.ClassNo)
	if err != nil {
		handleQueryError(c, err)
		return
	}

	response.OK(c, scores)
}
