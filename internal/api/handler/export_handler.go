package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/jung915st/tc-api-example/internal/service"
	"github.com/jung915st/tc-api-example/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Scores 导出某班学期成绩为 Excel
// GET /api/export/scores?year=113&semester=2&grade=7&class_no=1
func (h *ExportHandler) Scores(c *gin.Context) {
	year, err := requiredIntQuery(c, "year")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	semester, err := requiredIntQuery(c, "semester")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	grade, err := requiredIntQuery(c, "grade")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	classNo, err := requiredIntQuery(c, "class_no")
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	buf, filename, err := h.exportSvc.ScoreSheet(c.Request.Context(), year, semester, grade, classNo)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, contentTypeXLSX, buf.Bytes())
}

// Calendar 导出最近同步学期的行事历
// GET /api/export/calendar
func (h *ExportHandler) Calendar(c *gin.Context) {
	buf, filename, err := h.exportSvc.SemesterCalendar(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeAttachment(c, filename, contentTypeICS, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoScores):
		response.NotFound(c, service.ErrExportNoScores.Error())
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c, service.ErrExportGenerateFail.Error())
	default:
		handleQueryError(c, err)
	}
}

// writeAttachment 设置下载响应头并写入文件内容
func writeAttachment(c *gin.Context, filename, contentType string, data []byte) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, data)
}
