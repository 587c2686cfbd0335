package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jung915st/tc-api-example/internal/service"
	"github.com/jung915st/tc-api-example/pkg/response"
)

// SyncHandler 校务资料同步 HTTP 处理器
type SyncHandler struct {
	syncSvc service.SyncService
}

// NewSyncHandler 创建 SyncHandler
func NewSyncHandler(syncSvc service.SyncService) *SyncHandler {
	return &SyncHandler{syncSvc: syncSvc}
}

// SyncSchool 触发一次完整同步
// POST /api/sync-school
func (h *SyncHandler) SyncSchool(c *gin.Context) {
	result, err := h.syncSvc.SyncSchool(c.Request.Context())
	if err != nil {
		var storageErr *service.StorageError
		if errors.As(err, &storageErr) {
			response.SyncFail(c, http.StatusInternalServerError, "同步失敗，資料已回滾", err.Error())
			return
		}
		response.SyncFail(c, http.StatusBadGateway, "同步失敗，無法取得校務資料", err.Error())
		return
	}

	response.SyncOK(c, fmt.Sprintf("同步完成：%d 學年第 %d 學期，共 %d 個班級",
		result.Year, result.Term, result.Classes))
}

// Status 返回同步状态
// GET /api/sync-school/status
func (h *SyncHandler) Status(c *gin.Context) {
	response.OK(c, h.syncSvc.Status())
}
