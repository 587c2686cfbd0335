package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jung915st/tc-api-example/internal/service"
	"github.com/jung915st/tc-api-example/internal/upstream"
	"github.com/jung915st/tc-api-example/pkg/oauth"
	"github.com/jung915st/tc-api-example/pkg/response"
)

// optionalIntQuery 读取可选整数查询参数；未传返回 nil
func optionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s 參數格式錯誤", name)
	}
	return &n, nil
}

// requiredIntQuery 读取必填整数查询参数
func requiredIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, fmt.Errorf("%s 參數不能為空", name)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s 參數格式錯誤", name)
	}
	return n, nil
}

// handleQueryError 查询类接口的统一错误映射
// 未同步 → 404；上游/认证失败 → 502；其余 → 500
// 内部管理工具：错误明细直接透出便于运维诊断
func handleQueryError(c *gin.Context, err error) {
	var authErr *oauth.AuthError
	var upErr *upstream.Error

	switch {
	case errors.Is(err, service.ErrNotSynced):
		response.NotFound(c, service.ErrNotSynced.Error())
	case errors.As(err, &authErr):
		response.Error(c, http.StatusBadGateway, err.Error())
	case errors.As(err, &upErr):
		response.Error(c, http.StatusBadGateway, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
