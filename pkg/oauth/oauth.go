// Package oauth 实现对校务 API 的 OAuth2 client-credentials 授权，
// 并在进程内缓存取得的 access token 直到过期。
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/config"
)

// expirySafetyMargin 提前视为过期的安全余量，
// 避免 token 在转发给校务 API 的途中刚好失效
const expirySafetyMargin = 5 * time.Second

// AuthError 取得 token 失败（端点错误或响应格式异常）
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("取得 access token 失败: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// tokenResponse token 端点响应体
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// Manager 单一 token 的进程级缓存
//
// 时钟与 HTTP 客户端均可注入，测试时可用假时钟推进过期、
// 用 httptest 统计实际发出的 token 请求次数。
// 刷新在互斥锁内串行执行：并发调用方在过期瞬间只会触发一次刷新。
type Manager struct {
	cfg        *config.OAuthConfig
	httpClient *http.Client
	now        func() time.Time
	logger     *zap.Logger

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewManager 创建 Manager 实例
func NewManager(cfg *config.OAuthConfig, logger *zap.Logger) *Manager {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Manager{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
		logger:     logger,
	}
}

// NewManagerWith 创建注入时钟与 HTTP 客户端的 Manager（测试用）
func NewManagerWith(cfg *config.OAuthConfig, client *http.Client, now func() time.Time, logger *zap.Logger) *Manager {
	return &Manager{
		cfg:        cfg,
		httpClient: client,
		now:        now,
		logger:     logger,
	}
}

// Token 返回缓存的 access token；缓存缺失或已过期时向 token 端点刷新
func (m *Manager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && m.now().Before(m.expiresAt) {
		return m.token, nil
	}

	token, expiresIn, err := m.requestToken(ctx)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	m.token = token
	m.expiresAt = m.now().Add(time.Duration(expiresIn)*time.Second - expirySafetyMargin)

	m.logger.Info("access token 已刷新", zap.Int("expires_in", expiresIn))

	return m.token, nil
}

// requestToken 执行 client-credentials 授权请求
func (m *Manager) requestToken(ctx context.Context) (string, int, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.cfg.ClientID)
	form.Set("client_secret", m.cfg.ClientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", 0, fmt.Errorf("token 端点返回 %d: %s", resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", 0, fmt.Errorf("token 响应解析失败: %w", err)
	}
	if tr.AccessToken == "" {
		return "", 0, fmt.Errorf("token 响应缺少 access_token")
	}

	return tr.AccessToken, tr.ExpiresIn, nil
}
