// Package upstream 封装对校务 API 的访问：学期快照与学期成绩两个端点。
// 认证统一走 pkg/oauth 的 client-credentials token 缓存；
// 非 2xx 响应与网络错误原样上抛（重试策略由调用方决定）。
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/jung915st/tc-api-example/config"
	"github.com/jung915st/tc-api-example/pkg/oauth"
)

// Error 校务 API 调用失败（非 2xx 或响应体无法解析）
type Error struct {
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("校務 API 回傳 %d: %s", e.Status, e.Body)
}

// Client 校务 API 客户端
type Client struct {
	apiURL     string
	httpClient *http.Client
	tokens     *oauth.Manager
	logger     *zap.Logger
}

// NewClient 创建 Client 实例
func NewClient(cfg *config.SchoolConfig, tokens *oauth.Manager, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		apiURL:     cfg.APIURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger,
	}
}

// NewClientWith 创建注入 HTTP 客户端的 Client（测试用）
func NewClientWith(apiURL string, httpClient *http.Client, tokens *oauth.Manager, logger *zap.Logger) *Client {
	return &Client{
		apiURL:     apiURL,
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// SemesterSnapshot 拉取完整学期快照（编班 + 教职员名册）
func (c *Client) SemesterSnapshot(ctx context.Context) (*Snapshot, error) {
	body, err := c.do(ctx, http.MethodGet, c.apiURL+"/semester-data", nil)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &Error{Status: http.StatusOK, Body: fmt.Sprintf("快照解析失败: %v", err)}
	}

	c.logger.Info("学期快照拉取完成",
		zap.Int("year", env.Students.Year),
		zap.Int("term", env.Students.Term),
		zap.Int("classes", len(env.Students.Classes)),
		zap.Int("staff", len(env.Students.Staff)),
	)

	return &env.Students, nil
}

// SemesterScores 拉取某班的学期成绩
// 上游以「学生序号 → 成绩记录」的对象形态回传，这里按序号升序转为切片
func (c *Client) SemesterScores(ctx context.Context, year, term, grade, classNo int) ([]ScoreEntry, error) {
	payload, err := json.Marshal(map[string]int{
		"year":     year,
		"semester": term,
		"grade":    grade,
		"class_no": classNo,
	})
	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, c.apiURL+"/score-semester", payload)
	if err != nil {
		return nil, err
	}

	var keyed map[string]ScoreEntry
	if err := json.Unmarshal(body, &keyed); err != nil {
		return nil, &Error{Status: http.StatusOK, Body: fmt.Sprintf("成绩响应解析失败: %v", err)}
	}

	keys := make([]string, 0, len(keyed))
	for k := range keyed {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})

	entries := make([]ScoreEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, keyed[k])
	}

	return entries, nil
}

// do 附带 Bearer token 执行请求并读取响应体
func (c *Client) do(ctx context.Context, method, url string, payload []byte) ([]byte, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
