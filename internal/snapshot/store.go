// Package snapshot 保存同步时拉取的原始学期快照。
// 快照文件仅作审计留存，查询读取路径一律走关系库（单一事实来源）。
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung915st/tc-api-example/internal/upstream"
)

// ErrNotSynced 尚未执行过任何同步，快照文件不存在
var ErrNotSynced = errors.New("尚未同步資料")

// Store 快照文件存取
type Store struct {
	path string
}

// NewStore 创建 Store 实例
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save 将快照写入文件
// 先写临时文件再改名，避免同步中途失败留下半截 JSON
func (s *Store) Save(snap *upstream.Snapshot) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建快照目录失败: %w", err)
		}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("快照序列化失败: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("写入快照临时文件失败: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("快照改名失败: %w", err)
	}

	return nil
}

// Load 读取快照；文件不存在时返回 ErrNotSynced
func (s *Store) Load() (*upstream.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotSynced
		}
		return nil, fmt.Errorf("读取快照失败: %w", err)
	}

	var snap upstream.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("快照解析失败: %w", err)
	}

	return &snap, nil
}

// LastSyncedAt 返回最近一次同步时间（快照文件修改时间）
// 从未同步过时返回 ErrNotSynced
func (s *Store) LastSyncedAt() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, ErrNotSynced
		}
		return time.Time{}, fmt.Errorf("读取快照信息失败: %w", err)
	}
	return info.ModTime(), nil
}
