// Package lifecycle 编排整个拜访流程：
// 邀请 → 动画 → 问答 → 奖励 → 告别，以及粘性的拒绝状态。
package lifecycle

import (
	"fmt"
	"log"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SessionState 会话状态
// 拒绝是粘性的：一旦拒绝或走完全程，本会话内不再打扰
type SessionState struct {
	Dismissed   bool   `yaml:"dismissed"`   // 是否已拒绝/完成
	DismissedAt string `yaml:"dismissedAt"` // RFC3339 时间戳
	Completed   bool   `yaml:"completed"`   // 是否走完了全程（而非中途拒绝）
}

// SessionStore 会话状态存储
// gdata 管理器可为 nil（降级模式，状态仅在内存中）
type SessionStore struct {
	gdataManager *gdata.Manager
	state        *SessionState
}

// 存储路径常量
const (
	sessionObject   = "session"
	sessionProperty = "state"
)

// NewSessionStore 创建会话状态存储
//
// 加载失败不是致命错误：回落到空状态继续运行。
func NewSessionStore(gdataManager *gdata.Manager) *SessionStore {
	s := &SessionStore{
		gdataManager: gdataManager,
		state:        &SessionState{},
	}
	if err := s.load(); err != nil {
		log.Printf("[Session] Warning: failed to load session state: %v (starting fresh)", err)
	}
	return s
}

func (s *SessionStore) load() error {
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(sessionObject, sessionProperty) {
		return nil
	}
	data, err := s.gdataManager.LoadObjectProp(sessionObject, sessionProperty)
	if err != nil {
		return fmt.Errorf("failed to load session state: %w", err)
	}
	var loaded SessionState
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	s.state = &loaded
	return nil
}

func (s *SessionStore) save() error {
	if s.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(sessionObject, sessionProperty, data); err != nil {
		return fmt.Errorf("failed to save session state: %w", err)
	}
	return nil
}

// Dismissed 返回本会话是否已拒绝或完成
func (s *SessionStore) Dismissed() bool {
	return s.state.Dismissed
}

// MarkDismissed 记录粘性的拒绝/完成状态
// completed 区分走完全程和中途拒绝
func (s *SessionStore) MarkDismissed(completed bool) {
	s.state.Dismissed = true
	s.state.Completed = completed
	s.state.DismissedAt = time.Now().Format(time.RFC3339)
	if err := s.save(); err != nil {
		log.Printf("[Session] Warning: failed to save session state: %v", err)
	}
}

// Reset 清除会话状态（调试用）
func (s *SessionStore) Reset() {
	s.state = &SessionState{}
	if err := s.save(); err != nil {
		log.Printf("[Session] Warning: failed to reset session state: %v", err)
	}
}
