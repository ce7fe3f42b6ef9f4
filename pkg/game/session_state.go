package game

import (
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/google/uuid"
)

// SessionState 一局游戏的全部状态
//
// 只由 TurnController 通过状态转换函数修改；对外只通过 Snapshot 提供副本。
// 生命不会小于 0，分数可以为负。
type SessionState struct {
	ID                     string // 会话 ID，每次开局重新生成
	Score                  int
	Lives                  int
	LivesHistory           []int // 生命轨迹，每个元素是一条命的编号（渲染 key）
	Stage                  int
	DifficultyTimerSeconds float64
	LasersActive           bool
	MultiplierActive       bool
	Streak                 int
	SelectedContentSet     *dataset.ContentSet
}

// NewSessionState 按配置创建初始状态
func NewSessionState(cfg *config.BattleConfig) *SessionState {
	s := &SessionState{}
	s.Reset(cfg)
	return s
}

// Reset 恢复为初始值（开局前的选集状态）
func (s *SessionState) Reset(cfg *config.BattleConfig) {
	*s = SessionState{
		Lives:                  cfg.StartingLives,
		LivesHistory:           make([]int, cfg.StartingLives),
		DifficultyTimerSeconds: cfg.BaseTimerSeconds,
	}
	for i := range s.LivesHistory {
		s.LivesHistory[i] = i + 1
	}
}

// Begin 以选定的学习集开局，生成新的会话 ID
func (s *SessionState) Begin(cfg *config.BattleConfig, set *dataset.ContentSet) {
	s.Reset(cfg)
	s.ID = uuid.New().String()
	s.SelectedContentSet = set
}

// Clone 返回副本，LivesHistory 不与原状态共享；SelectedContentSet 指向同一个只读学习集
func (s *SessionState) Clone() SessionState {
	out := *s
	out.LivesHistory = append([]int(nil), s.LivesHistory...)
	return out
}
