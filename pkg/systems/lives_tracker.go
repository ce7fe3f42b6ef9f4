package systems

import "github.com/decker502/quizbattle/pkg/game"

// LivesTracker 生命与生命轨迹
//
// 失去生命时从轨迹头部（最早的一条）移除，获得生命时在尾部追加新编号。
// 生命为 0 的那一刻即判定游戏结束。
type LivesTracker struct{}

// NewLivesTracker 创建生命追踪器
func NewLivesTracker() *LivesTracker {
	return &LivesTracker{}
}

// LoseLife 扣一条命，返回是否因此游戏结束
func (t *LivesTracker) LoseLife(s *game.SessionState) bool {
	if s.Lives > 0 {
		s.Lives--
	}
	if len(s.LivesHistory) > 0 {
		s.LivesHistory = s.LivesHistory[1:]
	}
	return s.Lives == 0
}

// GainLife 加一条命
func (t *LivesTracker) GainLife(s *game.SessionState) {
	s.Lives++
	next := 1
	if n := len(s.LivesHistory); n > 0 {
		next = s.LivesHistory[n-1] + 1
	}
	s.LivesHistory = append(s.LivesHistory, next)
}

// IsGameOver 生命是否耗尽
func (t *LivesTracker) IsGameOver(s *game.SessionState) bool {
	return s.Lives == 0
}
