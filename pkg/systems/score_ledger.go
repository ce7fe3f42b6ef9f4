package systems

import (
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/game"
)

// ScoreLedger 计分
//
// 答对：倍率生效时 +MultiplierCorrectScore，否则 +CorrectScore，连对数 +1。
// 答错或被攻击：倍率生效时 -MultiplierPenalty（分数可以为负），连对数清零。
//
// 连对数只做记录：倍率一旦生效，每次答对都翻倍，不要求连对三次。
type ScoreLedger struct {
	cfg *config.BattleConfig
}

// NewScoreLedger 创建计分器
func NewScoreLedger(cfg *config.BattleConfig) *ScoreLedger {
	return &ScoreLedger{cfg: cfg}
}

// RecordCorrect 记录一次答对，返回本次得分
func (l *ScoreLedger) RecordCorrect(s *game.SessionState) int {
	gained := l.cfg.CorrectScore
	if s.MultiplierActive {
		gained = l.cfg.MultiplierCorrectScore
	}
	s.Score += gained
	s.Streak++
	return gained
}

// RecordMiss 记录一次答错或超时，返回扣除的分数
func (l *ScoreLedger) RecordMiss(s *game.SessionState) int {
	s.Streak = 0
	if !s.MultiplierActive {
		return 0
	}
	s.Score -= l.cfg.MultiplierPenalty
	return l.cfg.MultiplierPenalty
}

// AddBonus 直接加分（score 道具）
func (l *ScoreLedger) AddBonus(s *game.SessionState) {
	s.Score += l.cfg.ScoreBonus
}
