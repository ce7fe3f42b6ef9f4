package game

import "github.com/decker502/quizbattle/pkg/components"

// Snapshot 状态机对渲染层公开的只读快照
//
// 每次状态变化后发布。回合、道具列表和生命记录都是副本，修改它们不会影响状态机；
// Session.SelectedContentSet 与状态机共享同一个学习集，只能读取。
type Snapshot struct {
	Session    SessionState
	Round      *components.Round
	Phase      components.TurnPhase
	Generation uint64

	// Offer 道具选择阶段提供的道具，其它阶段为空
	Offer []components.PowerUpName

	// SelectedIndex 本回合玩家的选择，未选择或超时为 -1
	SelectedIndex int
	// Revealed 是否已揭晓对错
	Revealed bool
	// LastAnswerCorrect 最近一次结算是否答对
	LastAnswerCorrect bool

	TimerRemaining float64
	TimerDuration  float64
	TimerArmed     bool

	// LastLayout 渲染层最近一次回报的布局坐标
	LastLayout *components.LayoutPoint
}

// IsGameOver 是否处于游戏结束
func (s Snapshot) IsGameOver() bool {
	return s.Phase == components.PhaseGameOver
}
