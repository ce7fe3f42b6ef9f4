package components

import "fmt"

// TurnPhase 回合状态机的阶段
//
// 同一时刻只有一个阶段和一个回合处于活动状态。
// PhaseSelectingContent 是开局前的选集状态，不属于回合循环。
type TurnPhase int

const (
	PhaseSelectingContent TurnPhase = iota
	PhaseEnemyAdvancing
	PhaseAwaitingSelection
	PhasePlayerAdvancing
	PhasePlayerRetreating
	PhaseEnemyAttacking
	PhasePowerUpOffer
	PhaseGameOver
)

var phaseNames = map[TurnPhase]string{
	PhaseSelectingContent:  "SelectingContent",
	PhaseEnemyAdvancing:    "EnemyAdvancing",
	PhaseAwaitingSelection: "AwaitingSelection",
	PhasePlayerAdvancing:   "PlayerAdvancing",
	PhasePlayerRetreating:  "PlayerRetreating",
	PhaseEnemyAttacking:    "EnemyAttacking",
	PhasePowerUpOffer:      "PowerUpOffer",
	PhaseGameOver:          "GameOver",
}

func (p TurnPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("TurnPhase(%d)", int(p))
}

// AnimationKind 状态机向渲染层请求的动画
type AnimationKind int

const (
	AnimEnemyAdvance AnimationKind = iota
	AnimPlayerAdvance
	AnimPlayerRetreat
	AnimEnemyAttack
)

func (k AnimationKind) String() string {
	switch k {
	case AnimEnemyAdvance:
		return "EnemyAdvance"
	case AnimPlayerAdvance:
		return "PlayerAdvance"
	case AnimPlayerRetreat:
		return "PlayerRetreat"
	case AnimEnemyAttack:
		return "EnemyAttack"
	default:
		return fmt.Sprintf("AnimationKind(%d)", int(k))
	}
}

// AnimationForPhase 返回阶段对应的动画
// 只有这些阶段会挂起等待渲染层的动画完成回报
func AnimationForPhase(p TurnPhase) (AnimationKind, bool) {
	switch p {
	case PhaseEnemyAdvancing:
		return AnimEnemyAdvance, true
	case PhasePlayerAdvancing:
		return AnimPlayerAdvance, true
	case PhasePlayerRetreating:
		return AnimPlayerRetreat, true
	case PhaseEnemyAttacking:
		return AnimEnemyAttack, true
	default:
		return 0, false
	}
}

// LayoutPoint 渲染层回报的布局坐标
type LayoutPoint struct {
	X, Y float64
}

// AnimationAck 渲染层的动画完成回报
// Phase 和 Generation 必须与状态机当前值一致，否则视为过期回报被忽略
type AnimationAck struct {
	Phase      TurnPhase
	Generation uint64
	Layout     *LayoutPoint // 可选：动画结束时角色的位置
}
