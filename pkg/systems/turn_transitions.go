package systems

import (
	"fmt"

	"github.com/decker502/quizbattle/pkg/components"
)

// 状态转换函数
// 每个 enterXxx 负责进入阶段时的全部状态修改，并返回对应的指令

// setPhase 切换阶段，代数 +1
func (tc *TurnController) setPhase(p components.TurnPhase) {
	from := tc.phase
	tc.phase = p
	tc.generation++
	tc.log.Debug("[TurnController] Phase change",
		"from", from, "to", p, "generation", tc.generation, "stage", tc.session.Stage)
}

// playAnimation 为当前阶段生成动画请求
func (tc *TurnController) playAnimation() components.Command {
	kind, _ := components.AnimationForPhase(tc.phase)
	cmd := components.CmdPlayAnimation{
		Kind:       kind,
		Phase:      tc.phase,
		Generation: tc.generation,
	}
	if tc.lastLayout != nil {
		p := *tc.lastLayout
		cmd.Target = &p
	}
	return cmd
}

// enterEnemyAdvancing 敌人入场，新回合开始
func (tc *TurnController) enterEnemyAdvancing() []components.Command {
	tc.selected = -1
	tc.revealed = false
	tc.setPhase(components.PhaseEnemyAdvancing)
	return []components.Command{tc.playAnimation()}
}

// enterAwaitingSelection 入场结束：激光烧掉一个错误选项，启动倒计时
func (tc *TurnController) enterAwaitingSelection() []components.Command {
	cmds := make([]components.Command, 0, 2)

	if tc.session.LasersActive {
		if target, ok := PickLaserTarget(tc.rng, tc.round, tc.cfg.LaserMaxRetries); ok {
			tc.round.Answers[target].Hidden = true
			cmds = append(cmds, components.CmdHideChoice{Index: target, Reason: components.HideByLaser})
			tc.log.Debug("[TurnController] Laser burned a choice", "index", target)
		}
	}

	tc.setPhase(components.PhaseAwaitingSelection)
	tc.countdown.Arm(&tc.timer, tc.session.DifficultyTimerSeconds, tc.generation)
	cmds = append(cmds, components.CmdArmTimer{
		Seconds:    tc.session.DifficultyTimerSeconds,
		Generation: tc.generation,
	})
	return cmds
}

// resolveSelection 玩家做出选择：冻结输入、记录对错、玩家出击
func (tc *TurnController) resolveSelection(index int) []components.Command {
	tc.countdown.Disarm(&tc.timer)
	correct := tc.round.Answers[index].IsCorrect
	tc.selected = index
	tc.revealed = true
	tc.lastCorrect = correct

	if correct {
		gained := tc.ledger.RecordCorrect(tc.session)
		tc.log.Info("[TurnController] Correct answer",
			"stage", tc.session.Stage, "gained", gained, "score", tc.session.Score, "streak", tc.session.Streak)
	} else {
		tc.log.Info("[TurnController] Wrong answer", "stage", tc.session.Stage, "index", index)
	}

	tc.setPhase(components.PhasePlayerAdvancing)
	return []components.Command{
		components.CmdDisarmTimer{},
		components.CmdRevealAnswers{SelectedIndex: index, Correct: correct},
		tc.playAnimation(),
	}
}

// resolveTimeout 倒计时到期且未选择：跳过玩家出击，敌人直接攻击
func (tc *TurnController) resolveTimeout() []components.Command {
	tc.selected = -1
	tc.revealed = true
	tc.lastCorrect = false
	tc.log.Info("[TurnController] Countdown expired", "stage", tc.session.Stage)

	cmds := []components.Command{
		components.CmdDisarmTimer{},
		components.CmdRevealAnswers{SelectedIndex: -1, Correct: false},
	}
	return append(cmds, tc.enterEnemyAttacking()...)
}

func (tc *TurnController) enterPlayerRetreating() []components.Command {
	tc.setPhase(components.PhasePlayerRetreating)
	return []components.Command{tc.playAnimation()}
}

// finishPlayerTurn 玩家退回：答对则结算本回合，答错则轮到敌人攻击
func (tc *TurnController) finishPlayerTurn() ([]components.Command, error) {
	if !tc.lastCorrect {
		return tc.enterEnemyAttacking(), nil
	}

	tc.round.Answers[tc.selected].Hidden = true
	cmds := []components.Command{
		components.CmdHideChoice{Index: tc.selected, Reason: components.HideAnswered},
	}
	next, err := tc.resolveAfterTurn()
	if err != nil {
		return nil, err
	}
	return append(cmds, next...), nil
}

// enterEnemyAttacking 敌人攻击：扣命、清连对、倍率扣分
// 生命归零时直接进入游戏结束，不再等待攻击动画
func (tc *TurnController) enterEnemyAttacking() []components.Command {
	tc.countdown.Disarm(&tc.timer)
	tc.setPhase(components.PhaseEnemyAttacking)

	penalty := tc.ledger.RecordMiss(tc.session)
	gameOver := tc.lives.LoseLife(tc.session)
	tc.log.Info("[TurnController] Enemy attack",
		"stage", tc.session.Stage, "lives", tc.session.Lives, "penalty", penalty, "score", tc.session.Score)

	if gameOver {
		return tc.enterGameOver()
	}
	return []components.Command{tc.playAnimation()}
}

// resolveAfterTurn 回合结算后：里程碑进入道具选择，否则下一关
func (tc *TurnController) resolveAfterTurn() ([]components.Command, error) {
	if tc.isMilestone() {
		return tc.enterPowerUpOffer(), nil
	}
	return tc.advanceStage()
}

// isMilestone stage > 0 且为里程碑整数倍，且仍有生命
func (tc *TurnController) isMilestone() bool {
	s := tc.session
	return s.Stage > 0 && s.Stage%tc.cfg.Milestone == 0 && s.Lives > 0
}

// advanceStage 关卡 +1，生成新回合，敌人入场
func (tc *TurnController) advanceStage() ([]components.Command, error) {
	round, err := tc.generator.Generate(tc.session.SelectedContentSet, tc.cfg.AnswerCount)
	if err != nil {
		return nil, fmt.Errorf("generate round for stage %d: %w", tc.session.Stage+1, err)
	}
	tc.session.Stage++
	round.Index = tc.session.Stage
	tc.round = round
	return tc.enterEnemyAdvancing(), nil
}

// enterPowerUpOffer 暂停倒计时，提供道具
func (tc *TurnController) enterPowerUpOffer() []components.Command {
	tc.countdown.Disarm(&tc.timer)
	tc.offer = tc.selector.Offer()
	tc.setPhase(components.PhasePowerUpOffer)

	names := PowerUpNames(tc.offer)
	tc.log.Info("[TurnController] Power-up offer", "stage", tc.session.Stage, "offer", names)
	return []components.Command{
		components.CmdDisarmTimer{},
		components.CmdShowPowerUpOffer{Offer: names},
	}
}

// enterGameOver 终止状态，只接受 Restart
func (tc *TurnController) enterGameOver() []components.Command {
	tc.countdown.Disarm(&tc.timer)
	tc.setPhase(components.PhaseGameOver)
	tc.log.Info("[TurnController] Game over",
		"session", tc.session.ID, "score", tc.session.Score, "stage", tc.session.Stage)
	return []components.Command{
		components.CmdDisarmTimer{},
		components.CmdGameOver{FinalScore: tc.session.Score, Stage: tc.session.Stage},
	}
}
