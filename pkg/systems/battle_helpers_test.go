package systems

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
)

// newTestSet 创建 n 张纯文本卡的学习集
func newTestSet(n int) *dataset.ContentSet {
	set := &dataset.ContentSet{Title: fmt.Sprintf("test-%d", n)}
	for i := 0; i < n; i++ {
		set.Items = append(set.Items, dataset.StudiableItem{
			ID: fmt.Sprintf("item-%d", i),
			Sides: [2]dataset.CardSide{
				{Media: []dataset.Media{{Kind: dataset.MediaText, Value: fmt.Sprintf("term %d", i)}}},
				{Media: []dataset.Media{{Kind: dataset.MediaText, Value: fmt.Sprintf("definition %d", i)}}},
			},
		})
	}
	return set
}

// newTestController 创建已开局、处于敌人入场阶段的状态机
func newTestController(t *testing.T, seed int64, mutate func(cfg *config.BattleConfig)) *TurnController {
	t.Helper()
	cfg := config.DefaultBattleConfig()
	if mutate != nil {
		mutate(cfg)
	}
	tc := NewTurnController(TurnControllerOptions{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	if _, err := tc.SelectContentSet(newTestSet(10)); err != nil {
		t.Fatalf("SelectContentSet failed: %v", err)
	}
	return tc
}

// ack 回报当前阶段的动画完成
func ack(t *testing.T, tc *TurnController) []components.Command {
	t.Helper()
	cmds, err := tc.AnimationComplete(components.AnimationAck{Phase: tc.Phase(), Generation: tc.Generation()})
	if err != nil {
		t.Fatalf("AnimationComplete(%v) failed: %v", tc.Phase(), err)
	}
	return cmds
}

// toAwaiting 从敌人入场推进到等待选择
func toAwaiting(t *testing.T, tc *TurnController) {
	t.Helper()
	if tc.Phase() != components.PhaseEnemyAdvancing {
		t.Fatalf("expected EnemyAdvancing, got %v", tc.Phase())
	}
	ack(t, tc)
	if tc.Phase() != components.PhaseAwaitingSelection {
		t.Fatalf("expected AwaitingSelection, got %v", tc.Phase())
	}
}

// wrongIndex 返回任意一个错误选项下标
func wrongIndex(tc *TurnController) int {
	for i, a := range tc.round.Answers {
		if !a.IsCorrect {
			return i
		}
	}
	return -1
}

// playTurn 完整走完一个回合：入场 -> 选择 -> 出击 -> 退回 -> （答错时）敌人攻击
// 结束时处于 EnemyAdvancing、PowerUpOffer 或 GameOver
func playTurn(t *testing.T, tc *TurnController, correct bool) {
	t.Helper()
	toAwaiting(t, tc)

	index := tc.round.CorrectIndex()
	if !correct {
		index = wrongIndex(tc)
	}
	if _, err := tc.Select(index); err != nil {
		t.Fatalf("Select(%d) failed: %v", index, err)
	}
	ack(t, tc) // PlayerAdvancing -> PlayerRetreating
	ack(t, tc) // PlayerRetreating -> ...
	if tc.Phase() == components.PhaseEnemyAttacking {
		ack(t, tc)
	}
}

// timeoutTurn 入场后让倒计时到期
func timeoutTurn(t *testing.T, tc *TurnController) {
	t.Helper()
	toAwaiting(t, tc)
	if _, err := tc.Update(tc.session.DifficultyTimerSeconds + 0.1); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if tc.Phase() == components.PhaseEnemyAttacking {
		ack(t, tc)
	}
}

// hasCommand 指令列表中是否包含类型 T
func hasCommand[T components.Command](cmds []components.Command) (T, bool) {
	for _, c := range cmds {
		if v, ok := c.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}
