package systems

import (
	"errors"
	"testing"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/ecs"
	"github.com/decker502/quizbattle/pkg/game"
)

const frame = 1.0 / 60

func newTestDirector(t *testing.T, seed int64) *BattleDirector {
	t.Helper()
	tc := newTestController(t, seed, nil)
	if _, err := tc.Restart(); err != nil {
		t.Fatal(err)
	}
	d := NewBattleDirector(ecs.NewEntityManager(), tc, nil)
	if err := d.SelectContentSet(newTestSet(10)); err != nil {
		t.Fatalf("SelectContentSet: %v", err)
	}
	return d
}

// runUntil 逐帧推进直到进入指定阶段，最多 20 秒
func runUntil(t *testing.T, d *BattleDirector, phase components.TurnPhase) {
	t.Helper()
	for i := 0; i < 1200; i++ {
		if d.Controller().Phase() == phase {
			return
		}
		if err := d.Update(frame); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	t.Fatalf("never reached %v, stuck in %v", phase, d.Controller().Phase())
}

func TestBattleDirector_CorrectTurn(t *testing.T) {
	d := newTestDirector(t, 21)
	if d.Playing() == nil || d.Playing().Kind != components.AnimEnemyAdvance {
		t.Fatalf("enemy advance should be playing: %+v", d.Playing())
	}
	if len(d.Cards()) != 4 {
		t.Fatalf("cards = %d", len(d.Cards()))
	}

	runUntil(t, d, components.PhaseAwaitingSelection)
	enemyPos, _ := ecs.GetComponent[*components.PositionComponent](d.entityManager, d.Enemy())
	if enemyPos.X != config.EnemyHomeX {
		t.Errorf("enemy should stand at home, X = %v", enemyPos.X)
	}

	correct := d.Controller().Snapshot().Round.CorrectIndex()
	if err := d.Select(correct); err != nil {
		t.Fatal(err)
	}
	if d.RevealIndex() != correct {
		t.Errorf("RevealIndex = %d", d.RevealIndex())
	}

	runUntil(t, d, components.PhasePlayerRetreating)
	enemy, _ := ecs.GetComponent[*components.ActorComponent](d.entityManager, d.Enemy())
	if enemy.Damage != 1 {
		t.Errorf("enemy should be hit once, damage = %d", enemy.Damage)
	}

	runUntil(t, d, components.PhaseEnemyAdvancing)
	playerPos, _ := ecs.GetComponent[*components.PositionComponent](d.entityManager, d.Player())
	if playerPos.X != config.PlayerHomeX {
		t.Errorf("player should be back home, X = %v", playerPos.X)
	}
	if d.Controller().Snapshot().Session.Stage != 1 {
		t.Error("stage should advance")
	}
}

// TestBattleDirector_Timeout 不操作时倒计时到期，敌人攻击玩家
func TestBattleDirector_Timeout(t *testing.T) {
	d := newTestDirector(t, 22)
	runUntil(t, d, components.PhaseAwaitingSelection)
	runUntil(t, d, components.PhaseEnemyAttacking)

	player, _ := ecs.GetComponent[*components.ActorComponent](d.entityManager, d.Player())
	if player.Damage != 1 || d.Flashes().Intensity(d.Player()) <= 0 {
		t.Errorf("player should flash: %+v", player)
	}
	if d.RevealIndex() != -1 {
		t.Errorf("timeout reveal index = %d", d.RevealIndex())
	}

	runUntil(t, d, components.PhaseEnemyAdvancing)
	if lives := d.Controller().Snapshot().Session.Lives; lives != 2 {
		t.Errorf("lives = %d", lives)
	}
}

func TestBattleDirector_LaserFadesCard(t *testing.T) {
	d := newTestDirector(t, 23)
	d.Controller().session.LasersActive = true
	runUntil(t, d, components.PhaseAwaitingSelection)

	var burned *components.AnswerCardComponent
	for _, id := range d.Cards() {
		card, _ := ecs.GetComponent[*components.AnswerCardComponent](d.entityManager, id)
		if card.Burned {
			burned = card
		}
	}
	if burned == nil {
		t.Fatal("one card should be burned")
	}
	for i := 0; i < 30; i++ {
		d.Update(frame)
	}
	if burned.Alpha != 0 {
		t.Errorf("burned card should fade out, alpha = %v", burned.Alpha)
	}
}

func TestBattleDirector_Restart(t *testing.T) {
	d := newTestDirector(t, 24)
	runUntil(t, d, components.PhaseAwaitingSelection)

	if err := d.Restart(); err != nil {
		t.Fatal(err)
	}
	if len(d.Cards()) != 0 || d.Playing() != nil {
		t.Error("restart should clear cards and animations")
	}
	if d.entityManager.Count() != 2 {
		t.Errorf("only the two actors should remain, got %d", d.entityManager.Count())
	}
	if err := d.Select(0); !errors.Is(err, game.ErrInputNotAccepted) {
		t.Errorf("select after restart: %v", err)
	}
}
