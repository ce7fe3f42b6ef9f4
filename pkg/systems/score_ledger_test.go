package systems

import (
	"testing"

	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/game"
)

func TestScoreLedger(t *testing.T) {
	cfg := config.DefaultBattleConfig()
	ledger := NewScoreLedger(cfg)

	tests := []struct {
		name       string
		multiplier bool
		actions    []bool // true = 答对
		wantScore  int
		wantStreak int
	}{
		{"无倍率 3 对 2 错", false, []bool{true, false, true, true, false}, 300, 0},
		{"倍率一对一错归零", true, []bool{true, false}, 0, 0},
		{"倍率连对", true, []bool{true, true, true}, 600, 3},
		{"倍率只错，分数为负", true, []bool{false, false}, -400, 0},
		{"无倍率答错不扣分", false, []bool{false}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := game.NewSessionState(cfg)
			s.MultiplierActive = tt.multiplier
			for _, correct := range tt.actions {
				if correct {
					ledger.RecordCorrect(s)
				} else {
					ledger.RecordMiss(s)
				}
			}
			if s.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", s.Score, tt.wantScore)
			}
			if s.Streak != tt.wantStreak {
				t.Errorf("Streak = %d, want %d", s.Streak, tt.wantStreak)
			}
		})
	}
}

func TestScoreLedger_AddBonus(t *testing.T) {
	cfg := config.DefaultBattleConfig()
	s := game.NewSessionState(cfg)
	NewScoreLedger(cfg).AddBonus(s)
	if s.Score != 200 {
		t.Errorf("Score = %d, want 200", s.Score)
	}
}

// TestLivesTracker 生命不会小于 0，归零的那一刻判定结束
func TestLivesTracker(t *testing.T) {
	s := game.NewSessionState(config.DefaultBattleConfig())
	tracker := NewLivesTracker()

	if tracker.LoseLife(s) {
		t.Fatal("game should not be over with 2 lives left")
	}
	if s.Lives != 2 || len(s.LivesHistory) != 2 {
		t.Fatalf("lives=%d history=%v", s.Lives, s.LivesHistory)
	}
	// 最早的一条先被移除
	if s.LivesHistory[0] != 2 {
		t.Errorf("oldest life should be removed first, history=%v", s.LivesHistory)
	}

	tracker.GainLife(s)
	if s.Lives != 3 || s.LivesHistory[len(s.LivesHistory)-1] != 4 {
		t.Errorf("GainLife should append a new token, history=%v", s.LivesHistory)
	}

	tracker.LoseLife(s)
	tracker.LoseLife(s)
	if !tracker.LoseLife(s) {
		t.Fatal("losing the last life should end the game")
	}
	if !tracker.IsGameOver(s) {
		t.Error("IsGameOver should be true")
	}

	tracker.LoseLife(s)
	if s.Lives != 0 {
		t.Errorf("lives must not go below 0, got %d", s.Lives)
	}
	if len(s.LivesHistory) != 0 {
		t.Errorf("history should be empty, got %v", s.LivesHistory)
	}

	tracker.GainLife(s)
	if s.LivesHistory[0] != 1 {
		t.Errorf("first token after empty history should be 1, got %v", s.LivesHistory)
	}
}
