package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
)

func TestNewSessionState(t *testing.T) {
	cfg := config.DefaultBattleConfig()
	s := NewSessionState(cfg)

	if s.Score != 0 || s.Stage != 0 || s.Streak != 0 {
		t.Errorf("unexpected counters: %+v", s)
	}
	if s.Lives != 3 {
		t.Errorf("Lives = %d, want 3", s.Lives)
	}
	if len(s.LivesHistory) != 3 {
		t.Errorf("LivesHistory len = %d, want 3", len(s.LivesHistory))
	}
	if s.DifficultyTimerSeconds != cfg.BaseTimerSeconds {
		t.Errorf("DifficultyTimerSeconds = %v, want %v", s.DifficultyTimerSeconds, cfg.BaseTimerSeconds)
	}
	if s.LasersActive || s.MultiplierActive {
		t.Error("bonuses should be inactive")
	}
	if s.ID != "" || s.SelectedContentSet != nil {
		t.Error("a fresh state has no session id and no content set")
	}
}

// TestSessionState_Begin 每次开局生成不同的会话 ID
func TestSessionState_Begin(t *testing.T) {
	cfg := config.DefaultBattleConfig()
	set := &dataset.ContentSet{Title: "x"}
	s := NewSessionState(cfg)

	s.Score = 900
	s.Begin(cfg, set)
	first := s.ID
	if first == "" {
		t.Fatal("Begin should assign an id")
	}
	if s.Score != 0 {
		t.Error("Begin should reset the score")
	}
	if s.SelectedContentSet != set {
		t.Error("Begin should keep the selected set")
	}

	s.Begin(cfg, set)
	if s.ID == first {
		t.Error("each session should get a new id")
	}
}

// TestSessionState_Clone 生命记录被复制，学习集与原状态共享
func TestSessionState_Clone(t *testing.T) {
	s := NewSessionState(config.DefaultBattleConfig())
	set := &dataset.ContentSet{Title: "Shared"}
	s.SelectedContentSet = set
	c := s.Clone()
	c.LivesHistory[0] = 99
	if s.LivesHistory[0] == 99 {
		t.Error("Clone should copy LivesHistory")
	}
	if c.SelectedContentSet != set {
		t.Error("Clone should share the selected content set")
	}
}

func TestErrors(t *testing.T) {
	var err error = fmt.Errorf("select set: %w", &InsufficientContentError{Title: "t", Have: 2, Need: 4})

	var insufficient *InsufficientContentError
	if !errors.As(err, &insufficient) {
		t.Fatal("errors.As should find InsufficientContentError")
	}
	if insufficient.Need != 4 {
		t.Errorf("Need = %d, want 4", insufficient.Need)
	}

	sel := &InvalidSelectionError{Index: 7, Count: 4}
	if sel.Error() != "selection index 7 out of range [0, 4)" {
		t.Errorf("unexpected message %q", sel.Error())
	}

	if !errors.Is(fmt.Errorf("wrap: %w", ErrInputNotAccepted), ErrInputNotAccepted) {
		t.Error("ErrInputNotAccepted should survive wrapping")
	}
}
