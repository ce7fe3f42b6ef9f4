package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/quizbattle/pkg/components"
)

func TestDefaultBattleConfig(t *testing.T) {
	cfg := DefaultBattleConfig()
	if err := validateBattleConfig(cfg); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.StartingLives != 3 {
		t.Errorf("StartingLives = %d, want 3", cfg.StartingLives)
	}
	if cfg.AnswerCount != 4 {
		t.Errorf("AnswerCount = %d, want 4", cfg.AnswerCount)
	}
	if cfg.Milestone != 4 {
		t.Errorf("Milestone = %d, want 4", cfg.Milestone)
	}
	if len(cfg.PowerUps) != 5 {
		t.Errorf("PowerUps len = %d, want 5", len(cfg.PowerUps))
	}
}

// TestLoadBattleConfig_Partial 文件中缺失的字段使用默认值
func TestLoadBattleConfig_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "battle.yaml")
	if err := os.WriteFile(path, []byte("baseTimerSeconds: 6.5\nstartingLives: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBattleConfig(path)
	if err != nil {
		t.Fatalf("LoadBattleConfig failed: %v", err)
	}
	if cfg.BaseTimerSeconds != 6.5 {
		t.Errorf("BaseTimerSeconds = %v, want 6.5", cfg.BaseTimerSeconds)
	}
	if cfg.StartingLives != 5 {
		t.Errorf("StartingLives = %d, want 5", cfg.StartingLives)
	}
	if cfg.CorrectScore != 100 {
		t.Errorf("CorrectScore = %d, want default 100", cfg.CorrectScore)
	}
	if len(cfg.PowerUps) != 5 {
		t.Errorf("PowerUps should fall back to defaults, got %d", len(cfg.PowerUps))
	}
}

func TestLoadBattleConfig_MissingFile(t *testing.T) {
	_, err := LoadBattleConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestParseBattleConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"生命为 0", "startingLives: 0", "startingLives"},
		{"选项过少", "answerCount: 1", "answerCount"},
		{"里程碑非法", "milestone: 0", "milestone"},
		{"计时非法", "baseTimerSeconds: 0", "baseTimerSeconds"},
		{"未知道具", "powerUps: [{name: shield}]", "unknown power-up"},
		{"重复道具", "powerUps: [{name: lasers}, {name: lasers}]", "duplicate power-up"},
		{"提供数量超出目录", "offerSize: 6", "offerSize"},
		{"YAML 语法错误", "startingLives: [", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBattleConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestAnimationTimings_Duration(t *testing.T) {
	a := DefaultBattleConfig().Animations
	if a.Duration(components.AnimEnemyAdvance) != 0.6 {
		t.Errorf("EnemyAdvance duration = %v", a.Duration(components.AnimEnemyAdvance))
	}
	if a.Duration(components.AnimationKind(99)) != 0 {
		t.Error("unknown animation should have zero duration")
	}
}

// TestParseBattleConfig_PowerUpCatalog 文件只列出部分道具时，目录仍是完整的五项
func TestParseBattleConfig_PowerUpCatalog(t *testing.T) {
	yamlText := "powerUps:\n  - name: score\n    description: Big bonus\n  - name: lasers\n  - name: health\n"
	cfg, err := ParseBattleConfig([]byte(yamlText))
	if err != nil {
		t.Fatalf("ParseBattleConfig failed: %v", err)
	}

	if len(cfg.PowerUps) != len(components.AllPowerUps) {
		t.Fatalf("PowerUps len = %d, want %d", len(cfg.PowerUps), len(components.AllPowerUps))
	}
	defaults := DefaultBattleConfig().PowerUps
	for i, name := range components.AllPowerUps {
		got := cfg.PowerUps[i]
		if got.Name != name {
			t.Errorf("PowerUps[%d] = %q, want %q", i, got.Name, name)
		}
		want := defaults[i].Description
		if name == components.PowerUpScore {
			want = "Big bonus"
		}
		if got.Description != want {
			t.Errorf("%s description = %q, want %q", name, got.Description, want)
		}
	}
}

// TestValidateBattleConfig_IncompleteCatalog 代码中构造的不完整目录同样被拒绝
func TestValidateBattleConfig_IncompleteCatalog(t *testing.T) {
	cfg := DefaultBattleConfig()
	cfg.PowerUps = cfg.PowerUps[:3]
	err := validateBattleConfig(cfg)
	if err == nil || !strings.Contains(err.Error(), "missing") {
		t.Errorf("expected missing power-up error, got %v", err)
	}
}
