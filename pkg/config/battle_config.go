package config

import (
	"fmt"
	"os"

	"github.com/decker502/quizbattle/pkg/components"
	"gopkg.in/yaml.v3"
)

// BattleConfig 战斗规则配置
// 所有数值规则（生命、计分、里程碑、计时）都集中在这里，默认值见 DefaultBattleConfig
type BattleConfig struct {
	StartingLives          int     `yaml:"startingLives"`          // 初始生命
	AnswerCount            int     `yaml:"answerCount"`            // 每回合选项数 N
	Milestone              int     `yaml:"milestone"`              // 每隔多少关触发道具选择
	OfferSize              int     `yaml:"offerSize"`              // 每次提供的道具数量
	BaseTimerSeconds       float64 `yaml:"baseTimerSeconds"`       // 初始倒计时（秒）
	TimerBonusSeconds      float64 `yaml:"timerBonusSeconds"`      // timer 道具增加的秒数
	CorrectScore           int     `yaml:"correctScore"`           // 答对得分
	MultiplierCorrectScore int     `yaml:"multiplierCorrectScore"` // 倍率生效时答对得分
	MultiplierPenalty      int     `yaml:"multiplierPenalty"`      // 倍率生效时答错扣分
	ScoreBonus             int     `yaml:"scoreBonus"`             // score 道具直接加分
	LaserMaxRetries        int     `yaml:"laserMaxRetries"`        // 激光重抽上限，超出后线性扫描

	Animations AnimationTimings `yaml:"animations"`
	PowerUps   []PowerUpEntry   `yaml:"powerUps"`
}

// AnimationTimings 渲染层使用的动画时长（秒）
// 核心状态机不依赖这些值，只等待渲染层回报动画完成
type AnimationTimings struct {
	EnemyAdvance  float64 `yaml:"enemyAdvance"`
	PlayerAdvance float64 `yaml:"playerAdvance"`
	PlayerRetreat float64 `yaml:"playerRetreat"`
	EnemyAttack   float64 `yaml:"enemyAttack"`
}

// Duration 返回指定动画的时长
func (a AnimationTimings) Duration(kind components.AnimationKind) float64 {
	switch kind {
	case components.AnimEnemyAdvance:
		return a.EnemyAdvance
	case components.AnimPlayerAdvance:
		return a.PlayerAdvance
	case components.AnimPlayerRetreat:
		return a.PlayerRetreat
	case components.AnimEnemyAttack:
		return a.EnemyAttack
	default:
		return 0
	}
}

// PowerUpEntry 道具目录条目的文案
type PowerUpEntry struct {
	Name        components.PowerUpName `yaml:"name"`
	Description string                 `yaml:"description"`
}

// DefaultBattleConfig 返回默认战斗配置
func DefaultBattleConfig() *BattleConfig {
	return &BattleConfig{
		StartingLives:          3,
		AnswerCount:            4,
		Milestone:              4,
		OfferSize:              3,
		BaseTimerSeconds:       10,
		TimerBonusSeconds:      1,
		CorrectScore:           100,
		MultiplierCorrectScore: 200,
		MultiplierPenalty:      200,
		ScoreBonus:             200,
		LaserMaxRetries:        8,
		Animations: AnimationTimings{
			EnemyAdvance:  0.6,
			PlayerAdvance: 0.35,
			PlayerRetreat: 0.35,
			EnemyAttack:   0.5,
		},
		PowerUps: []PowerUpEntry{
			{Name: components.PowerUpLasers, Description: "Burn away one wrong answer each round until the next power-up"},
			{Name: components.PowerUpHealth, Description: "Gain one extra life"},
			{Name: components.PowerUpScore, Description: "Instantly gain 200 points"},
			{Name: components.PowerUpTimer, Description: "One more second on every countdown"},
			{Name: components.PowerUpMultiplier, Description: "Double points per correct answer, lose 200 per mistake, until the next power-up"},
		},
	}
}

// LoadBattleConfig 从 YAML 文件加载战斗配置
func LoadBattleConfig(filePath string) (*BattleConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read battle config file: %w", err)
	}
	return ParseBattleConfig(data)
}

// ParseBattleConfig 解析战斗配置
// 文件中缺失的字段保留默认值
//
// 道具目录固定为 components.AllPowerUps 的五项，文件中的 powerUps 只能覆盖描述；
// 未列出的道具沿用默认描述，未知或重复的名称视为错误。
func ParseBattleConfig(data []byte) (*BattleConfig, error) {
	cfg := DefaultBattleConfig()
	defaults := cfg.PowerUps
	cfg.PowerUps = nil

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse battle config YAML: %w", err)
	}

	merged, err := mergePowerUps(defaults, cfg.PowerUps)
	if err != nil {
		return nil, fmt.Errorf("invalid battle config: %w", err)
	}
	cfg.PowerUps = merged

	if err := validateBattleConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid battle config: %w", err)
	}
	return cfg, nil
}

// mergePowerUps 以默认目录为底，按文件条目覆盖描述，顺序固定为 AllPowerUps
func mergePowerUps(defaults, overrides []PowerUpEntry) ([]PowerUpEntry, error) {
	descriptions := make(map[components.PowerUpName]string, len(defaults))
	for _, p := range defaults {
		descriptions[p.Name] = p.Description
	}

	seen := make(map[components.PowerUpName]bool, len(overrides))
	for _, p := range overrides {
		if !p.Name.Valid() {
			return nil, fmt.Errorf("unknown power-up %q", p.Name)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate power-up %q", p.Name)
		}
		seen[p.Name] = true
		if p.Description != "" {
			descriptions[p.Name] = p.Description
		}
	}

	merged := make([]PowerUpEntry, 0, len(components.AllPowerUps))
	for _, name := range components.AllPowerUps {
		merged = append(merged, PowerUpEntry{Name: name, Description: descriptions[name]})
	}
	return merged, nil
}

// validateBattleConfig 验证配置的有效性
func validateBattleConfig(cfg *BattleConfig) error {
	if cfg.StartingLives < 1 {
		return fmt.Errorf("startingLives must be >= 1, got %d", cfg.StartingLives)
	}
	if cfg.AnswerCount < 2 {
		return fmt.Errorf("answerCount must be >= 2, got %d", cfg.AnswerCount)
	}
	if cfg.Milestone < 1 {
		return fmt.Errorf("milestone must be >= 1, got %d", cfg.Milestone)
	}
	if cfg.BaseTimerSeconds <= 0 {
		return fmt.Errorf("baseTimerSeconds must be > 0, got %v", cfg.BaseTimerSeconds)
	}
	if cfg.TimerBonusSeconds < 0 {
		return fmt.Errorf("timerBonusSeconds must be >= 0, got %v", cfg.TimerBonusSeconds)
	}
	if cfg.LaserMaxRetries < 0 {
		return fmt.Errorf("laserMaxRetries must be >= 0, got %d", cfg.LaserMaxRetries)
	}

	// 目录必须恰好包含每个道具一次
	seen := make(map[components.PowerUpName]bool, len(cfg.PowerUps))
	for _, p := range cfg.PowerUps {
		if !p.Name.Valid() {
			return fmt.Errorf("unknown power-up %q", p.Name)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate power-up %q", p.Name)
		}
		seen[p.Name] = true
	}
	for _, name := range components.AllPowerUps {
		if !seen[name] {
			return fmt.Errorf("power-up catalog is missing %q", name)
		}
	}
	if cfg.OfferSize < 1 || cfg.OfferSize > len(cfg.PowerUps) {
		return fmt.Errorf("offerSize must be between 1 and %d, got %d", len(cfg.PowerUps), cfg.OfferSize)
	}
	return nil
}
