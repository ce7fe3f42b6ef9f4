package game

import (
	"fmt"

	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 玩家偏好设置
// 只保存偏好和最高分，不保存对局进度
type GameSettings struct {
	Fullscreen   bool   `yaml:"fullscreen"`   // 启动时是否全屏
	ShowTimerBar bool   `yaml:"showTimerBar"` // 是否显示倒计时条
	LastSetTitle string `yaml:"lastSetTitle"` // 上次选择的学习集，选集界面默认高亮

	// BestScores 每个学习集的最高分
	BestScores map[string]int `yaml:"bestScores,omitempty"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		ShowTimerBar: true,
		BestScores:   make(map[string]int),
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存设置）
	settings     *GameSettings
	log          *logger.Logger
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建设置管理器并尝试加载已保存的设置
//
// 加载失败不是致命错误：记录警告并使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager, log *logger.Logger) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
		log:          logger.OrNop(log),
	}
	if err := sm.Load(); err != nil {
		sm.log.Warn("[SettingsManager] Failed to load settings, using defaults", "error", err)
	}
	return sm
}

// Load 从 gdata 加载设置
//
// gdataManager 为 nil 或没有保存过时使用默认设置。
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.gdataManager == nil {
		return nil
	}
	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if loaded.BestScores == nil {
		loaded.BestScores = make(map[string]int)
	}

	sm.settings = loaded
	sm.log.Debug("[SettingsManager] Settings loaded", "lastSet", loaded.LastSetTitle)
	return nil
}

// Save 保存设置到 gdata，降级模式下直接返回 nil
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	sm.log.Debug("[SettingsManager] Settings saved")
	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetFullscreen 设置全屏模式（需调用 Save 持久化）
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetShowTimerBar 设置是否显示倒计时条（需调用 Save 持久化）
func (sm *SettingsManager) SetShowTimerBar(enabled bool) {
	sm.settings.ShowTimerBar = enabled
}

// SetLastSetTitle 记录上次选择的学习集（需调用 Save 持久化）
func (sm *SettingsManager) SetLastSetTitle(title string) {
	sm.settings.LastSetTitle = title
}

// RecordScore 记录一局的最终分数，刷新最高分时返回 true
func (sm *SettingsManager) RecordScore(setTitle string, score int) bool {
	best, ok := sm.settings.BestScores[setTitle]
	if ok && score <= best {
		return false
	}
	sm.settings.BestScores[setTitle] = score
	return true
}

// BestScore 学习集的最高分，没有记录时 ok 为 false
func (sm *SettingsManager) BestScore(setTitle string) (score int, ok bool) {
	score, ok = sm.settings.BestScores[setTitle]
	return score, ok
}
