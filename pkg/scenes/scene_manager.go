package scenes

import (
	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 管理当前活动场景，同一时间只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
	currentID    SceneID
	scenes       map[SceneID]Scene
	log          *logger.Logger
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager(log *logger.Logger) *SceneManager {
	return &SceneManager{
		scenes: make(map[SceneID]Scene),
		log:    logger.OrNop(log),
	}
}

// Register 注册场景，之后可用 SwitchToID 切换
func (sm *SceneManager) Register(id SceneID, scene Scene) {
	sm.scenes[id] = scene
}

// SwitchTo 切换到指定场景；场景实现 Enterable 时调用 OnEnter
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentID = ""
	if e, ok := scene.(Enterable); ok {
		e.OnEnter()
	}
}

// SwitchToID 切换到已注册的场景，未注册时返回 false 且不切换
func (sm *SceneManager) SwitchToID(id SceneID) bool {
	scene, ok := sm.scenes[id]
	if !ok {
		sm.log.Error("[SceneManager] Unknown scene", "id", id)
		return false
	}
	sm.SwitchTo(scene)
	sm.currentID = id
	sm.log.Debug("[SceneManager] Switched scene", "id", id)
	return true
}

// GetCurrentScene 返回当前活动场景，没有时为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentID 当前场景 ID，直接通过 SwitchTo 切换的场景为空串
func (sm *SceneManager) CurrentID() SceneID {
	return sm.currentID
}

// Update 更新当前场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
