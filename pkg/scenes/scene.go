package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneID 场景标识
type SceneID string

const (
	// SceneSetSelect 学习集选择
	SceneSetSelect SceneID = "set_select"
	// SceneBattle 战斗
	SceneBattle SceneID = "battle"
)

// Scene 一个场景（选集、战斗），拥有自己的更新和绘制逻辑
type Scene interface {
	// Update 推进场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}

// Enterable 可选接口：场景被切换为当前场景时调用 OnEnter
type Enterable interface {
	OnEnter()
}

// Saveable 可选接口：窗口关闭时保存状态
//
// 实现此接口的场景会在窗口关闭或收到退出信号时被调用 SaveOnExit()。
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

var (
	_ Scene     = (*SetSelectScene)(nil)
	_ Scene     = (*BattleScene)(nil)
	_ Enterable = (*SetSelectScene)(nil)
	_ Enterable = (*BattleScene)(nil)
	_ Saveable  = (*BattleScene)(nil)
)
