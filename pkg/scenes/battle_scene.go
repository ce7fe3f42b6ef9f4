package scenes

import (
	"errors"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/ecs"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/decker502/quizbattle/pkg/render"
	"github.com/decker502/quizbattle/pkg/systems"
	"github.com/decker502/quizbattle/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// BattleScene 战斗场景
//
// 输入：数字键或点击选择答案，道具界面按数字键选择道具，R/Esc 重开并返回选集，T 切换倒计时条。
// 所有输入经 BattleDirector 转发给状态机；被拒绝的输入（如动画期间的点击）直接忽略。
type BattleScene struct {
	entityManager *ecs.EntityManager
	director      *systems.BattleDirector
	renderer      *render.BattleRenderer
	sceneManager  *SceneManager
	settings      *game.SettingsManager
	log           *logger.Logger

	// recorded 本局最终分数是否已记录
	recorded bool
}

// NewBattleScene 创建战斗场景，images 为 nil 时不加载答案图片
func NewBattleScene(em *ecs.EntityManager, director *systems.BattleDirector, sm *SceneManager,
	settings *game.SettingsManager, images *render.ImageCache, log *logger.Logger) *BattleScene {
	return &BattleScene{
		entityManager: em,
		director:      director,
		renderer:      render.NewBattleRenderer(em, director, images),
		sceneManager:  sm,
		settings:      settings,
		log:           logger.OrNop(log),
	}
}

// OnEnter 新的一局开始
func (s *BattleScene) OnEnter() {
	s.recorded = false
}

// Update 处理输入并推进动画和倒计时
func (s *BattleScene) Update(deltaTime float64) {
	if render.IsKeyJustPressed(ebiten.KeyR, ebiten.KeyEscape) {
		s.restart()
		return
	}

	if render.IsKeyJustPressed(ebiten.KeyT) {
		s.settings.SetShowTimerBar(!s.settings.GetSettings().ShowTimerBar)
	}

	s.handleInput()

	if err := s.director.Update(deltaTime); err != nil {
		s.log.Error("[BattleScene] Update failed", "error", err)
	}

	if s.director.Controller().Phase() == components.PhaseGameOver && !s.recorded {
		s.recordScore()
	}
}

func (s *BattleScene) handleInput() {
	tc := s.director.Controller()
	switch tc.Phase() {
	case components.PhaseAwaitingSelection:
		if index, ok := s.pickedAnswer(); ok {
			s.report(s.director.Select(index))
		}
	case components.PhasePowerUpOffer:
		offer := tc.Snapshot().Offer
		if index, ok := render.JustPressedDigit(); ok && index < len(offer) {
			s.report(s.director.ChoosePowerUp(offer[index]))
		}
	}
}

// pickedAnswer 本帧选择的答案：数字键或点击答案卡片
func (s *BattleScene) pickedAnswer() (int, bool) {
	if index, ok := render.JustPressedDigit(); ok {
		return index, true
	}
	clicked, x, y := render.IsJustTouchedOrClicked()
	if !clicked {
		return 0, false
	}
	snap := s.director.Controller().Snapshot()
	if snap.Round == nil {
		return 0, false
	}
	index := answerAt(float64(x), float64(y), snap.Round.Answers)
	return index, index >= 0
}

// answerAt 点击命中的答案卡片下标，已隐藏的卡片不可点击，未命中返回 -1
func answerAt(x, y float64, answers []components.AnswerChoice) int {
	return utils.HitIndex(x, y, len(answers), func(i int) (float64, float64, float64, float64) {
		return config.AnswerColumnX, config.AnswerCardY(i), config.AnswerCardWidth, config.AnswerCardHeight
	}, func(i int) bool {
		return answers[i].Hidden
	})
}

// report 记录被拒绝的输入；越界等错误只影响本次输入
func (s *BattleScene) report(err error) {
	if err == nil {
		return
	}
	var invalid *game.InvalidSelectionError
	if errors.As(err, &invalid) || errors.Is(err, game.ErrInputNotAccepted) {
		s.log.Debug("[BattleScene] Input ignored", "error", err)
		return
	}
	s.log.Warn("[BattleScene] Input rejected", "error", err)
}

func (s *BattleScene) recordScore() {
	s.recorded = true
	snap := s.director.Controller().Snapshot()
	if snap.Session.SelectedContentSet == nil {
		return
	}
	title := snap.Session.SelectedContentSet.Title
	if s.settings.RecordScore(title, snap.Session.Score) {
		s.log.Info("[BattleScene] New best score", "set", title, "score", snap.Session.Score)
		if err := s.settings.Save(); err != nil {
			s.log.Warn("[BattleScene] Failed to save best score", "error", err)
		}
	}
}

// restart 重开并回到选集界面
func (s *BattleScene) restart() {
	if err := s.director.Restart(); err != nil {
		s.log.Error("[BattleScene] Restart failed", "error", err)
		return
	}
	s.sceneManager.SwitchToID(SceneSetSelect)
}

// SaveOnExit 窗口关闭时保存设置
func (s *BattleScene) SaveOnExit() bool {
	if err := s.settings.Save(); err != nil {
		s.log.Warn("[BattleScene] Failed to save settings on exit", "error", err)
		return false
	}
	return true
}

// Draw 绘制战斗画面
func (s *BattleScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.director.Controller().Snapshot(), s.settings.GetSettings().ShowTimerBar)
}
