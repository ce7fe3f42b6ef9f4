// Package termui 终端版前端：termbox 绘制，单一事件循环驱动状态机
package termui

import (
	"errors"
	"fmt"
	"time"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/decker502/quizbattle/pkg/systems"
)

// Scheduler 延迟执行，终端版用它模拟动画时长
// 回调必须回到事件循环中执行
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Session 终端版的一次运行：选集界面 + 战斗
//
// 所有方法只能在事件循环的 goroutine 中调用。
type Session struct {
	controller *systems.TurnController
	library    *dataset.Library
	titles     []string
	scheduler  Scheduler
	log        *logger.Logger

	// status 最近一条提示（拒绝的输入、卡片不足等）
	status string
	quit   bool
}

// NewSession 创建会话，初始处于选集界面
func NewSession(tc *systems.TurnController, library *dataset.Library, scheduler Scheduler, log *logger.Logger) *Session {
	return &Session{
		controller: tc,
		library:    library,
		titles:     library.Titles(),
		scheduler:  scheduler,
		log:        logger.OrNop(log),
	}
}

// Quit 是否请求退出
func (s *Session) Quit() bool { return s.quit }

// Status 最近一条提示
func (s *Session) Status() string { return s.status }

// HandleEscape Esc：对局中回到选集，选集界面退出程序
func (s *Session) HandleEscape() {
	if s.controller.Phase() == components.PhaseSelectingContent {
		s.quit = true
		return
	}
	s.run(s.controller.Restart())
}

// HandleRune 处理字符输入
func (s *Session) HandleRune(r rune) {
	s.status = ""
	if r == 'q' {
		s.quit = true
		return
	}
	if r == 'r' {
		s.run(s.controller.Restart())
		return
	}

	index, isDigit := digitIndex(r)
	if !isDigit {
		return
	}

	switch s.controller.Phase() {
	case components.PhaseSelectingContent:
		s.chooseSet(index)
	case components.PhasePowerUpOffer:
		offer := s.controller.Snapshot().Offer
		if index < len(offer) {
			s.run(s.controller.ChoosePowerUp(offer[index]))
		}
	default:
		s.run(s.controller.Select(index))
	}
}

// Tick 推进倒计时
func (s *Session) Tick(dt float64) {
	s.run(s.controller.Update(dt))
}

func (s *Session) chooseSet(index int) {
	if index >= len(s.titles) {
		return
	}
	set, _ := s.library.Get(s.titles[index])
	s.run(s.controller.SelectContentSet(set))
}

// run 应用指令；被拒绝的输入写入提示
func (s *Session) run(cmds []components.Command, err error) {
	if err != nil {
		s.status = describeError(err)
		s.log.Debug("[TermUI] Input rejected", "error", err)
		return
	}
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case components.CmdPlayAnimation:
			s.play(c)
		case components.CmdGameOver:
			s.status = fmt.Sprintf("Game over with %d points. Press r to play again.", c.FinalScore)
		}
	}
}

// play 以定时器模拟动画，到期后回报
// 重开之后到期的回报代数已过期，状态机会忽略
func (s *Session) play(c components.CmdPlayAnimation) {
	duration := s.controller.Config().Animations.Duration(c.Kind)
	ack := components.AnimationAck{Phase: c.Phase, Generation: c.Generation}
	s.scheduler.After(time.Duration(duration*float64(time.Second)), func() {
		s.run(s.controller.AnimationComplete(ack))
	})
}

func describeError(err error) string {
	var insufficient *game.InsufficientContentError
	var invalid *game.InvalidSelectionError
	switch {
	case errors.As(err, &insufficient):
		return fmt.Sprintf("%q has only %d cards, %d needed", insufficient.Title, insufficient.Have, insufficient.Need)
	case errors.As(err, &invalid):
		return fmt.Sprintf("Choose 1-%d", invalid.Count)
	case errors.Is(err, game.ErrInputNotAccepted):
		return "Wait for your turn"
	default:
		return err.Error()
	}
}

// digitIndex '1'..'9' 对应 0..8
func digitIndex(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
