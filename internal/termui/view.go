package termui

import (
	"fmt"
	"strings"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/game"
)

// Tone 行的显示语义，由渲染器映射为颜色
type Tone int

const (
	ToneNormal Tone = iota
	ToneTitle
	ToneDim
	ToneGood
	ToneBad
	ToneWarn
)

// Line 一行输出
type Line struct {
	Text string
	Tone Tone
}

// timerBarWidth 倒计时条字符宽度
const timerBarWidth = 30

// View 根据当前状态生成要显示的行
func (s *Session) View() []Line {
	snap := s.controller.Snapshot()
	var lines []Line
	if snap.Phase == components.PhaseSelectingContent {
		lines = s.setSelectView()
	} else {
		lines = s.battleView(snap)
	}
	if s.status != "" {
		lines = append(lines, Line{}, Line{Text: s.status, Tone: ToneWarn})
	}
	return lines
}

func (s *Session) setSelectView() []Line {
	lines := []Line{
		{Text: "QUIZ BATTLE - choose a study set", Tone: ToneTitle},
		{},
	}
	for i, title := range s.titles {
		set, _ := s.library.Get(title)
		lines = append(lines, Line{Text: fmt.Sprintf("  %d. %s (%d cards)", i+1, title, set.Len())})
	}
	return append(lines, Line{}, Line{Text: "number: choose   q/Esc: quit", Tone: ToneDim})
}

func (s *Session) battleView(snap game.Snapshot) []Line {
	session := snap.Session
	lines := []Line{{
		Text: fmt.Sprintf("Score %d   Stage %d   Lives %s   %s",
			session.Score, session.Stage+1, strings.Repeat("♥", session.Lives), flags(session)),
		Tone: ToneTitle,
	}}

	if snap.TimerDuration > 0 {
		filled := int(float64(timerBarWidth) * snap.TimerRemaining / snap.TimerDuration)
		filled = max(0, min(timerBarWidth, filled))
		lines = append(lines, Line{
			Text: fmt.Sprintf("[%s%s] %.1fs", strings.Repeat("#", filled), strings.Repeat(".", timerBarWidth-filled), snap.TimerRemaining),
			Tone: ToneDim,
		})
	}

	lines = append(lines, Line{}, Line{Text: actionText(snap), Tone: ToneDim})

	if snap.Round != nil {
		lines = append(lines, Line{}, Line{Text: snap.Round.CorrectTermText, Tone: ToneTitle}, Line{})
		for i, answer := range snap.Round.Answers {
			lines = append(lines, answerLine(snap, i, answer))
		}
	}

	switch snap.Phase {
	case components.PhasePowerUpOffer:
		lines = append(lines, Line{}, Line{Text: "Choose a power-up:", Tone: ToneWarn})
		for i, name := range snap.Offer {
			desc := ""
			if p, ok := s.controller.Catalog().Lookup(name); ok {
				desc = p.Description
			}
			lines = append(lines, Line{Text: fmt.Sprintf("  %d. %s - %s", i+1, name, desc)})
		}
	case components.PhaseGameOver:
		lines = append(lines, Line{}, Line{Text: fmt.Sprintf("GAME OVER - final score %d", session.Score), Tone: ToneBad})
	}

	return append(lines, Line{}, Line{Text: "number: answer   r: restart   Esc: back to sets", Tone: ToneDim})
}

func flags(s game.SessionState) string {
	var parts []string
	if s.LasersActive {
		parts = append(parts, "[lasers]")
	}
	if s.MultiplierActive {
		parts = append(parts, fmt.Sprintf("[x2 streak %d]", s.Streak))
	}
	return strings.Join(parts, " ")
}

func actionText(snap game.Snapshot) string {
	switch snap.Phase {
	case components.PhaseEnemyAdvancing:
		return "An enemy approaches..."
	case components.PhaseAwaitingSelection:
		return "Pick the matching answer!"
	case components.PhasePlayerAdvancing, components.PhasePlayerRetreating:
		if snap.LastAnswerCorrect {
			return "You strike!"
		}
		return "You miss..."
	case components.PhaseEnemyAttacking:
		return "The enemy attacks!"
	}
	return ""
}

func answerLine(snap game.Snapshot, i int, answer components.AnswerChoice) Line {
	content := answer.DisplayText()
	if answer.HasImage() {
		content = strings.TrimSpace(content + " " + answer.ImageLabel())
	}
	if answer.Hidden {
		return Line{Text: fmt.Sprintf("  %d. ~~~", i+1), Tone: ToneDim}
	}

	tone := ToneNormal
	marker := " "
	if snap.Revealed {
		switch {
		case answer.IsCorrect:
			tone, marker = ToneGood, "+"
		case i == snap.SelectedIndex:
			tone, marker = ToneBad, "x"
		}
	}
	return Line{Text: fmt.Sprintf("%s %d. %s", marker, i+1, content), Tone: tone}
}
