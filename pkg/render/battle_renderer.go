package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/ecs"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/systems"
	"github.com/decker502/quizbattle/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	backgroundColor  = color.RGBA{24, 28, 40, 255}
	hudColor         = color.RGBA{36, 42, 60, 255}
	textColor        = color.RGBA{235, 235, 240, 255}
	dimTextColor     = color.RGBA{150, 155, 170, 255}
	playerColor      = color.RGBA{70, 150, 230, 255}
	enemyColor       = color.RGBA{220, 80, 70, 255}
	flashColor       = color.RGBA{255, 255, 255, 255}
	cardColor        = color.RGBA{52, 60, 84, 255}
	cardCorrectColor = color.RGBA{60, 160, 90, 255}
	cardWrongColor   = color.RGBA{180, 60, 60, 255}
	cardBurnedColor  = color.RGBA{30, 30, 30, 255}
	lifeColor        = color.RGBA{230, 70, 90, 255}
	timerColor       = color.RGBA{240, 190, 60, 255}
	timerLowColor    = color.RGBA{230, 80, 60, 255}
	overlayColor     = color.RGBA{0, 0, 0, 180}
	panelColor       = color.RGBA{44, 50, 72, 255}
)

const (
	lineHeight   = 16.0
	cardPadding  = 8.0
	cardMaxLines = 4

	// thumbnailSize 图片缩略图最长边
	thumbnailSize = 80.0
)

// BattleRenderer 战斗场景渲染器
//
// 角色和卡片位置来自实体，卡片内容、HUD 和弹窗来自状态机快照。
type BattleRenderer struct {
	entityManager *ecs.EntityManager
	director      *systems.BattleDirector
	images        *ImageCache
	face          text.Face
}

// NewBattleRenderer 创建渲染器，使用内置位图字体
//
// images 为 nil 时图片选项只显示文件名占位。
func NewBattleRenderer(em *ecs.EntityManager, director *systems.BattleDirector, images *ImageCache) *BattleRenderer {
	return &BattleRenderer{
		entityManager: em,
		director:      director,
		images:        images,
		face:          text.NewGoXFace(basicfont.Face7x13),
	}
}

// Face 返回渲染使用的字体
func (s *BattleRenderer) Face() text.Face { return s.face }

// Draw 绘制整个战斗画面
func (s *BattleRenderer) Draw(screen *ebiten.Image, snap game.Snapshot, showTimer bool) {
	screen.Fill(backgroundColor)

	s.drawHUD(screen, snap, showTimer)
	s.drawTerm(screen, snap)
	s.drawActors(screen)
	s.drawCards(screen, snap)

	switch snap.Phase {
	case components.PhasePowerUpOffer:
		s.drawPowerUpOffer(screen, snap)
	case components.PhaseGameOver:
		s.drawGameOver(screen, snap)
	}
}

func (s *BattleRenderer) drawHUD(screen *ebiten.Image, snap game.Snapshot, showTimer bool) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, float32(config.HUDHeight), hudColor, false)

	session := snap.Session
	title := ""
	if session.SelectedContentSet != nil {
		title = session.SelectedContentSet.Title
	}
	s.drawText(screen, fmt.Sprintf("Score %d   Stage %d   %s", session.Score, session.Stage+1, title), 12, 10, textColor)

	var flags string
	if session.LasersActive {
		flags += "[LASERS] "
	}
	if session.MultiplierActive {
		flags += fmt.Sprintf("[x2 streak %d] ", session.Streak)
	}
	s.drawText(screen, flags, 12, 28, timerColor)

	// 生命
	for i := range session.LivesHistory {
		x := float32(config.GameWindowWidth - 30 - i*22)
		vector.DrawFilledRect(screen, x, 14, 16, 16, lifeColor, false)
	}

	if !showTimer || snap.TimerDuration <= 0 {
		return
	}
	fraction := snap.TimerRemaining / snap.TimerDuration
	clr := timerColor
	if fraction < 0.3 {
		clr = timerLowColor
	}
	vector.DrawFilledRect(screen, float32(config.TimerBarX), float32(config.TimerBarY), float32(config.TimerBarWidth), 8, hudColor, false)
	vector.DrawFilledRect(screen, float32(config.TimerBarX), float32(config.TimerBarY), float32(config.TimerBarWidth*utils.Clamp01(fraction)), 8, clr, false)
}

func (s *BattleRenderer) drawTerm(screen *ebiten.Image, snap game.Snapshot) {
	if snap.Round == nil {
		return
	}
	lines := TruncateLines(WrapText(snap.Round.CorrectTermText, s.face, config.TimerBarWidth), 3)
	for i, line := range lines {
		s.drawTextScaled(screen, line, config.TermBoxX, config.TermBoxY+float64(i)*lineHeight*2, 2, textColor)
	}
}

func (s *BattleRenderer) drawActors(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ActorComponent, *components.PositionComponent](s.entityManager) {
		actor, _ := ecs.GetComponent[*components.ActorComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		clr := playerColor
		if actor.Role == components.ActorEnemy {
			clr = enemyColor
		}
		if intensity := s.director.Flashes().Intensity(id); intensity > 0 {
			clr = mix(clr, flashColor, intensity)
		}
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), config.ActorSize, config.ActorSize, clr, false)
	}
}

func (s *BattleRenderer) drawCards(screen *ebiten.Image, snap game.Snapshot) {
	if snap.Round == nil {
		return
	}
	for _, id := range s.director.Cards() {
		card, ok := ecs.GetComponent[*components.AnswerCardComponent](s.entityManager, id)
		if !ok || card.Index >= len(snap.Round.Answers) || card.Alpha <= 0 {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		answer := snap.Round.Answers[card.Index]

		bg := fade(s.cardColor(snap, card, answer), card.Alpha)
		vector.DrawFilledRect(screen, float32(pos.X), float32(pos.Y), config.AnswerCardWidth, config.AnswerCardHeight, bg, false)

		fg := fade(textColor, card.Alpha)
		s.drawText(screen, fmt.Sprintf("%d", card.Index+1), pos.X+cardPadding, pos.Y+cardPadding, fg)

		textWidth := config.AnswerCardWidth - 4*cardPadding
		content := answer.DisplayText()
		if answer.HasImage() {
			if s.drawThumbnail(screen, *answer.ImageURL, pos.X, pos.Y, card.Alpha) {
				textWidth -= thumbnailSize + cardPadding
			} else {
				content = strings.TrimSpace(content + " " + answer.ImageLabel())
			}
		}
		lines := TruncateLines(WrapText(content, s.face, textWidth), cardMaxLines)
		for i, line := range lines {
			s.drawText(screen, line, pos.X+3*cardPadding, pos.Y+cardPadding+float64(i)*lineHeight, fg)
		}
	}
}

// drawThumbnail 在卡片右侧绘制缩略图，图片未就绪时返回 false
func (s *BattleRenderer) drawThumbnail(screen *ebiten.Image, url string, cardX, cardY, alpha float64) bool {
	if s.images == nil {
		return false
	}
	tex := s.images.Texture(url)
	if tex == nil {
		return false
	}
	w, h := tex.Bounds().Dx(), tex.Bounds().Dy()
	if w == 0 || h == 0 {
		return false
	}
	scale := thumbnailSize / float64(max(w, h))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		cardX+config.AnswerCardWidth-cardPadding-thumbnailSize,
		cardY+(config.AnswerCardHeight-float64(h)*scale)/2,
	)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
	return true
}

// cardColor 揭晓后正确项为绿色，选错的为红色
func (s *BattleRenderer) cardColor(snap game.Snapshot, card *components.AnswerCardComponent, answer components.AnswerChoice) color.RGBA {
	if card.Burned {
		return cardBurnedColor
	}
	if !snap.Revealed {
		return cardColor
	}
	if answer.IsCorrect {
		return cardCorrectColor
	}
	if card.Index == snap.SelectedIndex {
		return cardWrongColor
	}
	return cardColor
}

func (s *BattleRenderer) drawPowerUpOffer(screen *ebiten.Image, snap game.Snapshot) {
	const w = 520.0
	x, y := s.drawPanel(screen, w, 80+float64(len(snap.Offer))*60)

	s.drawTextScaled(screen, "Choose a power-up", x+20, y+16, 2, textColor)
	for i, name := range snap.Offer {
		desc := ""
		if p, ok := s.director.Controller().Catalog().Lookup(name); ok {
			desc = p.Description
		}
		rowY := y + 60 + float64(i)*60
		s.drawText(screen, fmt.Sprintf("%d. %s", i+1, name), x+20, rowY, timerColor)
		for j, line := range TruncateLines(WrapText(desc, s.face, w-60), 2) {
			s.drawText(screen, line, x+40, rowY+lineHeight*float64(j+1), dimTextColor)
		}
	}
}

func (s *BattleRenderer) drawGameOver(screen *ebiten.Image, snap game.Snapshot) {
	x, y := s.drawPanel(screen, 420, 160)
	s.drawTextScaled(screen, "GAME OVER", x+20, y+20, 3, enemyColor)
	s.drawText(screen, fmt.Sprintf("Final score %d, reached stage %d", snap.Session.Score, snap.Session.Stage+1), x+20, y+80, textColor)
	s.drawText(screen, "Press R to play again", x+20, y+110, dimTextColor)
}

// drawPanel 变暗背景并居中绘制面板，返回面板左上角
func (s *BattleRenderer) drawPanel(screen *ebiten.Image, w, h float64) (x, y float64) {
	vector.DrawFilledRect(screen, 0, 0, config.GameWindowWidth, config.GameWindowHeight, overlayColor, false)
	x = (config.GameWindowWidth - w) / 2
	y = (config.GameWindowHeight - h) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), panelColor, false)
	return x, y
}

// mix 按 t 从 a 混合到 b
func mix(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp01(t)
	lerp := func(x, y uint8) uint8 { return uint8(utils.Lerp(float64(x), float64(y), t)) }
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// fade 按 alpha 缩放颜色（color.RGBA 为预乘 alpha）
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (s *BattleRenderer) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	s.drawTextScaled(screen, str, x, y, 1, clr)
}

func (s *BattleRenderer) drawTextScaled(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	if str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}
