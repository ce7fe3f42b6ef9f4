package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/decker502/quizbattle/pkg/render"
	"github.com/decker502/quizbattle/pkg/systems"
	"github.com/decker502/quizbattle/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// randomTabTitle 最后一个标签：在当前分类内随机选择学习集
const randomTabTitle = "Random"

// bannerDuration 错误提示显示时长（秒）
const bannerDuration = 3.0

var (
	selectBackground = color.RGBA{24, 28, 40, 255}
	tabColor         = color.RGBA{52, 60, 84, 255}
	tabHoverColor    = color.RGBA{80, 92, 128, 255}
	tabLastColor     = color.RGBA{60, 110, 90, 255}
	categoryColor    = color.RGBA{40, 46, 66, 255}
	categoryOnColor  = color.RGBA{70, 150, 230, 255}
	tabTextColor     = color.RGBA{235, 235, 240, 255}
	bannerColor      = color.RGBA{180, 60, 60, 255}
)

// SetSelectScene 学习集选择场景
//
// 上方一行分类标签，下方是当前分类的学习集标签，外加一个随机标签。
// 选中后调用 SelectContentSet 开局；卡片不足时显示提示并留在本场景。
type SetSelectScene struct {
	library      *dataset.Library
	director     *systems.BattleDirector
	sceneManager *SceneManager
	settings     *game.SettingsManager
	log          *logger.Logger
	rng          *rand.Rand
	face         text.Face

	categories []string
	category   int
	titles     []string
	hover      int
	banner string
	// bannerTimer 提示剩余显示时间
	bannerTimer float64
}

// NewSetSelectScene 创建选集场景
func NewSetSelectScene(library *dataset.Library, director *systems.BattleDirector, sm *SceneManager,
	settings *game.SettingsManager, rng *rand.Rand, log *logger.Logger) *SetSelectScene {
	s := &SetSelectScene{
		library:      library,
		director:     director,
		sceneManager: sm,
		settings:     settings,
		rng:          rng,
		log:          logger.OrNop(log),
		face:         text.NewGoXFace(basicfont.Face7x13),
		categories:   library.Categories(),
		hover:        -1,
	}
	s.selectCategory(s.lastCategory())
	return s
}

// OnEnter 回到选集界面时清除旧提示，并切到上次学习集所在的分类
func (s *SetSelectScene) OnEnter() {
	s.banner = ""
	s.bannerTimer = 0
	s.selectCategory(s.lastCategory())
}

// selectCategory 切换分类并刷新学习集标签，越界时回到第一个分类
func (s *SetSelectScene) selectCategory(i int) {
	if i < 0 || i >= len(s.categories) {
		i = 0
	}
	s.category = i
	s.titles = []string{randomTabTitle}
	if len(s.categories) > 0 {
		s.titles = append(s.library.TitlesIn(s.categories[i]), randomTabTitle)
	}
}

// lastCategory 上次选择的学习集所在分类下标，没有时为 0
func (s *SetSelectScene) lastCategory() int {
	set, ok := s.library.Get(s.settings.GetSettings().LastSetTitle)
	if !ok {
		return 0
	}
	for i, category := range s.categories {
		if category == set.CategoryName() {
			return i
		}
	}
	return 0
}

// Update 处理标签点击和数字键
func (s *SetSelectScene) Update(deltaTime float64) {
	if s.bannerTimer > 0 {
		s.bannerTimer -= deltaTime
		if s.bannerTimer <= 0 {
			s.banner = ""
		}
	}

	px, py := render.GetPointerPosition()
	s.hover = s.tabAt(float64(px), float64(py))

	if clicked, x, y := render.IsJustTouchedOrClicked(); clicked {
		if i := s.categoryAt(float64(x), float64(y)); i >= 0 {
			s.selectCategory(i)
			return
		}
		if i := s.tabAt(float64(x), float64(y)); i >= 0 {
			s.choose(i)
			return
		}
	}
	if render.IsKeyJustPressed(ebiten.KeyTab, ebiten.KeyRight) && len(s.categories) > 0 {
		s.selectCategory((s.category + 1) % len(s.categories))
		return
	}
	if render.IsKeyJustPressed(ebiten.KeyLeft) && len(s.categories) > 0 {
		s.selectCategory((s.category + len(s.categories) - 1) % len(s.categories))
		return
	}
	if i, ok := render.JustPressedDigit(); ok && i < len(s.titles) {
		s.choose(i)
		return
	}
	if render.IsKeyJustPressed(ebiten.KeyEnter) {
		if i := s.lastIndex(); i >= 0 {
			s.choose(i)
		}
	}
}

func (s *SetSelectScene) tabAt(x, y float64) int {
	return utils.HitIndex(x, y, len(s.titles), func(i int) (float64, float64, float64, float64) {
		tx, ty := config.TabPosition(i)
		return tx, ty, config.TabWidth, config.TabHeight
	}, nil)
}

func (s *SetSelectScene) categoryAt(x, y float64) int {
	return utils.HitIndex(x, y, len(s.categories), func(i int) (float64, float64, float64, float64) {
		cx, cy := config.CategoryTabPosition(i)
		return cx, cy, config.CategoryTabWidth, config.CategoryTabHeight
	}, nil)
}

// lastIndex 上次选择的学习集下标，没有时为 -1
func (s *SetSelectScene) lastIndex() int {
	last := s.settings.GetSettings().LastSetTitle
	for i, title := range s.titles {
		if title == last && title != randomTabTitle {
			return i
		}
	}
	return -1
}

// choose 选择第 i 个标签并开局
func (s *SetSelectScene) choose(i int) {
	var set *dataset.ContentSet
	if s.titles[i] == randomTabTitle {
		if len(s.categories) > 0 {
			set = s.library.GetRandomSetIn(s.categories[s.category], s.rng)
		}
	} else {
		set, _ = s.library.Get(s.titles[i])
	}

	if err := s.director.SelectContentSet(set); err != nil {
		s.showError(err)
		return
	}

	s.settings.SetLastSetTitle(set.Title)
	if err := s.settings.Save(); err != nil {
		s.log.Warn("[SetSelectScene] Failed to save settings", "error", err)
	}
	s.sceneManager.SwitchToID(SceneBattle)
}

func (s *SetSelectScene) showError(err error) {
	var insufficient *game.InsufficientContentError
	switch {
	case errors.As(err, &insufficient):
		s.banner = fmt.Sprintf("%q has only %d cards, %d needed", insufficient.Title, insufficient.Have, insufficient.Need)
	case errors.Is(err, game.ErrNoContentSet):
		s.banner = "No content sets available"
	default:
		s.banner = err.Error()
	}
	s.bannerTimer = bannerDuration
	s.log.Warn("[SetSelectScene] Cannot start battle", "error", err)
}

// Draw 绘制标签和提示
func (s *SetSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(selectBackground)
	s.drawText(screen, "Choose a study set", config.TabsStartX, 60, 3)
	s.drawText(screen, "Click a tab or press its number. Tab switches category, Enter repeats the last set.", config.TabsStartX, 105, 1)

	for i, category := range s.categories {
		x, y := config.CategoryTabPosition(i)
		clr := categoryColor
		if i == s.category {
			clr = categoryOnColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), config.CategoryTabWidth, config.CategoryTabHeight, clr, false)
		label := render.TruncateLines(render.WrapText(category, s.face, config.CategoryTabWidth-16), 1)
		s.drawText(screen, label[0], x+8, y+12, 1)
	}

	last := s.lastIndex()
	for i, title := range s.titles {
		x, y := config.TabPosition(i)
		clr := tabColor
		switch {
		case i == s.hover:
			clr = tabHoverColor
		case i == last:
			clr = tabLastColor
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), config.TabWidth, config.TabHeight, clr, false)

		label := fmt.Sprintf("%d  %s", i+1, title)
		if best, ok := s.settings.BestScore(title); ok {
			label = fmt.Sprintf("%s (%d)", label, best)
		}
		lines := render.TruncateLines(render.WrapText(label, s.face, config.TabWidth-16), 2)
		for j, line := range lines {
			s.drawText(screen, line, x+8, y+8+float64(j)*16, 1)
		}
	}

	if s.banner != "" {
		vector.DrawFilledRect(screen, 0, config.GameWindowHeight-60, config.GameWindowWidth, 40, bannerColor, false)
		s.drawText(screen, s.banner, config.TabsStartX, config.GameWindowHeight-48, 1)
	}
}

func (s *SetSelectScene) drawText(screen *ebiten.Image, str string, x, y, scale float64) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tabTextColor)
	text.Draw(screen, str, s.face, op)
}
