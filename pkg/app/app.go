// Package app 提供游戏应用的核心包装器
//
// 该包把初始化逻辑从 main 包提取出来：加载配置和学习集、创建状态机、
// 注册场景，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/ecs"
	"github.com/decker502/quizbattle/pkg/embedded"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/decker502/quizbattle/pkg/render"
	"github.com/decker502/quizbattle/pkg/scenes"
	"github.com/decker502/quizbattle/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "quizbattle"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 战斗配置文件，为空使用嵌入的默认配置
	ConfigPath string
	// SetsDir 学习集目录，为空使用嵌入的学习集
	SetsDir string
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
	// SetTitle 直接以该学习集开局，跳过选集界面
	SetTitle string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	settings     *game.SettingsManager
	images       *render.ImageCache
	log          *logger.Logger

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	log, err := logger.New(logger.ModeFor(cfg.Verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	battleConfig, err := embedded.LoadBattleConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("战斗配置加载失败: %w", err)
	}
	library, err := embedded.LoadLibrary(cfg.SetsDir)
	if err != nil {
		return nil, fmt.Errorf("学习集加载失败: %w", err)
	}
	log.Info("[App] Content loaded", "sets", library.Titles(), "answerCount", battleConfig.AnswerCount)

	// 存储不可用时降级为仅内存设置
	var store *gdata.Manager
	if m, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		log.Warn("[App] Persistent storage unavailable, settings will not be saved", "error", err)
	} else {
		store = m
	}
	settings := game.NewSettingsManager(store, log)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	controller := systems.NewTurnController(systems.TurnControllerOptions{
		Config: battleConfig,
		Rand:   rng,
		Logger: log,
	})
	em := ecs.NewEntityManager()
	director := systems.NewBattleDirector(em, controller, log)

	images := render.NewImageCache(nil, log)
	sceneManager := scenes.NewSceneManager(log)
	sceneManager.Register(scenes.SceneSetSelect, scenes.NewSetSelectScene(library, director, sceneManager, settings, rng, log))
	sceneManager.Register(scenes.SceneBattle, scenes.NewBattleScene(em, director, sceneManager, settings, images, log))

	if err := startScene(cfg.SetTitle, library, director, sceneManager); err != nil {
		images.Close()
		return nil, err
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		images:       images,
		log:          log,
	}, nil
}

// startScene 指定了学习集时直接开局，否则进入选集界面
func startScene(title string, library *dataset.Library, director *systems.BattleDirector, sm *scenes.SceneManager) error {
	if title == "" {
		sm.SwitchToID(scenes.SceneSetSelect)
		return nil
	}
	set, ok := library.Get(title)
	if !ok {
		return fmt.Errorf("unknown content set %q (available: %v)", title, library.Titles())
	}
	if err := director.SelectContentSet(set); err != nil {
		return fmt.Errorf("cannot start with %q: %w", title, err)
	}
	sm.SwitchToID(scenes.SceneBattle)
	return nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}

	a.settings.SetFullscreen(fullscreen)
	if err := a.settings.Save(); err != nil {
		a.log.Warn("[App] Failed to save fullscreen setting", "error", err)
	}
	a.log.Debug("[App] Fullscreen toggled", "fullscreen", fullscreen)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 窗口关闭时保存当前场景状态，停止图片下载并刷新日志
func (a *App) Close() {
	if s, ok := a.sceneManager.GetCurrentScene().(scenes.Saveable); ok {
		s.SaveOnExit()
	}
	a.images.Close()
	a.log.Sync()
}
