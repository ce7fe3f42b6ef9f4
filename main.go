package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/quizbattle/pkg/app"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志")
	configPath := flag.String("config", "", "战斗配置文件（默认使用内置配置）")
	setsDir := flag.String("sets", "", "学习集目录（默认使用内置学习集）")
	setTitle := flag.String("set", "", "直接以指定学习集开局")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	embedded.Init(dataFS)

	game, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		SetsDir:    *setsDir,
		Seed:       *seed,
		SetTitle:   *setTitle,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Quiz Battle")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "运行错误: %v\n", err)
		game.Close()
		os.Exit(1)
	}
	game.Close()
}
