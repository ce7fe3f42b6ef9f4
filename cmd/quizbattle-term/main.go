// quizbattle-term 终端版问答对战
//
// 用法：
//
//	go run ./cmd/quizbattle-term [--config data/battle.yaml] [--sets data/sets] [--seed 1]
//
// 日志写入 --log 指定的文件，避免破坏终端画面。
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/decker502/quizbattle/internal/termui"
	"github.com/decker502/quizbattle/pkg/embedded"
	"github.com/decker502/quizbattle/pkg/logger"
	"github.com/decker502/quizbattle/pkg/systems"
)

func main() {
	configPath := flag.String("config", "data/battle.yaml", "战斗配置文件")
	setsDir := flag.String("sets", "data/sets", "学习集目录")
	logPath := flag.String("log", "quizbattle-term.log", "日志文件")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	seed := flag.Int64("seed", 0, "随机种子（0 表示使用当前时间）")
	flag.Parse()

	if err := run(*configPath, *setsDir, *logPath, *verbose, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, setsDir, logPath string, verbose bool, seed int64) error {
	log, err := logger.New(logger.ModeFor(verbose), logPath)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	cfg, err := embedded.LoadBattleConfig(configPath)
	if err != nil {
		return err
	}
	library, err := embedded.LoadLibrary(setsDir)
	if err != nil {
		return err
	}
	if library.Len() == 0 {
		return fmt.Errorf("no study sets found in %s", setsDir)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tc := systems.NewTurnController(systems.TurnControllerOptions{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: log,
	})
	log.Info("[Main] Terminal session ready", "sets", library.Len(), "seed", seed)

	ui := termui.NewTermboxUI()
	if err := ui.Init(); err != nil {
		return err
	}
	defer ui.Close()

	return ui.Run(termui.NewSession(tc, library, ui.Scheduler(), log))
}
