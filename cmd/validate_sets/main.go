// validate_sets 检查学习集目录中的 YAML 文件
//
// 用法：
//
//	go run ./cmd/validate_sets [--sets data/sets] [--config data/battle.yaml]
//
// 卡片数不足每回合选项数的学习集视为错误，退出码为 1。
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/decker502/quizbattle/pkg/dataset"
	"github.com/decker502/quizbattle/pkg/embedded"
	"github.com/decker502/quizbattle/pkg/logger"
)

func main() {
	setsDir := flag.String("sets", "data/sets", "学习集目录")
	configPath := flag.String("config", "data/battle.yaml", "战斗配置文件（读取每回合选项数）")
	verbose := flag.Bool("verbose", false, "启用详细日志")
	flag.Parse()

	log, err := logger.New(logger.ModeFor(*verbose))
	if err != nil {
		fmt.Printf("❌ 创建日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg, err := embedded.LoadBattleConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ 读取配置失败: %v\n", err)
		os.Exit(1)
	}
	library, err := embedded.LoadLibrary(*setsDir)
	if err != nil {
		fmt.Printf("❌ 加载学习集失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ 学习集数量: %d（每回合 %d 个选项）\n", library.Len(), cfg.AnswerCount)

	unplayable := 0
	for _, title := range library.Titles() {
		set, _ := library.Get(title)
		issues := dataset.Validate(set, cfg.AnswerCount)
		log.Debug("[ValidateSets] Checked set", "title", title, "items", set.Len(), "issues", len(issues))

		if len(issues) == 0 {
			fmt.Printf("✅ %s: %d 张卡\n", title, set.Len())
			continue
		}
		if set.Len() < cfg.AnswerCount {
			unplayable++
		}
		fmt.Printf("⚠️  %s: %d 张卡\n", title, set.Len())
		for _, issue := range issues {
			fmt.Printf("    - %s\n", issue)
		}
	}

	if unplayable > 0 {
		fmt.Printf("❌ 有 %d 个学习集无法开局\n", unplayable)
		os.Exit(1)
	}
}
