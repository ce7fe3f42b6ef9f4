package embedded

import (
	"fmt"
	"os"

	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/dataset"
)

// 嵌入数据中的默认路径
const (
	BattleConfigPath = "data/battle.yaml"
	SetsDir          = "data/sets"
)

// LoadBattleConfig 加载战斗配置
// path 非空时从磁盘读取，否则使用嵌入的默认配置
func LoadBattleConfig(path string) (*config.BattleConfig, error) {
	if path != "" {
		return config.LoadBattleConfig(path)
	}
	data, err := ReadFile(BattleConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded battle config: %w", err)
	}
	return config.ParseBattleConfig(data)
}

// LoadLibrary 加载学习集合集
// dir 非空时从磁盘目录读取，否则使用嵌入的学习集
func LoadLibrary(dir string) (*dataset.Library, error) {
	if dir != "" {
		return dataset.LoadLibrary(os.DirFS(dir), ".")
	}
	sets, err := Sub(SetsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded sets: %w", err)
	}
	return dataset.LoadLibrary(sets, ".")
}
