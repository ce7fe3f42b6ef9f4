package systems

import (
	"math/rand"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/config"
	"github.com/decker502/quizbattle/pkg/game"
	"github.com/decker502/quizbattle/pkg/utils"
)

// PowerUp 道具目录条目，不可变
type PowerUp struct {
	Name        components.PowerUpName
	Description string
	Effect      func(s *game.SessionState)
}

// PowerUpCatalog 固定的道具目录
type PowerUpCatalog struct {
	entries []PowerUp
	byName  map[components.PowerUpName]PowerUp
}

// NewPowerUpCatalog 按配置构建道具目录
//
// 道具效果：
//   - lasers: 开启激光，直到下次道具选择
//   - health: +1 生命，生命轨迹延长
//   - score: 直接加分
//   - timer: 倒计时延长，永久生效
//   - multiplier: 开启倍率，直到下次道具选择
func NewPowerUpCatalog(cfg *config.BattleConfig, ledger *ScoreLedger, lives *LivesTracker) *PowerUpCatalog {
	effects := map[components.PowerUpName]func(s *game.SessionState){
		components.PowerUpLasers: func(s *game.SessionState) {
			s.LasersActive = true
		},
		components.PowerUpHealth: lives.GainLife,
		components.PowerUpScore:  ledger.AddBonus,
		components.PowerUpTimer: func(s *game.SessionState) {
			s.DifficultyTimerSeconds += cfg.TimerBonusSeconds
		},
		components.PowerUpMultiplier: func(s *game.SessionState) {
			s.MultiplierActive = true
		},
	}

	c := &PowerUpCatalog{byName: make(map[components.PowerUpName]PowerUp, len(cfg.PowerUps))}
	for _, entry := range cfg.PowerUps {
		p := PowerUp{
			Name:        entry.Name,
			Description: entry.Description,
			Effect:      effects[entry.Name],
		}
		c.entries = append(c.entries, p)
		c.byName[p.Name] = p
	}
	return c
}

// Entries 返回目录副本
func (c *PowerUpCatalog) Entries() []PowerUp {
	return append([]PowerUp(nil), c.entries...)
}

// Lookup 按名称查找
func (c *PowerUpCatalog) Lookup(name components.PowerUpName) (PowerUp, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// PowerUpSelector 在里程碑时抽取道具
type PowerUpSelector struct {
	catalog   *PowerUpCatalog
	rng       *rand.Rand
	offerSize int
}

// NewPowerUpSelector 创建道具选择器
func NewPowerUpSelector(catalog *PowerUpCatalog, rng *rand.Rand, offerSize int) *PowerUpSelector {
	return &PowerUpSelector{catalog: catalog, rng: rng, offerSize: offerSize}
}

// Offer 目录的随机排列取前 offerSize 个，互不重复
func (s *PowerUpSelector) Offer() []PowerUp {
	return utils.SampleN(s.rng, s.catalog.entries, s.offerSize)
}

// ClearScoped 清除"直到下次道具选择"的效果
// 每次道具选择都从干净状态开始，与上次选了什么无关
func (s *PowerUpSelector) ClearScoped(state *game.SessionState) {
	state.LasersActive = false
	state.MultiplierActive = false
}

// Apply 应用 offer 中名为 name 的道具
//
// 返回：
//   - error: name 不在 offer 中时返回 *game.InvalidPowerUpError，状态不变
func (s *PowerUpSelector) Apply(state *game.SessionState, offer []PowerUp, name components.PowerUpName) error {
	for _, p := range offer {
		if p.Name != name {
			continue
		}
		s.ClearScoped(state)
		if p.Effect != nil {
			p.Effect(state)
		}
		return nil
	}
	return &game.InvalidPowerUpError{Name: name, Offer: PowerUpNames(offer)}
}

// PowerUpNames 提取道具名称
func PowerUpNames(offer []PowerUp) []components.PowerUpName {
	names := make([]components.PowerUpName, len(offer))
	for i, p := range offer {
		names[i] = p.Name
	}
	return names
}
