package components

// PowerUpName 道具名称
type PowerUpName string

const (
	// PowerUpLasers 激光：直到下次道具选择前，每回合开场烧掉一个错误选项
	PowerUpLasers PowerUpName = "lasers"
	// PowerUpHealth 回血：立即 +1 生命
	PowerUpHealth PowerUpName = "health"
	// PowerUpScore 加分：立即 +200
	PowerUpScore PowerUpName = "score"
	// PowerUpTimer 延时：倒计时 +1 秒，永久生效
	PowerUpTimer PowerUpName = "timer"
	// PowerUpMultiplier 倍率：答对双倍得分，答错扣分，直到下次道具选择
	PowerUpMultiplier PowerUpName = "multiplier"
)

// AllPowerUps 固定的道具目录顺序
var AllPowerUps = []PowerUpName{
	PowerUpLasers,
	PowerUpHealth,
	PowerUpScore,
	PowerUpTimer,
	PowerUpMultiplier,
}

// Valid 是否为目录中的道具
func (n PowerUpName) Valid() bool {
	for _, p := range AllPowerUps {
		if p == n {
			return true
		}
	}
	return false
}
