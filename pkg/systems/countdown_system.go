package systems

import "github.com/decker502/quizbattle/pkg/components"

// CountdownSystem 推进回合倒计时
//
// 倒计时由状态机在进入等待阶段时启动，在选择、暂停、结束时停止。
// 只在 Armed 时递减，到 0 时自动停止并报告到期一次。
type CountdownSystem struct{}

// NewCountdownSystem 创建倒计时系统
func NewCountdownSystem() *CountdownSystem {
	return &CountdownSystem{}
}

// Arm 以指定时长启动倒计时，并记录启动时的阶段代数
func (s *CountdownSystem) Arm(c *components.CountdownComponent, seconds float64, generation uint64) {
	c.Duration = seconds
	c.Remaining = seconds
	c.Armed = true
	c.Generation = generation
}

// Disarm 停止倒计时，保留剩余时间供显示
func (s *CountdownSystem) Disarm(c *components.CountdownComponent) {
	c.Armed = false
}

// Update 推进 dt 秒，返回本次是否到期
func (s *CountdownSystem) Update(c *components.CountdownComponent, dt float64) bool {
	if !c.Armed || dt <= 0 {
		return false
	}
	c.Remaining -= dt
	if c.Remaining > 0 {
		return false
	}
	c.Remaining = 0
	c.Armed = false
	return true
}

// Fraction 剩余比例 [0, 1]，用于倒计时条
func (s *CountdownSystem) Fraction(c *components.CountdownComponent) float64 {
	if c.Duration <= 0 {
		return 0
	}
	f := c.Remaining / c.Duration
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
