package components

// CountdownComponent 回合倒计时
// 由 CountdownSystem 推进；组件只存储数据
type CountdownComponent struct {
	// Duration 本次倒计时总时长（秒）
	Duration float64

	// Remaining 剩余时间（秒）
	Remaining float64

	// Armed 是否在计时
	// 道具选择和游戏结束阶段必须为 false
	Armed bool

	// Generation 启动时状态机的阶段代数
	// 到期事件只对同一代的等待阶段有效
	Generation uint64
}
