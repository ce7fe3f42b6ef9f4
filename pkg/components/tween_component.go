package components

// PositionComponent 屏幕坐标
type PositionComponent struct {
	X, Y float64
}

// TweenComponent 位移补间动画
//
// TweenSystem 每帧推进 Elapsed，到达 Duration 后把实体放到终点，
// 并在 Ack 非空时向状态机回报动画完成。
type TweenComponent struct {
	FromX, FromY float64
	ToX, ToY     float64
	Duration     float64
	Elapsed      float64
	Easing       func(t float64) float64

	// Ack 动画结束后要回报的内容；链式动画（如攻击后返回）的第一段为 nil
	Ack *AnimationAck

	// Next 本段结束后接着播放的补间
	Next *TweenComponent

	Finished bool
}

// ActorRole 角色
type ActorRole int

const (
	ActorPlayer ActorRole = iota
	ActorEnemy
)

// ActorComponent 标记玩家或敌人实体
type ActorComponent struct {
	Role   ActorRole
	HomeX  float64
	HomeY  float64
	Damage int // 累计受到的攻击次数，渲染用
}

// AnswerCardComponent 答案卡片实体
//
// 卡片内容从快照读取，组件只保存显示状态。
type AnswerCardComponent struct {
	Index int

	// Alpha 不透明度，被隐藏后逐渐淡出
	Alpha  float64
	Fading bool
	// Burned 被激光烧掉（渲染为焦黑）
	Burned bool
}
