package components

// Command 状态机输出的副作用指令
//
// 状态机只描述"发生了什么"，由渲染层决定如何表现。
// 每个事件处理函数返回本次转换产生的指令列表。
type Command interface {
	isCommand()
}

// CmdPlayAnimation 请求播放动画，完成后渲染层需回报 AnimationAck{Phase, Generation}
type CmdPlayAnimation struct {
	Kind       AnimationKind
	Phase      TurnPhase
	Generation uint64
	Target     *LayoutPoint // 上一次回报的布局坐标，可为 nil
}

// CmdArmTimer 倒计时开始
type CmdArmTimer struct {
	Seconds    float64
	Generation uint64
}

// CmdDisarmTimer 倒计时停止
type CmdDisarmTimer struct{}

// HideReason 选项被隐藏的原因
type HideReason int

const (
	HideByLaser HideReason = iota
	HideAnswered
)

// CmdHideChoice 隐藏一个选项
type CmdHideChoice struct {
	Index  int
	Reason HideReason
}

// CmdRevealAnswers 揭晓对错（选项着色）
type CmdRevealAnswers struct {
	SelectedIndex int // 超时为 -1
	Correct       bool
}

// CmdShowPowerUpOffer 展示道具选择
type CmdShowPowerUpOffer struct {
	Offer []PowerUpName
}

// CmdGameOver 游戏结束
type CmdGameOver struct {
	FinalScore int
	Stage      int
}

// CmdSessionReset 会话已重置，回到选集
type CmdSessionReset struct{}

func (CmdPlayAnimation) isCommand()    {}
func (CmdArmTimer) isCommand()         {}
func (CmdDisarmTimer) isCommand()      {}
func (CmdHideChoice) isCommand()       {}
func (CmdRevealAnswers) isCommand()    {}
func (CmdShowPowerUpOffer) isCommand() {}
func (CmdGameOver) isCommand()         {}
func (CmdSessionReset) isCommand()     {}
