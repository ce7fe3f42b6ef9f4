package config

// 布局配置常量
// 坐标均为逻辑屏幕坐标，ebiten 负责缩放到实际窗口

// 窗口
const (
	GameWindowWidth  = 960
	GameWindowHeight = 540
)

// 战斗场景
const (
	// HUDHeight 顶部状态栏高度
	HUDHeight = 50.0

	// PlayerHomeX / PlayerHomeY 玩家待机位置
	PlayerHomeX = 120.0
	PlayerHomeY = 260.0

	// EnemyHomeX / EnemyHomeY 敌人站位（入场动画终点）
	EnemyHomeX = 520.0
	EnemyHomeY = 260.0

	// EnemySpawnX 敌人入场动画起点（屏幕右外侧）
	EnemySpawnX = 760.0

	// ActorSize 角色方块边长
	ActorSize = 80.0

	// AnswerColumnX 答案列左边界
	AnswerColumnX = 660.0

	// AnswerCardWidth / AnswerCardHeight 答案卡片尺寸
	AnswerCardWidth  = 280.0
	AnswerCardHeight = 100.0

	// AnswerCardGap 答案卡片间距
	AnswerCardGap = 12.0

	// TermBoxX / TermBoxY 题目显示位置
	TermBoxX = 40.0
	TermBoxY = 120.0

	// TimerBarX / TimerBarY / TimerBarWidth 倒计时条
	TimerBarX     = 40.0
	TimerBarY     = 70.0
	TimerBarWidth = 560.0
)

// 选集场景：上方一行分类标签，下方为当前分类的学习集标签
const (
	CategoryTabWidth  = 130.0
	CategoryTabHeight = 36.0
	CategoryTabsY     = 140.0

	TabWidth   = 180.0
	TabHeight  = 50.0
	TabGap     = 16.0
	TabsStartX = 40.0
	TabsStartY = 200.0
	TabsPerRow = 4
)

// AnswerCardY 返回第 index 张答案卡片的 Y 坐标
func AnswerCardY(index int) float64 {
	return HUDHeight + AnswerCardGap + float64(index)*(AnswerCardHeight+AnswerCardGap)
}

// CategoryTabPosition 返回第 index 个分类标签的左上角坐标
func CategoryTabPosition(index int) (x, y float64) {
	return TabsStartX + float64(index)*(CategoryTabWidth+TabGap), CategoryTabsY
}

// TabPosition 返回第 index 个选集标签的左上角坐标
func TabPosition(index int) (x, y float64) {
	col := index % TabsPerRow
	row := index / TabsPerRow
	return TabsStartX + float64(col)*(TabWidth+TabGap), TabsStartY + float64(row)*(TabHeight+TabGap)
}
