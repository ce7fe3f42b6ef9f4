package components

// FlashEffectComponent 受击闪白
//
// Intensity 从 1 线性衰减到 0，渲染时按强度向白色混合。
// 到期后由 FlashEffectSystem 移除。
type FlashEffectComponent struct {
	Duration  float64
	Elapsed   float64
	Intensity float64
}
