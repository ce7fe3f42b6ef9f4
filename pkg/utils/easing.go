package utils

import "math"

// EasingFunc 缓动函数类型
// 输入进度 t ∈ [0, 1]，返回缓动后的进度
type EasingFunc func(t float64) float64

// EaseLinear 匀速
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic 三次方缓出：先快后慢
// 用于角色冲向目标
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic 三次方缓入：先慢后快
// 用于角色退回原位
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutQuad 二次方缓入缓出
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Clamp01 将值限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
