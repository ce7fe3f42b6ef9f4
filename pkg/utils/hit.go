// Package utils 提供通用工具函数
package utils

// PointInRect 点 (px, py) 是否在矩形内（含左上边界，不含右下边界）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}

// HitIndex 返回点击命中的矩形下标，未命中返回 -1
//
// skip 不为 nil 且返回 true 的下标不参与命中测试。
func HitIndex(px, py float64, count int, rect func(i int) (x, y, w, h float64), skip func(i int) bool) int {
	for i := 0; i < count; i++ {
		if skip != nil && skip(i) {
			continue
		}
		x, y, w, h := rect(i)
		if PointInRect(px, py, x, y, w, h) {
			return i
		}
	}
	return -1
}
