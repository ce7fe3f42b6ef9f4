package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// digitKeys 数字键（主键盘和小键盘）到 0 起始下标的映射
var digitKeys = map[ebiten.Key]int{
	ebiten.Key1: 0, ebiten.KeyNumpad1: 0,
	ebiten.Key2: 1, ebiten.KeyNumpad2: 1,
	ebiten.Key3: 2, ebiten.KeyNumpad3: 2,
	ebiten.Key4: 3, ebiten.KeyNumpad4: 3,
	ebiten.Key5: 4, ebiten.KeyNumpad5: 4,
	ebiten.Key6: 5, ebiten.KeyNumpad6: 5,
	ebiten.Key7: 6, ebiten.KeyNumpad7: 6,
	ebiten.Key8: 7, ebiten.KeyNumpad8: 7,
	ebiten.Key9: 8, ebiten.KeyNumpad9: 8,
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerPosition 获取当前指针位置，优先触摸
func GetPointerPosition() (int, int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// JustPressedDigit 本帧按下的数字键，返回 0 起始下标（"1" 对应 0）
func JustPressedDigit() (int, bool) {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if index, ok := DigitKeyIndex(key); ok {
			return index, true
		}
	}
	return 0, false
}

// DigitKeyIndex 数字键对应的下标
func DigitKeyIndex(key ebiten.Key) (int, bool) {
	index, ok := digitKeys[key]
	return index, ok
}

// IsKeyJustPressed 任意一个键本帧被按下
func IsKeyJustPressed(keys ...ebiten.Key) bool {
	for _, key := range keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	return false
}
