package game

import (
	"errors"
	"fmt"

	"github.com/decker502/quizbattle/pkg/components"
)

var (
	// ErrInputNotAccepted 当前阶段不接受该输入（如非等待阶段的选择、游戏结束后的选择）
	ErrInputNotAccepted = errors.New("input not accepted in current phase")

	// ErrNoContentSet 未提供学习集
	ErrNoContentSet = errors.New("no content set selected")

	// ErrReentrantEvent 在快照回调中再次调用状态机
	ErrReentrantEvent = errors.New("re-entrant event while a transition is in progress")
)

// InsufficientContentError 学习集卡片数少于每回合所需选项数
type InsufficientContentError struct {
	Title string
	Have  int
	Need  int
}

func (e *InsufficientContentError) Error() string {
	return fmt.Sprintf("content set %q has %d items, need at least %d", e.Title, e.Have, e.Need)
}

// InvalidSelectionError 选择下标越界
type InvalidSelectionError struct {
	Index int
	Count int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("selection index %d out of range [0, %d)", e.Index, e.Count)
}

// InvalidPowerUpError 选择的道具不在当前提供的列表中
type InvalidPowerUpError struct {
	Name  components.PowerUpName
	Offer []components.PowerUpName
}

func (e *InvalidPowerUpError) Error() string {
	return fmt.Sprintf("power-up %q is not in the current offer %v", e.Name, e.Offer)
}
