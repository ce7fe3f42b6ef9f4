package systems

import (
	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/ecs"
	"github.com/decker502/quizbattle/pkg/utils"
)

// TweenSystem 推进位移补间动画
//
// 补间结束时实体落在终点；带 Ack 的补间把终点坐标写入 Ack.Layout，
// 由 Update 返回，调用方负责转交给 TurnController。
// 系统本身不调用状态机，避免在遍历实体时触发状态转换。
type TweenSystem struct {
	entityManager *ecs.EntityManager
}

// NewTweenSystem 创建补间系统
func NewTweenSystem(em *ecs.EntityManager) *TweenSystem {
	return &TweenSystem{entityManager: em}
}

// Start 为实体设置从当前位置到 (toX, toY) 的补间，替换正在播放的补间
func (s *TweenSystem) Start(id ecs.EntityID, tween *components.TweenComponent) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		tween.FromX, tween.FromY = pos.X, pos.Y
	}
	ecs.AddComponent(s.entityManager, id, tween)
}

// Update 推进 dt 秒，返回本帧完成的动画回报
func (s *TweenSystem) Update(dt float64) []components.AnimationAck {
	var acks []components.AnimationAck

	entities := ecs.GetEntitiesWith2[*components.TweenComponent, *components.PositionComponent](s.entityManager)
	for _, id := range entities {
		tween, _ := ecs.GetComponent[*components.TweenComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if tween.Finished {
			continue
		}

		tween.Elapsed += dt
		progress := 1.0
		if tween.Duration > 0 {
			progress = utils.Clamp01(tween.Elapsed / tween.Duration)
		}
		eased := progress
		if tween.Easing != nil {
			eased = tween.Easing(progress)
		}
		if progress < 1 {
			pos.X = utils.Lerp(tween.FromX, tween.ToX, eased)
			pos.Y = utils.Lerp(tween.FromY, tween.ToY, eased)
			continue
		}

		pos.X, pos.Y = tween.ToX, tween.ToY

		tween.Finished = true
		if tween.Ack != nil {
			a := *tween.Ack
			a.Layout = &components.LayoutPoint{X: tween.ToX, Y: tween.ToY}
			acks = append(acks, a)
		}

		if tween.Next != nil {
			next := tween.Next
			next.FromX, next.FromY = pos.X, pos.Y
			ecs.AddComponent(s.entityManager, id, next)
		} else {
			ecs.RemoveComponent[*components.TweenComponent](s.entityManager, id)
		}
	}
	return acks
}

// Active 是否还有未完成的补间
func (s *TweenSystem) Active() bool {
	return len(ecs.GetEntitiesWith1[*components.TweenComponent](s.entityManager)) > 0
}
