package systems

import (
	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/ecs"
	"github.com/decker502/quizbattle/pkg/utils"
)

// FlashEffectSystem 管理受击闪白的生命周期
type FlashEffectSystem struct {
	entityManager *ecs.EntityManager
}

// NewFlashEffectSystem 创建闪白系统
func NewFlashEffectSystem(em *ecs.EntityManager) *FlashEffectSystem {
	return &FlashEffectSystem{entityManager: em}
}

// Trigger 让实体闪白 duration 秒，已在闪烁时重新计时
func (s *FlashEffectSystem) Trigger(id ecs.EntityID, duration float64) {
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
		flash.Duration = duration
		flash.Elapsed = 0
		flash.Intensity = 1
		return
	}
	ecs.AddComponent(s.entityManager, id, &components.FlashEffectComponent{Duration: duration, Intensity: 1})
}

// Update 衰减强度，到期移除组件
func (s *FlashEffectSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.FlashEffectComponent](s.entityManager) {
		flash, _ := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id)
		flash.Elapsed += dt
		if flash.Elapsed >= flash.Duration {
			ecs.RemoveComponent[*components.FlashEffectComponent](s.entityManager, id)
			continue
		}
		flash.Intensity = 1 - utils.Clamp01(flash.Elapsed/flash.Duration)
	}
}

// Intensity 实体当前的闪白强度，没有闪烁时为 0
func (s *FlashEffectSystem) Intensity(id ecs.EntityID) float64 {
	if flash, ok := ecs.GetComponent[*components.FlashEffectComponent](s.entityManager, id); ok {
		return flash.Intensity
	}
	return 0
}
