package systems

import (
	"testing"

	"github.com/decker502/quizbattle/pkg/components"
	"github.com/decker502/quizbattle/pkg/ecs"
)

func TestFlashEffectSystem(t *testing.T) {
	em := ecs.NewEntityManager()
	fs := NewFlashEffectSystem(em)
	id := em.CreateEntity()

	if fs.Intensity(id) != 0 {
		t.Fatal("no flash expected before Trigger")
	}

	fs.Trigger(id, 0.4)
	if got := fs.Intensity(id); got != 1 {
		t.Fatalf("intensity after trigger = %v, want 1", got)
	}

	fs.Update(0.1)
	if got := fs.Intensity(id); got <= 0 || got >= 1 {
		t.Errorf("intensity mid flash = %v, want in (0, 1)", got)
	}

	t.Run("重新触发重新计时", func(t *testing.T) {
		fs.Trigger(id, 0.4)
		if got := fs.Intensity(id); got != 1 {
			t.Errorf("intensity = %v, want 1", got)
		}
	})

	fs.Update(0.5)
	if ecs.HasComponent[*components.FlashEffectComponent](em, id) {
		t.Error("flash component should be removed after duration")
	}
	if fs.Intensity(id) != 0 {
		t.Error("intensity should be 0 after flash ends")
	}
}
