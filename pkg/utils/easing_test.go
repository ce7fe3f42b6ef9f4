package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 所有缓动函数在端点处取值 0 和 1
func TestEasingEndpoints(t *testing.T) {
	funcs := map[string]EasingFunc{
		"linear":    EaseLinear,
		"outCubic":  EaseOutCubic,
		"inCubic":   EaseInCubic,
		"inOutQuad": EaseInOutQuad,
	}

	for name, f := range funcs {
		t.Run(name, func(t *testing.T) {
			if v := f(0); math.Abs(v) > 0.001 {
				t.Errorf("%s(0) = %v, 期望 0", name, v)
			}
			if v := f(1); math.Abs(v-1) > 0.001 {
				t.Errorf("%s(1) = %v, 期望 1", name, v)
			}
		})
	}
}

func TestEaseOutCubic_FasterThanLinear(t *testing.T) {
	for p := 0.1; p < 0.9; p += 0.1 {
		if EaseOutCubic(p) <= p {
			t.Errorf("EaseOutCubic(%v) = %v 应该大于线性值", p, EaseOutCubic(p))
		}
		if EaseInCubic(p) >= p {
			t.Errorf("EaseInCubic(%v) = %v 应该小于线性值", p, EaseInCubic(p))
		}
	}
}

func TestClamp01AndLerp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"负数", -0.5, 0},
		{"区间内", 0.25, 0.25},
		{"超出", 1.7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.in); got != tt.want {
				t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if got := Lerp(100, 300, 0.5); math.Abs(got-200) > 0.001 {
		t.Errorf("Lerp(100, 300, 0.5) = %v, want 200", got)
	}
}
