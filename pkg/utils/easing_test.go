package utils

import (
	"math"
	"testing"
)

// TestEasingEndpoints 测试所有缓动函数的端点值
func TestEasingEndpoints(t *testing.T) {
	funcs := []struct {
		name string
		fn   func(float64) float64
	}{
		{"EaseLinear", EaseLinear},
		{"EaseInQuad", EaseInQuad},
		{"EaseOutQuad", EaseOutQuad},
		{"EaseOutCubic", EaseOutCubic},
		{"EaseInOutSine", EaseInOutSine},
	}

	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			if got := f.fn(0); math.Abs(got) > 1e-3 {
				t.Errorf("%s(0) = %v, 期望 0", f.name, got)
			}
			if got := f.fn(1); math.Abs(got-1) > 1e-3 {
				t.Errorf("%s(1) = %v, 期望 1", f.name, got)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出的数值和单调性
func TestEaseOutCubic(t *testing.T) {
	t.Run("中点", func(t *testing.T) {
		// 1 - (1-0.5)^3 = 0.875
		if got := EaseOutCubic(0.5); math.Abs(got-0.875) > 1e-3 {
			t.Errorf("EaseOutCubic(0.5) = %v, 期望 0.875", got)
		}
	})

	t.Run("单调递增", func(t *testing.T) {
		prev := EaseOutCubic(0)
		for p := 0.1; p <= 1.0; p += 0.1 {
			cur := EaseOutCubic(p)
			if cur < prev {
				t.Errorf("EaseOutCubic 在 %v 处不单调: %v < %v", p, cur, prev)
			}
			prev = cur
		}
	})

	t.Run("前半段快于线性", func(t *testing.T) {
		for p := 0.1; p < 0.5; p += 0.1 {
			if EaseOutCubic(p) <= p {
				t.Errorf("EaseOutCubic(%v) 应大于线性值（开始快）", p)
			}
		}
	})
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 10, 20, 0, 10},
		{"终点", 10, 20, 1, 20},
		{"中点", 10, 20, 0.5, 15},
		{"反向区间", 20, 10, 0.5, 15},
		{"负值", -10, 10, 0.25, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.expected) > 1e-3 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}

// TestClamp01 测试进度截断
func TestClamp01(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"区间内不变", 0.5, 0.5},
		{"下界", 0, 0},
		{"上界", 1, 1},
		{"越下界", -0.3, 0},
		{"越上界", 1.7, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp01(tt.input); got != tt.expected {
				t.Errorf("Clamp01(%v) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}
