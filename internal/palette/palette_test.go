package palette

import (
	"image/color"
	"testing"
)

// TestParse 测试十六进制颜色解析
func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected color.RGBA
		wantErr  bool
	}{
		{"标准六位格式", "#ff6b00", color.RGBA{R: 0xff, G: 0x6b, B: 0x00, A: 0xff}, false},
		{"无井号前缀", "8b0000", color.RGBA{R: 0x8b, G: 0x00, B: 0x00, A: 0xff}, false},
		{"八位带透明度", "#ff6b0080", color.RGBA{R: 0xff, G: 0x6b, B: 0x00, A: 0x80}, false},
		{"三位短格式", "#f80", color.RGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}, false},
		{"带空白", "  #4c1d95 ", color.RGBA{R: 0x4c, G: 0x1d, B: 0x95, A: 0xff}, false},
		{"空字符串", "", color.RGBA{}, true},
		{"长度非法", "#ff6b", color.RGBA{}, true},
		{"非十六进制字符", "#zzzzzz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) 期望返回错误，实际返回 %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) 返回错误: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Parse(%q) = %v, 期望 %v", tt.input, got, tt.expected)
			}
		})
	}
}

// TestMustParse 测试带回退的解析
func TestMustParse(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	t.Run("合法颜色忽略回退", func(t *testing.T) {
		got := MustParse("#ffffff", fallback)
		if got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
			t.Errorf("MustParse 返回 %v, 期望白色", got)
		}
	})

	t.Run("非法颜色返回回退", func(t *testing.T) {
		got := MustParse("not-a-color", fallback)
		if got != fallback {
			t.Errorf("MustParse 返回 %v, 期望回退色 %v", got, fallback)
		}
	})
}

// TestWithAlpha 测试透明度调整
func TestWithAlpha(t *testing.T) {
	base := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	tests := []struct {
		name     string
		alpha    float64
		expected uint8
	}{
		{"完全不透明", 1.0, 255},
		{"半透明", 0.5, 127},
		{"完全透明", 0.0, 0},
		{"超出上界截断", 1.5, 255},
		{"超出下界截断", -0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithAlpha(base, tt.alpha)
			if got.A != tt.expected {
				t.Errorf("WithAlpha(%.1f).A = %d, 期望 %d", tt.alpha, got.A, tt.expected)
			}
			// RGB 分量不应改变
			if got.R != base.R || got.G != base.G || got.B != base.B {
				t.Errorf("WithAlpha 不应修改 RGB 分量: %v", got)
			}
		})
	}
}

// TestLightenDarken 测试颜色插值
func TestLightenDarken(t *testing.T) {
	base := color.RGBA{R: 100, G: 100, B: 100, A: 255}

	t.Run("Lighten t=0 返回原色", func(t *testing.T) {
		if got := Lighten(base, 0); got != base {
			t.Errorf("Lighten(base, 0) = %v, 期望 %v", got, base)
		}
	})

	t.Run("Lighten t=1 返回白色", func(t *testing.T) {
		got := Lighten(base, 1)
		if got.R != 255 || got.G != 255 || got.B != 255 {
			t.Errorf("Lighten(base, 1) = %v, 期望白色", got)
		}
	})

	t.Run("Darken t=1 返回黑色", func(t *testing.T) {
		got := Darken(base, 1)
		if got.R != 0 || got.G != 0 || got.B != 0 {
			t.Errorf("Darken(base, 1) = %v, 期望黑色", got)
		}
	})

	t.Run("Mix 中点", func(t *testing.T) {
		a := color.RGBA{R: 0, G: 0, B: 0, A: 255}
		b := color.RGBA{R: 200, G: 100, B: 50, A: 255}
		got := Mix(a, b, 0.5)
		if got.R != 100 || got.G != 50 || got.B != 25 {
			t.Errorf("Mix 中点 = %v, 期望 {100 50 25 255}", got)
		}
	})
}
