// Package palette 提供主题颜色字符串的解析和变换功能。
//
// 主题配置中的颜色统一使用 CSS 十六进制格式（如 "#ff6b00"），
// 本包负责将其转换为 ebiten 渲染所需的 color.RGBA，并提供
// 渐变横幅所需的简单颜色变换（加亮、变暗、调整透明度）。
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Parse 解析十六进制颜色字符串为 color.RGBA
// 支持的格式：
//   - "#rrggbb"    → alpha 固定为 255
//   - "#rrggbbaa"  → 带透明度
//   - "#rgb"       → 短格式，每位重复一次（"#f80" → "#ff8800"）
//
// 返回：
//   - color.RGBA: 解析后的颜色
//   - error: 格式非法时返回错误
func Parse(s string) (color.RGBA, error) {
	raw := strings.TrimSpace(s)
	raw = strings.TrimPrefix(raw, "#")

	// 短格式展开："f80" → "ff8800"
	if len(raw) == 3 {
		var b strings.Builder
		for _, r := range raw {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		raw = b.String()
	}

	if len(raw) != 6 && len(raw) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rgb, #rrggbb or #rrggbbaa", s)
	}

	v, err := strconv.ParseUint(raw, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	if len(raw) == 8 {
		return color.RGBA{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
			A: uint8(v),
		}, nil
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}

// MustParse 解析颜色字符串，失败时返回给定的回退颜色
// 用于主题数据中可能缺失/损坏的颜色字段（配置错误不应导致崩溃）
func MustParse(s string, fallback color.RGBA) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		return fallback
	}
	return c
}

// WithAlpha 返回调整了透明度的颜色副本
// alpha 取值 [0, 1]，超出范围会被截断
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(alpha * 255)
	return c
}

// Lighten 将颜色向白色方向插值
// t 取值 [0, 1]，t=0 返回原色，t=1 返回白色
func Lighten(c color.RGBA, t float64) color.RGBA {
	return lerpRGB(c, color.RGBA{R: 255, G: 255, B: 255, A: c.A}, t)
}

// Darken 将颜色向黑色方向插值
// t 取值 [0, 1]，t=0 返回原色，t=1 返回黑色
func Darken(c color.RGBA, t float64) color.RGBA {
	return lerpRGB(c, color.RGBA{A: c.A}, t)
}

// Mix 在两个颜色之间插值（用于横幅的伪渐变分段填充）
func Mix(a, b color.RGBA, t float64) color.RGBA {
	return lerpRGB(a, b, t)
}

// lerpRGB 对 RGB 分量做线性插值，alpha 取 a 的值
func lerpRGB(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: a.A,
	}
}
