// Package elements 实现叠加层中的各个界面元素。
//
// 每个元素实现 overlay.Element：邀请弹窗、顶部横幅、角落幽灵、
// 动画画布、问答面板、奖励与告别消息、页面背景。元素只管理自己的
// 展示与输入，阶段切换由生命周期编排器驱动。
package elements

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/necromirror/internal/palette"
	"github.com/decker502/necromirror/pkg/theme"
	"github.com/decker502/necromirror/pkg/utils"
)

// Style 元素共享的主题样式
// 颜色在构造时解析一次，非法颜色回落到内置默认
type Style struct {
	Theme      *theme.Descriptor
	Face       text.Face
	W, H       float64
	Primary    color.RGBA
	Secondary  color.RGBA
	Background color.RGBA
}

// NewStyle 从主题描述符构造样式
func NewStyle(desc *theme.Descriptor, face text.Face, w, h float64) Style {
	return Style{
		Theme:      desc,
		Face:       face,
		W:          w,
		H:          h,
		Primary:    palette.MustParse(desc.PrimaryColor, color.RGBA{139, 92, 246, 255}),
		Secondary:  palette.MustParse(desc.SecondaryColor, color.RGBA{196, 181, 253, 255}),
		Background: palette.MustParse(desc.BackgroundColor, color.RGBA{24, 24, 37, 255}),
	}
}

// drawPanel 绘制面板：半透明底 + 主色描边
func drawPanel(dst *ebiten.Image, r utils.Rect, s Style, alpha float64) {
	fill := palette.WithAlpha(palette.Darken(s.Background, 0.2), alpha*0.95)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, true)
	border := palette.WithAlpha(s.Primary, alpha)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, border, true)
}

// drawButton 绘制按钮：主色底 + 标题 + 可选副标题
func drawButton(dst *ebiten.Image, r utils.Rect, label, subtitle string, s Style, alpha float64) {
	fill := palette.WithAlpha(s.Primary, alpha*0.85)
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, true)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1.5,
		palette.WithAlpha(palette.Lighten(s.Primary, 0.3), alpha), true)

	cx, cy := r.Center()
	if subtitle == "" {
		drawCenteredText(dst, label, s.Face, cx, cy-9, color.RGBA{255, 255, 255, 255}, alpha)
		return
	}
	drawCenteredText(dst, label, s.Face, cx, cy-19, color.RGBA{255, 255, 255, 255}, alpha)
	drawCenteredText(dst, subtitle, s.Face, cx, cy+3, palette.WithAlpha(color.RGBA{255, 255, 255, 255}, 0.7), alpha)
}

// drawCenteredText 以 (cx, y) 为锚点水平居中绘制一行文字，带阴影
// 字体缺失时静默跳过
func drawCenteredText(dst *ebiten.Image, textStr string, face text.Face, cx, y float64, clr color.RGBA, alpha float64) {
	if face == nil || textStr == "" {
		return
	}
	shadowOp := &text.DrawOptions{}
	shadowOp.GeoM.Translate(cx+1, y+1)
	shadowOp.PrimaryAlign = text.AlignCenter
	shadowOp.SecondaryAlign = text.AlignStart
	shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 120})
	shadowOp.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, textStr, face, shadowOp)

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignStart
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, textStr, face, op)
}
