package anim

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/necromirror/internal/palette"
	"github.com/decker502/necromirror/pkg/utils"
)

// 横幅布局常量
const (
	bannerMaxWidth   = 340.0 // 横幅最大宽度
	bannerPadding    = 18.0  // 内边距
	bannerLineHeight = 26.0  // 行高
	bannerCorner     = 10.0  // 圆角半径
)

// Banner 动画内的浮动文案横幅
//
// 文案在构造时按宽度折行，之后只随动画阶段改变透明度。
// 字体缺失时只绘制面板不绘制文字，布局不受影响。
type Banner struct {
	lines []string
	face  text.Face
	w, h  float64
	from  color.RGBA // 渐变起始色
	to    color.RGBA // 渐变结束色
}

// NewBanner 构造横幅并完成折行布局
func NewBanner(textStr string, face text.Face, primary color.RGBA) *Banner {
	lines := utils.WrapText(textStr, face, bannerMaxWidth-2*bannerPadding)
	w := 0.0
	for _, line := range lines {
		if lw := utils.MeasureTextWidth(line, face); lw > w {
			w = lw
		}
	}
	return &Banner{
		lines: lines,
		face:  face,
		w:     w + 2*bannerPadding,
		h:     float64(len(lines))*bannerLineHeight + 2*bannerPadding,
		from:  palette.Darken(primary, 0.35),
		to:    palette.Lighten(primary, 0.15),
	}
}

// Size 返回横幅的布局尺寸
func (b *Banner) Size() (float64, float64) {
	return b.w, b.h
}

// Draw 以 (cx, cy) 为中心按给定透明度绘制横幅
func (b *Banner) Draw(dst *ebiten.Image, cx, cy, alpha float64) {
	if alpha <= 0 || len(b.lines) == 0 {
		return
	}
	alpha = utils.Clamp01(alpha)
	x := cx - b.w/2
	y := cy - b.h/2

	// 垂直渐变：用横向条带叠出
	bands := int(b.h / 4)
	if bands < 1 {
		bands = 1
	}
	for i := 0; i < bands; i++ {
		t := float64(i) / float64(bands)
		clr := palette.WithAlpha(palette.Mix(b.from, b.to, t), alpha*0.92)
		bandY := y + t*b.h
		bandH := b.h/float64(bands) + 1
		vector.DrawFilledRect(dst, float32(x), float32(bandY), float32(b.w), float32(bandH), clr, true)
	}
	// 圆角近似：四角补圆
	corner := palette.WithAlpha(palette.Mix(b.from, b.to, 0.5), alpha*0.92)
	vector.DrawFilledCircle(dst, float32(x+bannerCorner), float32(y+b.h/2), float32(b.h/2), corner, true)
	vector.DrawFilledCircle(dst, float32(x+b.w-bannerCorner), float32(y+b.h/2), float32(b.h/2), corner, true)

	// 描边
	vector.StrokeRect(dst, float32(x), float32(y), float32(b.w), float32(b.h), 2,
		palette.WithAlpha(color.RGBA{255, 255, 255, 255}, alpha*0.5), true)

	if b.face == nil {
		return
	}
	for i, line := range b.lines {
		lineY := y + bannerPadding + float64(i)*bannerLineHeight

		shadowOp := &text.DrawOptions{}
		shadowOp.GeoM.Translate(cx+1, lineY+1)
		shadowOp.PrimaryAlign = text.AlignCenter
		shadowOp.SecondaryAlign = text.AlignStart
		shadowOp.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 140})
		shadowOp.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(dst, line, b.face, shadowOp)

		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, lineY)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignStart
		op.ColorScale.ScaleWithColor(color.RGBA{255, 255, 255, 255})
		op.ColorScale.ScaleAlpha(float32(alpha))
		text.Draw(dst, line, b.face, op)
	}
}
