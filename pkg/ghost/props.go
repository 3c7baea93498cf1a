package ghost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/necromirror/internal/palette"
)

// 动画道具的程序化绘制
// 与幽灵本体一样以中心为原点、按 scale 缩放

// DrawPlane 绘制幽灵乘坐的纸飞机（机身 + 双翼 + 尾翼）
// clr 为主题主色
func DrawPlane(dst *ebiten.Image, x, y, scale float64, clr color.RGBA, alpha float64) {
	if dst == nil || alpha <= 0 {
		return
	}
	body := palette.WithAlpha(clr, alpha*0.9)

	// 机身：横向长条
	bw := float32(100 * scale)
	bh := float32(12 * scale)
	cx, cy := float32(x), float32(y)
	vector.DrawFilledRect(dst, cx-bw/2, cy, bw, bh, body, true)

	// 机头：短三角近似（纵向渐窄的矩形条）
	nose := float32(12 * scale)
	vector.DrawFilledRect(dst, cx+bw/2, cy+bh/4, nose, bh/2, body, true)

	// 双翼：斜线描边加粗
	wingW := float32(6 * scale)
	vector.StrokeLine(dst, cx-float32(10*scale), cy+bh/2, cx-float32(36*scale), cy-float32(22*scale), wingW, body, true)
	vector.StrokeLine(dst, cx-float32(10*scale), cy+bh/2, cx-float32(36*scale), cy+float32(34*scale), wingW, body, true)

	// 尾翼
	vector.StrokeLine(dst, cx-bw/2, cy+bh/2, cx-bw/2-float32(12*scale), cy-float32(14*scale), wingW, body, true)

	// 幽灵坐在机身上方
	Draw(dst, x+12*scale, y-26*scale, 0.8*scale, EmotionSmug, alpha)
}

// DrawChocolate 绘制巧克力排（分段，可带咬痕）
//
// 参数：
//   - segments: 剩余的完整段数
//   - bitten: 是否在缺口处绘制咬痕
func DrawChocolate(dst *ebiten.Image, x, y, scale float64, segments int, bitten bool, clr color.RGBA) {
	if dst == nil || segments < 0 {
		return
	}
	outline := color.RGBA{R: 0x5a, G: 0x2d, B: 0x0c, A: 0xff}
	groove := color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}

	segW := float32(30 * scale)
	segH := float32(40 * scale)
	x0 := float32(x)
	y0 := float32(y) - segH/2

	for i := 0; i < segments; i++ {
		sx := x0 + float32(i)*segW
		vector.DrawFilledRect(dst, sx, y0, segW-2, segH, clr, true)
		vector.StrokeRect(dst, sx, y0, segW-2, segH, 2, outline, true)
		// 段中线
		vector.StrokeLine(dst, sx+segW/2, y0, sx+segW/2, y0+segH, 1, groove, true)
	}

	// 咬痕：缺口处的半圆
	if bitten && segments > 0 {
		bite := color.RGBA{R: 0xd2, G: 0x69, B: 0x1e, A: 0xff}
		vector.DrawFilledCircle(dst, x0+float32(segments)*segW, y0+segH/2, float32(15*scale), bite, true)
	}
}

// DrawPumpkin 绘制杰克南瓜灯（南瓜身 + 三角眼 + 瓜蒂）
// size 为南瓜的像素半径
func DrawPumpkin(dst *ebiten.Image, x, y, size float64) {
	if dst == nil || size <= 0 {
		return
	}
	bodyClr := color.RGBA{R: 0xff, G: 0x6b, B: 0x00, A: 0xff}
	lineClr := color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	face := color.RGBA{A: 0xff}
	stem := color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff}

	cx, cy := float32(x), float32(y)
	r := float32(size)

	// 南瓜身
	vector.DrawFilledCircle(dst, cx, cy, r, bodyClr, true)
	// 瓜瓣分线
	vector.StrokeLine(dst, cx-r/2, cy-r*0.7, cx-r/2, cy+r*0.7, 1.5, lineClr, true)
	vector.StrokeLine(dst, cx, cy-r*0.85, cx, cy+r*0.85, 1.5, lineClr, true)
	vector.StrokeLine(dst, cx+r/2, cy-r*0.7, cx+r/2, cy+r*0.7, 1.5, lineClr, true)

	// 三角眼（小实心圆近似）
	vector.DrawFilledCircle(dst, cx-r*0.35, cy-r*0.25, r*0.14, face, true)
	vector.DrawFilledCircle(dst, cx+r*0.35, cy-r*0.25, r*0.14, face, true)
	// 嘴：下半弧
	vector.DrawFilledCircle(dst, cx, cy+r*0.3, r*0.35, face, true)
	vector.DrawFilledCircle(dst, cx, cy+r*0.12, r*0.35, bodyClr, true)

	// 瓜蒂
	vector.DrawFilledRect(dst, cx-r*0.1, cy-r-r*0.25, r*0.2, r*0.28, stem, true)
}

// DrawSash 绘制自信变身后的缎带披肩（披在幽灵肩部）
// clr 为主题主色
func DrawSash(dst *ebiten.Image, x, y, scale float64, clr color.RGBA, alpha float64) {
	if dst == nil || alpha <= 0 {
		return
	}
	sash := palette.WithAlpha(clr, alpha*0.8)
	cx := float32(x)
	// 肩部基准：头部圆心下方
	sy := float32(y - 4*scale)

	// 斜挎缎带
	vector.StrokeLine(dst, cx-float32(18*scale), sy-float32(12*scale), cx+float32(14*scale), sy+float32(14*scale), float32(5*scale), sash, true)

	// 中央蝴蝶结：两个三角近似为小圆 + 中心结
	bow := palette.WithAlpha(clr, alpha)
	vector.DrawFilledCircle(dst, cx-float32(5*scale), sy+float32(2*scale), float32(4*scale), bow, true)
	vector.DrawFilledCircle(dst, cx+float32(5*scale), sy+float32(2*scale), float32(4*scale), bow, true)
	vector.DrawFilledCircle(dst, cx, sy+float32(2*scale), float32(2.4*scale), bow, true)
}

// DrawSparkle 绘制十字星光点
func DrawSparkle(dst *ebiten.Image, x, y, size float64, clr color.RGBA, alpha float64) {
	if dst == nil || alpha <= 0 {
		return
	}
	c := palette.WithAlpha(clr, alpha)
	cx, cy := float32(x), float32(y)
	s := float32(size)
	vector.DrawFilledCircle(dst, cx, cy, s/2, c, true)
	vector.StrokeLine(dst, cx-s*1.5, cy, cx+s*1.5, cy, 1.5, c, true)
	vector.StrokeLine(dst, cx, cy-s*1.5, cx, cy+s*1.5, 1.5, c, true)
}

// DrawFlash 全屏闪光遮罩
// intensity 取值 [0, 1]
func DrawFlash(dst *ebiten.Image, intensity float64) {
	if dst == nil || intensity <= 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	flash := palette.WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, math.Min(intensity, 1))
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), flash, true)
}

// DrawDim 全屏压暗遮罩
// strength 取值 [0, 1]
func DrawDim(dst *ebiten.Image, strength float64) {
	if dst == nil || strength <= 0 {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	dim := palette.WithAlpha(color.RGBA{A: 255}, math.Min(strength, 1))
	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), dim, true)
}
