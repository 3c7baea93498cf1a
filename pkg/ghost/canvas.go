package ghost

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/necromirror/internal/palette"
)

// 画布路径的幽灵基准尺寸（scale=1 时）
// 所有局部坐标以幽灵中心为原点
const (
	ghostRadius  = 25.0 // 身体上半圆半径
	ghostBodyLen = 30.0 // 上半圆底边到波浪底边的高度
	waveCount    = 5    // 底部波浪数量
)

// 通用绘制颜色
var (
	bodyColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	featureColor = color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	blushColor   = color.RGBA{R: 0xff, G: 0xb6, B: 0xc1, A: 0x80}
)

// Draw 在画布上绘制幽灵
//
// 参数：
//   - dst: 目标画布
//   - x, y: 幽灵中心位置（屏幕坐标）
//   - scale: 缩放系数
//   - emotion: 表情标签
//   - alpha: 整体不透明度 [0, 1]
func Draw(dst *ebiten.Image, x, y, scale float64, emotion Emotion, alpha float64) {
	if dst == nil || scale <= 0 {
		return
	}
	if alpha <= 0 {
		return
	}

	body := palette.WithAlpha(bodyColor, alpha)
	feat := palette.WithAlpha(featureColor, alpha)

	drawBody(dst, x, y, scale, body)
	drawFace(dst, x, y, scale, emotion, feat, alpha)
}

// drawBody 绘制幽灵身体：上半圆 + 躯干 + 底部波浪
func drawBody(dst *ebiten.Image, x, y, scale float64, clr color.RGBA) {
	r := float32(ghostRadius * scale)
	cx := float32(x)
	// 上半圆圆心位于身体中心上方
	headY := float32(y - ghostBodyLen*scale/2)

	// 头部（圆）
	vector.DrawFilledCircle(dst, cx, headY, r, clr, true)

	// 躯干（矩形，与头部同宽）
	bodyH := float32(ghostBodyLen * scale)
	vector.DrawFilledRect(dst, cx-r, headY, 2*r, bodyH, clr, true)

	// 底部波浪：一排小圆
	waveR := r / waveCount
	bottomY := headY + bodyH
	for i := 0; i < waveCount; i++ {
		wx := cx - r + waveR + float32(i)*2*waveR
		vector.DrawFilledCircle(dst, wx, bottomY, waveR, clr, true)
	}

	// 头顶高光
	highlight := palette.WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, float64(clr.A)/255*0.4)
	vector.DrawFilledCircle(dst, cx-r*0.3, headY-r*0.35, r*0.4, highlight, true)
}

// drawFace 绘制表情：眼睛、眉毛、嘴、腮红
func drawFace(dst *ebiten.Image, x, y, scale float64, emotion Emotion, feat color.RGBA, alpha float64) {
	cx := float32(x)
	faceY := float32(y - ghostBodyLen*scale/2) // 面部以头部圆心为基准

	eyeDX := float32(8 * scale)
	eyeY := faceY - float32(2*scale)
	eyeR := float32(4 * scale)
	if emotion.narrowEyes() {
		eyeR = float32(2.5 * scale)
	}

	// 眼睛
	vector.DrawFilledCircle(dst, cx-eyeDX, eyeY, eyeR, feat, true)
	vector.DrawFilledCircle(dst, cx+eyeDX, eyeY, eyeR, feat, true)

	// 眼睛高光
	shine := palette.WithAlpha(color.RGBA{R: 255, G: 255, B: 255, A: 255}, alpha)
	shineR := float32(1.2 * scale)
	vector.DrawFilledCircle(dst, cx-eyeDX-shineR, eyeY-shineR, shineR, shine, true)
	vector.DrawFilledCircle(dst, cx+eyeDX-shineR, eyeY-shineR, shineR, shine, true)

	// 眉毛（得意/挑衅表情）
	if emotion.hasEyebrows() {
		browW := float32(2 * scale)
		browY0 := eyeY - float32(6*scale)
		browY1 := eyeY - float32(4*scale)
		vector.StrokeLine(dst, cx-eyeDX-float32(4*scale), browY0, cx-eyeDX+float32(4*scale), browY1, browW, feat, true)
		vector.StrokeLine(dst, cx+eyeDX-float32(4*scale), browY1, cx+eyeDX+float32(4*scale), browY0, browW, feat, true)
	}

	drawMouth(dst, float64(cx), float64(faceY)+10*scale, scale, emotion, feat)

	// 腮红
	if emotion.hasBlush() {
		blush := palette.WithAlpha(blushColor, alpha*0.5)
		blushY := eyeY + float32(8*scale)
		vector.DrawFilledCircle(dst, cx-float32(15*scale), blushY, float32(3.5*scale), blush, true)
		vector.DrawFilledCircle(dst, cx+float32(15*scale), blushY, float32(3.5*scale), blush, true)
	}
}

// drawMouth 按表情绘制嘴型
// 曲线用短折线段近似（vector 包没有贝塞尔描边图元）
func drawMouth(dst *ebiten.Image, cx, cy, scale float64, emotion Emotion, feat color.RGBA) {
	w := float32(2 * scale)
	half := 8 * scale

	switch {
	case emotion == EmotionDefiant:
		// 抿嘴直线
		vector.StrokeLine(dst, float32(cx-half), float32(cy), float32(cx+half), float32(cy), w, feat, true)
	case emotion == EmotionHappy || emotion == EmotionAdventurous || emotion == EmotionDelighted:
		// 开口大笑：下弯弧
		strokeArc(dst, cx, cy, half, 0.2, math.Pi-0.2, w, feat)
	case emotion.narrowEyes():
		// 坏笑：浅浅的上挑弧
		strokeArc(dst, cx, cy-half*0.6, half, math.Pi/6, math.Pi*5/6, w, feat)
	default:
		// 默认浅笑
		strokeArc(dst, cx, cy-half*0.3, half*0.7, math.Pi/5, math.Pi*4/5, w, feat)
	}
}

// strokeArc 用折线段近似描边圆弧
// 角度从 a0 到 a1（弧度，正方向为屏幕下方）
func strokeArc(dst *ebiten.Image, cx, cy, r, a0, a1 float64, width float32, clr color.RGBA) {
	const segments = 12
	prevX := cx + r*math.Cos(a0)
	prevY := cy + r*math.Sin(a0)
	for i := 1; i <= segments; i++ {
		a := a0 + (a1-a0)*float64(i)/segments
		nx := cx + r*math.Cos(a)
		ny := cy + r*math.Sin(a)
		vector.StrokeLine(dst, float32(prevX), float32(prevY), float32(nx), float32(ny), width, clr, true)
		prevX, prevY = nx, ny
	}
}
