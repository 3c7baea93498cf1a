package elements

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/necromirror/internal/palette"
)

// BackgroundID 背景元素的固定键
const BackgroundID = "background"

// Background 页面背景
//
// 铺满视口的主题背景色，支持短促的页面抖动（入侵开场效果）。
// 抖动按正弦衰减，结束后自动归零。
type Background struct {
	style Style

	shakeTick  int // 剩余抖动帧数
	shakeTotal int
	offsetX    float64
	offsetY    float64
}

// NewBackground 构造背景元素
func NewBackground(style Style) *Background {
	return &Background{style: style}
}

func (b *Background) ID() string { return BackgroundID }

// Shake 触发一次页面抖动
func (b *Background) Shake(ticks int) {
	if ticks <= 0 {
		return
	}
	b.shakeTick = ticks
	b.shakeTotal = ticks
}

// Offset 返回当前抖动位移，供其它元素叠加
func (b *Background) Offset() (float64, float64) {
	return b.offsetX, b.offsetY
}

func (b *Background) Step() {
	if b.shakeTick <= 0 {
		b.offsetX, b.offsetY = 0, 0
		return
	}
	b.shakeTick--
	// 振幅随剩余时间衰减
	decay := float64(b.shakeTick) / float64(b.shakeTotal)
	t := float64(b.shakeTotal - b.shakeTick)
	b.offsetX = math.Sin(t*1.1) * 8 * decay
	b.offsetY = math.Cos(t*1.7) * 5 * decay
}

func (b *Background) Draw(dst *ebiten.Image) {
	clr := palette.WithAlpha(b.style.Background, 1.0)
	vector.DrawFilledRect(dst,
		float32(b.offsetX-10), float32(b.offsetY-10),
		float32(b.style.W+20), float32(b.style.H+20), clr, false)
}
