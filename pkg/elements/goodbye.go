package elements

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/ghost"
	"github.com/decker502/necromirror/pkg/utils"
)

// GoodbyeID 告别消息元素的固定键
const GoodbyeID = "goodbye"

// Goodbye 告别消息
//
// 幽灵在中央挥手告别，随后连同文字一起淡出。
type Goodbye struct {
	style     Style
	holdTicks int
	fadeTicks int
	tick      int
}

// NewGoodbye 构造告别消息
func NewGoodbye(style Style, holdTicks, fadeTicks int) *Goodbye {
	if fadeTicks < 1 {
		fadeTicks = 1
	}
	return &Goodbye{style: style, holdTicks: holdTicks, fadeTicks: fadeTicks}
}

func (g *Goodbye) ID() string { return GoodbyeID }

func (g *Goodbye) Step() {
	g.tick++
}

// Done 返回告别是否已结束
func (g *Goodbye) Done() bool {
	return g.tick >= g.holdTicks+g.fadeTicks
}

func (g *Goodbye) alpha() float64 {
	if remain := g.holdTicks + g.fadeTicks - g.tick; remain < g.fadeTicks {
		return utils.Clamp01(float64(remain) / float64(g.fadeTicks))
	}
	return 1
}

func (g *Goodbye) Draw(dst *ebiten.Image) {
	if g.Done() {
		return
	}
	alpha := g.alpha()
	cx, cy := g.style.W/2, g.style.H*0.42

	// 挥手摆动 + 缓慢上飘
	sway := math.Sin(float64(g.tick)*0.12) * 5
	rise := float64(g.tick) * 0.15
	ghost.Draw(dst, cx+sway, cy-rise, 1.0, ghost.EmotionDelighted, alpha)

	drawCenteredText(dst, "后会有期……", g.style.Face, cx, cy+70,
		color.RGBA{230, 230, 240, 255}, alpha)
}
