package elements

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/ghost"
)

// CornerGhostID 角落幽灵元素的固定键
const CornerGhostID = "corner-ghost"

// CornerGhost 右下角的常驻小幽灵
//
// 在互动阶段悬浮候场，缓慢上下浮动。表情跟随主题。
type CornerGhost struct {
	style   Style
	emotion ghost.Emotion
	tick    int
	waving  bool // 告别阶段切换为挥手姿态
}

// NewCornerGhost 构造角落幽灵
func NewCornerGhost(style Style) *CornerGhost {
	return &CornerGhost{
		style:   style,
		emotion: ghost.ParseEmotion(style.Theme.GhostEmotion),
	}
}

func (c *CornerGhost) ID() string { return CornerGhostID }

// SetWaving 切换告别挥手姿态
func (c *CornerGhost) SetWaving(waving bool) {
	c.waving = waving
	if waving {
		c.emotion = ghost.EmotionDelighted
	}
}

func (c *CornerGhost) Step() {
	c.tick++
}

func (c *CornerGhost) Draw(dst *ebiten.Image) {
	bob := math.Sin(float64(c.tick)*0.05) * 6
	x := c.style.W - 70
	y := c.style.H - 80 + bob
	if c.waving {
		// 挥手：左右轻摆
		x += math.Sin(float64(c.tick)*0.15) * 4
	}
	ghost.Draw(dst, x, y, 0.7, c.emotion, 0.95)
}
