package elements

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/necromirror/internal/palette"
	"github.com/decker502/necromirror/pkg/utils"
)

// KickerID 顶部横幅元素的固定键
const KickerID = "kicker"

// 横幅滑入滑出时长
const kickerSlideTicks = 20

// KickerBanner 顶部挑衅横幅
//
// 从屏幕上缘滑入，停留配置的时长后滑出。滑出结束后 Done 返回
// true，由编排器移除。
type KickerBanner struct {
	style     Style
	textStr   string
	holdTicks int

	tick   int
	height float64
}

// NewKickerBanner 构造横幅，文案来自主题的当前变体
func NewKickerBanner(style Style, textStr string, holdTicks int) *KickerBanner {
	return &KickerBanner{
		style:     style,
		textStr:   textStr,
		holdTicks: holdTicks,
		height:    52,
	}
}

func (k *KickerBanner) ID() string { return KickerID }

func (k *KickerBanner) Step() {
	k.tick++
}

// Done 返回横幅是否已完全滑出
func (k *KickerBanner) Done() bool {
	return k.tick >= kickerSlideTicks+k.holdTicks+kickerSlideTicks
}

// offsetY 当前的纵向位移：负值表示在屏幕外
func (k *KickerBanner) offsetY() float64 {
	switch {
	case k.tick < kickerSlideTicks:
		// 滑入
		t := float64(k.tick) / kickerSlideTicks
		return -k.height * (1 - utils.EaseOutCubic(t))
	case k.tick < kickerSlideTicks+k.holdTicks:
		return 0
	default:
		// 滑出
		t := float64(k.tick-kickerSlideTicks-k.holdTicks) / kickerSlideTicks
		return -k.height * utils.EaseInQuad(utils.Clamp01(t))
	}
}

func (k *KickerBanner) Draw(dst *ebiten.Image) {
	if k.Done() {
		return
	}
	y := k.offsetY()
	fill := palette.WithAlpha(palette.Darken(k.style.Primary, 0.3), 0.95)
	vector.DrawFilledRect(dst, 0, float32(y), float32(k.style.W), float32(k.height), fill, true)
	vector.StrokeLine(dst, 0, float32(y+k.height), float32(k.style.W), float32(y+k.height), 2,
		palette.WithAlpha(k.style.Secondary, 0.9), true)

	drawCenteredText(dst, k.textStr, k.style.Face, k.style.W/2, y+k.height/2-9,
		color.RGBA{255, 255, 255, 255}, 1.0)
}
