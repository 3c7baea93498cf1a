package elements

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/ghost"
	"github.com/decker502/necromirror/pkg/utils"
)

// RewardID 奖励消息元素的固定键
const RewardID = "reward"

// Reward 通关奖励消息
//
// 居中面板展示感谢文案和优惠码（如果主题配置了），
// 显示配置的时长后 Done 返回 true。
type Reward struct {
	style     Style
	holdTicks int
	fadeTicks int
	tick      int
}

// NewReward 构造奖励消息
func NewReward(style Style, holdTicks, fadeTicks int) *Reward {
	if fadeTicks < 1 {
		fadeTicks = 1
	}
	return &Reward{style: style, holdTicks: holdTicks, fadeTicks: fadeTicks}
}

func (r *Reward) ID() string { return RewardID }

func (r *Reward) Step() {
	r.tick++
}

// Done 返回消息是否已显示完并淡出
func (r *Reward) Done() bool {
	return r.tick >= r.holdTicks+r.fadeTicks
}

// alpha 淡入 20 帧，停留，最后 fadeTicks 淡出
func (r *Reward) alpha() float64 {
	if r.tick < 20 {
		return utils.EaseOutQuad(float64(r.tick) / 20.0)
	}
	if remain := r.holdTicks + r.fadeTicks - r.tick; remain < r.fadeTicks {
		return utils.Clamp01(float64(remain) / float64(r.fadeTicks))
	}
	return 1
}

func (r *Reward) Draw(dst *ebiten.Image) {
	if r.Done() {
		return
	}
	alpha := r.alpha()
	panel := utils.Rect{X: (r.style.W - 380) / 2, Y: (r.style.H - 220) / 2, W: 380, H: 220}
	drawPanel(dst, panel, r.style, alpha)

	cx := panel.X + panel.W/2
	ghost.Draw(dst, cx, panel.Y+62, 0.8, ghost.EmotionDelighted, alpha)
	ghost.DrawSparkle(dst, cx-90, panel.Y+50, 5, r.style.Secondary, alpha)
	ghost.DrawSparkle(dst, cx+90, panel.Y+70, 4, r.style.Secondary, alpha)

	drawCenteredText(dst, "成交！合作愉快", r.style.Face, cx, panel.Y+118,
		color.RGBA{255, 255, 255, 255}, alpha)
	if coupon := r.style.Theme.RewardCoupon; coupon != "" {
		drawCenteredText(dst, "优惠码："+coupon, r.style.Face, cx, panel.Y+152,
			r.style.Secondary, alpha)
	}
}
