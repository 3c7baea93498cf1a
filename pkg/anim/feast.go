package anim

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/internal/palette"
	"github.com/decker502/necromirror/pkg/config"
	"github.com/decker502/necromirror/pkg/ghost"
	"github.com/decker502/necromirror/pkg/utils"
)

// 吃巧克力动画阶段
const (
	feastEntering  = iota // 飞向巧克力
	feastEating           // 逐口吃掉
	feastSatisfied        // 满足展示
)

// feastAnim 幽灵飞向巧克力逐口吃掉
type feastAnim struct {
	cfg     config.FeastConfig
	w, h    float64
	primary color.RGBA
	banner  *Banner

	phase int
	tick  int
	x     float64 // 幽灵横坐标
	bites int     // 已吃的口数
	done  bool
}

func newFeast(opts Options) *feastAnim {
	primary := palette.MustParse(opts.Theme.PrimaryColor, color.RGBA{217, 119, 6, 255})
	f := &feastAnim{
		cfg:     opts.Config.Feast,
		w:       opts.Width,
		h:       opts.Height,
		primary: primary,
	}
	if opts.BannerText != "" {
		f.banner = NewBanner(opts.BannerText, opts.Face, primary)
	}
	f.Reset()
	return f
}

func (f *feastAnim) Reset() {
	f.phase = feastEntering
	f.tick = 0
	f.x = -60
	f.bites = 0
	f.done = false
}

// chocolateX 巧克力的固定位置
func (f *feastAnim) chocolateX() float64 {
	return f.w * 0.62
}

func (f *feastAnim) Step() {
	f.tick++
	switch f.phase {
	case feastEntering:
		f.x += f.cfg.EntrySpeed
		if f.x >= f.chocolateX()-55 {
			f.x = f.chocolateX() - 55
			f.phase = feastEating
			f.tick = 0
		}
	case feastEating:
		if f.tick%f.cfg.BiteIntervalTicks == 0 {
			f.bites++
			if f.bites >= f.cfg.TotalBites {
				f.phase = feastSatisfied
				f.tick = 0
			}
		}
	case feastSatisfied:
		if f.tick >= f.cfg.SatisfiedTicks {
			f.done = true
		}
	}
}

func (f *feastAnim) Done() bool {
	return f.done
}

// bannerAlpha 满足阶段横幅的淡入淡出
func (f *feastAnim) bannerAlpha() float64 {
	if f.phase != feastSatisfied {
		return 0
	}
	fade := f.cfg.BannerFadeTicks
	if fade <= 0 {
		return 1
	}
	if f.tick < fade {
		return utils.EaseOutQuad(float64(f.tick) / float64(fade))
	}
	if remain := f.cfg.SatisfiedTicks - f.tick; remain < fade {
		return utils.EaseInQuad(float64(remain) / float64(fade))
	}
	return 1
}

func (f *feastAnim) Draw(dst *ebiten.Image) {
	if f.done {
		return
	}
	y := f.h * 0.5
	bob := math.Sin(float64(f.tick)*0.06) * 3

	switch f.phase {
	case feastEntering:
		ghost.DrawChocolate(dst, f.chocolateX(), y, 1.0, f.cfg.TotalBites, false, f.primary)
		ghost.Draw(dst, f.x, y+bob, 1.0, ghost.EmotionHappy, 1.0)
	case feastEating:
		remaining := f.cfg.TotalBites - f.bites
		// 咬的瞬间向巧克力一顿
		lunge := 0.0
		if f.tick%f.cfg.BiteIntervalTicks < 8 {
			lunge = 8
		}
		ghost.DrawChocolate(dst, f.chocolateX(), y, 1.0, remaining, f.bites > 0, f.primary)
		ghost.Draw(dst, f.x+lunge, y+bob, 1.0, ghost.EmotionHappy, 1.0)
	case feastSatisfied:
		scale := 1.0 + 0.15*utils.EaseOutQuad(utils.Clamp01(float64(f.tick)/30.0))
		ghost.Draw(dst, f.x, y+bob, scale, ghost.EmotionDelighted, 1.0)
		if f.banner != nil {
			if alpha := f.bannerAlpha(); alpha > 0 {
				f.banner.Draw(dst, f.w/2, f.h*0.75, alpha)
			}
		}
	}
}
