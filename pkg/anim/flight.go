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

// 飞行动画阶段
const (
	flightEntering = iota // 从左侧入场飞向中央
	flightPausing         // 中央悬停，展示横幅
	flightExiting         // 加速飞出右侧
)

// flightAnim 幽灵驾驶飞机横穿屏幕
//
// 入场匀速，中央悬停期间横幅淡入淡出，出场持续加速。
// 机身带轻微的正弦浮动。
type flightAnim struct {
	cfg     config.FlightConfig
	w, h    float64
	primary color.RGBA
	banner  *Banner

	phase int
	tick  int     // 当前阶段内的帧计数
	x     float64 // 飞机中心横坐标
	speed float64
	done  bool
}

func newFlight(opts Options) *flightAnim {
	primary := palette.MustParse(opts.Theme.PrimaryColor, color.RGBA{139, 92, 246, 255})
	f := &flightAnim{
		cfg:     opts.Config.Flight,
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

func (f *flightAnim) Reset() {
	f.phase = flightEntering
	f.tick = 0
	f.x = -80
	f.speed = f.cfg.EntrySpeed
	f.done = false
}

func (f *flightAnim) Step() {
	f.tick++
	switch f.phase {
	case flightEntering:
		f.x += f.speed
		if f.x >= f.w/2 {
			f.x = f.w / 2
			f.phase = flightPausing
			f.tick = 0
		}
	case flightPausing:
		if f.tick >= f.cfg.PauseTicks {
			f.phase = flightExiting
			f.tick = 0
			f.speed = f.cfg.ExitSpeed
		}
	case flightExiting:
		f.x += f.speed
		f.speed += f.cfg.ExitAccel
		if f.x > f.w+120 {
			f.done = true
		}
	}
}

func (f *flightAnim) Done() bool {
	return f.done
}

// bannerAlpha 悬停阶段横幅的淡入淡出透明度
func (f *flightAnim) bannerAlpha() float64 {
	if f.phase != flightPausing {
		return 0
	}
	fade := f.cfg.BannerFadeTicks
	if fade <= 0 {
		return 1
	}
	if f.tick < fade {
		return utils.EaseOutQuad(float64(f.tick) / float64(fade))
	}
	if remain := f.cfg.PauseTicks - f.tick; remain < fade {
		return utils.EaseInQuad(float64(remain) / float64(fade))
	}
	return 1
}

func (f *flightAnim) Draw(dst *ebiten.Image) {
	if f.done {
		return
	}
	// 机身正弦浮动
	bob := math.Sin(float64(f.tick)*0.05) * 4
	y := f.h*0.4 + bob

	ghost.DrawPlane(dst, f.x, y, 1.0, f.primary, 1.0)

	if f.banner != nil {
		if alpha := f.bannerAlpha(); alpha > 0 {
			f.banner.Draw(dst, f.w/2, f.h*0.68, alpha)
		}
	}
}
