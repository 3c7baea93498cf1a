package anim

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/internal/palette"
	"github.com/decker502/necromirror/pkg/config"
	"github.com/decker502/necromirror/pkg/ghost"
	"github.com/decker502/necromirror/pkg/utils"
)

// 万圣节惊吓动画阶段
const (
	jsApproach = iota // 从远处逼近放大
	jsScare           // 贴脸惊吓
	jsRain            // 南瓜雨
)

// pumpkin 南瓜雨中的一个南瓜
type pumpkin struct {
	x     float64
	y     float64
	speed float64 // 下落速度（像素/帧）
	size  float64
	sway  float64 // 横向摆动相位
}

// jumpscareAnim 幽灵逼近放大惊吓后落下南瓜雨
type jumpscareAnim struct {
	cfg      config.JumpscareConfig
	w, h     float64
	pumpkins []pumpkin
	rng      *rand.Rand
	banner   *Banner

	phase int
	tick  int
	scale float64 // 逼近阶段的幽灵缩放
	done  bool
}

func newJumpscare(opts Options) *jumpscareAnim {
	j := &jumpscareAnim{
		cfg: opts.Config.Jumpscare,
		w:   opts.Width,
		h:   opts.Height,
		rng: opts.Rng,
	}
	primary := palette.MustParse(opts.Theme.PrimaryColor, color.RGBA{234, 88, 12, 255})
	j.banner = NewBanner("万圣节快乐！", opts.Face, primary)
	j.Reset()
	return j
}

func (j *jumpscareAnim) Reset() {
	j.phase = jsApproach
	j.tick = 0
	j.scale = 0.3
	j.done = false
	j.pumpkins = nil
}

// spawnPumpkins 南瓜初始位置错开在屏幕上方多行，形成持续的雨
func (j *jumpscareAnim) spawnPumpkins() {
	count := j.cfg.PumpkinCount
	if count <= 0 {
		count = 1
	}
	j.pumpkins = make([]pumpkin, count)
	for i := range j.pumpkins {
		j.pumpkins[i] = pumpkin{
			x:     j.rng.Float64() * j.w,
			y:     -j.rng.Float64() * j.h * 2,
			speed: 2 + j.rng.Float64()*3,
			size:  12 + j.rng.Float64()*14,
			sway:  j.rng.Float64() * 2 * math.Pi,
		}
	}
}

func (j *jumpscareAnim) Step() {
	j.tick++
	switch j.phase {
	case jsApproach:
		// 速度驱动缩放：贴近屏幕时迅速变大
		j.scale += j.cfg.ApproachSpeed * 0.01
		if j.scale >= 2.5 {
			j.scale = 2.5
			j.phase = jsScare
			j.tick = 0
		}
	case jsScare:
		if j.tick >= j.cfg.ScareTicks {
			j.phase = jsRain
			j.tick = 0
			j.spawnPumpkins()
		}
	case jsRain:
		for i := range j.pumpkins {
			p := &j.pumpkins[i]
			p.y += p.speed
			p.x += math.Sin(float64(j.tick)*0.05+p.sway) * 0.8
			if p.y > j.h+p.size {
				p.y = -p.size
				p.x = j.rng.Float64() * j.w
			}
		}
		if j.tick >= j.cfg.RainTicks {
			j.done = true
		}
	}
}

func (j *jumpscareAnim) Done() bool {
	return j.done
}

// bannerAlpha 惊吓和南瓜雨阶段横幅的淡入淡出
func (j *jumpscareAnim) bannerAlpha() float64 {
	fade := j.cfg.BannerFadeTicks
	switch j.phase {
	case jsScare:
		if fade <= 0 || j.tick >= fade {
			return 1
		}
		return utils.EaseOutQuad(float64(j.tick) / float64(fade))
	case jsRain:
		if remain := j.cfg.RainTicks - j.tick; fade > 0 && remain < fade {
			return utils.EaseInQuad(float64(remain) / float64(fade))
		}
		return 1
	}
	return 0
}

func (j *jumpscareAnim) Draw(dst *ebiten.Image) {
	if j.done {
		return
	}
	cx, cy := j.w/2, j.h/2

	switch j.phase {
	case jsApproach:
		// 越逼近越暗
		ghost.DrawDim(dst, utils.Clamp01((j.scale-0.3)/2.2)*0.6)
		ghost.Draw(dst, cx, cy, j.scale, ghost.EmotionEvil, 1.0)
	case jsScare:
		ghost.DrawDim(dst, 0.6)
		// 贴脸抖动
		shakeX := math.Sin(float64(j.tick)*1.3) * 6
		shakeY := math.Cos(float64(j.tick)*1.7) * 4
		ghost.Draw(dst, cx+shakeX, cy+shakeY, 2.5, ghost.EmotionEvil, 1.0)
		// 开场白闪
		if j.tick < 10 {
			ghost.DrawFlash(dst, 1-float64(j.tick)/10.0)
		}
	case jsRain:
		fadeOut := 1.0
		if remain := j.cfg.RainTicks - j.tick; remain < 60 {
			fadeOut = float64(remain) / 60.0
		}
		ghost.DrawDim(dst, 0.4*fadeOut)
		for _, p := range j.pumpkins {
			ghost.DrawPumpkin(dst, p.x, p.y, p.size)
		}
		ghost.Draw(dst, cx, j.h*0.35, 1.2, ghost.EmotionSmug, fadeOut)
	}

	if j.banner != nil {
		if alpha := j.bannerAlpha(); alpha > 0 {
			j.banner.Draw(dst, cx, j.h*0.78, alpha)
		}
	}
}
