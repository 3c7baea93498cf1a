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

// 自信变身动画阶段
const (
	confShy       = iota // 角落害羞
	confFlash            // 闪光变身
	confConfident        // 中央自信展示
)

// confParticle 自信光环粒子
type confParticle struct {
	angle  float64 // 环上的基准角度
	radius float64 // 基准轨道半径
	size   float64
	phase  float64 // 正弦脉动相位偏移
}

// confidenceAnim 害羞幽灵闪光变身为自信展示
type confidenceAnim struct {
	cfg       config.ConfidenceConfig
	w, h      float64
	primary   color.RGBA
	secondary color.RGBA
	particles []confParticle
	banner    *Banner

	phase int
	tick  int
	done  bool
}

func newConfidence(opts Options) *confidenceAnim {
	c := &confidenceAnim{
		cfg:       opts.Config.Confidence,
		w:         opts.Width,
		h:         opts.Height,
		primary:   palette.MustParse(opts.Theme.PrimaryColor, color.RGBA{236, 72, 153, 255}),
		secondary: palette.MustParse(opts.Theme.SecondaryColor, color.RGBA{251, 207, 232, 255}),
	}
	if opts.BannerText != "" {
		c.banner = NewBanner(opts.BannerText, opts.Face, c.primary)
	}
	c.particles = makeConfParticles(c.cfg.ParticleCount, opts.Rng)
	c.Reset()
	return c
}

// makeConfParticles 在环上均匀分布粒子，半径和相位带少量随机抖动
func makeConfParticles(count int, rng *rand.Rand) []confParticle {
	if count <= 0 {
		count = 1
	}
	particles := make([]confParticle, count)
	for i := range particles {
		particles[i] = confParticle{
			angle:  float64(i) / float64(count) * 2 * math.Pi,
			radius: 70 + rng.Float64()*30,
			size:   3 + rng.Float64()*4,
			phase:  rng.Float64() * 2 * math.Pi,
		}
	}
	return particles
}

func (c *confidenceAnim) Reset() {
	c.phase = confShy
	c.tick = 0
	c.done = false
}

func (c *confidenceAnim) Step() {
	c.tick++
	switch c.phase {
	case confShy:
		if c.tick >= c.cfg.ShyTicks {
			c.phase = confFlash
			c.tick = 0
		}
	case confFlash:
		if c.tick >= c.cfg.FlashTicks {
			c.phase = confConfident
			c.tick = 0
		}
	case confConfident:
		if c.tick >= c.cfg.ConfidentTicks {
			c.done = true
		}
	}
}

func (c *confidenceAnim) Done() bool {
	return c.done
}

func (c *confidenceAnim) Draw(dst *ebiten.Image) {
	if c.done {
		return
	}
	switch c.phase {
	case confShy:
		c.drawShy(dst)
	case confFlash:
		c.drawFlash(dst)
	case confConfident:
		c.drawConfident(dst)
	}
}

// drawShy 右下角的小幽灵，缓慢探头
func (c *confidenceAnim) drawShy(dst *ebiten.Image) {
	progress := utils.EaseOutQuad(utils.Clamp01(float64(c.tick) / 40.0))
	x := c.w - 70
	y := c.h - 50 - progress*30
	ghost.Draw(dst, x, y, 0.6, ghost.EmotionShy, 0.85)
}

// drawFlash 白光渐强再渐弱，光强峰值在阶段中点
func (c *confidenceAnim) drawFlash(dst *ebiten.Image) {
	half := float64(c.cfg.FlashTicks) / 2
	var intensity float64
	if float64(c.tick) < half {
		intensity = float64(c.tick) / half
	} else {
		intensity = (float64(c.cfg.FlashTicks) - float64(c.tick)) / half
	}
	ghost.Draw(dst, c.w-70, c.h-80, 0.6+intensity*0.4, ghost.EmotionShy, 1.0)
	ghost.DrawFlash(dst, utils.Clamp01(intensity))
}

// bannerAlpha 自信展示阶段横幅的淡入淡出
func (c *confidenceAnim) bannerAlpha() float64 {
	if c.phase != confConfident {
		return 0
	}
	fade := c.cfg.BannerFadeTicks
	if fade <= 0 {
		return 1
	}
	if c.tick < fade {
		return utils.EaseOutQuad(float64(c.tick) / float64(fade))
	}
	if remain := c.cfg.ConfidentTicks - c.tick; remain < fade {
		return utils.EaseInQuad(float64(remain) / float64(fade))
	}
	return 1
}

// drawConfident 中央大幽灵，披绶带，光环粒子环绕
func (c *confidenceAnim) drawConfident(dst *ebiten.Image) {
	cx, cy := c.w/2, c.h/2
	t := float64(c.tick)

	// 入场放大
	scale := 1.0 + 0.4*utils.EaseOutCubic(utils.Clamp01(t/30.0))
	bob := math.Sin(t*0.04) * 5

	for _, p := range c.particles {
		angle := p.angle + t*0.02
		pulse := 1 + 0.2*math.Sin(t*0.08+p.phase)
		px := cx + math.Cos(angle)*p.radius*pulse
		py := cy + bob + math.Sin(angle)*p.radius*pulse*0.7
		alpha := 0.4 + 0.4*math.Sin(t*0.1+p.phase)
		ghost.DrawSparkle(dst, px, py, p.size, c.secondary, utils.Clamp01(alpha))
	}

	ghost.Draw(dst, cx, cy+bob, scale, ghost.EmotionConfident, 1.0)
	ghost.DrawSash(dst, cx, cy+bob, scale, c.primary, 1.0)

	if c.banner != nil {
		if alpha := c.bannerAlpha(); alpha > 0 {
			c.banner.Draw(dst, c.w/2, c.h*0.82, alpha)
		}
	}
}
