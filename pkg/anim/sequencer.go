package anim

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/necromirror/pkg/config"
	"github.com/decker502/necromirror/pkg/theme"
)

// Animation 单次动画循环的阶段状态机
//
// Step 每逻辑帧调用一次推进状态，Draw 绘制当前帧。
// Done 返回 true 后时序器会 Reset 重新开始或结束整个序列。
type Animation interface {
	Step()
	Draw(dst *ebiten.Image)
	Done() bool
	Reset()
}

// Options 时序器构造参数
type Options struct {
	Selector   theme.AnimationSelector
	Config     *config.EngineConfig
	Theme      *theme.Descriptor
	Width      float64 // 视口宽度（像素）
	Height     float64 // 视口高度
	BannerText string  // 动画内横幅文案，为空则不显示横幅
	Face       text.Face
	Rng        *rand.Rand
}

// Sequencer 动画时序器
//
// 驱动单个动画循环 maxLoops 次后标记完成。动画 Step 中的 panic
// 会被捕获：记录日志并将序列标记为完成，而不是中断整个帧循环。
type Sequencer struct {
	anim     Animation
	typ      Type
	maxLoops int
	loops    int
	complete bool
}

// NewSequencer 根据主题的动画选择构造时序器
//
// 动画被禁用或类型未知时返回立即完成的时序器，调用方无需特判。
func NewSequencer(opts Options) *Sequencer {
	s := &Sequencer{maxLoops: 1}
	if opts.Config != nil && opts.Config.MaxLoops > 0 {
		s.maxLoops = opts.Config.MaxLoops
	}
	if !opts.Selector.Enabled {
		s.complete = true
		return s
	}
	s.typ = ParseType(opts.Selector.Type)

	if opts.Config == nil {
		opts.Config = config.DefaultEngineConfig()
	}
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(1))
	}

	switch s.typ {
	case TypeFlight:
		s.anim = newFlight(opts)
	case TypeConfidence:
		s.anim = newConfidence(opts)
	case TypeFeast:
		s.anim = newFeast(opts)
	case TypeJumpscare:
		s.anim = newJumpscare(opts)
	default:
		s.complete = true
	}
	return s
}

// Step 推进一帧
//
// 动画内部 panic 不向外扩散：记录后整个序列视为完成，
// 流程继续移交到问答阶段。
func (s *Sequencer) Step() {
	if s.complete || s.anim == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Anim] %s animation panicked: %v, aborting sequence", s.typ, r)
			s.complete = true
		}
	}()
	s.anim.Step()
	if s.anim.Done() {
		s.loops++
		if s.loops >= s.maxLoops {
			s.complete = true
			return
		}
		s.anim.Reset()
	}
}

// Draw 绘制当前帧
//
// 绘制 panic 与 Step 同样处理。
func (s *Sequencer) Draw(dst *ebiten.Image) {
	if s.complete || s.anim == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Anim] %s animation draw panicked: %v, aborting sequence", s.typ, r)
			s.complete = true
		}
	}()
	s.anim.Draw(dst)
}

// Done 返回整个序列是否完成
func (s *Sequencer) Done() bool {
	return s.complete
}

// Loops 返回已完成的循环次数
func (s *Sequencer) Loops() int {
	return s.loops
}

// Type 返回时序器驱动的动画类型
func (s *Sequencer) Type() Type {
	return s.typ
}
