package lifecycle

import (
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/necromirror/pkg/analytics"
	"github.com/decker502/necromirror/pkg/anim"
	"github.com/decker502/necromirror/pkg/config"
	"github.com/decker502/necromirror/pkg/elements"
	"github.com/decker502/necromirror/pkg/overlay"
	"github.com/decker502/necromirror/pkg/quiz"
	"github.com/decker502/necromirror/pkg/theme"
	"github.com/decker502/necromirror/pkg/utils"
)

// Phase 生命周期阶段
type Phase int

const (
	// PhaseIdle 尚未启动
	PhaseIdle Phase = iota
	// PhaseInvitation 开场：页面抖动、横幅、邀请弹窗
	PhaseInvitation
	// PhaseAnimation 主题动画播放中
	PhaseAnimation
	// PhaseInteraction 问答互动中
	PhaseInteraction
	// PhaseReward 奖励消息展示中
	PhaseReward
	// PhaseFadeout 告别与淡出
	PhaseFadeout
	// PhaseDone 全部结束，叠加层已清空
	PhaseDone
	// PhaseDismissed 会话已有粘性拒绝，什么都不展示
	PhaseDismissed
)

var phaseNames = map[Phase]string{
	PhaseIdle:        "idle",
	PhaseInvitation:  "invitation",
	PhaseAnimation:   "animation",
	PhaseInteraction: "interaction",
	PhaseReward:      "reward",
	PhaseFadeout:     "fadeout",
	PhaseDone:        "done",
	PhaseDismissed:   "dismissed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

// scheduled 延迟任务
type scheduled struct {
	ticks int
	fn    func()
}

// Options 编排器构造参数
type Options struct {
	Host      *overlay.Host
	Theme     *theme.Descriptor
	Variant   theme.Variant
	Config    *config.EngineConfig
	Session   *SessionStore
	Collector analytics.Collector
	Face      text.Face
	// BannerText 动画内横幅文案，通常由公司名模板生成
	BannerText string
	Rng        *rand.Rand
	// Now 时钟注入点，为空时使用 time.Now
	Now func() time.Time
}

// Orchestrator 生命周期编排器
//
// 驱动叠加层元素按阶段登场退场。阶段切换由元素回调和延迟任务
// 触发，每逻辑帧 Step 一次。
type Orchestrator struct {
	host      *overlay.Host
	desc      *theme.Descriptor
	variant   theme.Variant
	cfg       *config.EngineConfig
	session   *SessionStore
	collector analytics.Collector
	face      text.Face
	banner    string
	rng       *rand.Rand
	now       func() time.Time

	style elements.Style
	phase Phase
	queue []scheduled

	// 需要轮询或控制的元素引用
	background  *elements.Background
	kicker      *elements.KickerBanner
	cornerGhost *elements.CornerGhost
	reward      *elements.Reward
	goodbye     *elements.Goodbye
	flow        *quiz.Flow
}

// NewOrchestrator 构造编排器
func NewOrchestrator(opts Options) *Orchestrator {
	if opts.Config == nil {
		opts.Config = config.DefaultEngineConfig()
	}
	if opts.Collector == nil {
		opts.Collector = analytics.NopCollector{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	w, h := opts.Host.Size()
	return &Orchestrator{
		host:      opts.Host,
		desc:      opts.Theme,
		variant:   opts.Variant,
		cfg:       opts.Config,
		session:   opts.Session,
		collector: opts.Collector,
		face:      opts.Face,
		banner:    opts.BannerText,
		rng:       opts.Rng,
		now:       opts.Now,
		style:     elements.NewStyle(opts.Theme, opts.Face, w, h),
		phase:     PhaseIdle,
	}
}

// Phase 返回当前阶段
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// schedule 注册一个延迟 ticks 帧执行的任务
func (o *Orchestrator) schedule(ticks int, fn func()) {
	if ticks <= 0 {
		fn()
		return
	}
	o.queue = append(o.queue, scheduled{ticks: ticks, fn: fn})
}

// setPhase 切换阶段并记录日志
func (o *Orchestrator) setPhase(p Phase) {
	if o.phase == p {
		return
	}
	log.Printf("[Lifecycle] phase %s -> %s", o.phase, p)
	o.phase = p
}

// Start 启动流程
//
// 会话已有粘性拒绝时直接进入 PhaseDismissed，什么都不展示。
func (o *Orchestrator) Start() {
	if o.phase != PhaseIdle {
		return
	}
	if o.session != nil && o.session.Dismissed() {
		log.Printf("[Lifecycle] session already dismissed, staying quiet")
		o.setPhase(PhaseDismissed)
		return
	}
	o.setPhase(PhaseInvitation)

	lc := o.cfg.Lifecycle
	o.background = elements.NewBackground(o.style)
	o.background.Shake(lc.ShakeTicks)
	o.host.Set(o.background)

	// 抖动结束后再弹邀请
	o.schedule(lc.ShakeTicks, o.showInvitation)
	o.host.SetReady()
}

func (o *Orchestrator) showInvitation() {
	if o.phase != PhaseInvitation {
		return
	}
	o.host.Set(elements.NewInvitation(o.style, elements.InvitationCallbacks{
		OnAccept:  o.onAccept,
		OnDecline: o.onDecline,
	}))
}

func (o *Orchestrator) onAccept() {
	if o.phase != PhaseInvitation {
		return
	}
	o.host.Remove(elements.InvitationID)
	o.setPhase(PhaseAnimation)

	w, h := o.host.Size()
	seq := anim.NewSequencer(anim.Options{
		Selector:   o.desc.Animation,
		Config:     o.cfg,
		Theme:      o.desc,
		Width:      w,
		Height:     h,
		BannerText: o.banner,
		Face:       o.face,
		Rng:        o.rng,
	})
	o.host.Set(elements.NewAnimationView(seq, o.onAnimationDone))

	// 挑衅横幅和角落幽灵只在接受邀请后出现
	o.kicker = elements.NewKickerBanner(o.style, o.desc.KickerText(o.variant), o.cfg.Lifecycle.KickerTicks)
	o.host.Set(o.kicker)
	o.cornerGhost = elements.NewCornerGhost(o.style)
	o.host.Set(o.cornerGhost)
}

// onDecline 拒绝是硬停止：立即清场，不走告别流程
func (o *Orchestrator) onDecline() {
	if o.phase != PhaseInvitation {
		return
	}
	if o.session != nil {
		o.session.MarkDismissed(false)
	}
	o.queue = nil
	o.host.Clear()
	o.setPhase(PhaseDone)
}

func (o *Orchestrator) onAnimationDone() {
	if o.phase != PhaseAnimation {
		return
	}
	o.host.Remove(elements.AnimationViewID)
	o.setPhase(PhaseInteraction)

	o.flow = quiz.NewFlow(o.desc.NegotiationQuestions, o.cfg.Quiz.TransitionTicks, o.now)
	o.host.Set(elements.NewQuizView(o.style, o.flow, o.onQuizComplete))
}

func (o *Orchestrator) onQuizComplete() {
	if o.phase != PhaseInteraction {
		return
	}
	o.collector.RecordCompletion(analytics.CompletionEvent{
		Category:    o.desc.Category,
		Variant:     o.variant,
		Answers:     o.flow.Answers(),
		CompletedAt: o.now(),
	})

	// 问答界面淡出后再进入奖励
	o.schedule(o.cfg.Quiz.FadeTicks, func() {
		if o.phase != PhaseInteraction {
			return
		}
		o.host.Remove(elements.QuizViewID)
		o.setPhase(PhaseReward)
		o.reward = elements.NewReward(o.style, o.cfg.Lifecycle.RewardTicks, o.cfg.Lifecycle.FadeTicks)
		o.host.Set(o.reward)
	})
}

// startFadeout 进入告别阶段
func (o *Orchestrator) startFadeout() {
	o.setPhase(PhaseFadeout)
	if o.cornerGhost != nil {
		o.cornerGhost.SetWaving(true)
	}
	o.goodbye = elements.NewGoodbye(o.style, o.cfg.Lifecycle.GoodbyeTicks, o.cfg.Lifecycle.FadeTicks)
	o.host.Set(o.goodbye)
}

// Step 推进一帧：延迟任务、叠加层、阶段轮询
func (o *Orchestrator) Step(in utils.InputState) {
	// 延迟任务先于元素推进，保证同帧注册的元素也被绘制
	if len(o.queue) > 0 {
		// 先把队列换出来再遍历：到期任务的 fn 可能再调 schedule，
		// 新任务落在 o.queue 上，遍历结束后合并，不会丢失
		due := o.queue
		o.queue = nil
		remaining := due[:0]
		for i := range due {
			due[i].ticks--
			if due[i].ticks <= 0 {
				due[i].fn()
			} else {
				remaining = append(remaining, due[i])
			}
		}
		o.queue = append(remaining, o.queue...)
	}

	o.host.Step(in)

	// 轮询自然结束的元素
	if o.kicker != nil && o.kicker.Done() {
		o.host.Remove(elements.KickerID)
		o.kicker = nil
	}
	if o.phase == PhaseReward && o.reward != nil && o.reward.Done() {
		o.host.Remove(elements.RewardID)
		o.reward = nil
		o.startFadeout()
	}
	if o.phase == PhaseFadeout && o.goodbye != nil && o.goodbye.Done() {
		o.finish()
	}
}

// finish 清场并记录粘性状态
func (o *Orchestrator) finish() {
	o.host.Clear()
	o.goodbye = nil
	if o.session != nil && !o.session.Dismissed() {
		o.session.MarkDismissed(true)
	}
	o.setPhase(PhaseDone)
}

// Draw 绘制叠加层
func (o *Orchestrator) Draw(dst *ebiten.Image) {
	o.host.Draw(dst)
}
