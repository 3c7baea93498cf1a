// Package quiz 实现二选一谈判问答的流程状态机。
//
// 问题按描述符中的顺序逐个展示，每题只有 A/B 两个选项，没有跳过。
// 选中后进入固定时长的过渡，期间重复点击被忽略；全部答完后流程
// 标记完成，答案按作答顺序保留在会话内。
package quiz

import (
	"log"
	"time"

	"github.com/decker502/necromirror/pkg/theme"
)

// State 问答流程状态
type State int

const (
	// StateIdle 尚未开始
	StateIdle State = iota
	// StateAwaiting 等待当前问题作答
	StateAwaiting
	// StateTransitioning 选中后的过渡，输入被忽略
	StateTransitioning
	// StateComplete 全部问题答完
	StateComplete
)

// OptionKey 选项标识
type OptionKey string

const (
	OptionKeyA OptionKey = "A"
	OptionKeyB OptionKey = "B"
)

// Answer 一次作答记录
type Answer struct {
	QuestionID string    // 问题标识
	Key        OptionKey // 选中的选项
	Label      string    // 选项标题（用于展示回顾）
	Value      string    // 上报用的不透明取值
	AnsweredAt time.Time
}

// Flow 问答流程状态机
//
// 按 tick 推进过渡计时，与绘制无关，可独立测试。
// 零值不可用，必须通过 NewFlow 构造。
type Flow struct {
	questions       []theme.NegotiationQuestion
	transitionTicks int
	now             func() time.Time

	state   State
	index   int // 当前问题下标
	tick    int // 过渡阶段内的帧计数
	answers []Answer
}

// NewFlow 构造问答流程
// now 为空时使用 time.Now，测试中可注入固定时钟
func NewFlow(questions []theme.NegotiationQuestion, transitionTicks int, now func() time.Time) *Flow {
	if transitionTicks < 0 {
		transitionTicks = 0
	}
	if now == nil {
		now = time.Now
	}
	return &Flow{
		questions:       questions,
		transitionTicks: transitionTicks,
		now:             now,
		state:           StateIdle,
	}
}

// Start 开始流程
//
// 没有问题时直接完成，调用方无需特判空题目的主题。
// 已开始的流程重复 Start 是无操作。
func (f *Flow) Start() {
	if f.state != StateIdle {
		return
	}
	if len(f.questions) == 0 {
		f.state = StateComplete
		return
	}
	f.state = StateAwaiting
	f.index = 0
}

// SelectOption 对当前问题作答
//
// 只在等待作答状态下生效并返回 true；过渡期间和完成后的
// 重复点击被忽略并返回 false。
func (f *Flow) SelectOption(key OptionKey) bool {
	if f.state != StateAwaiting {
		return false
	}
	q := f.questions[f.index]
	var opt theme.Option
	switch key {
	case OptionKeyA:
		opt = q.OptionA
	case OptionKeyB:
		opt = q.OptionB
	default:
		log.Printf("[Quiz] invalid option key %q for question %s", key, q.ID)
		return false
	}
	f.answers = append(f.answers, Answer{
		QuestionID: q.ID,
		Key:        key,
		Label:      opt.Label,
		Value:      opt.Value,
		AnsweredAt: f.now(),
	})
	if f.transitionTicks == 0 {
		f.advance()
		return true
	}
	f.state = StateTransitioning
	f.tick = 0
	return true
}

// Step 推进一帧过渡计时
func (f *Flow) Step() {
	if f.state != StateTransitioning {
		return
	}
	f.tick++
	if f.tick >= f.transitionTicks {
		f.advance()
	}
}

// advance 进入下一题或完成
func (f *Flow) advance() {
	f.index++
	f.tick = 0
	if f.index >= len(f.questions) {
		f.state = StateComplete
		return
	}
	f.state = StateAwaiting
}

// Current 返回当前问题
// 只在等待作答或过渡状态下有效
func (f *Flow) Current() (theme.NegotiationQuestion, bool) {
	if f.state != StateAwaiting && f.state != StateTransitioning {
		return theme.NegotiationQuestion{}, false
	}
	return f.questions[f.index], true
}

// State 返回当前状态
func (f *Flow) State() State {
	return f.state
}

// Complete 返回流程是否已全部答完
func (f *Flow) Complete() bool {
	return f.state == StateComplete
}

// Answers 返回按作答顺序排列的答案副本
func (f *Flow) Answers() []Answer {
	out := make([]Answer, len(f.answers))
	copy(out, f.answers)
	return out
}

// Progress 返回已答题数和总题数
func (f *Flow) Progress() (answered, total int) {
	return len(f.answers), len(f.questions)
}

// TransitionProgress 返回过渡阶段的归一化进度，非过渡状态返回 0
func (f *Flow) TransitionProgress() float64 {
	if f.state != StateTransitioning || f.transitionTicks == 0 {
		return 0
	}
	return float64(f.tick) / float64(f.transitionTicks)
}
