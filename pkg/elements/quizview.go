package elements

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/necromirror/pkg/ghost"
	"github.com/decker502/necromirror/pkg/quiz"
	"github.com/decker502/necromirror/pkg/utils"
)

// QuizViewID 问答面板元素的固定键
const QuizViewID = "quiz"

// QuizView 二选一问答面板
//
// 每题展示问题文本和 A/B 两个按钮，过渡期间按钮变暗且不响应。
// 流程完成时触发一次 onComplete 回调。
type QuizView struct {
	style      Style
	flow       *quiz.Flow
	onComplete func()
	fired      bool

	panel utils.Rect
	btnA  utils.Rect
	btnB  utils.Rect

	lastKey quiz.OptionKey // 最近一次生效的选择，过渡期间幽灵飘向它
}

// NewQuizView 构造问答面板并启动流程
func NewQuizView(style Style, flow *quiz.Flow, onComplete func()) *QuizView {
	const (
		panelW = 420.0
		panelH = 300.0
		btnW   = 170.0
		btnH   = 72.0
	)
	px := (style.W - panelW) / 2
	py := (style.H - panelH) / 2
	v := &QuizView{
		style:      style,
		flow:       flow,
		onComplete: onComplete,
		panel:      utils.Rect{X: px, Y: py, W: panelW, H: panelH},
		btnA:       utils.Rect{X: px + 25, Y: py + panelH - 100, W: btnW, H: btnH},
		btnB:       utils.Rect{X: px + panelW - 25 - btnW, Y: py + panelH - 100, W: btnW, H: btnH},
	}
	flow.Start()
	return v
}

func (v *QuizView) ID() string { return QuizViewID }

func (v *QuizView) Step() {
	v.flow.Step()
	if v.flow.Complete() && !v.fired {
		v.fired = true
		if v.onComplete != nil {
			v.onComplete()
		}
	}
}

// HandleInput 命中测试选项按钮
// 面板是模态的，点击一律消费；过渡期间的点击由流程自身忽略
func (v *QuizView) HandleInput(in utils.InputState) bool {
	switch {
	case v.btnA.Contains(in.X, in.Y):
		if v.flow.SelectOption(quiz.OptionKeyA) {
			v.lastKey = quiz.OptionKeyA
		}
	case v.btnB.Contains(in.X, in.Y):
		if v.flow.SelectOption(quiz.OptionKeyB) {
			v.lastKey = quiz.OptionKeyB
		}
	}
	return true
}

func (v *QuizView) Draw(dst *ebiten.Image) {
	q, ok := v.flow.Current()
	if !ok {
		return
	}
	ghost.DrawDim(dst, 0.45)
	drawPanel(dst, v.panel, v.style, 1.0)

	cx := v.panel.X + v.panel.W/2
	// 过渡期间幽灵飘向被选中的一侧
	ghostX := cx
	if v.flow.State() == quiz.StateTransitioning {
		shift := 90 * utils.EaseOutQuad(v.flow.TransitionProgress())
		if v.lastKey == quiz.OptionKeyA {
			ghostX -= shift
		} else {
			ghostX += shift
		}
	}
	ghost.Draw(dst, ghostX, v.panel.Y+52, 0.7, ghost.EmotionSmug, 1.0)

	answered, total := v.flow.Progress()
	progress := fmt.Sprintf("%d / %d", answered+1, total)
	if v.flow.State() == quiz.StateTransitioning {
		progress = fmt.Sprintf("%d / %d", answered, total)
	}
	drawCenteredText(dst, progress, v.style.Face, cx, v.panel.Y+14, color.RGBA{160, 160, 175, 255}, 1.0)

	// 问题文本按面板宽度折行
	lines := utils.WrapText(q.Question, v.style.Face, v.panel.W-50)
	for i, line := range lines {
		drawCenteredText(dst, line, v.style.Face, cx, v.panel.Y+104+float64(i)*26,
			color.RGBA{255, 255, 255, 255}, 1.0)
	}

	// 过渡期间按钮变暗
	btnAlpha := 1.0
	if v.flow.State() == quiz.StateTransitioning {
		btnAlpha = 0.45 * (1 - v.flow.TransitionProgress())
	}
	drawButton(dst, v.btnA, optionTitle(q.OptionA.Icon, q.OptionA.Label), q.OptionA.Subtitle, v.style, btnAlpha)
	drawButton(dst, v.btnB, optionTitle(q.OptionB.Icon, q.OptionB.Label), q.OptionB.Subtitle, v.style, btnAlpha)
}

// optionTitle 把可选图标拼到标题前
func optionTitle(icon, label string) string {
	if icon == "" {
		return label
	}
	return icon + " " + label
}
