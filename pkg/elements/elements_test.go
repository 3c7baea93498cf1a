package elements

import (
	"testing"

	"github.com/decker502/necromirror/pkg/quiz"
	"github.com/decker502/necromirror/pkg/theme"
	"github.com/decker502/necromirror/pkg/utils"
)

func testStyle() Style {
	return NewStyle(&theme.Descriptor{
		ThemeName:       "测试主题",
		PrimaryColor:    "#8b5cf6",
		SecondaryColor:  "#c4b5fd",
		BackgroundColor: "#181825",
		GhostEmotion:    "mysterious",
	}, nil, 800, 600)
}

func TestStyleColorFallback(t *testing.T) {
	s := NewStyle(&theme.Descriptor{PrimaryColor: "not-a-color"}, nil, 800, 600)
	if s.Primary.A == 0 {
		t.Error("非法颜色应回落到内置默认而不是零值")
	}
}

func TestBackgroundShakeDecays(t *testing.T) {
	b := NewBackground(testStyle())
	if x, y := b.Offset(); x != 0 || y != 0 {
		t.Fatal("未触发抖动时位移应为零")
	}

	b.Shake(36)
	moved := false
	for i := 0; i < 36; i++ {
		b.Step()
		if x, y := b.Offset(); x != 0 || y != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("抖动期间应产生位移")
	}
	b.Step()
	if x, y := b.Offset(); x != 0 || y != 0 {
		t.Errorf("抖动结束后位移应归零，得到 (%v, %v)", x, y)
	}
}

func TestKickerBannerLifetime(t *testing.T) {
	k := NewKickerBanner(testStyle(), "你的屏幕现在归我了", 300)
	total := kickerSlideTicks + 300 + kickerSlideTicks
	for i := 0; i < total-1; i++ {
		k.Step()
		if k.Done() {
			t.Fatalf("横幅在第 %d 帧提前结束", i+1)
		}
	}
	k.Step()
	if !k.Done() {
		t.Error("横幅应在滑出结束后标记完成")
	}
}

func TestKickerBannerSlide(t *testing.T) {
	k := NewKickerBanner(testStyle(), "文案", 100)
	if k.offsetY() >= 0 {
		t.Error("滑入前横幅应在屏幕外")
	}
	for i := 0; i < kickerSlideTicks; i++ {
		k.Step()
	}
	if k.offsetY() != 0 {
		t.Errorf("滑入结束后位移 = %v, 期望 0", k.offsetY())
	}
}

func TestInvitationHitTest(t *testing.T) {
	var accepted, declined bool
	m := NewInvitation(testStyle(), InvitationCallbacks{
		OnAccept:  func() { accepted = true },
		OnDecline: func() { declined = true },
	})

	ax, ay := m.acceptBtn.Center()
	if !m.HandleInput(utils.InputState{JustPressed: true, X: ax, Y: ay}) {
		t.Error("模态弹窗应消费所有点击")
	}
	if !accepted || declined {
		t.Errorf("接受按钮点击后 accepted=%v declined=%v", accepted, declined)
	}

	dx, dy := m.declineBtn.Center()
	m.HandleInput(utils.InputState{JustPressed: true, X: dx, Y: dy})
	if !declined {
		t.Error("拒绝按钮点击应触发回调")
	}

	// 面板外点击也被消费但不触发回调
	accepted, declined = false, false
	if !m.HandleInput(utils.InputState{JustPressed: true, X: 1, Y: 1}) {
		t.Error("面板外点击应被消费")
	}
	if accepted || declined {
		t.Error("面板外点击不应触发回调")
	}
}

func TestQuizViewCompletes(t *testing.T) {
	questions := []theme.NegotiationQuestion{
		{
			ID:      "q1",
			OptionA: theme.Option{Label: "A", Value: "a"},
			OptionB: theme.Option{Label: "B", Value: "b"},
		},
	}
	flow := quiz.NewFlow(questions, 5, nil)

	completed := 0
	v := NewQuizView(testStyle(), flow, func() { completed++ })
	if flow.State() != quiz.StateAwaiting {
		t.Fatal("构造问答面板时流程应已启动")
	}

	ax, ay := v.btnA.Center()
	v.HandleInput(utils.InputState{JustPressed: true, X: ax, Y: ay})
	for i := 0; i < 10; i++ {
		v.Step()
	}
	if completed != 1 {
		t.Errorf("完成回调触发次数 = %d, 期望 1", completed)
	}
	// 完成后继续推进不再触发
	v.Step()
	if completed != 1 {
		t.Error("完成回调不应重复触发")
	}
}

func TestRewardLifetime(t *testing.T) {
	r := NewReward(testStyle(), 300, 60)
	for i := 0; i < 359; i++ {
		r.Step()
	}
	if r.Done() {
		t.Error("奖励消息提前结束")
	}
	r.Step()
	if !r.Done() {
		t.Error("奖励消息应在停留加淡出后结束")
	}
	if r.alpha() != 0 {
		t.Errorf("结束时透明度 = %v, 期望 0", r.alpha())
	}
}

func TestGoodbyeLifetime(t *testing.T) {
	g := NewGoodbye(testStyle(), 180, 60)
	for i := 0; i < 240; i++ {
		g.Step()
	}
	if !g.Done() {
		t.Error("告别消息应在停留加淡出后结束")
	}
}
