package quiz

import (
	"testing"
	"time"

	"github.com/decker502/necromirror/pkg/theme"
)

func testQuestions() []theme.NegotiationQuestion {
	return []theme.NegotiationQuestion{
		{
			ID:       "q1",
			Question: "巧克力要方的还是圆的？",
			OptionA:  theme.Option{Label: "方的", Value: "square"},
			OptionB:  theme.Option{Label: "圆的", Value: "round"},
		},
		{
			ID:       "q2",
			Question: "黑巧还是牛奶巧？",
			OptionA:  theme.Option{Label: "黑巧", Value: "dark"},
			OptionB:  theme.Option{Label: "牛奶巧", Value: "milk"},
		},
	}
}

// fixedClock 返回递增的固定时钟
func fixedClock() func() time.Time {
	t := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestFlowHappyPath(t *testing.T) {
	f := NewFlow(testQuestions(), 10, fixedClock())
	if f.State() != StateIdle {
		t.Fatal("流程应从未开始状态构造")
	}
	f.Start()
	if f.State() != StateAwaiting {
		t.Fatal("Start 后应等待第一题作答")
	}

	q, ok := f.Current()
	if !ok || q.ID != "q1" {
		t.Fatalf("当前问题 = %v, 期望 q1", q.ID)
	}

	if !f.SelectOption(OptionKeyA) {
		t.Fatal("等待作答状态下选择应生效")
	}
	if f.State() != StateTransitioning {
		t.Fatal("作答后应进入过渡状态")
	}
	for i := 0; i < 10; i++ {
		f.Step()
	}
	if f.State() != StateAwaiting {
		t.Fatal("过渡结束后应等待下一题")
	}
	q, _ = f.Current()
	if q.ID != "q2" {
		t.Errorf("当前问题 = %v, 期望 q2", q.ID)
	}

	f.SelectOption(OptionKeyB)
	for i := 0; i < 10; i++ {
		f.Step()
	}
	if !f.Complete() {
		t.Fatal("答完全部问题后流程应完成")
	}

	answers := f.Answers()
	if len(answers) != 2 {
		t.Fatalf("答案数量 = %d, 期望 2", len(answers))
	}
	if answers[0].QuestionID != "q1" || answers[0].Key != OptionKeyA || answers[0].Value != "square" {
		t.Errorf("第一条答案记录错误: %+v", answers[0])
	}
	if answers[1].QuestionID != "q2" || answers[1].Key != OptionKeyB || answers[1].Value != "milk" {
		t.Errorf("第二条答案记录错误: %+v", answers[1])
	}
	if !answers[1].AnsweredAt.After(answers[0].AnsweredAt) {
		t.Error("答案时间戳应按作答顺序递增")
	}
}

func TestFlowTransitionIgnoresInput(t *testing.T) {
	f := NewFlow(testQuestions(), 10, fixedClock())
	f.Start()
	f.SelectOption(OptionKeyA)

	// 过渡期间的重复点击被忽略
	if f.SelectOption(OptionKeyB) {
		t.Error("过渡期间的选择应被忽略")
	}
	if answered, _ := f.Progress(); answered != 1 {
		t.Errorf("重复点击后答案数量 = %d, 期望 1", answered)
	}
}

func TestFlowZeroQuestions(t *testing.T) {
	f := NewFlow(nil, 10, fixedClock())
	f.Start()
	if !f.Complete() {
		t.Error("没有问题的流程应在 Start 时直接完成")
	}
	if f.SelectOption(OptionKeyA) {
		t.Error("完成后的选择应被忽略")
	}
}

func TestFlowZeroTransition(t *testing.T) {
	f := NewFlow(testQuestions(), 0, fixedClock())
	f.Start()
	f.SelectOption(OptionKeyA)
	if f.State() != StateAwaiting {
		t.Error("过渡时长为零时应直接进入下一题")
	}
	f.SelectOption(OptionKeyB)
	if !f.Complete() {
		t.Error("过渡时长为零时答完应直接完成")
	}
}

func TestFlowInvalidKey(t *testing.T) {
	f := NewFlow(testQuestions(), 10, fixedClock())
	f.Start()
	if f.SelectOption(OptionKey("C")) {
		t.Error("非法选项应被拒绝")
	}
	if answered, _ := f.Progress(); answered != 0 {
		t.Error("非法选项不应记录答案")
	}
}

func TestFlowRepeatedStart(t *testing.T) {
	f := NewFlow(testQuestions(), 10, fixedClock())
	f.Start()
	f.SelectOption(OptionKeyA)
	f.Start() // 重复 Start 不应重置进度
	if answered, _ := f.Progress(); answered != 1 {
		t.Error("重复 Start 不应清空已有答案")
	}
	if f.State() != StateTransitioning {
		t.Error("重复 Start 不应改变状态")
	}
}

func TestFlowTransitionProgress(t *testing.T) {
	f := NewFlow(testQuestions(), 10, fixedClock())
	f.Start()
	if f.TransitionProgress() != 0 {
		t.Error("等待作答时过渡进度应为 0")
	}
	f.SelectOption(OptionKeyA)
	for i := 0; i < 5; i++ {
		f.Step()
	}
	if p := f.TransitionProgress(); p < 0.49 || p > 0.51 {
		t.Errorf("过渡中点进度 = %v, 期望 0.5", p)
	}
}
