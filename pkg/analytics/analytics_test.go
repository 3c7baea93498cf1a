package analytics

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/decker502/necromirror/pkg/quiz"
	"github.com/decker502/necromirror/pkg/theme"
)

func TestLogCollectorOutput(t *testing.T) {
	var buf bytes.Buffer
	old := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(old)

	c := NewLogCollector()
	c.RecordCompletion(CompletionEvent{
		Category: theme.CategoryFood,
		Variant:  theme.VariantB,
		Answers: []quiz.Answer{
			{QuestionID: "q1", Key: quiz.OptionKeyA, Value: "square"},
			{QuestionID: "q2", Key: quiz.OptionKeyB, Value: "milk"},
		},
		CompletedAt: time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
	})

	out := buf.String()
	for _, want := range []string{
		"[Analytics]",
		"category=food",
		"variant=B",
		"q1:A=square,q2:B=milk",
		"2026-08-28T12:00:00Z",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("日志缺少 %q: %s", want, out)
		}
	}
}

func TestFormatAnswersEmpty(t *testing.T) {
	if got := formatAnswers(nil); got != "(none)" {
		t.Errorf("空答案格式化 = %q, 期望 (none)", got)
	}
}
