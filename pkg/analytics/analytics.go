// Package analytics 收集问答完成事件。
//
// 当前只有日志实现：事件格式化后写入标准日志，不做任何网络上报。
// Collector 接口留给后续接入真实通道。
package analytics

import (
	"log"
	"strings"
	"time"

	"github.com/decker502/necromirror/pkg/quiz"
	"github.com/decker502/necromirror/pkg/theme"
)

// CompletionEvent 一次完整通关的记录
// 只在全部问题答完时产生，中途放弃不上报
type CompletionEvent struct {
	Category    theme.Category // 页面分类
	Variant     theme.Variant  // 挑衅文案变体
	Answers     []quiz.Answer  // 按作答顺序
	CompletedAt time.Time
}

// Collector 事件收集器
type Collector interface {
	RecordCompletion(ev CompletionEvent)
}

// LogCollector 把事件写入标准日志的收集器
type LogCollector struct{}

// NewLogCollector 构造日志收集器
func NewLogCollector() *LogCollector {
	return &LogCollector{}
}

// RecordCompletion 记录完成事件
func (c *LogCollector) RecordCompletion(ev CompletionEvent) {
	log.Printf("[Analytics] completion category=%s variant=%s answers=%s at=%s",
		ev.Category, ev.Variant, formatAnswers(ev.Answers), ev.CompletedAt.Format(time.RFC3339))
}

// formatAnswers 把答案序列压成 id:key=value 逗号串
func formatAnswers(answers []quiz.Answer) string {
	if len(answers) == 0 {
		return "(none)"
	}
	parts := make([]string, len(answers))
	for i, a := range answers {
		parts[i] = a.QuestionID + ":" + string(a.Key) + "=" + a.Value
	}
	return strings.Join(parts, ",")
}

// NopCollector 丢弃所有事件的收集器，用于禁用分析的场景
type NopCollector struct{}

func (NopCollector) RecordCompletion(CompletionEvent) {}
