// Package anim 实现分阶段的程序化动画引擎。
//
// 每种动画是一个按 tick（60 TPS）推进的阶段状态机：入场、停留、
// 退场等阶段由配置的时长驱动。逻辑推进（Step）与绘制（Draw）严格
// 分离，状态机不依赖图形上下文，可以独立测试。
//
// 时序器（Sequencer）负责循环计数、未知类型的降级处理以及帧回调
// 的 panic 隔离。
package anim

import "log"

// Type 动画类型
type Type int

const (
	// TypeNone 未知或禁用的动画，立即完成
	TypeNone Type = iota
	// TypeFlight 幽灵驾驶飞机横穿屏幕
	TypeFlight
	// TypeConfidence 害羞幽灵闪光变身为自信展示
	TypeConfidence
	// TypeFeast 幽灵飞向巧克力逐口吃掉
	TypeFeast
	// TypeJumpscare 幽灵逼近放大惊吓后落下南瓜雨
	TypeJumpscare
)

// typeNames 规范标签
var typeNames = map[Type]string{
	TypeNone:       "none",
	TypeFlight:     "flight",
	TypeConfidence: "confidence",
	TypeFeast:      "feast",
	TypeJumpscare:  "jumpscare",
}

// typeAliases 历史标签到规范类型的映射
// 主题配置经过多次改版，旧标签必须继续可解析
var typeAliases = map[string]Type{
	"flight":              TypeFlight,
	"floating_planes":     TypeFlight,
	"hijackFlight":        TypeFlight,
	"transportation_ride": TypeFlight,
	"confidence":          TypeConfidence,
	"gentle_glow":         TypeConfidence,
	"confidenceShowoff":   TypeConfidence,
	"clothing_tryOn":      TypeConfidence,
	"feast":               TypeFeast,
	"melting_drips":       TypeFeast,
	"food_eating":         TypeFeast,
	"jumpscare":           TypeJumpscare,
	"flicker":             TypeJumpscare,
	"halloween_jumpscare": TypeJumpscare,
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "none"
}

// ParseType 解析动画类型标签
//
// 未知标签记录日志并返回 TypeNone：坏数据不能让流程卡死，
// 动画被跳过后直接进入问答阶段。
func ParseType(tag string) Type {
	if t, ok := typeAliases[tag]; ok {
		return t
	}
	if tag != "" {
		log.Printf("[Anim] unknown animation type %q, skipping animation", tag)
	}
	return TypeNone
}
